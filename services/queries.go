package services

import (
	"errors"

	"github.com/kendall-kelly/laundry-api/models"
	"gorm.io/gorm"
)

// recentOrderLimit bounds the orders embedded in list responses
const recentOrderLimit = 5

// findByID loads dest by primary key, turning a missing row into a not-found error
func findByID(db *gorm.DB, dest interface{}, id uint, notFoundMsg, failMsg string) error {
	if err := db.First(dest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(notFoundMsg)
		}
		return internal(failMsg, err)
	}
	return nil
}

// valueTaken reports whether another non-deleted row of model already holds
// value in column. excludeID skips the row being updated (0 skips nothing).
func valueTaken(db *gorm.DB, model interface{}, column, value string, excludeID uint) (bool, error) {
	query := db.Model(model).Where(column+" = ?", value)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// countOrders counts the live orders that reference id through column
func countOrders(db *gorm.DB, column string, id uint) (int64, error) {
	var count int64
	err := db.Model(&models.LaundryOrder{}).Where(column+" = ?", id).Count(&count).Error
	return count, err
}

// recentOrders loads the newest orders for each parent id, at most
// recentOrderLimit per parent, keyed by the parent id that key extracts.
func recentOrders(db *gorm.DB, column string, ids []uint, key func(models.LaundryOrder) (uint, bool)) (map[uint][]models.LaundryOrder, error) {
	grouped := make(map[uint][]models.LaundryOrder, len(ids))
	if len(ids) == 0 {
		return grouped, nil
	}

	var orders []models.LaundryOrder
	if err := db.Where(column+" IN ?", ids).Order("created_at DESC, id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}

	for _, order := range orders {
		parent, ok := key(order)
		if !ok || len(grouped[parent]) >= recentOrderLimit {
			continue
		}
		grouped[parent] = append(grouped[parent], order)
	}
	return grouped, nil
}

func newestFirst(tx *gorm.DB) *gorm.DB {
	return tx.Order("created_at DESC, id DESC")
}
