package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/kendall-kelly/laundry-api/config"
	"github.com/kendall-kelly/laundry-api/models"
	"github.com/kendall-kelly/laundry-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	cfg := testutil.TestConfig()
	cfg.DatabaseURL = filepath.Join(t.TempDir(), "laundry.db")
	cfg.Port = "0"
	return cfg
}

// TestRunStopsOnCancel checks that the server migrates, seeds and shuts down cleanly
func TestRunStopsOnCancel(t *testing.T) {
	cfg := testConfig(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx, cfg, true) }()

	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}

	db, err := config.ConnectDatabase(cfg)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	var packages int64
	require.NoError(t, db.Model(&models.Package{}).Count(&packages).Error)
	assert.Equal(t, int64(3), packages)
}

// TestRunRejectsBadDatabase checks that connection failures surface as errors
func TestRunRejectsBadDatabase(t *testing.T) {
	cfg := testConfig(t)
	cfg.DatabaseURL = filepath.Join(t.TempDir(), "missing", "dir", "laundry.db")

	err := run(context.Background(), cfg, false)
	assert.Error(t, err)
}
