package dashboard

import (
	"strings"

	"github.com/kendall-kelly/laundry-api/schemas"
)

func successMessage(server, fallback string) string {
	if server != "" {
		return server
	}
	return fallback
}

// failureMessage appends field issues so a terminal user sees what to fix
func failureMessage(err string, details []schemas.Issue) string {
	if len(details) == 0 {
		return err
	}
	msgs := make([]string, 0, len(details))
	for _, d := range details {
		msgs = append(msgs, d.Message)
	}
	return err + ": " + strings.Join(msgs, " ")
}
