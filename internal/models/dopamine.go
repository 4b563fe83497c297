package models

import (
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
)

// DopamineEntry represents one day's self-reported pass/fail status for the
// dopamine control goal. One entry per calendar day, enforced by the store.
type DopamineEntry struct {
	ID        string                   `json:"id"`
	Date      string                   `json:"date"` // YYYY-MM-DD format
	Status    constants.DopamineStatus `json:"status"`
	Notes     string                   `json:"notes"`
	CreatedAt time.Time                `json:"createdAt"`
}

// Passed reports whether the entry records a passed day.
func (e DopamineEntry) Passed() bool {
	return e.Status == constants.StatusPassed
}
