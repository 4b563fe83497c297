package models

import "time"

// DailySummary is the cached per-day completion row. It is recomputed and
// upserted on every mutation touching its date, and can be rebuilt entirely
// from the other collections; display paths always recompute live instead of
// reading it back.
type DailySummary struct {
	ID                string    `json:"id"`
	Date              string    `json:"date"` // YYYY-MM-DD format
	DopamineCompleted bool      `json:"dopamineCompleted"`
	HygieneCompleted  bool      `json:"hygieneCompleted"`
	TotalCompletion   int       `json:"totalCompletion"` // 0-100 percentage
	CreatedAt         time.Time `json:"createdAt"`
}
