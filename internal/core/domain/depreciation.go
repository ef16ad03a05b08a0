package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Period identifies the month a depreciation run targets.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Valid reports whether the period is within the accepted range.
// Years before 2001 predate the institution's electronic inventory.
func (p Period) Valid() bool {
	return p.Month >= 1 && p.Month <= 12 && p.Year > 2000
}

func (p Period) String() string {
	return fmt.Sprintf("%d/%d", p.Month, p.Year)
}

// Before reports whether p is strictly earlier than other.
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

// DepreciationRecord is one month of book depreciation for one asset.
// Records are append-only: created exactly once per (asset, month, year) by a
// depreciation run and never updated or deleted afterwards.
type DepreciationRecord struct {
	RecordID string `json:"recordID"`
	AssetID  string `json:"assetID"`
	Month    int    `json:"month"`
	Year     int    `json:"year"`

	// PeriodCharge is the depreciation recognized in this specific month.
	PeriodCharge decimal.Decimal `json:"periodCharge"`
	// AccumulatedDepreciation is non-decreasing across the asset's records
	// ordered by (year, month).
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	// NetBookValue = acquisition value - accumulated depreciation. Never below
	// the asset's residual value, never above its acquisition value.
	NetBookValue decimal.Decimal `json:"netBookValue"`

	ComputedAt time.Time `json:"computedAt"`
	ComputedBy string    `json:"computedBy"` // UserID reference; empty for scheduled runs
}

// Period returns the record's target period.
func (r *DepreciationRecord) Period() Period {
	return Period{Month: r.Month, Year: r.Year}
}

// RunError reports a per-asset failure inside a depreciation run.
type RunError struct {
	AssetID string `json:"assetID"`
	Reason  string `json:"reason"`
}

// RunSummary is the outcome of one depreciation run. Every asset the run
// considered is accounted for in exactly one of the three buckets.
type RunSummary struct {
	Period        Period     `json:"period"`
	ComputedCount int        `json:"computedCount"`
	SkippedCount  int        `json:"skippedCount"`
	Errors        []RunError `json:"errors"`
}
