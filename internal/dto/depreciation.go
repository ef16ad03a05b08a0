package dto

import (
	"time"

	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RunDepreciationRequest selects the period a depreciation run targets.
// Range checks are repeated by the service so non-HTTP callers (scheduler)
// get the same validation.
type RunDepreciationRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,gt=2000"`
}

// RunErrorResponse reports one asset that failed during a run.
type RunErrorResponse struct {
	AssetID string `json:"assetID"`
	Reason  string `json:"reason"`
}

// RunSummaryResponse is the outcome of a depreciation run.
type RunSummaryResponse struct {
	Month         int                `json:"month"`
	Year          int                `json:"year"`
	ComputedCount int                `json:"computedCount"`
	SkippedCount  int                `json:"skippedCount"`
	Errors        []RunErrorResponse `json:"errors"`
}

// ToRunSummaryResponse converts a domain.RunSummary to its DTO.
func ToRunSummaryResponse(s *domain.RunSummary) RunSummaryResponse {
	errs := make([]RunErrorResponse, len(s.Errors))
	for i, e := range s.Errors {
		errs[i] = RunErrorResponse{AssetID: e.AssetID, Reason: e.Reason}
	}
	return RunSummaryResponse{
		Month:         s.Period.Month,
		Year:          s.Period.Year,
		ComputedCount: s.ComputedCount,
		SkippedCount:  s.SkippedCount,
		Errors:        errs,
	}
}

// DepreciationRecordResponse mirrors domain.DepreciationRecord for API output.
type DepreciationRecordResponse struct {
	RecordID                string          `json:"recordID"`
	AssetID                 string          `json:"assetID"`
	Month                   int             `json:"month"`
	Year                    int             `json:"year"`
	PeriodCharge            decimal.Decimal `json:"periodCharge"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	NetBookValue            decimal.Decimal `json:"netBookValue"`
	ComputedAt              time.Time       `json:"computedAt"`
}

// ToDepreciationRecordResponse converts a domain record to its DTO.
func ToDepreciationRecordResponse(r *domain.DepreciationRecord) DepreciationRecordResponse {
	return DepreciationRecordResponse{
		RecordID:                r.RecordID,
		AssetID:                 r.AssetID,
		Month:                   r.Month,
		Year:                    r.Year,
		PeriodCharge:            r.PeriodCharge,
		AccumulatedDepreciation: r.AccumulatedDepreciation,
		NetBookValue:            r.NetBookValue,
		ComputedAt:              r.ComputedAt,
	}
}

// ToDepreciationRecordResponses converts a slice of domain records to DTOs.
func ToDepreciationRecordResponses(records []domain.DepreciationRecord) []DepreciationRecordResponse {
	res := make([]DepreciationRecordResponse, len(records))
	for i := range records {
		res[i] = ToDepreciationRecordResponse(&records[i])
	}
	return res
}

// ListDepreciationRecordsResponse wraps a record listing.
type ListDepreciationRecordsResponse struct {
	Records []DepreciationRecordResponse `json:"records"`
}
