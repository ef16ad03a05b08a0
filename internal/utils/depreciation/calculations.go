// Package depreciation holds the pure monthly depreciation arithmetic.
// Keeping it free of storage concerns lets the formulas be unit tested
// without a database.
package depreciation

import (
	"errors"
	"fmt"

	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ErrUnsupportedMethod indicates an asset carries a depreciation method the
// engine does not implement. The asset is skipped and reported, not retried.
var ErrUnsupportedMethod = errors.New("unsupported depreciation method")

// ErrComputation indicates the asset's parameters produced an impossible
// charge. Should be unreachable for assets that passed the eligibility check.
var ErrComputation = errors.New("depreciation computation error")

var (
	two    = decimal.NewFromInt(2)
	twelve = decimal.NewFromInt(12)
)

// MonthlyCharge computes one month's proposed depreciation charge for an
// asset, before the residual floor is applied.
//
// The raw charge is quantized up to the cent. Rounding up guarantees every
// schedule terminates: declining-balance charges never decay below one cent
// while book value sits above the residual, and straight-line schedules
// overshoot by at most the accumulated rounding residue, which the caller's
// floor clamp absorbs in the final month.
func MonthlyCharge(method domain.DepreciationMethod, acquisitionValue, residualValue decimal.Decimal, usefulLifeYears int, priorNetBookValue decimal.Decimal) (decimal.Decimal, error) {
	if usefulLifeYears <= 0 {
		return decimal.Zero, fmt.Errorf("%w: useful life must be positive, got %d years", ErrComputation, usefulLifeYears)
	}

	lifeMonths := decimal.NewFromInt(int64(usefulLifeYears)).Mul(twelve)

	switch method {
	case domain.MethodStraightLine:
		base := acquisitionValue.Sub(residualValue)
		return base.Div(lifeMonths).RoundUp(2), nil

	case domain.MethodDecliningBalance:
		// Double-declining: a fixed annual rate of 2/life applied to the
		// prior book value, spread over twelve months.
		annualRate := two.Div(decimal.NewFromInt(int64(usefulLifeYears)))
		return priorNetBookValue.Mul(annualRate).Div(twelve).RoundUp(2), nil

	default:
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnsupportedMethod, method)
	}
}
