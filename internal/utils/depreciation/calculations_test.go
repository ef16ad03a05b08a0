package depreciation_test

import (
	"testing"

	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
	"github.com/patrimonia/asset_inventory_app/internal/utils/depreciation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestMonthlyCharge_StraightLine(t *testing.T) {
	tests := []struct {
		name        string
		acquisition string
		residual    string
		lifeYears   int
		want        string
	}{
		{"one year no residual", "1200.00", "0.00", 1, "100.00"},
		{"five years no residual", "6000.00", "0.00", 5, "100.00"},
		{"residual reduces base", "1200.00", "600.00", 1, "50.00"},
		{"non-terminating division rounds up to the cent", "1000.00", "900.00", 1, "8.34"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Prior book value is irrelevant for straight line.
			got, err := depreciation.MonthlyCharge(domain.MethodStraightLine, d(tt.acquisition), d(tt.residual), tt.lifeYears, d(tt.acquisition))
			require.NoError(t, err)
			assert.True(t, got.Equal(d(tt.want)), "want %s, got %s", tt.want, got)
		})
	}
}

func TestMonthlyCharge_DecliningBalance(t *testing.T) {
	// 2/5 annual rate on the prior book value, over twelve months.
	got, err := depreciation.MonthlyCharge(domain.MethodDecliningBalance, d("1200.00"), d("0.00"), 5, d("1200.00"))
	require.NoError(t, err)
	assert.True(t, got.Equal(d("40.00")), "got %s", got)

	// Charge shrinks as the book value shrinks.
	later, err := depreciation.MonthlyCharge(domain.MethodDecliningBalance, d("1200.00"), d("0.00"), 5, d("600.00"))
	require.NoError(t, err)
	assert.True(t, later.Equal(d("20.00")), "got %s", later)
	assert.True(t, later.LessThan(got))

	// Never rounds to zero while book value remains: the floor clamp, not the
	// formula, is what terminates a declining balance schedule.
	tiny, err := depreciation.MonthlyCharge(domain.MethodDecliningBalance, d("1200.00"), d("0.00"), 5, d("0.10"))
	require.NoError(t, err)
	assert.True(t, tiny.GreaterThan(decimal.Zero), "got %s", tiny)
}

func TestMonthlyCharge_UnsupportedMethod(t *testing.T) {
	_, err := depreciation.MonthlyCharge(domain.DepreciationMethod("SUM_OF_YEARS"), d("1000.00"), d("0.00"), 5, d("1000.00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, depreciation.ErrUnsupportedMethod)
}

func TestMonthlyCharge_NonPositiveLife(t *testing.T) {
	for _, life := range []int{0, -3} {
		_, err := depreciation.MonthlyCharge(domain.MethodStraightLine, d("1000.00"), d("0.00"), life, d("1000.00"))
		require.Error(t, err)
		assert.ErrorIs(t, err, depreciation.ErrComputation)
	}
}
