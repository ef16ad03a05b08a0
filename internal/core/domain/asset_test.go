package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
)

func depreciableAsset(status domain.AssetStatus) *domain.Asset {
	method := domain.MethodStraightLine
	life := 5
	return &domain.Asset{
		Method:          &method,
		UsefulLifeYears: &life,
		Status:          status,
	}
}

func TestAsset_IsDepreciable(t *testing.T) {
	asset := depreciableAsset(domain.StatusGood)
	assert.True(t, asset.IsDepreciable())

	asset.Method = nil
	assert.False(t, asset.IsDepreciable())

	asset = depreciableAsset(domain.StatusGood)
	asset.UsefulLifeYears = nil
	assert.False(t, asset.IsDepreciable())

	zero := 0
	asset = depreciableAsset(domain.StatusGood)
	asset.UsefulLifeYears = &zero
	assert.False(t, asset.IsDepreciable())
}

func TestAsset_EligibleForDepreciation(t *testing.T) {
	accruing := []domain.AssetStatus{
		domain.StatusNew,
		domain.StatusGood,
		domain.StatusFair,
		domain.StatusPoor,
		domain.StatusUnderRepair,
	}
	for _, status := range accruing {
		assert.True(t, depreciableAsset(status).EligibleForDepreciation(), "status %s should accrue", status)
	}

	assert.False(t, depreciableAsset(domain.StatusObsolete).EligibleForDepreciation())
	assert.False(t, depreciableAsset(domain.StatusDeaccessioned).EligibleForDepreciation())

	incomplete := depreciableAsset(domain.StatusGood)
	incomplete.Method = nil
	assert.False(t, incomplete.EligibleForDepreciation())
}

func TestValidStatus(t *testing.T) {
	assert.True(t, domain.ValidStatus(domain.StatusGood))
	assert.True(t, domain.ValidStatus(domain.StatusDeaccessioned))
	assert.False(t, domain.ValidStatus("BROKEN"))
	assert.False(t, domain.ValidStatus(""))
}

func TestPeriod_Valid(t *testing.T) {
	assert.True(t, domain.Period{Month: 1, Year: 2025}.Valid())
	assert.True(t, domain.Period{Month: 12, Year: 2001}.Valid())

	assert.False(t, domain.Period{Month: 0, Year: 2025}.Valid())
	assert.False(t, domain.Period{Month: 13, Year: 2025}.Valid())
	assert.False(t, domain.Period{Month: 6, Year: 2000}.Valid())
}

func TestPeriod_Before(t *testing.T) {
	assert.True(t, domain.Period{Month: 12, Year: 2024}.Before(domain.Period{Month: 1, Year: 2025}))
	assert.True(t, domain.Period{Month: 3, Year: 2025}.Before(domain.Period{Month: 4, Year: 2025}))
	assert.False(t, domain.Period{Month: 4, Year: 2025}.Before(domain.Period{Month: 4, Year: 2025}))
	assert.False(t, domain.Period{Month: 5, Year: 2025}.Before(domain.Period{Month: 4, Year: 2025}))
}
