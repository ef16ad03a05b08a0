package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/patrimonia/asset_inventory_app/internal/apperrors"
	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
	portsrepo "github.com/patrimonia/asset_inventory_app/internal/core/ports/repositories"
)

type PgxUnitRepository struct {
	pool *pgxpool.Pool
}

// NewPgxUnitRepository creates a new repository for administrative units.
func NewPgxUnitRepository(pool *pgxpool.Pool) portsrepo.UnitRepositoryFacade {
	return &PgxUnitRepository{pool: pool}
}

const unitColumns = `unit_id, name, location, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanUnit(row pgx.Row) (*domain.AdministrativeUnit, error) {
	var u domain.AdministrativeUnit
	err := row.Scan(&u.UnitID, &u.Name, &u.Location, &u.IsActive, &u.CreatedAt, &u.CreatedBy, &u.LastUpdatedAt, &u.LastUpdatedBy)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PgxUnitRepository) SaveUnit(ctx context.Context, unit domain.AdministrativeUnit) error {
	query := `
		INSERT INTO administrative_units (` + unitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		unit.UnitID,
		unit.Name,
		unit.Location,
		unit.IsActive,
		unit.CreatedAt,
		unit.CreatedBy,
		unit.LastUpdatedAt,
		unit.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert unit %s: %w", unit.UnitID, err)
	}
	return nil
}

func (r *PgxUnitRepository) FindUnitByID(ctx context.Context, unitID string) (*domain.AdministrativeUnit, error) {
	query := `SELECT ` + unitColumns + ` FROM administrative_units WHERE unit_id = $1;`
	unit, err := scanUnit(r.pool.QueryRow(ctx, query, unitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find unit %s: %w", unitID, err)
	}
	return unit, nil
}

func (r *PgxUnitRepository) ListUnits(ctx context.Context, activeOnly bool) ([]domain.AdministrativeUnit, error) {
	query := `SELECT ` + unitColumns + ` FROM administrative_units`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query units: %w", err)
	}
	defer rows.Close()

	units, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdministrativeUnit, error) {
		u, err := scanUnit(row)
		if err != nil {
			return domain.AdministrativeUnit{}, err
		}
		return *u, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan units: %w", err)
	}
	return units, nil
}

func (r *PgxUnitRepository) UpdateUnit(ctx context.Context, unit domain.AdministrativeUnit) error {
	query := `
		UPDATE administrative_units SET name = $2, location = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE unit_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		unit.UnitID,
		unit.Name,
		unit.Location,
		unit.IsActive,
		unit.LastUpdatedAt,
		unit.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update unit %s: %w", unit.UnitID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
