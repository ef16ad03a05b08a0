package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/patrimonia/asset_inventory_app/internal/apperrors"
	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
	portsrepo "github.com/patrimonia/asset_inventory_app/internal/core/ports/repositories"
)

type PgxMovementRepository struct {
	pool *pgxpool.Pool
}

// NewPgxMovementRepository creates a new repository for asset movements.
func NewPgxMovementRepository(pool *pgxpool.Pool) portsrepo.MovementRepositoryFacade {
	return &PgxMovementRepository{pool: pool}
}

const movementColumns = `movement_id, asset_id, type, moved_at, from_unit_id, to_unit_id,
	previous_custodian, new_custodian, previous_location, new_location,
	reason, reference_doc, new_status, notes,
	created_at, created_by, last_updated_at, last_updated_by`

func scanMovement(row pgx.Row) (*domain.AssetMovement, error) {
	var m domain.AssetMovement
	err := row.Scan(
		&m.MovementID,
		&m.AssetID,
		&m.Type,
		&m.MovedAt,
		&m.FromUnitID,
		&m.ToUnitID,
		&m.PreviousCustodian,
		&m.NewCustodian,
		&m.PreviousLocation,
		&m.NewLocation,
		&m.Reason,
		&m.ReferenceDoc,
		&m.NewStatus,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveMovementWithAssetUpdate persists the movement row and the asset's new
// state in one database transaction.
func (r *PgxMovementRepository) SaveMovementWithAssetUpdate(ctx context.Context, movement domain.AssetMovement, updatedAsset domain.Asset) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore rollback error
	}()

	movementQuery := `
		INSERT INTO asset_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err = tx.Exec(ctx, movementQuery,
		movement.MovementID,
		movement.AssetID,
		movement.Type,
		movement.MovedAt,
		movement.FromUnitID,
		movement.ToUnitID,
		movement.PreviousCustodian,
		movement.NewCustodian,
		movement.PreviousLocation,
		movement.NewLocation,
		movement.Reason,
		movement.ReferenceDoc,
		movement.NewStatus,
		movement.Notes,
		movement.CreatedAt,
		movement.CreatedBy,
		movement.LastUpdatedAt,
		movement.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert movement %s: %w", movement.MovementID, err)
	}

	assetQuery := `
		UPDATE assets SET
			physical_location = $2, unit_id = $3, custodian_name = $4, custodian_title = $5,
			status = $6, last_updated_at = $7, last_updated_by = $8
		WHERE asset_id = $1;
	`
	tag, err := tx.Exec(ctx, assetQuery,
		updatedAsset.AssetID,
		updatedAsset.PhysicalLocation,
		updatedAsset.UnitID,
		updatedAsset.CustodianName,
		updatedAsset.CustodianTitle,
		updatedAsset.Status,
		updatedAsset.LastUpdatedAt,
		updatedAsset.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset %s for movement: %w", updatedAsset.AssetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit movement: %w", err)
	}
	return nil
}

// FindMovementByID retrieves a movement by its unique identifier.
func (r *PgxMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.AssetMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM asset_movements WHERE movement_id = $1;`
	movement, err := scanMovement(r.pool.QueryRow(ctx, query, movementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find movement %s: %w", movementID, err)
	}
	return movement, nil
}

// ListMovements retrieves a filtered, paginated list of movements.
func (r *PgxMovementRepository) ListMovements(ctx context.Context, filter portsrepo.MovementListFilter, limit int, offset int) ([]domain.AssetMovement, error) {
	var conditions []string
	var args []interface{}

	if filter.AssetID != "" {
		args = append(args, filter.AssetID)
		conditions = append(conditions, fmt.Sprintf("asset_id = $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conditions = append(conditions, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("moved_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("moved_at <= $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	args = append(args, limit)
	limitPos := len(args)
	args = append(args, offset)
	offsetPos := len(args)

	query := fmt.Sprintf(`SELECT `+movementColumns+` FROM asset_movements %s ORDER BY moved_at DESC LIMIT $%d OFFSET $%d;`, where, limitPos, offsetPos)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements: %w", err)
	}
	defer rows.Close()

	movements, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AssetMovement, error) {
		m, err := scanMovement(row)
		if err != nil {
			return domain.AssetMovement{}, err
		}
		return *m, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan movements: %w", err)
	}
	return movements, nil
}
