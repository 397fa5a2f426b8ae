package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"

	"github.com/sukseskontraktor/rental-assistant/internal/domain"
	"github.com/sukseskontraktor/rental-assistant/internal/telemetry"
)

var equipmentFields = []string{
	"id",
	"name",
	"price",
	"image_url",
	"description",
	"category",
	"stock",
	"available_stock",
	"manufacturer",
	"model_number",
	"warranty_months",
	"weight",
	"dimensions",
	"created_at",
	"updated_at",
}

// EquipmentRepository is a PostgreSQL implementation of
// domain.EquipmentRepository. The table is owned by the commerce backend;
// this repository only reads it.
type EquipmentRepository struct {
	sb squirrel.StatementBuilderType
}

// NewEquipmentRepository creates a new instance of EquipmentRepository.
func NewEquipmentRepository(br squirrel.BaseRunner) EquipmentRepository {
	return EquipmentRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// SearchByName returns equipment whose name contains the query,
// case-insensitively, capped at limit.
func (r EquipmentRepository) SearchByName(ctx context.Context, query string, limit int) ([]domain.Equipment, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := r.sb.
		Select(equipmentFields...).
		From("equipment").
		Where(squirrel.ILike{"name": fmt.Sprintf("%%%s%%", query)}).
		OrderBy("name ASC").
		Limit(uint64(limit)).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	return scanEquipmentRows(rows)
}

// ListAll returns up to limit equipment rows ordered by name. A non-positive
// limit returns the full set.
func (r EquipmentRepository) ListAll(ctx context.Context, limit int) ([]domain.Equipment, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	q := r.sb.
		Select(equipmentFields...).
		From("equipment").
		OrderBy("name ASC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	rows, err := q.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	return scanEquipmentRows(rows)
}

// GetByID returns the equipment with the given id and whether it exists.
func (r EquipmentRepository) GetByID(ctx context.Context, id int64) (domain.Equipment, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var e domain.Equipment
	err := r.sb.
		Select(equipmentFields...).
		From("equipment").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		QueryRowContext(spanCtx).
		Scan(equipmentScanTargets(&e)...)
	if errors.Is(err, sql.ErrNoRows) {
		telemetry.RecordErrorAndStatus(span, nil)
		return domain.Equipment{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Equipment{}, false, err
	}
	return e, true, nil
}

func scanEquipmentRows(rows *sql.Rows) ([]domain.Equipment, error) {
	var equipments []domain.Equipment
	for rows.Next() {
		var e domain.Equipment
		if err := rows.Scan(equipmentScanTargets(&e)...); err != nil {
			return nil, err
		}
		equipments = append(equipments, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return equipments, nil
}

func equipmentScanTargets(e *domain.Equipment) []any {
	return []any{
		&e.ID,
		&e.Name,
		&e.Price,
		&e.ImageURL,
		&e.Description,
		&e.Category,
		&e.Stock,
		&e.AvailableStock,
		&e.Manufacturer,
		&e.ModelNumber,
		&e.WarrantyMonths,
		&e.Weight,
		&e.Dimensions,
		&e.CreatedAt,
		&e.UpdatedAt,
	}
}

// InitEquipmentRepository is a Symbiont initializer for EquipmentRepository.
type InitEquipmentRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the EquipmentRepository in the dependency container.
func (i InitEquipmentRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.EquipmentRepository](NewEquipmentRepository(i.DB))
	return ctx, nil
}
