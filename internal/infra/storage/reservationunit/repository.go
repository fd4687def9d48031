package reservationunit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
	"github.com/m04kA/SMC-ApplicationRounds/pkg/dbmetrics"
	"github.com/m04kA/SMC-ApplicationRounds/pkg/psqlbuilder"
)

// Repository репозиторий помещений и часов их работы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория помещений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает помещение по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ReservationUnit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"buffer_before_seconds",
		"buffer_after_seconds",
	).
		From("reservation_units").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		unit                      domain.ReservationUnit
		bufferBefore, bufferAfter int64
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&unit.ID,
		&unit.Name,
		&bufferBefore,
		&bufferAfter,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationUnitNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation unit: %v", ErrScanRow, err)
	}

	unit.BufferBefore = time.Duration(bufferBefore) * time.Second
	unit.BufferAfter = time.Duration(bufferAfter) * time.Second

	return &unit, nil
}

// GetOpeningHours получает часы работы помещения по дням недели.
// Для несуществующего помещения возвращает ErrReservationUnitNotFound
func (r *Repository) GetOpeningHours(ctx context.Context, unitID int64) (*domain.OpeningHours, error) {
	if _, err := r.GetByID(ctx, unitID); err != nil {
		return nil, err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"day_of_week",
		"begin_time",
		"end_time",
	).
		From("reservation_unit_opening_hours").
		Where(squirrel.Eq{"reservation_unit_id": unitID}).
		OrderBy("day_of_week", "begin_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOpeningHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOpeningHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var hours domain.OpeningHours
	for rows.Next() {
		var (
			day    int
			period domain.OpenPeriod
		)
		if err := rows.Scan(&day, &period.Begin, &period.End); err != nil {
			return nil, fmt.Errorf("%w: GetOpeningHours - scan period: %v", ErrScanRow, err)
		}
		// строки с некорректным днём игнорируем
		if day < 0 || day >= domain.DaysInWeek {
			continue
		}
		hours[day] = append(hours[day], period)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOpeningHours - iterate rows: %v", ErrExecQuery, err)
	}

	return &hours, nil
}
