package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
	"github.com/m04kA/SMC-ApplicationRounds/pkg/dbmetrics"
	"github.com/m04kA/SMC-ApplicationRounds/pkg/psqlbuilder"
)

// Repository репозиторий существующих бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUnitInPeriod получает активные бронирования помещения, пересекающиеся с [from, to).
// Отменённые и отклонённые бронирования не возвращаются
func (r *Repository) GetByUnitInPeriod(ctx context.Context, unitID int64, from, to time.Time) ([]domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	inactive := make([]string, 0, len(domain.InactiveReservationStates))
	for _, s := range domain.InactiveReservationStates {
		inactive = append(inactive, string(s))
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"reservation_unit_id",
		"begin",
		`"end"`,
		"buffer_before_seconds",
		"buffer_after_seconds",
		"type",
		"state",
		"series_id",
	).
		From("reservations").
		Where(squirrel.Eq{"reservation_unit_id": unitID}).
		Where(squirrel.Lt{"begin": to}).
		Where(squirrel.Gt{`"end"`: from}).
		Where(squirrel.Expr("state <> ALL(?)", pq.Array(inactive))).
		OrderBy("begin ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUnitInPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUnitInPeriod - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0)
	for rows.Next() {
		var (
			res                       domain.Reservation
			bufferBefore, bufferAfter int64
			seriesID                  sql.NullInt64
		)
		err := rows.Scan(
			&res.ID,
			&res.ReservationUnitID,
			&res.Begin,
			&res.End,
			&bufferBefore,
			&bufferAfter,
			&res.Type,
			&res.State,
			&seriesID,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUnitInPeriod - scan reservation: %v", ErrScanRow, err)
		}

		res.BufferBefore = time.Duration(bufferBefore) * time.Second
		res.BufferAfter = time.Duration(bufferAfter) * time.Second
		if seriesID.Valid {
			res.SeriesID = &seriesID.Int64
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUnitInPeriod - iterate rows: %v", ErrExecQuery, err)
	}

	return reservations, nil
}
