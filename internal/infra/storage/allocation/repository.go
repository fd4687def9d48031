package allocation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
	"github.com/m04kA/SMC-ApplicationRounds/pkg/dbmetrics"
	"github.com/m04kA/SMC-ApplicationRounds/pkg/psqlbuilder"
)

// Repository репозиторий раундов заявок и результатов распределения
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория распределения
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetRound получает раунд заявок по ID
func (r *Repository) GetRound(ctx context.Context, id int64) (*domain.ApplicationRound, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"reservation_period_begin",
		"reservation_period_end",
		"total_hour_capacity",
		"total_reservation_duration_seconds",
	).
		From("application_rounds").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRound - build select query: %v", ErrBuildQuery, err)
	}

	var round domain.ApplicationRound
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&round.ID,
		&round.Name,
		&round.ReservationPeriodBegin,
		&round.ReservationPeriodEnd,
		&round.TotalHourCapacity,
		&round.TotalReservationDuration,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoundNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRound - scan round: %v", ErrScanRow, err)
	}

	return &round, nil
}

// GetResultsByRound получает результаты распределения раунда.
// Если unitID указан, только по этому помещению
func (r *Repository) GetResultsByRound(ctx context.Context, roundID int64, unitID *int64) ([]domain.AllocationResult, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(
		"id",
		"application_round_id",
		"reservation_unit_id",
		"application_section_id",
		"reservations_total",
		"duration_total_seconds",
	).
		From("allocation_results").
		Where(squirrel.Eq{"application_round_id": roundID}).
		OrderBy("id ASC")

	if unitID != nil {
		builder = builder.Where(squirrel.Eq{"reservation_unit_id": *unitID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetResultsByRound - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetResultsByRound - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	results := make([]domain.AllocationResult, 0)
	for rows.Next() {
		var res domain.AllocationResult
		err := rows.Scan(
			&res.ID,
			&res.ApplicationRoundID,
			&res.ReservationUnitID,
			&res.ApplicationSectionID,
			&res.ReservationsTotal,
			&res.DurationTotal,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetResultsByRound - scan result: %v", ErrScanRow, err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetResultsByRound - iterate rows: %v", ErrExecQuery, err)
	}

	return results, nil
}
