package application

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

var sectionColumns = []string{
	"id",
	"application_id",
	"application_round_id",
	"name",
	"min_duration_seconds",
	"max_duration_seconds",
	"applied_reservations_per_week",
	"position",
}

// Repository репозиторий секций заявок и их подходящих интервалов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetSectionByID получает секцию заявки по ID (без интервалов)
func (r *Repository) GetSectionByID(ctx context.Context, id int64) (*domain.ApplicationSection, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(sectionColumns...).
		From("application_sections").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSectionByID - build select query: %v", ErrBuildQuery, err)
	}

	section, err := scanSection(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSectionByID - scan section: %v", ErrScanRow, err)
	}

	return section, nil
}

// GetSectionsByApplication получает все секции заявки в порядке position.
// Пустой список означает, что заявки нет или у неё нет секций
func (r *Repository) GetSectionsByApplication(ctx context.Context, applicationID int64) ([]*domain.ApplicationSection, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(sectionColumns...).
		From("application_sections").
		Where(squirrel.Eq{"application_id": applicationID}).
		OrderBy("position ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSectionsByApplication - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSectionsByApplication - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sections := make([]*domain.ApplicationSection, 0)
	for rows.Next() {
		section, err := scanSection(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetSectionsByApplication - scan section: %v", ErrScanRow, err)
		}
		sections = append(sections, section)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSectionsByApplication - iterate rows: %v", ErrExecQuery, err)
	}

	return sections, nil
}

// GetSuitableTimeRanges получает интервалы секций, сгруппированные по ID секции.
// Интервалы каждой секции упорядочены по дню и времени начала
func (r *Repository) GetSuitableTimeRanges(ctx context.Context, sectionIDs []int64) (map[int64][]domain.TimeRange, error) {
	result := make(map[int64][]domain.TimeRange, len(sectionIDs))
	if len(sectionIDs) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"application_section_id",
		"day_of_week",
		"begin_time",
		"end_time",
		"priority",
	).
		From("suitable_time_ranges").
		Where(squirrel.Eq{"application_section_id": sectionIDs}).
		OrderBy("application_section_id", "day_of_week", "begin_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSuitableTimeRanges - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSuitableTimeRanges - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			sectionID int64
			tr        domain.TimeRange
			priority  int
		)
		if err := rows.Scan(&sectionID, &tr.Day, &tr.BeginTime, &tr.EndTime, &priority); err != nil {
			return nil, fmt.Errorf("%w: GetSuitableTimeRanges - scan range: %v", ErrScanRow, err)
		}
		tr.Priority = domain.Priority(priority)
		result[sectionID] = append(result[sectionID], tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSuitableTimeRanges - iterate rows: %v", ErrExecQuery, err)
	}

	return result, nil
}

// ReplaceSuitableTimeRanges заменяет все интервалы секции.
// Вызывать внутри транзакции: удаление и вставка должны примениться вместе
func (r *Repository) ReplaceSuitableTimeRanges(ctx context.Context, sectionID int64, ranges []domain.TimeRange) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("suitable_time_ranges").
		Where(squirrel.Eq{"application_section_id": sectionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceSuitableTimeRanges - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceSuitableTimeRanges - execute delete: %v", ErrExecQuery, err)
	}

	if len(ranges) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert("suitable_time_ranges").
		Columns("application_section_id", "day_of_week", "begin_time", "end_time", "priority")
	for _, tr := range ranges {
		insert = insert.Values(sectionID, tr.Day, tr.BeginTime, tr.EndTime, int(tr.Priority))
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceSuitableTimeRanges - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceSuitableTimeRanges - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSection(row rowScanner) (*domain.ApplicationSection, error) {
	var s domain.ApplicationSection
	err := row.Scan(
		&s.ID,
		&s.ApplicationID,
		&s.ApplicationRoundID,
		&s.Name,
		&s.MinDurationSeconds,
		&s.MaxDurationSeconds,
		&s.AppliedReservationsPerWeek,
		&s.Position,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
