package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/AMC-BookingService/internal/domain"
	"github.com/m04kA/AMC-BookingService/pkg/dbmetrics"
	"github.com/m04kA/AMC-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий расписания клиники
// Таблица schedule_slots хранит два уровня: строки со slot_date = NULL
// образуют глобальное расписание по умолчанию, а строки с датой переопределяют
// его на конкретный день. Дата с переопределением разрешается только по нему.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetGlobal возвращает глобальное расписание по умолчанию
func (r *Repository) GetGlobal(ctx context.Context) ([]domain.ScheduleSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("slot_time", "available").
		From("schedule_slots").
		Where(squirrel.Eq{"slot_date": nil}).
		OrderBy("slot_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetGlobal - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetGlobal - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// GetOverride возвращает расписание-переопределение для даты
// Если для даты нет собственных строк, возвращает ErrOverrideNotFound
func (r *Repository) GetOverride(ctx context.Context, date time.Time) ([]domain.ScheduleSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("slot_time", "available").
		From("schedule_slots").
		Where(squirrel.Eq{"slot_date": date}).
		OrderBy("slot_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOverride - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverride - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots, err := scanSlots(rows)
	if err != nil {
		return nil, err
	}

	if len(slots) == 0 {
		return nil, ErrOverrideNotFound
	}

	return slots, nil
}

// ReplaceGlobal заменяет глобальное расписание целиком
func (r *Repository) ReplaceGlobal(ctx context.Context, slots []domain.ScheduleSlot) error {
	return r.replace(ctx, nil, slots)
}

// ReplaceOverride заменяет переопределение даты целиком (последняя запись побеждает)
func (r *Repository) ReplaceOverride(ctx context.Context, date time.Time, slots []domain.ScheduleSlot) error {
	return r.replace(ctx, &date, slots)
}

// replace удаляет строки области и вставляет новый список одним пакетом
func (r *Repository) replace(ctx context.Context, date *time.Time, slots []domain.ScheduleSlot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteBuilder := psqlbuilder.Delete("schedule_slots")
	if date == nil {
		deleteBuilder = deleteBuilder.Where(squirrel.Eq{"slot_date": nil})
	} else {
		deleteBuilder = deleteBuilder.Where(squirrel.Eq{"slot_date": *date})
	}

	query, args, err := deleteBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: replace - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replace - execute delete: %v", ErrExecQuery, err)
	}

	if len(slots) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("schedule_slots").
		Columns("slot_date", "slot_time", "available")

	for _, slot := range slots {
		insertBuilder = insertBuilder.Values(date, slot.Time, slot.Available)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: replace - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replace - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// SetGlobalSlotAvailability переключает флаг одного слота глобального расписания
// Изменение по построению распространяется на все даты без переопределения
func (r *Repository) SetGlobalSlotAvailability(ctx context.Context, slotTime string, available bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("schedule_slots").
		Set("available", available).
		Where(squirrel.Eq{"slot_date": nil}).
		Where(squirrel.Eq{"slot_time": slotTime}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetGlobalSlotAvailability - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetGlobalSlotAvailability - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetGlobalSlotAvailability - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// DeleteOverride удаляет переопределение даты, возвращая её к глобальному расписанию
func (r *Repository) DeleteOverride(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedule_slots").
		Where(squirrel.Eq{"slot_date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteOverride - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteOverride - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteOverride - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOverrideNotFound
	}

	return nil
}

// scanSlots сканирует строки расписания
func scanSlots(rows *sql.Rows) ([]domain.ScheduleSlot, error) {
	slots := make([]domain.ScheduleSlot, 0)

	for rows.Next() {
		var slot domain.ScheduleSlot
		if err := rows.Scan(&slot.Time, &slot.Available); err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
