package procedure

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/AMC-BookingService/internal/domain"
	"github.com/m04kA/AMC-BookingService/pkg/dbmetrics"
	"github.com/m04kA/AMC-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий каталога процедур
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория процедур
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает процедуру в каталоге
func (r *Repository) Create(ctx context.Context, proc *domain.Procedure) (*domain.Procedure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("procedures").
		Columns("name", "description", "price_label", "category", "image_urls", "featured").
		Values(proc.Name, proc.Description, proc.PriceLabel, proc.Category, pq.Array(proc.ImageURLs), proc.Featured).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&proc.ID, &createdAt, &updatedAt)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	proc.CreatedAt = createdAt.Time
	proc.UpdatedAt = updatedAt.Time

	return proc, nil
}

// GetByID получает процедуру по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Procedure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectProcedures().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	proc, err := scanProcedure(executor.QueryRowContext(ctx, query, args...).Scan)
	if err == sql.ErrNoRows {
		return nil, ErrProcedureNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan procedure: %v", ErrScanRow, err)
	}

	return proc, nil
}

// GetByName получает процедуру по названию
// Используется мастером бронирования для подстановки цены
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Procedure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectProcedures().
		Where(squirrel.Eq{"name": name}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - build select query: %v", ErrBuildQuery, err)
	}

	proc, err := scanProcedure(executor.QueryRowContext(ctx, query, args...).Scan)
	if err == sql.ErrNoRows {
		return nil, ErrProcedureNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - scan procedure: %v", ErrScanRow, err)
	}

	return proc, nil
}

// List возвращает каталог процедур
// Опционально фильтрует по категории и признаку featured
func (r *Repository) List(ctx context.Context, category *domain.ProcedureCategory, featuredOnly bool) ([]*domain.Procedure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectProcedures().OrderBy("category ASC, name ASC")

	if category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *category})
	}
	if featuredOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"featured": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	procedures := make([]*domain.Procedure, 0)

	for rows.Next() {
		proc, err := scanProcedure(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		procedures = append(procedures, proc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return procedures, nil
}

// Update обновляет процедуру целиком
func (r *Repository) Update(ctx context.Context, id int64, proc *domain.Procedure) (*domain.Procedure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("procedures").
		Set("name", proc.Name).
		Set("description", proc.Description).
		Set("price_label", proc.PriceLabel).
		Set("category", proc.Category).
		Set("image_urls", pq.Array(proc.ImageURLs)).
		Set("featured", proc.Featured).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrProcedureNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	proc.ID = id
	proc.CreatedAt = createdAt.Time
	proc.UpdatedAt = updatedAt.Time

	return proc, nil
}

// Delete удаляет процедуру из каталога
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("procedures").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProcedureNotFound
	}

	return nil
}

func selectProcedures() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"name",
		"description",
		"price_label",
		"category",
		"image_urls",
		"featured",
		"created_at",
		"updated_at",
	).From("procedures")
}

func scanProcedure(scan func(dest ...interface{}) error) (*domain.Procedure, error) {
	var proc domain.Procedure
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&proc.ID,
		&proc.Name,
		&proc.Description,
		&proc.PriceLabel,
		&proc.Category,
		pq.Array(&proc.ImageURLs),
		&proc.Featured,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	proc.CreatedAt = createdAt.Time
	proc.UpdatedAt = updatedAt.Time

	return &proc, nil
}
