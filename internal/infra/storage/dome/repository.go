package dome

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/m04kA/SMC-DomesBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-DomesBooking/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий инвентаря домов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория домов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CountActive возвращает количество активных домов
func (r *Repository) CountActive(ctx context.Context) (int, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("domes").
		Where(squirrel.Eq{"active": true}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActive - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := sqlx.GetContext(ctx, r.db, &count, query, args...); err != nil {
		return 0, fmt.Errorf("%w: CountActive - execute query: %v", ErrExecQuery, err)
	}

	return count, nil
}
