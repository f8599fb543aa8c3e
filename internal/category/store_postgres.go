package category

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dcebotari/vatra/internal/platform/database/schema"
	"github.com/dcebotari/vatra/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListAll(context context.Context) ([]Category, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.Category.ID, schema.Category.Name, schema.Category.NameRo, schema.Category.NameRu,
		schema.Category.NameEn, schema.Category.Icon, schema.Category.Menu,
		schema.Category.Table, schema.Category.NameRo)

	return repository.list(context, query)
}

func (repository *PostgresRepository) ListByMenu(context context.Context, menu string) ([]Category, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.Category.ID, schema.Category.Name, schema.Category.NameRo, schema.Category.NameRu,
		schema.Category.NameEn, schema.Category.Icon, schema.Category.Menu,
		schema.Category.Table, schema.Category.Menu, schema.Category.NameRo)

	return repository.list(context, query, menu)
}

func (repository *PostgresRepository) list(context context.Context, query string, args ...any) ([]Category, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	categories := make([]Category, 0)
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.NameRo, &c.NameRu, &c.NameEn, &c.Icon, &c.Menu); err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (repository *PostgresRepository) GetByID(context context.Context, id int) (*Category, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.Category.ID, schema.Category.Name, schema.Category.NameRo, schema.Category.NameRu,
		schema.Category.NameEn, schema.Category.Icon, schema.Category.Menu,
		schema.Category.Table, schema.Category.ID)

	var c Category
	err := repository.db.QueryRow(context, query, id).Scan(
		&c.ID, &c.Name, &c.NameRo, &c.NameRu, &c.NameEn, &c.Icon, &c.Menu,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_category")
	}

	return &c, nil
}

func (repository *PostgresRepository) Create(context context.Context, category *Category) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s, %s
	`,
		schema.Category.Table,
		schema.Category.Name, schema.Category.NameRo, schema.Category.NameRu,
		schema.Category.NameEn, schema.Category.Icon, schema.Category.Menu,
		schema.Category.ID, schema.Category.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		category.Name, category.NameRo, category.NameRu,
		category.NameEn, category.Icon, category.Menu,
	).Scan(&category.ID, &category.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_category")
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Category.Table, schema.Category.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_category")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
