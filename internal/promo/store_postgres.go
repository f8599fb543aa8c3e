package promo

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

func (repository *PostgresRepository) List(context context.Context) ([]Item, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s DESC`,
		schema.PromoItem.ID, schema.PromoItem.Title, schema.PromoItem.Price, schema.PromoItem.ImageURL,
		schema.PromoItem.Table, schema.PromoItem.CreatedAt)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_promo_items")
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.Title, &item.Price, &item.ImageURL); err != nil {
			return nil, dberr.Wrap(err, "scan_promo_item")
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (repository *PostgresRepository) Create(context context.Context, item *Item) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s, %s
	`,
		schema.PromoItem.Table,
		schema.PromoItem.Title, schema.PromoItem.Price, schema.PromoItem.ImageURL,
		schema.PromoItem.ID, schema.PromoItem.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, item.Title, item.Price, item.ImageURL).
		Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_promo_item")
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int) (*Item, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 RETURNING %s, %s, %s, %s`,
		schema.PromoItem.Table, schema.PromoItem.ID,
		schema.PromoItem.ID, schema.PromoItem.Title, schema.PromoItem.Price, schema.PromoItem.ImageURL)

	var item Item
	err := repository.db.QueryRow(context, query, id).Scan(&item.ID, &item.Title, &item.Price, &item.ImageURL)
	if err != nil {
		return nil, dberr.Wrap(err, "delete_promo_item")
	}

	return &item, nil
}
