package gallery

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dcebotari/vatra/internal/platform/database/schema"
	"github.com/dcebotari/vatra/internal/platform/dberr"
	"github.com/dcebotari/vatra/pkg/pagination"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context, params pagination.Params) ([]Image, int, error) {
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.GalleryImage.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_gallery_images")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`,
		schema.GalleryImage.ID, schema.GalleryImage.ImageURL, schema.GalleryImage.AltText,
		schema.GalleryImage.Table, schema.GalleryImage.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_gallery_images")
	}
	defer rows.Close()

	images := make([]Image, 0)
	for rows.Next() {
		var image Image
		if err := rows.Scan(&image.ID, &image.ImageURL, &image.AltText); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_gallery_image")
		}
		images = append(images, image)
	}

	return images, total, rows.Err()
}

func (repository *PostgresRepository) Create(context context.Context, image *Image) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		RETURNING %s, %s
	`,
		schema.GalleryImage.Table,
		schema.GalleryImage.ImageURL, schema.GalleryImage.AltText,
		schema.GalleryImage.ID, schema.GalleryImage.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, image.ImageURL, image.AltText).
		Scan(&image.ID, &image.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_gallery_image")
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int) (*Image, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 RETURNING %s, %s, %s`,
		schema.GalleryImage.Table, schema.GalleryImage.ID,
		schema.GalleryImage.ID, schema.GalleryImage.ImageURL, schema.GalleryImage.AltText)

	var image Image
	err := repository.db.QueryRow(context, query, id).Scan(&image.ID, &image.ImageURL, &image.AltText)
	if err != nil {
		return nil, dberr.Wrap(err, "delete_gallery_image")
	}

	return &image, nil
}
