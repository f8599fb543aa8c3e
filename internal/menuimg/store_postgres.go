package menuimg

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

func (repository *PostgresRepository) ListByCategory(context context.Context, categoryID int, params pagination.Params) ([]Image, int, error) {
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`,
		schema.MenuImage.Table, schema.MenuImage.CategoryID)

	var total int
	if err := repository.db.QueryRow(context, countQuery, categoryID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_menu_images")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
		LIMIT $2 OFFSET $3
	`,
		schema.MenuImage.ID, schema.MenuImage.ImageURL, schema.MenuImage.AltText, schema.MenuImage.CategoryID,
		schema.MenuImage.Table, schema.MenuImage.CategoryID, schema.MenuImage.ID,
	)

	rows, err := repository.db.Query(context, query, categoryID, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_menu_images")
	}
	defer rows.Close()

	images := make([]Image, 0)
	for rows.Next() {
		var image Image
		if err := rows.Scan(&image.ID, &image.ImageURL, &image.AltText, &image.CategoryID); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_menu_image")
		}
		images = append(images, image)
	}

	return images, total, rows.Err()
}

func (repository *PostgresRepository) FindByURLs(context context.Context, urls []string) (map[string]Image, error) {
	if len(urls) == 0 {
		return map[string]Image{}, nil
	}

	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = ANY($1)`,
		schema.MenuImage.ID, schema.MenuImage.ImageURL, schema.MenuImage.AltText, schema.MenuImage.CategoryID,
		schema.MenuImage.Table, schema.MenuImage.ImageURL)

	rows, err := repository.db.Query(context, query, urls)
	if err != nil {
		return nil, dberr.Wrap(err, "find_menu_images_by_url")
	}
	defer rows.Close()

	found := make(map[string]Image, len(urls))
	for rows.Next() {
		var image Image
		if err := rows.Scan(&image.ID, &image.ImageURL, &image.AltText, &image.CategoryID); err != nil {
			return nil, dberr.Wrap(err, "scan_menu_image")
		}
		found[image.ImageURL] = image
	}

	return found, rows.Err()
}

// InsertBatch inserts the given rows, skipping URLs that already exist.
// The unique constraint on image_url makes concurrent runs safe.
func (repository *PostgresRepository) InsertBatch(context context.Context, images []Image) (int, error) {
	if len(images) == 0 {
		return 0, nil
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		SELECT * FROM unnest($1::text[], $2::text[], $3::int[])
		ON CONFLICT (%s) DO NOTHING
	`,
		schema.MenuImage.Table,
		schema.MenuImage.ImageURL, schema.MenuImage.AltText, schema.MenuImage.CategoryID,
		schema.MenuImage.ImageURL,
	)

	urls := make([]string, len(images))
	alts := make([]string, len(images))
	categoryIDs := make([]int32, len(images))
	for i, image := range images {
		urls[i] = image.ImageURL
		alts[i] = image.AltText
		categoryIDs[i] = int32(image.CategoryID)
	}

	tag, err := repository.db.Exec(context, query, urls, alts, categoryIDs)
	if err != nil {
		return 0, dberr.Wrap(err, "insert_menu_images")
	}

	return int(tag.RowsAffected()), nil
}

func (repository *PostgresRepository) UpdateCategory(context context.Context, id, categoryID int) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.MenuImage.Table, schema.MenuImage.CategoryID, schema.MenuImage.ID)

	tag, err := repository.db.Exec(context, query, id, categoryID)
	if err != nil {
		return dberr.Wrap(err, "update_menu_image_category")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *PostgresRepository) Create(context context.Context, image *Image) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s, %s
	`,
		schema.MenuImage.Table,
		schema.MenuImage.ImageURL, schema.MenuImage.AltText, schema.MenuImage.CategoryID,
		schema.MenuImage.ID, schema.MenuImage.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		image.ImageURL, image.AltText, image.CategoryID,
	).Scan(&image.ID, &image.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_menu_image")
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int) (*Image, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 RETURNING %s, %s, %s, %s`,
		schema.MenuImage.Table, schema.MenuImage.ID,
		schema.MenuImage.ID, schema.MenuImage.ImageURL, schema.MenuImage.AltText, schema.MenuImage.CategoryID)

	var image Image
	err := repository.db.QueryRow(context, query, id).Scan(
		&image.ID, &image.ImageURL, &image.AltText, &image.CategoryID,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "delete_menu_image")
	}

	return &image, nil
}
