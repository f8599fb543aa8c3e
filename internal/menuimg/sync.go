package menuimg

import (
	"context"

	"github.com/dcebotari/vatra/internal/category"
	"github.com/dcebotari/vatra/internal/platform/validate"
	"github.com/dcebotari/vatra/pkg/slug"
)

// Sync reconciles the database with the bucket folders of one menu.
//
// Each category owns the folder {menu}/{slug-of-romanian-name}/. Objects
// without a row are inserted with the file name as alt text; rows whose
// object now lives under a different category's folder are moved there. The
// folder is authoritative for category membership. Rows pointing at objects
// that no longer exist are left alone.
//
// A category whose folder cannot be listed is skipped and logged; database
// write failures abort the run. Running Sync twice in a row yields {0, 0}.
func (service *Service) Sync(context context.Context, menu string) (SyncResult, error) {
	var result SyncResult

	if !category.IsValidMenu(menu) {
		return result, validate.RequiredError("menu", "unknown menu")
	}

	categories, err := service.categories.ListByMenu(context, menu)
	if err != nil {
		return result, err
	}

	// url -> category the folder says it belongs to
	desired := make(map[string]Image)
	var urls []string

	for _, cat := range categories {
		prefix := menu + "/" + slug.From(cat.NameRo)

		objects, err := service.storage.List(context, service.bucket, prefix)
		if err != nil {
			service.logger.Warn("menu folder listing failed, skipping category",
				"menu", menu,
				"category_id", cat.ID,
				"prefix", prefix,
				"error", err,
			)
			continue
		}

		for _, object := range objects {
			if object.IsFolder() {
				continue
			}
			url := service.storage.PublicURL(service.bucket, prefix+"/"+object.Name)
			if _, seen := desired[url]; seen {
				continue
			}
			desired[url] = Image{
				ImageURL:   url,
				AltText:    object.Name,
				CategoryID: cat.ID,
			}
			urls = append(urls, url)
		}
	}

	existing, err := service.repo.FindByURLs(context, urls)
	if err != nil {
		return result, err
	}

	var missing []Image
	for _, url := range urls {
		want := desired[url]

		have, ok := existing[url]
		if !ok {
			missing = append(missing, want)
			continue
		}
		if have.CategoryID != want.CategoryID {
			if err := service.repo.UpdateCategory(context, have.ID, want.CategoryID); err != nil {
				return result, err
			}
			result.Updated++
		}
	}

	inserted, err := service.repo.InsertBatch(context, missing)
	if err != nil {
		return result, err
	}
	result.Inserted = inserted

	service.logger.Info("menu images synchronized",
		"menu", menu,
		"inserted", result.Inserted,
		"updated", result.Updated,
	)
	return result, nil
}
