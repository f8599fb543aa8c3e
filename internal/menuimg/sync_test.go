package menuimg_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcebotari/vatra/internal/category"
	"github.com/dcebotari/vatra/internal/menuimg"
	"github.com/dcebotari/vatra/internal/platform/objstore"
	"github.com/dcebotari/vatra/pkg/pagination"
	"github.com/dcebotari/vatra/pkg/pointer"
)

// fakeStorage serves canned folder listings keyed by prefix.
type fakeStorage struct {
	listings map[string][]objstore.Object
	listErrs map[string]error
	uploaded map[string][]byte
	removed  []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		listings: map[string][]objstore.Object{},
		listErrs: map[string]error{},
		uploaded: map[string][]byte{},
	}
}

func (storage *fakeStorage) List(_ context.Context, _, prefix string) ([]objstore.Object, error) {
	if err := storage.listErrs[prefix]; err != nil {
		return nil, err
	}
	return storage.listings[prefix], nil
}

func (storage *fakeStorage) PublicURL(bucket, key string) string {
	return "https://store.example/storage/v1/object/public/" + bucket + "/" + key
}

func (storage *fakeStorage) Upload(_ context.Context, _, key, _ string, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	storage.uploaded[key] = data
	return nil
}

func (storage *fakeStorage) Remove(_ context.Context, _ string, keys []string) error {
	storage.removed = append(storage.removed, keys...)
	return nil
}

// fakeImageRepo keeps rows in memory keyed by URL.
type fakeImageRepo struct {
	rows   map[string]*menuimg.Image
	nextID int
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{rows: map[string]*menuimg.Image{}}
}

func (repo *fakeImageRepo) ListByCategory(_ context.Context, categoryID int, _ pagination.Params) ([]menuimg.Image, int, error) {
	var out []menuimg.Image
	for _, row := range repo.rows {
		if row.CategoryID == categoryID {
			out = append(out, *row)
		}
	}
	return out, len(out), nil
}

func (repo *fakeImageRepo) FindByURLs(_ context.Context, urls []string) (map[string]menuimg.Image, error) {
	found := map[string]menuimg.Image{}
	for _, url := range urls {
		if row, ok := repo.rows[url]; ok {
			found[url] = *row
		}
	}
	return found, nil
}

func (repo *fakeImageRepo) InsertBatch(_ context.Context, images []menuimg.Image) (int, error) {
	inserted := 0
	for _, image := range images {
		if _, exists := repo.rows[image.ImageURL]; exists {
			continue
		}
		repo.nextID++
		image.ID = repo.nextID
		repo.rows[image.ImageURL] = &image
		inserted++
	}
	return inserted, nil
}

func (repo *fakeImageRepo) UpdateCategory(_ context.Context, id, categoryID int) error {
	for _, row := range repo.rows {
		if row.ID == id {
			row.CategoryID = categoryID
			return nil
		}
	}
	return errors.New("no such row")
}

func (repo *fakeImageRepo) Create(_ context.Context, image *menuimg.Image) error {
	repo.nextID++
	image.ID = repo.nextID
	repo.rows[image.ImageURL] = image
	return nil
}

func (repo *fakeImageRepo) Delete(_ context.Context, id int) (*menuimg.Image, error) {
	for url, row := range repo.rows {
		if row.ID == id {
			delete(repo.rows, url)
			return row, nil
		}
	}
	return nil, errors.New("no such row")
}

type fakeCategories struct {
	categories []category.Category
}

func (directory *fakeCategories) ListByMenu(_ context.Context, menu string) ([]category.Category, error) {
	var out []category.Category
	for _, c := range directory.categories {
		if c.Menu == menu {
			out = append(out, c)
		}
	}
	return out, nil
}

func (directory *fakeCategories) Get(_ context.Context, id int) (*category.Category, error) {
	for _, c := range directory.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, errors.New("no such category")
}

func object(name string) objstore.Object {
	return objstore.Object{Name: name, ID: pointer.To("obj-" + name)}
}

func folder(name string) objstore.Object {
	return objstore.Object{Name: name, ID: nil}
}

func newSyncService(repo *fakeImageRepo, storage *fakeStorage, categories *fakeCategories) *menuimg.Service {
	return menuimg.NewService(repo, categories, storage, "menu", slog.Default())
}

/*
TestSync_InsertsMissingRows verifies that objects without a database row are
inserted with the file name as alt text, and that a second run changes nothing.
*/
func TestSync_InsertsMissingRows(t *testing.T) {
	storage := newFakeStorage()
	storage.listings["taverna/ciorbe-si-supe"] = []objstore.Object{
		object("1.webp"),
		object("2.webp"),
		folder("thumbs"),
	}
	storage.listings["taverna/garnituri"] = []objstore.Object{
		object("cartofi.webp"),
	}

	categories := &fakeCategories{categories: []category.Category{
		{ID: 1, NameRo: "Ciorbe și supe", Menu: category.MenuTaverna},
		{ID: 2, NameRo: "Garnituri", Menu: category.MenuTaverna},
	}}
	repo := newFakeImageRepo()
	service := newSyncService(repo, storage, categories)

	result, err := service.Sync(context.Background(), category.MenuTaverna)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Inserted)
	assert.Equal(t, 0, result.Updated)

	url := storage.PublicURL("menu", "taverna/ciorbe-si-supe/1.webp")
	row, ok := repo.rows[url]
	require.True(t, ok)
	assert.Equal(t, "1.webp", row.AltText)
	assert.Equal(t, 1, row.CategoryID)

	// Idempotence: a second run is a no-op.
	result, err = service.Sync(context.Background(), category.MenuTaverna)
	require.NoError(t, err)
	assert.Equal(t, menuimg.SyncResult{}, result)
}

/*
TestSync_FolderIsAuthoritative verifies that a row whose object lives under
another category's folder is moved to that category.
*/
func TestSync_FolderIsAuthoritative(t *testing.T) {
	storage := newFakeStorage()
	storage.listings["taverna/garnituri"] = []objstore.Object{
		object("cartofi.webp"),
	}

	categories := &fakeCategories{categories: []category.Category{
		{ID: 1, NameRo: "Ciorbe și supe", Menu: category.MenuTaverna},
		{ID: 2, NameRo: "Garnituri", Menu: category.MenuTaverna},
	}}

	repo := newFakeImageRepo()
	url := storage.PublicURL("menu", "taverna/garnituri/cartofi.webp")
	repo.rows[url] = &menuimg.Image{ID: 7, ImageURL: url, AltText: "cartofi.webp", CategoryID: 1}

	result, err := newSyncService(repo, storage, categories).Sync(context.Background(), category.MenuTaverna)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Inserted)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 2, repo.rows[url].CategoryID)
}

/*
TestSync_SkipsUnlistableFolders verifies that one broken folder does not
poison the run: the remaining categories still synchronize.
*/
func TestSync_SkipsUnlistableFolders(t *testing.T) {
	storage := newFakeStorage()
	storage.listErrs["bar/bere"] = errors.New("listing exploded")
	storage.listings["bar/fresh-uri"] = []objstore.Object{
		object("portocale.webp"),
	}

	categories := &fakeCategories{categories: []category.Category{
		{ID: 1, NameRo: "Bere", Menu: category.MenuBar},
		{ID: 2, NameRo: "Fresh-uri", Menu: category.MenuBar},
	}}

	result, err := newSyncService(newFakeImageRepo(), storage, categories).Sync(context.Background(), category.MenuBar)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)
}

/*
TestSync_UnknownMenu verifies the menu tag is validated up front.
*/
func TestSync_UnknownMenu(t *testing.T) {
	service := newSyncService(newFakeImageRepo(), newFakeStorage(), &fakeCategories{})

	_, err := service.Sync(context.Background(), "breakfast")
	require.Error(t, err)
}

/*
TestSync_RowsForDeletedObjectsSurvive verifies that database rows pointing
at objects no longer in the bucket are left untouched.
*/
func TestSync_RowsForDeletedObjectsSurvive(t *testing.T) {
	storage := newFakeStorage()
	storage.listings["sushi/rolls"] = []objstore.Object{}

	categories := &fakeCategories{categories: []category.Category{
		{ID: 1, NameRo: "Rolls", Menu: category.MenuSushi},
	}}

	repo := newFakeImageRepo()
	stale := storage.PublicURL("menu", "sushi/rolls/gone.webp")
	repo.rows[stale] = &menuimg.Image{ID: 3, ImageURL: stale, CategoryID: 1}

	result, err := newSyncService(repo, storage, categories).Sync(context.Background(), category.MenuSushi)
	require.NoError(t, err)
	assert.Equal(t, menuimg.SyncResult{}, result)
	assert.Contains(t, repo.rows, stale)
}
