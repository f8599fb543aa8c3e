package category_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcebotari/vatra/internal/category"
	"github.com/dcebotari/vatra/internal/platform/apperr"
	"github.com/dcebotari/vatra/internal/routing"
)

type fakeRepo struct {
	categories []category.Category
	nextID     int
	deleted    []int
}

func (repo *fakeRepo) ListAll(_ context.Context) ([]category.Category, error) {
	return repo.categories, nil
}

func (repo *fakeRepo) ListByMenu(_ context.Context, menu string) ([]category.Category, error) {
	var out []category.Category
	for _, c := range repo.categories {
		if c.Menu == menu {
			out = append(out, c)
		}
	}
	return out, nil
}

func (repo *fakeRepo) GetByID(_ context.Context, id int) (*category.Category, error) {
	for _, c := range repo.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, apperr.NotFound("Category")
}

func (repo *fakeRepo) Create(_ context.Context, c *category.Category) error {
	repo.nextID++
	c.ID = repo.nextID
	repo.categories = append(repo.categories, *c)
	return nil
}

func (repo *fakeRepo) Delete(_ context.Context, id int) error {
	repo.deleted = append(repo.deleted, id)
	return nil
}

func newService(repo *fakeRepo) *category.Service {
	return category.NewService(repo, slog.Default())
}

/*
TestListSections verifies localization, slugging, and icon normalization of
the public category listing.
*/
func TestListSections(t *testing.T) {
	repo := &fakeRepo{categories: []category.Category{
		{ID: 1, NameRo: "Ciorbe și supe", NameRu: "Супы", NameEn: "Soups", Icon: "soup", Menu: category.MenuTaverna},
		{ID: 2, NameRo: "Bere", NameEn: "Beer", Icon: "legacy-symbol", Menu: category.MenuBar},
	}}
	service := newService(repo)

	sections, err := service.ListSections(context.Background(), routing.LocaleEn)
	require.NoError(t, err)
	require.Len(t, sections, 2)

	// Ordered by localized name: Beer before Soups.
	assert.Equal(t, "Beer", sections[0].Name)
	assert.Equal(t, "bere", sections[0].Slug)
	assert.Equal(t, "/bar#bere", sections[0].Href)
	assert.Equal(t, category.DefaultIcon, sections[0].Icon, "unknown icons normalize to the fallback")

	assert.Equal(t, "Soups", sections[1].Name)
	assert.Equal(t, "ciorbe-si-supe", sections[1].Slug)
	assert.Equal(t, "/taverna#ciorbe-si-supe", sections[1].Href)
	assert.Equal(t, "soup", sections[1].Icon)
}

/*
TestListSections_LocaleFallback verifies that rows without a translation
fall back to the Romanian name.
*/
func TestListSections_LocaleFallback(t *testing.T) {
	repo := &fakeRepo{categories: []category.Category{
		{ID: 1, NameRo: "Garnituri", Icon: "utensils", Menu: category.MenuTaverna},
	}}

	sections, err := newService(repo).ListSections(context.Background(), routing.LocaleRu)
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "Garnituri", sections[0].Name)
}

/*
TestCreate verifies menu-tag validation and defaulting on create.
*/
func TestCreate(t *testing.T) {
	repo := &fakeRepo{}
	service := newService(repo)

	created, err := service.Create(context.Background(), category.CreateInput{
		NameRo: "Fresh-uri",
		Menu:   category.MenuBar,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Fresh-uri", created.Name, "base name defaults to the Romanian name")
	assert.Equal(t, category.DefaultIcon, created.Icon)

	_, err = service.Create(context.Background(), category.CreateInput{
		NameRo: "Pizza",
		Menu:   "breakfast",
	})
	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
}

func TestCreate_RejectsUnknownIcon(t *testing.T) {
	_, err := newService(&fakeRepo{}).Create(context.Background(), category.CreateInput{
		NameRo: "Deserturi",
		Icon:   "not-a-symbol",
		Menu:   category.MenuTaverna,
	})
	require.Error(t, err)
}

func TestListByMenu_RejectsUnknownMenu(t *testing.T) {
	_, err := newService(&fakeRepo{}).ListByMenu(context.Background(), "brunch")
	require.Error(t, err)
}
