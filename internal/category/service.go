package category

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/dcebotari/vatra/internal/platform/validate"
	"github.com/dcebotari/vatra/internal/routing"
	"github.com/dcebotari/vatra/pkg/slug"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListSections returns every category as a localized section, ordered by
// the localized name.
func (service *Service) ListSections(context context.Context, locale routing.Locale) ([]Section, error) {
	categories, err := service.repo.ListAll(context)
	if err != nil {
		return nil, err
	}

	sections := make([]Section, 0, len(categories))
	for _, category := range categories {
		folder := slug.From(category.NameRo)
		sections = append(sections, Section{
			ID:   category.ID,
			Name: category.LocalizedName(locale),
			Slug: folder,
			Icon: NormalizeIcon(category.Icon),
			Menu: category.Menu,
			Href: "/" + category.Menu + "#" + folder,
		})
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Name < sections[j].Name
	})

	return sections, nil
}

// ListByMenu returns the categories tagged with menu, for the sync and the
// admin dashboard.
func (service *Service) ListByMenu(context context.Context, menu string) ([]Category, error) {
	if !IsValidMenu(menu) {
		return nil, validate.RequiredError("menu", "menu must be one of: "+strings.Join(Menus, ", "))
	}
	return service.repo.ListByMenu(context, menu)
}

func (service *Service) ListAll(context context.Context) ([]Category, error) {
	return service.repo.ListAll(context)
}

func (service *Service) Get(context context.Context, id int) (*Category, error) {
	return service.repo.GetByID(context, id)
}

type CreateInput struct {
	Name   string `json:"name"`
	NameRo string `json:"name_ro"`
	NameRu string `json:"name_ru"`
	NameEn string `json:"name_en"`
	Icon   string `json:"icon"`
	Menu   string `json:"menu"`
}

func (service *Service) Create(context context.Context, input CreateInput) (*Category, error) {
	validator := &validate.Validator{}
	validator.
		Required("name_ro", input.NameRo).
		MaxLen("name_ro", input.NameRo, 120).
		MaxLen("name_ru", input.NameRu, 120).
		MaxLen("name_en", input.NameEn, 120).
		OneOf("menu", input.Menu, Menus...).
		Custom("icon", input.Icon != "" && !IsValidIcon(input.Icon), "unknown icon symbol")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	category := &Category{
		Name:   strings.TrimSpace(input.Name),
		NameRo: strings.TrimSpace(input.NameRo),
		NameRu: strings.TrimSpace(input.NameRu),
		NameEn: strings.TrimSpace(input.NameEn),
		Icon:   NormalizeIcon(input.Icon),
		Menu:   input.Menu,
	}
	if category.Name == "" {
		category.Name = category.NameRo
	}

	if err := service.repo.Create(context, category); err != nil {
		return nil, err
	}

	service.logger.Info("category created",
		"id", category.ID,
		"menu", category.Menu,
		"name_ro", category.NameRo,
	)
	return category, nil
}

// Delete removes a category. Its menu images go with it via the foreign key;
// stored objects stay in the bucket and the next sync re-adopts them if the
// folder still exists.
func (service *Service) Delete(context context.Context, id int) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("category deleted", "id", id)
	return nil
}
