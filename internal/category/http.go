package category

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dcebotari/vatra/internal/platform/apperr"
	requestutil "github.com/dcebotari/vatra/internal/platform/request"
	"github.com/dcebotari/vatra/internal/platform/respond"
	"github.com/dcebotari/vatra/internal/routing"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Get("/", handler.listSections)
}

func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/", handler.listCategories)
	router.Post("/", handler.createCategory)
	router.Delete("/{id}", handler.deleteCategory)
}

func (handler *Handler) listSections(writer http.ResponseWriter, request *http.Request) {
	locale := routing.ResolveLocale(request.URL.Query().Get("locale"), request.Header.Get("Accept-Language"))

	sections, err := handler.service.ListSections(request.Context(), locale)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sections)
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	menu := request.URL.Query().Get("menu")

	var (
		categories []Category
		err        error
	)
	if menu == "" {
		categories, err = handler.service.ListAll(request.Context())
	} else {
		categories, err = handler.service.ListByMenu(request.Context(), menu)
	}
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

func (handler *Handler) createCategory(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, category)
}

func (handler *Handler) deleteCategory(writer http.ResponseWriter, request *http.Request) {
	id, err := strconv.Atoi(requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("id must be an integer"))
		return
	}

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
