package category

import "context"

type Repository interface {
	ListAll(context context.Context) ([]Category, error)
	ListByMenu(context context.Context, menu string) ([]Category, error)
	GetByID(context context.Context, id int) (*Category, error)
	Create(context context.Context, category *Category) error
	Delete(context context.Context, id int) error
}
