package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	CreateCategory(ctx context.Context, cat *Category) error
	GetCategory(ctx context.Context, id uuid.UUID) (*Category, error)
	FindByName(ctx context.Context, name string) (*Category, error)
	FindByAlias(ctx context.Context, name string) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	RenameCategory(ctx context.Context, id uuid.UUID, newName string) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name        string
	Color       string
	Description string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Category, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, fmt.Errorf("category name must not be empty")
	}

	cat := &Category{
		Name:        name,
		Color:       params.Color,
		Description: params.Description,
	}
	if err := s.repo.CreateCategory(ctx, cat); err != nil {
		return nil, err
	}

	return cat, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.ListCategories(ctx)
}

// Rename changes a category's display name. The store records the old name
// as an alias so name-keyed lookups keep resolving.
func (s *Service) Rename(ctx context.Context, id uuid.UUID, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("category name must not be empty")
	}

	return s.repo.RenameCategory(ctx, id, newName)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCategory(ctx, id)
}

// ResolveName maps a free-text category name to its canonical category.
// Current names win over aliases; lookups are case-insensitive. This is the
// compatibility shim for data that still identifies categories by string.
func (s *Service) ResolveName(ctx context.Context, name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNotFound
	}

	cat, err := s.repo.FindByName(ctx, name)
	if err == nil {
		return cat, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	return s.repo.FindByAlias(ctx, name)
}
