package service

import (
	"context"
	"log/slog"

	"servicehub/internal/cache"
	"servicehub/internal/microservices/http-api/models"
	"servicehub/internal/microservices/http-api/repository"
)

const categoriesCacheKey = "categories:all"

type CategoryService interface {
	ListCategories(ctx context.Context) ([]models.ServiceCategory, error)
	GetCategory(ctx context.Context, id int64) (*models.ServiceCategory, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	cache        *cache.Store
}

func NewCategoryService(categoryRepo repository.CategoryRepository, store *cache.Store) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		cache:        store,
	}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]models.ServiceCategory, error) {
	var cached []models.ServiceCategory
	if err := s.cache.Get(ctx, categoriesCacheKey, &cached); err == nil {
		return cached, nil
	}

	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, categoriesCacheKey, categories); err != nil {
		// cache failures are not user-visible
		slog.Warn("failed to cache categories", "error", err)
	}

	return categories, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id int64) (*models.ServiceCategory, error) {
	return s.categoryRepo.FindByID(id)
}
