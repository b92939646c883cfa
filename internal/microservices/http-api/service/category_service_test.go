package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"servicehub/internal/microservices/http-api/models"
)

func TestCategoryService_ListCategories(t *testing.T) {
	categoryRepo := new(mockCategoryRepository)
	svc := NewCategoryService(categoryRepo, nil)

	categoryRepo.On("FindAll").Return([]models.ServiceCategory{
		{ID: 1, Name: "Plumbing"},
		{ID: 2, Name: "Electrics"},
	}, nil)

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}

func TestCategoryService_GetCategory_NotFound(t *testing.T) {
	categoryRepo := new(mockCategoryRepository)
	svc := NewCategoryService(categoryRepo, nil)

	categoryRepo.On("FindByID", int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetCategory(context.Background(), 404)
	assert.Error(t, err)
}
