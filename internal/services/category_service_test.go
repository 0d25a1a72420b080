package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"catalog/internal/models/request_models"
	"catalog/internal/repositories"
	"catalog/internal/services"
	"catalog/internal/testkit"
	"catalog/pkg/utils"
)

func TestCategoryService(t *testing.T) {
	db := testkit.NewSQLiteDB(t)
	svc := services.NewCategoryService(repositories.NewCategoryRepository(db), zap.NewNop())
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, request_models.CreateCategoryRequest{Name: "Tools"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Tools", created.Name)

	list, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Tools", list[0].Name)

	got, err := svc.GetCategoryByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tools", got.Name)
	assert.Empty(t, got.Products)

	_, err = svc.GetCategoryByID(ctx, created.ID+100)
	assert.ErrorIs(t, err, utils.ErrCategoryNotFound)
}

func TestCategoryService_ProductsCarryCategoryName(t *testing.T) {
	db := testkit.NewSQLiteDB(t)
	svc := services.NewCategoryService(repositories.NewCategoryRepository(db), zap.NewNop())
	tools := testkit.CreateCategory(t, db, "Tools")
	testkit.CreateProduct(t, db, "Hammer", "9.99", "", tools)

	got, err := svc.GetCategoryByID(context.Background(), tools.ID)
	require.NoError(t, err)
	require.Len(t, got.Products, 1)
	assert.Equal(t, "Hammer", got.Products[0].Name)
	assert.Equal(t, "Tools", got.Products[0].CategoryName)
}
