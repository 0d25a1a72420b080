package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog/internal/models/db_models"
	"catalog/internal/repositories"
	"catalog/internal/testkit"
)

func TestCategoryRepository_CreateListGet(t *testing.T) {
	db := testkit.NewSQLiteDB(t)
	repo := repositories.NewCategoryRepository(db)
	ctx := context.Background()

	tools := &db_models.Category{Name: "Tools"}
	id, err := repo.CreateCategory(ctx, tools)
	require.NoError(t, err)
	assert.NotZero(t, id)

	// names are not unique
	_, err = repo.CreateCategory(ctx, &db_models.Category{Name: "Tools"})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Tools", list[0].Name)

	testkit.CreateProduct(t, db, "Hammer", "9.99", "", *tools)
	testkit.CreateProduct(t, db, "Wrench", "7.00", "", *tools)

	got, err := repo.GetByIDWithProducts(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Products, 2)
	assert.Equal(t, "Hammer", got.Products[0].Name)
	assert.Equal(t, "Wrench", got.Products[1].Name)

	plain, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, plain)
	assert.Empty(t, plain.Products)
}

func TestCategoryRepository_Missing(t *testing.T) {
	repo := repositories.NewCategoryRepository(testkit.NewSQLiteDB(t))
	ctx := context.Background()

	got, err := repo.GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.GetByIDWithProducts(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, got)
}
