package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/makerstech/storefront-backend/pkg/db/models"
	pkgerrors "github.com/makerstech/storefront-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Product{}))
	return conn
}

func seedProduct(t *testing.T, db *gorm.DB, id int64, name string, price float64, stock int) models.Product {
	t.Helper()

	p := models.Product{
		ID:       id,
		Name:     name,
		Price:    decimal.NewNullDecimal(decimal.NewFromFloat(price)),
		Stock:    &stock,
		Category: "Computers",
		InStock:  stock > 0,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func TestRepositoryListAll_OrdersByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)

	seedProduct(t, db, 3, "LG Monitor", 150, 25)
	seedProduct(t, db, 1, "HP Computer", 500, 15)
	seedProduct(t, db, 2, "Dell Computer", 650, 8)

	products, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)
	require.Equal(t, int64(1), products[0].ID)
	require.Equal(t, int64(2), products[1].ID)
	require.Equal(t, int64(3), products[2].ID)
}

func TestRepositoryFindByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	seedProduct(t, db, 5, "Razer Mouse", 40, 42)

	product, err := repo.FindByID(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, "Razer Mouse", product.Name)

	_, err = repo.FindByID(context.Background(), 99)
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	require.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}
