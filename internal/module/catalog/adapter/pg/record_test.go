package pg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soatbr/registration/internal/module/catalog/domain"
	testutil "github.com/soatbr/registration/internal/module/catalog/testing"
)

func TestProductRecord_RoundTrip(t *testing.T) {
	// Setup
	product := testutil.TestProduct("X-Burger", domain.CategoryLanche, domain.StatusDisponivel)
	product.Price = 25.50

	// Execute
	record := productToRecord(product)
	got := recordToProduct(record)

	// Assert
	require.NotNil(t, record)
	require.True(t, record.Price.Valid)
	require.NotNil(t, got)
	assert.Equal(t, product.ID, got.ID)
	assert.Equal(t, product.Name, got.Name)
	assert.Equal(t, product.Description, got.Description)
	assert.InDelta(t, 25.50, got.Price, 0.001)
	assert.Equal(t, product.Category, got.Category)
	assert.Equal(t, product.Status, got.Status)
	assert.Equal(t, product.Image, got.Image)
}

func TestProductRecord_NilPropagation(t *testing.T) {
	// Execute & Assert
	assert.Nil(t, productToRecord(nil))
	assert.Nil(t, recordToProduct(nil))
	assert.Nil(t, recordsToProducts(nil))
}
