package presenter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soatbr/registration/internal/module/catalog/adapter/presenter"
	"github.com/soatbr/registration/internal/module/catalog/domain"
	testutil "github.com/soatbr/registration/internal/module/catalog/testing"
)

func TestPresenter_Product(t *testing.T) {
	// Setup
	product := testutil.TestProduct("X-Burger", domain.CategoryLanche, domain.StatusDisponivel)

	// Execute
	response := presenter.Product(product)

	// Assert
	require.NotNil(t, response)
	assert.Equal(t, product.ID.String(), response.ID)
	assert.Equal(t, "X-Burger", response.Name)
	assert.Equal(t, product.Price, response.Price)
	assert.Equal(t, "LANCHE", response.Category)
	assert.Equal(t, "DISPONIVEL", response.Status)
}

func TestPresenter_Product_NilPropagates(t *testing.T) {
	assert.Nil(t, presenter.Product(nil))
}

func TestPresenter_Products_NilBecomesEmpty(t *testing.T) {
	// Execute
	responses := presenter.Products(nil)

	// Assert
	require.NotNil(t, responses)
	assert.Empty(t, responses)
}

func TestPresenter_Products(t *testing.T) {
	// Setup
	products := []*domain.Product{
		testutil.TestProduct("X-Burger", domain.CategoryLanche, domain.StatusDisponivel),
		testutil.TestProduct("Refrigerante", domain.CategoryBebida, domain.StatusIndisponivel),
	}

	// Execute
	responses := presenter.Products(products)

	// Assert
	require.Len(t, responses, 2)
	assert.Equal(t, "X-Burger", responses[0].Name)
	assert.Equal(t, "INDISPONIVEL", responses[1].Status)
}

func TestPresenter_Categories(t *testing.T) {
	// Execute
	labels := presenter.Categories([]domain.Category{
		domain.CategoryLanche,
		domain.CategorySobremesa,
	})

	// Assert
	assert.Equal(t, []string{"LANCHE", "SOBREMESA"}, labels)
}
