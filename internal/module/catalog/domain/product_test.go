package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soatbr/registration/internal/module/catalog/domain"
	"github.com/soatbr/registration/internal/shared/domainerror"
)

func TestBuildProduct_Success(t *testing.T) {
	id := uuid.New()

	product, err := domain.BuildProduct(id, "X-Burger", "Hambúrguer com queijo", 10.00, domain.CategoryLanche, domain.StatusDisponivel, "x.jpg")

	require.NoError(t, err)
	assert.Equal(t, id, product.ID)
	assert.Equal(t, "X-Burger", product.Name)
	assert.True(t, product.IsAvailable())
}

func TestBuildProduct_ValidationErrors(t *testing.T) {
	_, err := domain.BuildProduct(uuid.New(), "", "", -5.0, domain.Category("PIZZA"), domain.Status("ESGOTADO"), "")

	require.Error(t, err)
	var verr *domainerror.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "price")
	assert.Contains(t, verr.Fields, "category")
	assert.Contains(t, verr.Fields, "status")
}

func TestCategories_FullSet(t *testing.T) {
	categories := domain.Categories()

	assert.Equal(t, []domain.Category{
		domain.CategoryLanche,
		domain.CategoryAcompanhamento,
		domain.CategoryBebida,
		domain.CategorySobremesa,
	}, categories)
}

func TestParseCategory(t *testing.T) {
	category, err := domain.ParseCategory("BEBIDA")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryBebida, category)

	_, err = domain.ParseCategory("PIZZA")
	require.Error(t, err)
}

func TestParseStatus(t *testing.T) {
	status, err := domain.ParseStatus("INDISPONIVEL")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusIndisponivel, status)

	_, err = domain.ParseStatus("ESGOTADO")
	require.Error(t, err)
}
