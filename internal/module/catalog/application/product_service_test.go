package application_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soatbr/registration/internal/module/catalog/application"
	"github.com/soatbr/registration/internal/module/catalog/domain"
	testutil "github.com/soatbr/registration/internal/module/catalog/testing"
	"github.com/soatbr/registration/internal/shared/domainerror"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func createInput() application.CreateProductInput {
	return application.CreateProductInput{
		Name:        "X-Burger",
		Description: "Hambúrguer com queijo",
		Price:       10.00,
		Category:    domain.CategoryLanche,
		Status:      domain.StatusDisponivel,
		Image:       "x.jpg",
	}
}

func TestProductService_Create_Success(t *testing.T) {
	// Setup
	ctx := context.Background()

	mockRepo := &testutil.MockProductRepository{
		ExistsByNameFunc: func(ctx context.Context, name string) (bool, error) {
			assert.Equal(t, "X-Burger", name)
			return false, nil
		},
	}

	service := application.NewProductService(mockRepo, testLogger())

	// Execute
	result, err := service.Create(ctx, createInput())

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEqual(t, uuid.Nil, result.ID)
	assert.Equal(t, "X-Burger", result.Name)
	assert.Equal(t, "Hambúrguer com queijo", result.Description)
	assert.Equal(t, 10.00, result.Price)
	assert.Equal(t, domain.CategoryLanche, result.Category)
	assert.Equal(t, domain.StatusDisponivel, result.Status)
	assert.Equal(t, "x.jpg", result.Image)
	assert.Equal(t, 1, mockRepo.SaveCalls)
}

func TestProductService_Create_NameAlreadyRegistered(t *testing.T) {
	// Setup
	ctx := context.Background()

	mockRepo := &testutil.MockProductRepository{
		ExistsByNameFunc: func(ctx context.Context, name string) (bool, error) {
			return true, nil
		},
	}

	service := application.NewProductService(mockRepo, testLogger())

	// Execute
	result, err := service.Create(ctx, createInput())

	// Assert
	require.Error(t, err)
	assert.Nil(t, result)

	var dupErr *domain.NameAlreadyRegisteredError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "X-Burger", dupErr.Name)
	assert.Contains(t, err.Error(), "já foi cadastrado")
	assert.Contains(t, err.Error(), "X-Burger")

	// 重複時はsaveが一度も呼ばれないこと
	assert.Equal(t, 1, mockRepo.ExistsByNameCalls)
	assert.Equal(t, 0, mockRepo.SaveCalls)
}

func TestProductService_Create_ChecksNameBeforeSaving(t *testing.T) {
	// Setup
	ctx := context.Background()

	var order []string
	mockRepo := &testutil.MockProductRepository{
		ExistsByNameFunc: func(ctx context.Context, name string) (bool, error) {
			order = append(order, "exists")
			return false, nil
		},
		SaveFunc: func(ctx context.Context, product *domain.Product) (*domain.Product, error) {
			order = append(order, "save")
			return product, nil
		},
	}

	service := application.NewProductService(mockRepo, testLogger())

	// Execute
	_, err := service.Create(ctx, createInput())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"exists", "save"}, order)
}

func TestProductService_Create_ValidationError(t *testing.T) {
	// Setup
	ctx := context.Background()

	mockRepo := &testutil.MockProductRepository{}
	service := application.NewProductService(mockRepo, testLogger())

	input := createInput()
	input.Name = ""
	input.Price = -1

	// Execute
	result, err := service.Create(ctx, input)

	// Assert
	require.Error(t, err)
	assert.Nil(t, result)

	var verr *domainerror.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "price")
	assert.Equal(t, 0, mockRepo.SaveCalls)
}

func TestProductService_Create_RepositoryError(t *testing.T) {
	// Setup
	ctx := context.Background()
	expectedErr := errors.New("database error")

	mockRepo := &testutil.MockProductRepository{
		ExistsByNameFunc: func(ctx context.Context, name string) (bool, error) {
			return false, expectedErr
		},
	}

	service := application.NewProductService(mockRepo, testLogger())

	// Execute
	result, err := service.Create(ctx, createInput())

	// Assert
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, mockRepo.SaveCalls)
}

func TestProductService_Update_Success(t *testing.T) {
	// Setup
	ctx := context.Background()
	existing := testutil.TestProduct("X-Burger", domain.CategoryLanche, domain.StatusDisponivel)

	mockRepo := &testutil.MockProductRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
			assert.Equal(t, existing.ID, id)
			return existing, nil
		},
	}

	service := application.NewProductService(mockRepo, testLogger())

	input := application.UpdateProductInput{
		ID:          existing.ID,
		Name:        "X-Bacon",
		Description: "Hambúrguer com bacon",
		Price:       12.50,
		Category:    domain.CategoryLanche,
		Status:      domain.StatusIndisponivel,
		Image:       "bacon.png",
	}

	// Execute
	result, err := service.Update(ctx, input)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result)
	// IDは維持され、残りのフィールドは入力値で置き換わること
	assert.Equal(t, existing.ID, result.ID)
	assert.Equal(t, "X-Bacon", result.Name)
	assert.Equal(t, 12.50, result.Price)
	assert.Equal(t, domain.StatusIndisponivel, result.Status)
	assert.Equal(t, 1, mockRepo.SaveCalls)
}

func TestProductService_Update_NotFound(t *testing.T) {
	// Setup
	ctx := context.Background()

	mockRepo := &testutil.MockProductRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
			return nil, nil
		},
	}

	service := application.NewProductService(mockRepo, testLogger())

	input := application.UpdateProductInput{
		ID:       uuid.New(),
		Name:     "X-Burger",
		Price:    10.00,
		Category: domain.CategoryLanche,
		Status:   domain.StatusDisponivel,
	}

	// Execute
	result, err := service.Update(ctx, input)

	// Assert
	require.Error(t, err)
	assert.Nil(t, result)

	var notFound *domainerror.EntityNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Produto", notFound.Entity)
	assert.Contains(t, err.Error(), "Registro não encontrado")
	assert.Equal(t, 0, mockRepo.SaveCalls)
}

func TestProductService_FindByID_NotFoundReturnsNil(t *testing.T) {
	// Setup
	ctx := context.Background()

	mockRepo := &testutil.MockProductRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
			return nil, nil
		},
	}

	service := application.NewProductService(mockRepo, testLogger())

	// Execute
	result, err := service.FindByID(ctx, uuid.New())

	// Assert
	// 不在はエラーではなくnilで表現されること
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestProductService_GetAvailable_Success(t *testing.T) {
	// Setup
	ctx := context.Background()
	expected := testutil.TestProduct("X-Burger", domain.CategoryLanche, domain.StatusDisponivel)

	mockRepo := &testutil.MockProductRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
			return expected, nil
		},
	}

	service := application.NewProductService(mockRepo, testLogger())

	// Execute
	result, err := service.GetAvailable(ctx, expected.ID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestProductService_GetAvailable_NotFound(t *testing.T) {
	// Setup
	ctx := context.Background()

	mockRepo := &testutil.MockProductRepository{}
	service := application.NewProductService(mockRepo, testLogger())

	// Execute
	result, err := service.GetAvailable(ctx, uuid.New())

	// Assert
	require.Error(t, err)
	assert.Nil(t, result)

	var notFound *domainerror.EntityNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Produto", notFound.Entity)
}

func TestProductService_GetAvailable_NotAvailable(t *testing.T) {
	// Setup
	ctx := context.Background()
	unavailable := testutil.TestProduct("X-Burger", domain.CategoryLanche, domain.StatusIndisponivel)

	mockRepo := &testutil.MockProductRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
			return unavailable, nil
		},
	}

	service := application.NewProductService(mockRepo, testLogger())

	// Execute
	result, err := service.GetAvailable(ctx, unavailable.ID)

	// Assert
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrProductNotAvailable)
}

func TestProductService_FindByName_Success(t *testing.T) {
	// Setup
	ctx := context.Background()
	expected := testutil.TestProduct("X-Burger", domain.CategoryLanche, domain.StatusDisponivel)

	mockRepo := &testutil.MockProductRepository{
		FindByNameFunc: func(ctx context.Context, name string) (*domain.Product, error) {
			assert.Equal(t, "X-Burger", name)
			return expected, nil
		},
	}

	service := application.NewProductService(mockRepo, testLogger())

	// Execute
	result, err := service.FindByName(ctx, "X-Burger")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestProductService_List_Success(t *testing.T) {
	// Setup
	ctx := context.Background()
	expected := []*domain.Product{
		testutil.TestProduct("X-Burger", domain.CategoryLanche, domain.StatusDisponivel),
		testutil.TestProduct("Coca-Cola", domain.CategoryBebida, domain.StatusIndisponivel),
	}

	mockRepo := &testutil.MockProductRepository{
		ListFunc: func(ctx context.Context) ([]*domain.Product, error) {
			return expected, nil
		},
	}

	service := application.NewProductService(mockRepo, testLogger())

	// Execute
	result, err := service.List(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, expected, result)
	assert.Len(t, result, 2)
}

func TestProductService_ListAvailable_UsesDisponivelStatus(t *testing.T) {
	// Setup
	ctx := context.Background()

	mockRepo := &testutil.MockProductRepository{
		ListByStatusFunc: func(ctx context.Context, status domain.Status) ([]*domain.Product, error) {
			assert.Equal(t, domain.StatusDisponivel, status)
			return []*domain.Product{}, nil
		},
	}

	service := application.NewProductService(mockRepo, testLogger())

	// Execute
	_, err := service.ListAvailable(ctx)

	// Assert
	require.NoError(t, err)
}

func TestProductService_ListAvailableByCategory_UsesDisponivelStatus(t *testing.T) {
	// Setup
	ctx := context.Background()

	mockRepo := &testutil.MockProductRepository{
		ListByStatusAndCategoryFunc: func(ctx context.Context, status domain.Status, category domain.Category) ([]*domain.Product, error) {
			assert.Equal(t, domain.StatusDisponivel, status)
			assert.Equal(t, domain.CategoryBebida, category)
			return []*domain.Product{}, nil
		},
	}

	service := application.NewProductService(mockRepo, testLogger())

	// Execute
	_, err := service.ListAvailableByCategory(ctx, domain.CategoryBebida)

	// Assert
	require.NoError(t, err)
}

func TestProductService_ListAvailableCategories_Success(t *testing.T) {
	// Setup
	ctx := context.Background()

	mockRepo := &testutil.MockProductRepository{
		ListAvailableCategoriesFunc: func(ctx context.Context) ([]domain.Category, error) {
			return []domain.Category{domain.CategoryLanche}, nil
		},
	}

	service := application.NewProductService(mockRepo, testLogger())

	// Execute
	result, err := service.ListAvailableCategories(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{domain.CategoryLanche}, result)
}

func TestProductService_Delete_Success(t *testing.T) {
	// Setup
	ctx := context.Background()
	productID := uuid.New()

	mockRepo := &testutil.MockProductRepository{
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			assert.Equal(t, productID, id)
			return nil
		},
	}

	service := application.NewProductService(mockRepo, testLogger())

	// Execute
	err := service.Delete(ctx, productID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, mockRepo.DeleteCalls)
}

func TestProductService_DeleteByCategory_Success(t *testing.T) {
	// Setup
	ctx := context.Background()

	mockRepo := &testutil.MockProductRepository{
		DeleteByCategoryFunc: func(ctx context.Context, category domain.Category) error {
			assert.Equal(t, domain.CategorySobremesa, category)
			return nil
		},
	}

	service := application.NewProductService(mockRepo, testLogger())

	// Execute
	err := service.DeleteByCategory(ctx, domain.CategorySobremesa)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, mockRepo.DeleteByCategoryCalls)
}
