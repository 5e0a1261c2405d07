package presenter_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soatbr/registration/internal/module/account/adapter/presenter"
	testutil "github.com/soatbr/registration/internal/module/account/testing"
)

func TestPresenter_Attendant(t *testing.T) {
	// Setup
	attendant := testutil.TestAttendant("Maria Santos", "maria@email.com", "987.654.321-00")

	// Execute
	response := presenter.Attendant(attendant)

	// Assert
	require.NotNil(t, response)
	assert.Equal(t, attendant.ID.String(), response.ID)
	assert.Equal(t, "Maria Santos", response.Name)
	assert.Equal(t, "98765432100", response.CPF)
}

func TestPresenter_Attendant_NilPropagates(t *testing.T) {
	assert.Nil(t, presenter.Attendant(nil))
}

func TestPresenter_Customer_Identified(t *testing.T) {
	// Setup
	customer := testutil.TestCustomer("João Silva", "joao@email.com", "12345678901")

	// Execute
	response := presenter.Customer(customer)

	// Assert
	require.NotNil(t, response)
	assert.Equal(t, customer.ID.String(), response.ID)
	assert.Equal(t, "João Silva", response.Name)
	assert.Equal(t, "joao@email.com", response.Email)
	assert.Equal(t, "12345678901", response.CPF)
	assert.False(t, response.Anonymous)
}

func TestPresenter_Customer_AnonymousOmitsPersonalFields(t *testing.T) {
	// Setup
	customer := testutil.TestAnonymousCustomer()

	// Execute
	response := presenter.Customer(customer)

	// Assert
	require.NotNil(t, response)
	assert.Equal(t, customer.ID.String(), response.ID)
	assert.True(t, response.Anonymous)
	assert.Empty(t, response.Name)
	assert.Empty(t, response.Email)
	assert.Empty(t, response.CPF)

	// 匿名顧客のJSONはidとanonymousのみを含むこと
	body, err := json.Marshal(response)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(body, &fields))
	assert.Len(t, fields, 2)
	assert.Contains(t, fields, "id")
	assert.Contains(t, fields, "anonymous")
}

func TestPresenter_Customer_NilPropagates(t *testing.T) {
	assert.Nil(t, presenter.Customer(nil))
}

func TestPresenter_Customers_NilBecomesEmpty(t *testing.T) {
	responses := presenter.Customers(nil)
	require.NotNil(t, responses)
	assert.Empty(t, responses)
}
