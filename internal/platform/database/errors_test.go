package database_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/soatbr/registration/internal/platform/database"
)

func TestIsUniqueViolation(t *testing.T) {
	// Setup
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "attendant_cpf_key"}
	wrapped := fmt.Errorf("failed to save attendant: %w", pgErr)

	// Execute & Assert
	assert.True(t, database.IsUniqueViolation(pgErr))
	assert.True(t, database.IsUniqueViolation(wrapped))
	assert.False(t, database.IsUniqueViolation(&pgconn.PgError{Code: "23502"}))
	assert.False(t, database.IsUniqueViolation(errors.New("duplicate key value")))
}

func TestConstraintName(t *testing.T) {
	// Setup
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "customer_email_key"}

	// Execute & Assert
	assert.Equal(t, "customer_email_key", database.ConstraintName(pgErr))
	assert.Empty(t, database.ConstraintName(errors.New("not a pg error")))
}
