package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

// La clasificación debe funcionar con el error envuelto, como lo devuelve pgx.
func TestClasificacionDeErroresPg(t *testing.T) {
	unique := &pgconn.PgError{Code: pgUniqueViolation}
	fk := &pgconn.PgError{Code: pgForeignKeyViolation}

	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", unique)))
	assert.False(t, isUniqueViolation(fmt.Errorf("insert: %w", fk)))

	assert.True(t, isForeignKeyViolation(fmt.Errorf("insert: %w", fk)))
	assert.False(t, isForeignKeyViolation(fmt.Errorf("insert: %w", unique)))

	assert.False(t, isUniqueViolation(errors.New("fallo de red")))
	assert.False(t, isForeignKeyViolation(errors.New("fallo de red")))
}
