package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, isDuplicateKey(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateKey(fmt.Errorf("create field: %w", gorm.ErrDuplicatedKey)))

	// driver sin traducción de errores
	assert.True(t, isDuplicateKey(errors.New(
		`ERROR: duplicate key value violates unique constraint "idx_fields_code" (SQLSTATE 23505)`)))

	assert.False(t, isDuplicateKey(nil))
	assert.False(t, isDuplicateKey(errors.New("connection refused")))
}
