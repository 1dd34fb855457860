package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// uniqueViolationCode is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolationCode = "23505"

func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	// Only returned when the dialector translates errors
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, uniqueViolationCode) ||
		strings.Contains(errMsg, "duplicate key")
}
