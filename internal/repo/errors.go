package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"myplanetplan-api/internal/domain"
)

// translate maps driver errors onto domain error kinds.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), isDupKey(err):
		return errors.Join(domain.ErrConflict, err)
	}
	return err
}

// isDupKey covers drivers that do not translate unique violations.
func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation")
}
