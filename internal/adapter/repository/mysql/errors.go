package mysql

import (
	"errors"

	"gorm.io/gorm"
)

// translate maps gorm sentinel errors onto the caller's domain errors.
// The DB must be opened with TranslateError for duplicate keys to surface.
func translate(err, notFound, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case duplicate != nil && errors.Is(err, gorm.ErrDuplicatedKey):
		return duplicate
	}
	return err
}
