package services

import (
	"errors"

	"github.com/yungbote/companyinfo-backend/internal/data/db"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// errFields appends the store error description to kv for logging.
func errFields(err error, kv ...interface{}) []interface{} {
	return append(kv, db.ErrorFields(err)...)
}
