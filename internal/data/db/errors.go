package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorFields returns logger key/values describing a store failure. Postgres
// errors also carry their SQLSTATE and the violated constraint, if any.
func ErrorFields(err error) []interface{} {
	fields := []interface{}{"error", err}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		fields = append(fields, "sqlstate", pgErr.Code)
		if pgErr.ConstraintName != "" {
			fields = append(fields, "constraint", pgErr.ConstraintName)
		}
	}
	return fields
}
