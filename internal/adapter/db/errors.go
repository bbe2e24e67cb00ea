package db

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrRowIsReferenced = 1451
	mysqlErrNoReferencedRow = 1452
)

func isUniqueViolation(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlErrDuplicateEntry
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlErrRowIsReferenced || myErr.Number == mysqlErrNoReferencedRow
	}
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
