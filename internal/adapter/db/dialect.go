package db

import "github.com/jmoiron/sqlx"

type dialect struct {
	name string
	// rowLock is appended to the SELECT that guards a category delete.
	rowLock string
	// greatest is the two-argument maximum function.
	greatest string
}

var (
	mysqlDialect  = dialect{name: "mysql", rowLock: " FOR UPDATE", greatest: "GREATEST"}
	sqliteDialect = dialect{name: "sqlite", rowLock: "", greatest: "MAX"}
)

func dialectOf(db *sqlx.DB) dialect {
	if db.DriverName() == "sqlite" {
		return sqliteDialect
	}
	return mysqlDialect
}
