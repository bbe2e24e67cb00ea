package db

import (
	"fmt"
	"net"
	"time"

	_ "github.com/glebarez/go-sqlite"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"shoplist/internal/config"
)

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	switch conf.DbDriver {
	case config.DriverSQLite:
		return ConnectSQLite(conf.SQLitePath)
	case config.DriverMySQL, "":
		return connectMySQL(conf)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.DbDriver)
	}
}

const defaultMySQLParams = "parseTime=true&loc=UTC"

func connectMySQL(conf *config.Config) (*sqlx.DB, error) {
	mysqlConf, err := mysqlConfig(conf)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect("mysql", mysqlConf.FormatDSN())
	if err != nil {
		return nil, err
	}
	db.SetConnMaxLifetime(3 * time.Minute)
	db.SetMaxIdleConns(10)

	return db, nil
}

// mysqlConfig starts from MYSQL_PARAMS and fills in the connection target.
// An empty database name connects without selecting a schema.
func mysqlConfig(conf *config.Config) (*mysql.Config, error) {
	params := conf.DbParams
	if params == "" {
		params = defaultMySQLParams
	}

	mysqlConf, err := mysql.ParseDSN("/?" + params)
	if err != nil {
		return nil, fmt.Errorf("invalid mysql params %q: %w", params, err)
	}
	mysqlConf.User = conf.DbUser
	mysqlConf.Passwd = conf.DbPassword
	mysqlConf.Net = "tcp"
	mysqlConf.Addr = net.JoinHostPort(conf.DbHost, conf.DbPort)
	mysqlConf.DBName = conf.DbName

	return mysqlConf, nil
}

// ConnectSQLite opens a SQLite database with foreign keys enforced. The pool
// is pinned to a single connection so ":memory:" databases are shared and
// writers never contend for the file lock.
func ConnectSQLite(path string) (*sqlx.DB, error) {
	if path == "" {
		path = ":memory:"
	}
	dsn := path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	return db, nil
}
