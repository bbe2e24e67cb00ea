//go:build integration

package tests

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	dbadapter "shoplist/internal/adapter/db"
	"shoplist/internal/config"
	"shoplist/pkg/translator"
)

// IntegrationSuiteBase runs against the store named by DB_DRIVER. MySQL gets
// a throwaway "<database>_test" schema; SQLite a file in a temp dir.
type IntegrationSuiteBase struct {
	suite.Suite

	DB *sqlx.DB

	conf  config.Config
	admin *sqlx.DB
}

func (s *IntegrationSuiteBase) SetupSuite() {
	root := projectRoot()
	translator.InitTranslator(translator.Config{
		TranslationFolder:  filepath.Join(root, "pkg", "translator", "translation"),
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguagePt},
	})

	s.conf = testConfig()
	if s.conf.DbDriver == config.DriverSQLite {
		s.conf.SQLitePath = filepath.Join(s.T().TempDir(), "integration.db")
	} else {
		s.createMySQLSchema()
	}

	db, err := dbadapter.ConnectDB(&s.conf)
	s.Require().NoError(err)
	s.DB = db
}

func (s *IntegrationSuiteBase) createMySQLSchema() {
	adminConf := s.conf
	adminConf.DbName = ""

	admin, err := dbadapter.ConnectDB(&adminConf)
	if err != nil {
		s.T().Skipf("mysql unavailable at %s:%s: %v", s.conf.DbHost, s.conf.DbPort, err)
	}
	s.admin = admin

	_, err = admin.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s` CHARACTER SET utf8mb4", s.conf.DbName))
	s.Require().NoError(err)
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}
	if s.admin == nil {
		return
	}

	if strings.HasSuffix(s.conf.DbName, "_test") {
		_, err := s.admin.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", s.conf.DbName))
		s.Require().NoError(err)
	}
	s.Require().NoError(s.admin.Close())
}

// ResetDatabase recreates the schema from the embedded migrations.
func (s *IntegrationSuiteBase) ResetDatabase() {
	for _, table := range []string{"items", "categories"} {
		_, err := s.DB.Exec("DROP TABLE IF EXISTS " + table)
		s.Require().NoError(err)
	}
	s.Require().NoError(dbadapter.Migrate(context.Background(), s.DB))
}

// testConfig reads the usual environment, pointing MySQL at localhost as
// root unless told otherwise.
func testConfig() config.Config {
	conf := *config.LoadConfig()
	if os.Getenv("MYSQL_HOST") == "" {
		conf.DbHost = "127.0.0.1"
	}
	if user := os.Getenv("MYSQL_ROOT_USER"); user != "" {
		conf.DbUser = user
		conf.DbPassword = os.Getenv("MYSQL_ROOT_PASSWORD")
	}
	conf.DbName = valueOr(os.Getenv("MYSQL_TEST_DATABASE"), conf.DbName+"_test")
	return conf
}

func projectRoot() string {
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", "..", ".."))
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
