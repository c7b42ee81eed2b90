package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var DB *gorm.DB

type EZContext string

const (
	DBContextURL EZContext = "expenses-backend-url"
)

// Connect opens the SQLite database at dsn, migrates it and
// configures the connection pool.
func Connect(dsn string) error {
	return Open(sqlite.Open(dsn))
}

// Open connects to the database behind the dialector, migrates
// the schema and registers the error translation callbacks.
func Open(dialector gorm.Dialector) error {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger:         newLogger(log.Logger),
		TranslateError: true,
	}

	db, err := gorm.Open(dialector, config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	if dialector.Name() == "sqlite" {
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	}

	// Query callbacks
	err = db.Callback().Query().After("*").Register("expenses:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("*").Register("expenses:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	// Create callbacks
	err = db.Callback().Create().After("*").Register("expenses:after_create", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("expenses:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	// Update callbacks
	err = db.Callback().Update().After("*").Register("expenses:after_update", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("expenses:after_update_general", generalCallback)
	if err != nil {
		return err
	}

	// Delete callbacks
	err = db.Callback().Delete().After("*").Register("expenses:after_delete_general", generalCallback)
	if err != nil {
		return err
	}

	// Raw and Row callbacks, used for plucks and aggregates
	err = db.Callback().Row().After("*").Register("expenses:after_row_general", generalCallback)
	if err != nil {
		return err
	}

	// Set the exported variable
	DB = db

	return nil
}

var pluralIES = regexp.MustCompile("ies$")

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		name = pluralIES.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// Category names are unique. Categories are the only resource with a unique
	// constraint, translated errors therefore always refer to them
	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: categories.name") ||
		(errors.Is(db.Error, gorm.ErrDuplicatedKey) && db.Statement.Table == "categories") {
		db.Error = ErrCategoryNameNotUnique
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	db.Error = Translate(db.Error)
}

// Translate replaces errors of the database connection or driver with ErrGeneral.
// All other errors are returned unchanged.
//
// It is used by the callbacks and for errors that do not pass through them,
// e.g. when a database transaction cannot be started.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if err.Error() == "sql: database is closed" ||
		errors.Is(err, driver.ErrBadConn) ||
		reflect.TypeOf(err) == reflect.TypeOf(&go_sqlite.Error{}) ||
		driverError(err) {
		// A general error where we cannot provide more useful information to the end user
		// We log the error and provide a general error message so that server admins can debug
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrGeneral
	}

	return err
}

// driverError reports if err is an error of the postgres or mysql
// driver or of the network connection to the database server.
func driverError(err error) bool {
	var pgErr *pgconn.PgError
	var connectErr *pgconn.ConnectError
	var mysqlErr *mysql.MySQLError
	var netErr net.Error

	return errors.As(err, &pgErr) ||
		errors.As(err, &connectErr) ||
		errors.As(err, &mysqlErr) ||
		errors.Is(err, mysql.ErrInvalidConn) ||
		errors.As(err, &netErr)
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(Transaction{}, Category{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	err = backfillCategoryKeys(db)
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}

// backfillCategoryKeys sets the category keys for rows stored before
// the key columns existed.
func backfillCategoryKeys(db *gorm.DB) error {
	var transactions []Transaction
	err := db.Where("category_key = ?", "").Find(&transactions).Error
	if err != nil {
		return err
	}

	for _, t := range transactions {
		err = db.Model(&t).UpdateColumn("category_key", CategoryKey(t.Category)).Error
		if err != nil {
			return err
		}
	}

	var categories []Category
	err = db.Where("name_key = ?", "").Find(&categories).Error
	if err != nil {
		return err
	}

	for _, c := range categories {
		err = db.Model(&c).UpdateColumn("name_key", CategoryKey(c.Name)).Error
		if err != nil {
			return err
		}
	}

	return nil
}
