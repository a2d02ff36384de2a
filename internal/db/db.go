package db

import (
	"context"
	"log"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MaksLuk/Diploma/internal/models"
)

var DB *gorm.DB

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
	ErrInvalid  = errors.New("invalid value")
)

// Open connects to postgres for postgres:// URLs and to SQLite otherwise
// ("sqlite://path", "file:..." or a plain path), then migrates the schema.
func Open(dsn string) (*gorm.DB, error) {
	conn, err := gorm.Open(dialector(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	if conn.Dialector.Name() == "sqlite" {
		// A single connection keeps in-memory databases alive and serialises writers.
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	err = conn.AutoMigrate(
		&models.Division{}, &models.Speciality{}, &models.Group{}, &models.Flow{},
		&models.Classroom{}, &models.Subject{}, &models.Teacher{},
		&models.Curriculum{}, &models.Lesson{},
	)
	if err != nil {
		return nil, errors.Wrap(err, "migrate database")
	}
	return conn, nil
}

func InitDB(dsn string) {
	var err error
	DB, err = Open(dsn)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	log.Println("✅ Database connected and migrated")
}

func dialector(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return postgres.Open(dsn)
	}
	return sqlite.Open(strings.TrimPrefix(dsn, "sqlite://"))
}

func PingDB() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func tx(ctx context.Context) *gorm.DB {
	return DB.WithContext(ctx)
}

// create inserts row and maps unique violations to ErrConflict.
func create(ctx context.Context, row any, what string) error {
	err := tx(ctx).Create(row).Error
	if isUniqueViolation(err) {
		return errors.Wrap(ErrConflict, what)
	}
	return err
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func notFound(err error, what string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrapf(ErrNotFound, "%s %d", what, id)
	}
	return err
}

// exists fails with ErrNotFound unless a row of model with the id exists.
func exists(ctx context.Context, model any, id uint, what string) error {
	var n int64
	if err := tx(ctx).Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return errors.Wrapf(ErrNotFound, "%s %d", what, id)
	}
	return nil
}

// taken fails with ErrConflict when a row of model already has the value in column.
func taken(ctx context.Context, model any, column, value, what string) error {
	var n int64
	if err := tx(ctx).Model(model).Where(column+" = ?", value).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return errors.Wrapf(ErrConflict, "%s %q", what, value)
	}
	return nil
}
