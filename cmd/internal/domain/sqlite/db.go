package sqlite

import (
	"os"
	"path/filepath"
	"smartnotes/cmd/internal/domain/entity"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultDBFile = "database.db"

// Init opens the database pointed by SQLITE_PATH (or ./database.db).
func Init() (*gorm.DB, error) {
	dbPath := os.Getenv("SQLITE_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(".", defaultDBFile)
	}
	return Open(dbPath)
}

// Open opens and migrates the database at dsn. Passing ":memory:" gives a
// private in-memory database, which only works because the pool is pinned
// to a single connection.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	err = db.AutoMigrate(&entity.User{}, &entity.Note{}, &entity.Tag{}, &entity.Summary{})
	if err != nil {
		return nil, err
	}

	if err = backfillFolded(db); err != nil {
		return nil, err
	}
	return db, nil
}

// backfillFolded fills the folded text columns of rows written before they existed.
func backfillFolded(db *gorm.DB) error {
	var notes []*entity.Note
	return db.
		Select("id", "title", "content").
		Where("title_folded = '' AND content_folded = '' AND (title <> '' OR content <> '')").
		FindInBatches(&notes, 200, func(_ *gorm.DB, _ int) error {
			for _, n := range notes {
				n.Fold()
				err := db.Model(n).UpdateColumns(map[string]any{
					"title_folded":   n.TitleFolded,
					"content_folded": n.ContentFolded,
				}).Error
				if err != nil {
					return err
				}
			}
			return nil
		}).Error
}
