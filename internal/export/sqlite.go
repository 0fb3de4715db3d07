package export

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/joshuapare/msbkit/msb"
)

// SQLite writes records to the enemies table of the database at path,
// creating the file if needed and replacing any rows already there.
func SQLite(path string, records []msb.EnemyRecord) error {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		SkipDefaultTransaction: true,
		CreateBatchSize:        500,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("open sqlite %s: %w", path, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("access sql interface: %w", err)
	}
	defer sqlDB.Close()

	rows := Rows(records)
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Migrator().DropTable(&Row{}); err != nil {
			return fmt.Errorf("drop enemies table: %w", err)
		}
		if err := tx.AutoMigrate(&Row{}); err != nil {
			return fmt.Errorf("create enemies table: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("insert enemies: %w", err)
		}
		return nil
	})
}

// ReadSQLite returns the rows of the enemies table at path in row order.
func ReadSQLite(path string) ([]Row, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access sql interface: %w", err)
	}
	defer sqlDB.Close()

	var rows []Row
	if err := db.Order("row_num").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("read enemies: %w", err)
	}
	return rows, nil
}
