package infra

import (
	"fmt"

	"github.com/44Loqueinor12345/Inventario/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the embedded SQLite store, runs AutoMigrate to create the
// four tables, and inserts the fixed seed groups on first startup. The driver
// is pure Go (modernc underneath), so the file is created on demand.
func NewDatabase(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// Single shared connection: SQLite handles one writer at a time and
	// surfaces contention as a busy error, which callers see as retryable.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.Grupo{},
		&model.CodigoBarras{},
		&model.Dispositivo{},
		&model.ProductoVenta{},
		&model.MaterialGeneral{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := seedGrupos(db); err != nil {
		return nil, fmt.Errorf("seed grupos: %w", err)
	}

	return db, nil
}

// seedGrupos inserts the default groups, skipping any that already exist.
func seedGrupos(db *gorm.DB) error {
	for _, g := range model.GruposSemilla {
		grupo := g
		if err := db.Where(model.Grupo{Nombre: grupo.Nombre}).FirstOrCreate(&grupo).Error; err != nil {
			return err
		}
	}
	return nil
}
