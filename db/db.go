package db

import (
	"fmt"
	"os"
	"path/filepath"

	"apptransaction/config"
	"apptransaction/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	log "github.com/sirupsen/logrus"
)

// Connect abre conexão com o banco configurado: sqlite3 (arquivo, padrão),
// memory (sqlite em memória) ou postgres.
func Connect(conf config.Configuration) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch conf.Database {
	case "postgres", "postgresql":
		log.Info("Utilizando conexão com o postgresql...")
		path := "host=" + conf.DbHost + " port=" + conf.DbPort
		path += " user=" + conf.DbUser + " dbname=" + conf.DbName
		path += " password=" + conf.DbPass + " sslmode=disable"
		db, err = gorm.Open("postgres", path)
	case "memory":
		log.Info("Utilizando sqlite3 em memória...")
		db, err = OpenMemory()
	case "sqlite3", "sqlite", "":
		log.Info("Utilizando conexão com o sqlite3...")
		if err := os.MkdirAll(filepath.Dir(conf.DbPath), 0o755); err != nil {
			return nil, fmt.Errorf("db dir: %w", err)
		}
		db, err = gorm.Open("sqlite3", conf.DbPath)
	default:
		return nil, fmt.Errorf("unsupported database %q", conf.Database)
	}

	if err != nil {
		log.WithError(err).Error("Got error when connect database")
		return nil, err
	}

	db.SetLogger(log.StandardLogger())
	db.LogMode(conf.DbLogMode)

	return db, nil
}

// OpenMemory opens a private in-memory sqlite database. Every pooled
// connection would get its own empty database, so the pool is pinned to one.
func OpenMemory() (*gorm.DB, error) {
	db, err := gorm.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, err
	}
	db.DB().SetMaxOpenConns(1)
	return db, nil
}

// Migrate creates or extends the tables of every model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...).Error; err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
