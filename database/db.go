package database

import (
	"io/fs"
	"log"
	"os"
	"path"

	"staff-ui/config"
	"staff-ui/database/model"
	"staff-ui/util/crypto"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultUsername = "admin"
	defaultPassword = "password123"
)

func initModels(db *gorm.DB) error {
	models := []interface{}{
		&model.User{},
		&model.Employee{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

// initUser seeds the default operator account on first boot only. The
// default credential pair is a documented weakness; rotate it with the
// `setting` command.
func initUser(db *gorm.DB) error {
	empty, err := isTableEmpty(db, "users")
	if err != nil {
		log.Printf("Error checking if users table is empty: %v", err)
		return err
	}
	if !empty {
		return nil
	}
	hash, err := crypto.HashPasswordAsBcrypt(defaultPassword)
	if err != nil {
		return err
	}
	user := &model.User{
		Username:     defaultUsername,
		PasswordHash: hash,
	}
	if err := db.Create(user).Error; err != nil {
		return err
	}
	log.Printf("default user %q created with password %q, change it with the setting command", defaultUsername, defaultPassword)
	return nil
}

func isTableEmpty(db *gorm.DB, tableName string) (bool, error) {
	var count int64
	err := db.Table(tableName).Count(&count).Error
	return count == 0, err
}

// InitDB opens (creating if needed) the sqlite store, migrates the schema
// and seeds the first-boot user. The returned handle is the single shared
// connection; the caller owns it and injects it into the services.
func InitDB(dbPath string) (*gorm.DB, error) {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return nil, err
	}

	var gormLogger logger.Interface

	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:      gormLogger,
		PrepareStmt: true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err := gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return nil, err
	}

	if err := initModels(db); err != nil {
		return nil, err
	}
	if err := initUser(db); err != nil {
		return nil, err
	}

	return db, nil
}

func CloseDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	if err := Checkpoint(db); err != nil {
		log.Printf("error executing checkpoint: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func IsNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}

func Checkpoint(db *gorm.DB) error {
	return db.Exec("PRAGMA wal_checkpoint;").Error
}
