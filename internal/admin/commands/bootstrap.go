package commands

import (
	"Inkpot/internal/config"
	"Inkpot/internal/repo"

	"gorm.io/gorm"
)

// openDB открывает БД из конфига (с миграциями). Подменяется в тестах.
var openDB = func(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	done := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return db, done, nil
}
