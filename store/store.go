// Package store is the only local persistence in the service: a sqlite file
// holding the admin session token. Every portfolio entity lives in the
// external backend; the token is what survives restarts so the admin panel
// comes back in its last login state.
package store

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Store struct {
	sessionRepo *SessionRepo
}

// Open opens (creating if needed) the sqlite file at path and migrates the
// session schema.
func Open(path string) (Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return Store{}, err
	}

	if err := db.AutoMigrate(&AdminSession{}); err != nil {
		return Store{}, err
	}

	return New(db), nil
}

// New initializes a Store with each repository using a shared GORM database instance
func New(db *gorm.DB) Store {
	return Store{
		sessionRepo: NewSessionRepo(db),
	}
}

func (s Store) SessionRepo() *SessionRepo {
	return s.sessionRepo
}
