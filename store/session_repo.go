package store

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// AdminSession is the single persisted row (id=1) holding the backend-issued
// token. An absent row or empty token means logged out.
type AdminSession struct {
	ID        int64  `gorm:"primaryKey"`
	Token     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

const sessionRowID int64 = 1

type SessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) *SessionRepo {
	return &SessionRepo{db}
}

// Token returns the stored session token, or "" when none is stored.
func (r *SessionRepo) Token() (string, error) {
	var session AdminSession
	err := r.db.First(&session, sessionRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return session.Token, nil
}

// SetToken stores the token, replacing any previous one.
func (r *SessionRepo) SetToken(token string) error {
	session := AdminSession{ID: sessionRowID, Token: token, UpdatedAt: time.Now()}
	return r.db.Save(&session).Error
}

// ClearToken removes the stored token.
func (r *SessionRepo) ClearToken() error {
	return r.db.Delete(&AdminSession{}, sessionRowID).Error
}
