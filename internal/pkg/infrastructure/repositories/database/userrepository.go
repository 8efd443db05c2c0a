package database

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (User, error)
	CreateUser(ctx context.Context, u User) error

	CreateSession(ctx context.Context, s Session) error
	GetSession(ctx context.Context, id string) (Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
	NextSessionExpiry(ctx context.Context) (time.Time, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(connect ConnectorFunc) (UserRepository, error) {
	impl, _, err := connect()
	if err != nil {
		return nil, err
	}

	err = impl.AutoMigrate(&User{}, &Session{})
	if err != nil {
		return nil, err
	}

	return &userRepository{
		db: impl,
	}, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	u := User{}

	err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, ErrNotFound
	}

	return u, err
}

func (r *userRepository) CreateUser(ctx context.Context, u User) error {
	u.Email = strings.ToLower(u.Email)
	return r.db.WithContext(ctx).Create(&u).Error
}

func (r *userRepository) CreateSession(ctx context.Context, s Session) error {
	return r.db.WithContext(ctx).Create(&s).Error
}

// GetSession returns ErrNotFound for unknown as well as expired sessions.
func (r *userRepository) GetSession(ctx context.Context, id string) (Session, error) {
	s := Session{}

	err := r.db.WithContext(ctx).Where("id = ? AND expires_at > ?", id, time.Now().UTC()).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Session{}, ErrNotFound
	}

	return s, err
}

func (r *userRepository) DeleteSession(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Session{}).Error
}

func (r *userRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at <= ?", now.UTC()).Delete(&Session{})
	return result.RowsAffected, result.Error
}

// NextSessionExpiry returns when the first of the stored sessions expires, or
// ErrNotFound if there are none.
func (r *userRepository) NextSessionExpiry(ctx context.Context) (time.Time, error) {
	s := Session{}

	err := r.db.WithContext(ctx).Order("expires_at").First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return time.Time{}, ErrNotFound
	}

	return s.ExpiresAt, err
}
