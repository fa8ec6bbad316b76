package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/ai_translator/internal/models"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// UserRepo is the narrow surface the handlers are allowed to touch. The
// backing store is a keyed mapping from username to a fixed-field record,
// so point lookup and single insert are the only operations.
type UserRepo interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
}

type GormRepo struct {
	DB    *gorm.DB
	Table string
}

func (r *GormRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.DB.WithContext(ctx).Table(r.Table).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("user lookup: %w", err)
	}
	return &user, nil
}

func (r *GormRepo) Insert(ctx context.Context, user *models.User) error {
	var existing models.User
	err := r.DB.WithContext(ctx).Table(r.Table).Where("username = ?", user.Username).First(&existing).Error
	if err == nil {
		return ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("user exists check: %w", err)
	}
	if err := r.DB.WithContext(ctx).Table(r.Table).Create(user).Error; err != nil {
		return fmt.Errorf("user insert: %w", err)
	}
	return nil
}
