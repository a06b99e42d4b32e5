package session

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/meinhoongagan/pharmacy-portal/models"
)

// ErrNotFound is returned when a session does not exist or has expired.
var ErrNotFound = errors.New("session not found")

// Repository persists sessions.
type Repository interface {
	Load(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, s *models.Session) error
	Clear(ctx context.Context, id string) error
	ListActive(ctx context.Context, now time.Time) ([]models.Session, error)
}

// GormRepository stores sessions in the database.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Load(ctx context.Context, id string) (*models.Session, error) {
	var s models.Session
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *GormRepository) Save(ctx context.Context, s *models.Session) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *GormRepository) Clear(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Session{}, "id = ?", id).Error
}

// ListActive returns sessions that have not expired at now.
func (r *GormRepository) ListActive(ctx context.Context, now time.Time) ([]models.Session, error) {
	var sessions []models.Session
	err := r.db.WithContext(ctx).
		Where("expires_at > ?", now).
		Order("created_at").
		Find(&sessions).Error
	return sessions, err
}

// DeleteExpired removes sessions that expired before now.
func (r *GormRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&models.Session{})
	return res.RowsAffected, res.Error
}
