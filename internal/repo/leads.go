package repo

import (
	"context"

	"github.com/aicad-labs/backend/internal/models"
)

func (r *GormRepo) CreateContactMessage(ctx context.Context, m *models.ContactMessage) error {
	return translate(r.DB.WithContext(ctx).Create(m).Error)
}

func (r *GormRepo) OnWaitlist(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.WaitlistEntry{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepo) AddToWaitlist(ctx context.Context, e *models.WaitlistEntry) error {
	return translate(r.DB.WithContext(ctx).Create(e).Error)
}
