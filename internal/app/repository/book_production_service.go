package repository

import (
	"context"
	"strings"

	"book-office/internal/app/ds"
)

// Методы для работы с услугами

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListServices - активные услуги, название которых начинается с prefix (без учета регистра)
func (r *Repository) ListServices(ctx context.Context, prefix string) ([]ds.BookProductionService, error) {
	var services []ds.BookProductionService
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND title ILIKE ?", true, likeEscaper.Replace(prefix)+"%").
		Order("id").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

// GetService возвращает только активную услугу
func (r *Repository) GetService(ctx context.Context, id uint) (*ds.BookProductionService, error) {
	var service ds.BookProductionService
	err := r.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&service).Error
	if err != nil {
		return nil, translate(err)
	}
	return &service, nil
}

func (r *Repository) CreateService(ctx context.Context, service *ds.BookProductionService) error {
	service.IsActive = true
	return translate(r.db.WithContext(ctx).Create(service).Error)
}

// ServiceUpdate - частичное обновление услуги; nil = поле не меняется
type ServiceUpdate struct {
	Title       *string
	Description *string
	Price       *string
}

func (r *Repository) UpdateService(ctx context.Context, id uint, upd ServiceUpdate) error {
	fields := map[string]interface{}{}
	if upd.Title != nil {
		fields["title"] = *upd.Title
	}
	if upd.Description != nil {
		fields["description"] = *upd.Description
	}
	if upd.Price != nil {
		fields["price"] = *upd.Price
	}

	if len(fields) == 0 {
		_, err := r.GetService(ctx, id)
		return err
	}

	res := r.db.WithContext(ctx).Model(&ds.BookProductionService{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(fields)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeactivateService - логическое удаление: is_active=false и сброс картинки
func (r *Repository) DeactivateService(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&ds.BookProductionService{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]interface{}{
			"is_active": false,
			"image_url": "",
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) SetServiceImage(ctx context.Context, id uint, imageURL string) error {
	res := r.db.WithContext(ctx).Model(&ds.BookProductionService{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("image_url", imageURL)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
