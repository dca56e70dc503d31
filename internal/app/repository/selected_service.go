package repository

import (
	"context"

	"book-office/internal/app/ds"
)

// Методы для М-М связей (проект-услуга)

// AddSelectedService добавляет услугу в проект с тарифом BASE.
// Повторное добавление той же услуги возвращает ErrDuplicate.
func (r *Repository) AddSelectedService(ctx context.Context, projectID, serviceID uint) (*ds.SelectedService, error) {
	selected := ds.SelectedService{
		ProjectID: projectID,
		ServiceID: serviceID,
		Rate:      ds.RateBase,
	}
	if err := r.db.WithContext(ctx).Omit("Project", "Service").Create(&selected).Error; err != nil {
		return nil, translate(err)
	}
	return &selected, nil
}

// ListSelectedServices возвращает услуги проекта вместе с данными услуги
func (r *Repository) ListSelectedServices(ctx context.Context, projectID uint) ([]ds.SelectedService, error) {
	var selected []ds.SelectedService
	err := r.db.WithContext(ctx).
		Preload("Service").
		Where("project_id = ?", projectID).
		Order("id").
		Find(&selected).Error
	if err != nil {
		return nil, err
	}
	return selected, nil
}

// CountSelectedServices - количество записей в проекте
func (r *Repository) CountSelectedServices(ctx context.Context, projectID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ds.SelectedService{}).
		Where("project_id = ?", projectID).
		Count(&count).Error
	return count, err
}

func (r *Repository) UpdateSelectedServiceRate(ctx context.Context, projectID, serviceID uint, rate ds.Rate) (*ds.SelectedService, error) {
	res := r.db.WithContext(ctx).Model(&ds.SelectedService{}).
		Where("project_id = ? AND service_id = ?", projectID, serviceID).
		Update("rate", rate)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var selected ds.SelectedService
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND service_id = ?", projectID, serviceID).
		First(&selected).Error
	if err != nil {
		return nil, translate(err)
	}
	return &selected, nil
}

// DeleteSelectedService удаляет строку физически, в отличие от
// логического удаления услуг и проектов
func (r *Repository) DeleteSelectedService(ctx context.Context, projectID, serviceID uint) error {
	res := r.db.WithContext(ctx).
		Where("project_id = ? AND service_id = ?", projectID, serviceID).
		Delete(&ds.SelectedService{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
