package repository

import (
	"context"
	"time"

	"book-office/internal/app/ds"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Методы для работы с проектами

// ProjectFilter - фильтры списка проектов. CustomerID != nil ограничивает
// выборку проектами одного заказчика.
type ProjectFilter struct {
	Status         *ds.ProjectStatus
	FormationStart *time.Time
	FormationEnd   *time.Time
	CustomerID     *uint
}

// FindDraft возвращает черновик заказчика или ErrNotFound
func (r *Repository) FindDraft(ctx context.Context, customerID uint) (*ds.BookPublishingProject, error) {
	var project ds.BookPublishingProject
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND status = ?", customerID, ds.StatusDraft).
		First(&project).Error
	if err != nil {
		return nil, translate(err)
	}
	return &project, nil
}

// GetOrCreateDraft атомарно находит или создает черновик заказчика.
// Гонку разрешает частичный уникальный индекс idx_single_draft_per_customer.
func (r *Repository) GetOrCreateDraft(ctx context.Context, customerID uint) (*ds.BookPublishingProject, error) {
	var project ds.BookPublishingProject

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		draft := ds.BookPublishingProject{
			Status:     ds.StatusDraft,
			Format:     ds.FormatA4,
			CustomerID: customerID,
		}
		err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:     []clause.Column{{Name: "customer_id"}},
			TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: "status = 'DRAFT'"}}},
			DoNothing:   true,
		}).Create(&draft).Error
		if err != nil {
			return err
		}

		return tx.Where("customer_id = ? AND status = ?", customerID, ds.StatusDraft).
			First(&project).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &project, nil
}

func (r *Repository) ListProjects(ctx context.Context, f ProjectFilter) ([]ds.BookPublishingProject, error) {
	q := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Manager").
		Where("status <> ?", ds.StatusDeleted)

	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.CustomerID != nil {
		q = q.Where("customer_id = ?", *f.CustomerID)
	}
	if f.FormationStart != nil {
		q = q.Where("formation_datetime >= ?", *f.FormationStart)
	}
	if f.FormationEnd != nil {
		q = q.Where("formation_datetime <= ?", *f.FormationEnd)
	}

	var projects []ds.BookPublishingProject
	if err := q.Order("id").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject возвращает проект, если он не удален
func (r *Repository) GetProject(ctx context.Context, id uint) (*ds.BookPublishingProject, error) {
	var project ds.BookPublishingProject
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Manager").
		Where("id = ? AND status <> ?", id, ds.StatusDeleted).
		First(&project).Error
	if err != nil {
		return nil, translate(err)
	}
	return &project, nil
}

// ProjectUpdate - изменяемые заказчиком поля черновика
type ProjectUpdate struct {
	Format      *ds.BookFormat
	Circulation *int
}

// UpdateDraftProject меняет поля только у черновика
func (r *Repository) UpdateDraftProject(ctx context.Context, id uint, upd ProjectUpdate) error {
	fields := map[string]interface{}{}
	if upd.Format != nil {
		fields["format"] = *upd.Format
	}
	if upd.Circulation != nil {
		fields["circulation"] = *upd.Circulation
	}

	q := r.db.WithContext(ctx).Model(&ds.BookPublishingProject{}).
		Where("id = ? AND status = ?", id, ds.StatusDraft)

	if len(fields) == 0 {
		var count int64
		if err := q.Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return nil
	}

	res := q.Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveProjectTransition сохраняет результат перехода статуса.
// Обновление условное (compare-and-set по статусу from): если проект уже
// сменил статус в параллельном запросе, возвращается ErrNotFound.
func (r *Repository) SaveProjectTransition(ctx context.Context, project *ds.BookPublishingProject, from ds.ProjectStatus) error {
	res := r.db.WithContext(ctx).Model(&ds.BookPublishingProject{}).
		Where("id = ? AND status = ?", project.ID, from).
		Updates(map[string]interface{}{
			"status":              project.Status,
			"formation_datetime":  project.FormationDatetime,
			"completion_datetime": project.CompletionDatetime,
			"manager_id":          project.ManagerID,
			"personal_discount":   project.PersonalDiscount,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
