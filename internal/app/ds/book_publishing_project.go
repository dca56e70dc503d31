package ds

import (
	"fmt"
	"time"

	"book-office/internal/app/pricing"
)

// MinCirculation - минимальный тираж для формирования проекта
const MinCirculation = 100

// CirculationError - тираж не указан или меньше минимального
type CirculationError struct {
	Circulation *int
}

func (e *CirculationError) Error() string {
	if e.Circulation == nil {
		return "circulation is required"
	}
	return fmt.Sprintf("circulation must be at least %d, got %d", MinCirculation, *e.Circulation)
}

// 2. Таблица проектов (заявок)
type BookPublishingProject struct {
	ID                 uint          `gorm:"primaryKey"`
	Status             ProjectStatus `gorm:"type:varchar(10);not null;default:'DRAFT'"`
	CreationDatetime   time.Time     `gorm:"autoCreateTime;not null"`
	FormationDatetime  *time.Time    `gorm:"default:null"` // выставляется при формировании
	CompletionDatetime *time.Time    `gorm:"default:null"` // выставляется менеджером
	Format             BookFormat    `gorm:"type:varchar(10);not null;default:'A4'"`
	Circulation        *int          `gorm:"default:null"`
	// один черновик на заказчика: частичный уникальный индекс
	CustomerID       uint  `gorm:"not null;index;uniqueIndex:idx_single_draft_per_customer,where:status = 'DRAFT'"`
	ManagerID        *uint `gorm:"default:null"`
	PersonalDiscount *int  `gorm:"default:null"`

	Customer User  `gorm:"foreignKey:CustomerID"`
	Manager  *User `gorm:"foreignKey:ManagerID"`
}

func (BookPublishingProject) TableName() string {
	return "book_publishing_projects"
}

// OwnedBy сообщает, является ли пользователь заказчиком проекта
func (p *BookPublishingProject) OwnedBy(userID uint) bool {
	return p.CustomerID == userID
}

// Form переводит DRAFT -> FORMED
func (p *BookPublishingProject) Form(now time.Time) error {
	if err := p.Status.CanTransitionTo(StatusFormed); err != nil {
		return err
	}
	if p.Circulation == nil || *p.Circulation < MinCirculation {
		return &CirculationError{Circulation: p.Circulation}
	}
	p.Status = StatusFormed
	p.FormationDatetime = &now
	return nil
}

// Resolve переводит FORMED -> COMPLETED/REJECTED и считает персональную скидку
func (p *BookPublishingProject) Resolve(to ProjectStatus, managerID uint, now time.Time) error {
	if !to.IsResolution() {
		return &TransitionError{From: p.Status, To: to}
	}
	if err := p.Status.CanTransitionTo(to); err != nil {
		return err
	}

	discount := 0
	if p.Circulation != nil {
		discount = pricing.PersonalDiscount(*p.Circulation)
	}

	p.Status = to
	p.CompletionDatetime = &now
	p.ManagerID = &managerID
	p.PersonalDiscount = &discount
	return nil
}

// Delete - логическое удаление черновика
func (p *BookPublishingProject) Delete() error {
	if err := p.Status.CanTransitionTo(StatusDeleted); err != nil {
		return err
	}
	p.Status = StatusDeleted
	return nil
}
