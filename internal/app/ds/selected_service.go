package ds

import (
	"database/sql/driver"
	"fmt"
)

// Rate - тариф выбранной услуги в проекте
type Rate string

const (
	RateBase         Rate = "BASE"
	RatePremium      Rate = "PREMIUM"
	RateProfessional Rate = "PROFESSIONAL"
)

func ParseRate(s string) (Rate, error) {
	switch r := Rate(s); r {
	case RateBase, RatePremium, RateProfessional:
		return r, nil
	}
	return "", fmt.Errorf("unknown rate %q", s)
}

func (r Rate) Value() (driver.Value, error) {
	return string(r), nil
}

func (r *Rate) Scan(src any) error {
	s, err := scanString(src)
	if err != nil {
		return err
	}
	parsed, err := ParseRate(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// 3. Таблица многие-ко-многим (проект-услуги)
type SelectedService struct {
	ID        uint `gorm:"primaryKey"`
	ProjectID uint `gorm:"not null;index;uniqueIndex:idx_project_service"`
	ServiceID uint `gorm:"not null;index;uniqueIndex:idx_project_service"`
	Rate      Rate `gorm:"type:varchar(20);not null;default:'BASE'"`

	Project BookPublishingProject `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Service BookProductionService `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}

func (SelectedService) TableName() string {
	return "selected_services"
}

func scanString(src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	}
	return "", fmt.Errorf("unsupported type %T", src)
}
