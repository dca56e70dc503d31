package repository

import (
	"errors"
	"fmt"

	"book-office/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	repo := &Repository{db: db}
	if err = repo.Migrate(); err != nil {
		return nil, err
	}

	return repo, nil
}

// NewWithDB оборачивает уже открытое соединение gorm
func NewWithDB(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate создает/обновляет все таблицы
func (r *Repository) Migrate() error {
	err := r.db.AutoMigrate(
		&ds.User{},
		&ds.BookProductionService{},
		&ds.BookPublishingProject{},
		&ds.SelectedService{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// translate приводит ошибки gorm к ошибкам репозитория
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	default:
		return err
	}
}
