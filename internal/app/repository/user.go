package repository

import (
	"context"

	"book-office/internal/app/ds"
)

// Методы для пользователей (ORM)

func (r *Repository) GetUserByID(ctx context.Context, id uint) (*ds.User, error) {
	var user ds.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*ds.User, error) {
	var user ds.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *Repository) CreateUser(ctx context.Context, user *ds.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

// UserUpdate - частичное обновление профиля; nil = поле не меняется
type UserUpdate struct {
	Email        *string
	PasswordHash *string
}

func (r *Repository) UpdateUser(ctx context.Context, id uint, upd UserUpdate) error {
	fields := map[string]interface{}{}
	if upd.Email != nil {
		fields["email"] = *upd.Email
	}
	if upd.PasswordHash != nil {
		fields["password"] = *upd.PasswordHash
	}
	if len(fields) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).Model(&ds.User{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
