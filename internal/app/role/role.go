package role

import "book-office/internal/app/ds"

type Role int

const (
	Anonymous Role = iota // без сессии
	Customer              // авторизованный заказчик
	Staff                 // сотрудник (менеджер)
)

func (r Role) String() string {
	switch r {
	case Customer:
		return "customer"
	case Staff:
		return "staff"
	default:
		return "anonymous"
	}
}

// Of классифицирует принципала
func Of(user *ds.User) Role {
	switch {
	case user == nil:
		return Anonymous
	case user.IsStaff:
		return Staff
	default:
		return Customer
	}
}
