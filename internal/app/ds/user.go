package ds

// 4. Таблица пользователей
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"type:varchar(150);unique;not null"`
	Password string `gorm:"type:varchar(255);not null"` // bcrypt-хеш
	Email    string `gorm:"type:varchar(254)"`
	IsStaff  bool   `gorm:"type:boolean;default:false;not null"`
}

func (User) TableName() string {
	return "users"
}
