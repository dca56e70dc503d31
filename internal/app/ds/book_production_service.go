package ds

// 1. Таблица услуг книжного производства
type BookProductionService struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"type:varchar(130);uniqueIndex;not null"`
	Description string `gorm:"type:text"`
	IsActive    bool   `gorm:"type:boolean;default:true;not null"` // false = логически удалена
	ImageURL    string `gorm:"type:varchar(255);default:''"`
	Price       string `gorm:"type:varchar(50)"` // строка для отображения: "от 3500 руб."
}

func (BookProductionService) TableName() string {
	return "book_production_services"
}
