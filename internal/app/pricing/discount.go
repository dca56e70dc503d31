// Package pricing содержит правила расчета персональной скидки.
package pricing

// PersonalDiscount возвращает скидку в процентах по тиражу
func PersonalDiscount(circulation int) int {
	switch {
	case circulation > 100000:
		return 20
	case circulation > 50000:
		return 10
	default:
		return 0
	}
}
