package get_month_availability

import "errors"

var (
	// ErrInvalidMonth возвращается при месяце не в формате YYYY-MM
	// Единственная ошибка usecase: сбои источника деградируют до пустых
	// данных и наружу не выходят
	ErrInvalidMonth = errors.New("get_month_availability: invalid month format")
)
