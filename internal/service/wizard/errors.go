package wizard

import "errors"

var (
	// ErrInvalidDate возвращается при дате не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("wizard: invalid date")

	// ErrInvalidSlot возвращается при неизвестном временном слоте
	ErrInvalidSlot = errors.New("wizard: invalid time slot")

	// ErrInvalidStep возвращается при переходе на несуществующий шаг
	ErrInvalidStep = errors.New("wizard: invalid step")

	// ErrActivitiesIncomplete возвращается при попытке уйти с шага выбора
	// активностей, пока не выбрано ровно три
	ErrActivitiesIncomplete = errors.New("wizard: exactly 3 experiences must be selected")

	// ErrGuestIndexOutOfRange возвращается при обращении к гостю за пределами
	// numberOfGuests
	ErrGuestIndexOutOfRange = errors.New("wizard: guest index out of range")

	// ErrInvalidGuestType возвращается при неизвестном типе гостя
	ErrInvalidGuestType = errors.New("wizard: invalid guest type")

	// ErrInvalidGuestSize возвращается, когда размер не входит в словарь
	// размеров для типа гостя
	ErrInvalidGuestSize = errors.New("wizard: invalid size for guest type")

	// ErrTermsNotAgreed возвращается при Submit без согласия с условиями
	// Отправка при этом не выполняется, состояние не меняется
	ErrTermsNotAgreed = errors.New("wizard: terms must be agreed before submission")

	// ErrSubmissionInFlight возвращается, когда отправка по этой сессии уже идёт
	ErrSubmissionInFlight = errors.New("wizard: submission already in flight")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("wizard: internal error")
)
