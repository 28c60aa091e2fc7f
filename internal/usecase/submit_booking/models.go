package submit_booking

// Request модель заявки на бронирование
type Request struct {
	Date            string   // YYYY-MM-DD
	TimeSlot        string   // каноничный диапазон, например "16:00-17:30"
	Activities      []string // ровно 3 id активностей
	Nickname        string
	Email           string
	NumberOfGuests  int
	GuestSizes      string // "Man-L,Woman-M"
	RoomNumber      string
	SpecialRequests string
	AgreedToTerms   bool
}

// Response модель ответа принятой заявки
type Response struct {
	BookingID string // идентификатор, присвоенный внешней системой
	Message   string
}
