package wizard

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shidenryu/booking-service/internal/domain"
)

// Та же форма, что и на клиенте: <не-пробел-не-@>+ @ <...>+ . <...>+
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateGuestInfo чистая функция валидации полей шага Guest Info
// Возвращает map поле→сообщение; пустая map — данные валидны
func ValidateGuestInfo(d *domain.Draft) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(d.Nickname) == "" {
		errs["nickname"] = "Name is required"
	}

	switch {
	case strings.TrimSpace(d.Email) == "":
		errs["email"] = "Email is required"
	case !emailRe.MatchString(d.Email):
		errs["email"] = "Please enter a valid email"
	}

	if d.NumberOfGuests < domain.MinGuests || d.NumberOfGuests > domain.MaxGuests {
		errs["numberOfGuests"] = fmt.Sprintf("Number of guests must be %d–%d", domain.MinGuests, domain.MaxGuests)
	}

	if strings.TrimSpace(d.RoomNumber) == "" {
		errs["roomNumber"] = "Room number is required"
	}

	// Каждому гостю до перехода дальше должен быть назначен костюм
	if _, ok := errs["numberOfGuests"]; !ok {
		if len(d.Guests) < d.NumberOfGuests {
			errs["guests"] = "Please choose a costume size for every guest"
		} else {
			for i := 0; i < d.NumberOfGuests; i++ {
				g := d.Guests[i]
				if !g.Type.IsValid() || !domain.IsValidSizeFor(g.Type, g.Size) {
					errs["guests"] = "Please choose a costume size for every guest"
					break
				}
			}
		}
	}

	return errs
}
