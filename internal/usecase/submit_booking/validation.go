package submit_booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shidenryu/booking-service/internal/domain"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateRequest валидирует заявку теми же правилами, что и мастер;
// повторная серверная проверка не доверяет клиенту
func validateRequest(req *Request) []string {
	var errs []string

	if req.Date == "" {
		errs = append(errs, "Date is required")
	} else if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		errs = append(errs, "Date must be formatted as YYYY-MM-DD")
	}

	if !domain.IsSlotRange(req.TimeSlot) {
		errs = append(errs, "Time slot must be one of: "+strings.Join(domain.SlotRanges, ", "))
	}

	if len(req.Activities) != domain.MaxActivities {
		errs = append(errs, fmt.Sprintf("Exactly %d activities must be selected", domain.MaxActivities))
	} else if hasDuplicates(req.Activities) {
		errs = append(errs, "Activities must be unique")
	}

	if strings.TrimSpace(req.Nickname) == "" {
		errs = append(errs, "Guest name is required")
	}

	if !emailRe.MatchString(req.Email) {
		errs = append(errs, "Valid email is required")
	}

	if req.NumberOfGuests < domain.MinGuests || req.NumberOfGuests > domain.MaxGuests {
		errs = append(errs, fmt.Sprintf("Number of guests must be between %d and %d", domain.MinGuests, domain.MaxGuests))
	} else if err := validateGuestSizes(req.GuestSizes, req.NumberOfGuests); err != "" {
		errs = append(errs, err)
	}

	if strings.TrimSpace(req.RoomNumber) == "" {
		errs = append(errs, "Room number is required")
	}

	if !req.AgreedToTerms {
		errs = append(errs, "You must agree to the terms and conditions")
	}

	return errs
}

func hasDuplicates(ids []string) bool {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}

// validateGuestSizes проверяет строку костюмов вида "Man-L,Woman-M":
// по одной записи на гостя, тип и размер из согласованных словарей
func validateGuestSizes(sizes string, numberOfGuests int) string {
	if sizes == "" {
		return "A costume size is required for every guest"
	}

	parts := strings.Split(sizes, ",")
	if len(parts) != numberOfGuests {
		return "A costume size is required for every guest"
	}

	for _, part := range parts {
		typ, size, ok := strings.Cut(part, "-")
		if !ok {
			return "Costume sizes must be formatted as Type-Size"
		}
		guestType := domain.GuestType(typ)
		// Kids-размеры сами содержат дефис: "Boy-Kids-M" режется на "Boy" + "Kids-M"
		if !guestType.IsValid() || !domain.IsValidSizeFor(guestType, size) {
			return "Unknown costume size: " + part
		}
	}

	return ""
}
