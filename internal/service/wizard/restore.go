package wizard

import (
	"context"
	"time"

	"github.com/shidenryu/booking-service/internal/domain"
)

// Restore восстанавливает черновик сессии: дефолты ← снапшот ← URL-переопределения.
// Транзиентные поля принудительно сбрасываются независимо от содержимого
// снапшота. Применённые переопределения сразу персистятся.
func (s *Service) Restore(ctx context.Context, key string, ov Overrides) (*domain.Draft, error) {
	draft := s.load(ctx, key)

	// Свежая ссылка с датой всегда сильнее сохранённой даты:
	// выбор даты считается сделанным, гость попадает на выбор времени
	if ov.Date != "" {
		if _, err := time.Parse(domain.DateFormat, ov.Date); err != nil {
			return nil, ErrInvalidDate
		}
		draft.Date = ov.Date
		draft.CurrentStep = domain.StepTimeSelect
	}

	if ov.Preselect != "" {
		applyPreselect(draft, ov.Preselect)
	}

	s.save(ctx, key, draft)
	return draft, nil
}

// applyPreselect добавляет предвыбранную активность к восстановленному списку.
// Входящий id сохраняется всегда; при переполнении лимита существующий список
// усекается с начала (вытесняются самые старые выборы). Уже выбранный id — no-op.
func applyPreselect(d *domain.Draft, id string) {
	if d.HasActivity(id) {
		return
	}

	if overflow := len(d.Activities) - (domain.MaxActivities - 1); overflow > 0 {
		d.Activities = d.Activities[overflow:]
	}
	d.Activities = append(d.Activities, id)
}
