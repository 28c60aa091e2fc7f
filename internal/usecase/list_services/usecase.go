package list_services

import (
	"context"
	"sort"

	"github.com/shidenryu/booking-service/internal/domain"
)

// Response модель ответа со списком активностей
type Response struct {
	Services []domain.Service
	Fallback bool // true, если отдан встроенный каталог
}

// UseCase use case получения каталога активностей
type UseCase struct {
	source CatalogSource
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(source CatalogSource, logger Logger) *UseCase {
	return &UseCase{
		source: source,
		logger: logger,
	}
}

// Execute возвращает опубликованный каталог, упорядоченный по displayOrder.
// Пустой каталог и любой сбой источника деградируют до встроенного списка,
// чтобы мастер бронирования оставался рабочим.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	raw, err := uc.source.GetServices(ctx)
	if err != nil {
		uc.logger.Error("ListServices: source failed, serving fallback catalog: %v", err)
		return fallbackResponse(), nil
	}

	if len(raw.Services) == 0 {
		uc.logger.Warn("ListServices: source returned empty catalog, serving fallback")
		return fallbackResponse(), nil
	}

	services := make([]domain.Service, len(raw.Services))
	copy(services, raw.Services)
	sort.SliceStable(services, func(i, j int) bool {
		return services[i].DisplayOrder < services[j].DisplayOrder
	})

	uc.logger.Info("ListServices: served %d services", len(services))
	return &Response{Services: services}, nil
}

func fallbackResponse() *Response {
	return &Response{
		Services: domain.FallbackServices(),
		Fallback: true,
	}
}
