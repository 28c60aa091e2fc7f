package bookingrequests

import (
	"context"
	"errors"
	"fmt"

	requestRepo "github.com/shidenryu/booking-service/internal/infra/storage/bookingrequest"
	"github.com/shidenryu/booking-service/internal/service/bookingrequests/models"
)

// Service сервис для работы с архивом переданных заявок
type Service struct {
	requestRepo RequestRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса архива заявок
func NewService(requestRepo RequestRepository, logger Logger) *Service {
	return &Service{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

// GetByID получает архивную заявку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RequestResponse, error) {
	s.logger.Info("GetByID: fetching booking request id=%d", id)

	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			s.logger.Warn("GetByID: booking request id=%d not found", id)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("GetByID: repository error for request id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking request id=%d", id)
	return models.FromDomainRequest(req), nil
}

// List получает архив заявок с фильтрацией по периоду и исходу передачи
//
// Примеры использования:
// - Все заявки: List(ctx, &ListRequestsRequest{})
// - Заявки на дату: StartDate и EndDate указывают на одну дату
// - Только конфликты слотов: RelayStatus = "conflict"
func (s *Service) List(ctx context.Context, req *models.ListRequestsRequest) (*models.RequestListResponse, error) {
	logMsg := "List: fetching booking requests"
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", *req.StartDate, *req.EndDate)
	}
	if req.RelayStatus != nil {
		logMsg += fmt.Sprintf(", relayStatus=%s", *req.RelayStatus)
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	requests, err := s.requestRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d booking requests", len(requests))
	return models.FromDomainRequestList(requests), nil
}
