package list_services

import (
	"context"

	"github.com/shidenryu/booking-service/internal/integrations/sheetsapi"
)

// CatalogSource интерфейс источника каталога активностей
type CatalogSource interface {
	GetServices(ctx context.Context) (*sheetsapi.ServicesResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
