package bookingrequest

import "github.com/shidenryu/booking-service/pkg/dbmetrics"

// Переиспользуем интерфейс исполнителя из dbmetrics
// Поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
