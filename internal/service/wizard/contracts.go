package wizard

import "context"

// DraftStore порт хранилища снапшотов черновика
// Снапшот живёт под строковым ключом сессии; отсутствие значения — пустая строка
type DraftStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Clear(ctx context.Context, key string) error
}

// SubmissionSink порт внешней системы приёма бронирований
type SubmissionSink interface {
	Submit(ctx context.Context, req *SubmissionRequest) (*SubmissionResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
