package draftstore

import (
	"context"
	"sync"
)

// MemoryStore хранит снапшоты в памяти процесса
// Используется в тестах и в деплоях без Redis; снапшоты не переживают рестарт
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore создает новый экземпляр in-memory хранилища черновиков
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// Get возвращает снапшот по ключу сессии; пустая строка — снапшота нет
func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[key], nil
}

// Set сохраняет снапшот
func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Clear удаляет снапшот
func (s *MemoryStore) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
