package ratelimit

import (
	"strings"
	"sync"
	"time"
)

// Result результат проверки лимита
type Result struct {
	Allowed   bool
	Remaining int
}

// Store абстракция счетчика с атомарной операцией check-and-increment
// Позволяет заменить in-memory реализацию на внешний счетчик (например, Redis)
// без изменения логики вызывающего кода
type Store interface {
	Check(identifier string, maxRequests int, window time.Duration) Result
}

type record struct {
	count         int
	windowResetAt time.Time
}

// MemoryStore in-memory реализация Store
// Состояние живет только в памяти процесса: при рестарте счетчики сбрасываются,
// лимитер "открывается" (fail open) — вызывающий код к этому толерантен
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]*record
	now     func() time.Time
}

// NewMemoryStore создает новый in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]*record),
		now:     time.Now,
	}
}

// Check атомарно инкрементирует счетчик идентификатора и сравнивает с лимитом
// Окно фиксированное: по истечении windowResetAt счетчик сбрасывается
func (s *MemoryStore) Check(identifier string, maxRequests int, window time.Duration) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.prune(now)

	rec, ok := s.records[identifier]
	if !ok || now.After(rec.windowResetAt) {
		s.records[identifier] = &record{
			count:         1,
			windowResetAt: now.Add(window),
		}
		return Result{Allowed: true, Remaining: maxRequests - 1}
	}

	rec.count++
	if rec.count > maxRequests {
		return Result{Allowed: false, Remaining: 0}
	}

	return Result{Allowed: true, Remaining: maxRequests - rec.count}
}

// prune удаляет записи с истекшим окном, чтобы карта не росла бесконечно
// Вызывается под мьютексом из Check
func (s *MemoryStore) prune(now time.Time) {
	for id, rec := range s.records {
		if now.After(rec.windowResetAt) {
			delete(s.records, id)
		}
	}
}

// IsLocal возвращает true для локальных идентификаторов (loopback-адресов)
// Локальные запросы не лимитируются — это осознанное исключение для разработки,
// вызывающий код обязан залогировать факт обхода лимита
func IsLocal(identifier string) bool {
	host := identifier
	if i := strings.IndexByte(identifier, '|'); i >= 0 {
		host = identifier[:i]
	}
	return host == "127.0.0.1" || host == "::1" || host == "localhost"
}

// Identifier собирает идентификатор лимита из адреса клиента и действия
// ("127.0.0.1|create_reservation") — лимиты разных действий считаются раздельно
func Identifier(clientIP, action string) string {
	return clientIP + "|" + action
}
