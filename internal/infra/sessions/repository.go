package sessions

import (
	"sync"
	"time"

	"github.com/sattis-studio/booking-web/internal/domain"
)

// Repository in-memory репозиторий сессий мастера записи.
// Сессии короткоживущие и не переживают рестарт процесса: постоянное
// хранилище принадлежит backend, приложение держит только ход мастера.
// Срок жизни скользящий — каждое обращение продлевает сессию на ttl.
type Repository struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.RWMutex
	sessions map[string]*entry
}

type entry struct {
	session   domain.WizardSession
	expiresAt time.Time
}

// NewRepository создает репозиторий с указанным сроком жизни сессий
func NewRepository(ttl time.Duration) *Repository {
	return &Repository{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*entry),
	}
}

// Save сохраняет сессию (создание или обновление) и продлевает срок жизни
func (r *Repository) Save(session *domain.WizardSession) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID] = &entry{
		session:   *session,
		expiresAt: r.now().Add(r.ttl),
	}
}

// Get возвращает копию сессии по id и продлевает её срок жизни
func (r *Repository) Get(id string) (*domain.WizardSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok || r.now().After(e.expiresAt) {
		return nil, ErrSessionNotFound
	}

	e.expiresAt = r.now().Add(r.ttl)
	session := e.session
	return &session, nil
}

// Delete удаляет сессию
func (r *Repository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Len возвращает количество живых сессий
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	now := r.now()
	for _, e := range r.sessions {
		if !now.After(e.expiresAt) {
			count++
		}
	}
	return count
}

// CleanupLoop периодически удаляет истёкшие сессии до закрытия stop
func (r *Repository) CleanupLoop(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.purgeExpired()
		case <-stop:
			return
		}
	}
}

func (r *Repository) purgeExpired() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for id, e := range r.sessions {
		if now.After(e.expiresAt) {
			delete(r.sessions, id)
		}
	}
}
