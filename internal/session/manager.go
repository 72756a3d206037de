package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/habtamu/memberdesk/internal/app/models"
	"github.com/habtamu/memberdesk/internal/app/store"
	"github.com/habtamu/memberdesk/internal/pkg/apperrors"
	"github.com/habtamu/memberdesk/internal/pkg/logger"
	"github.com/habtamu/memberdesk/internal/upstream"
)

// State is one browser's console session: the upstream client whose
// cookie jar carries that browser's API credentials, the per-session
// domain stores, the cached identity projection, and pending
// notifications waiting for the next render.
type State struct {
	ID     string
	Client *upstream.Client
	Users  *store.UserStore
	Admins *store.AdminStore

	mu       sync.Mutex
	identity *models.Identity
	flashes  []store.Notification
	lastSeen time.Time
}

// Notify implements store.Notifier; outcomes queue until the next render.
func (s *State) Notify(n store.Notification) {
	s.mu.Lock()
	s.flashes = append(s.flashes, n)
	s.mu.Unlock()
}

// TakeNotifications drains the pending notifications.
func (s *State) TakeNotifications() []store.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.flashes
	s.flashes = nil
	return out
}

// SetIdentity caches the resolved identity projection.
func (s *State) SetIdentity(id *models.Identity) {
	s.mu.Lock()
	s.identity = id
	s.mu.Unlock()
}

// Identity returns the cached projection, nil before the first
// successful resolve.
func (s *State) Identity() *models.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

func (s *State) touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

func (s *State) idle() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Since(s.lastSeen)
}

// Manager is the in-memory registry of console sessions. Nothing is
// persisted: a restart signs everyone out, which is acceptable because
// the API-side session cookie is the real credential.
type Manager struct {
	upstreamURL     string
	upstreamTimeout time.Duration
	ttl             time.Duration

	mu       sync.Mutex
	sessions map[string]*State
}

// NewManager creates a session registry.
func NewManager(upstreamURL string, upstreamTimeout, ttl time.Duration) *Manager {
	return &Manager{
		upstreamURL:     upstreamURL,
		upstreamTimeout: upstreamTimeout,
		ttl:             ttl,
		sessions:        make(map[string]*State),
	}
}

// Create starts a fresh session with its own upstream client and stores.
func (m *Manager) Create() *State {
	client := upstream.NewClient(m.upstreamURL, m.upstreamTimeout)
	s := &State{
		ID:       uuid.New().String(),
		Client:   client,
		lastSeen: time.Now(),
	}
	s.Users = store.NewUserStore(client, s)
	s.Admins = store.NewAdminStore(client, s)

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session for an ID, refusing expired ones.
func (m *Manager) Get(id string) (*State, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	if s.idle() > m.ttl {
		m.Delete(id)
		return nil, apperrors.ErrSessionExpired
	}
	s.touch()
	return s, nil
}

// Delete drops a session.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// StartJanitor sweeps expired sessions until ctx is canceled.
func (m *Manager) StartJanitor(ctx context.Context) {
	interval := m.ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.sweep()
			}
		}
	}()
}

func (m *Manager) sweep() {
	m.mu.Lock()
	var expired []string
	for id, s := range m.sessions {
		if s.idle() > m.ttl {
			expired = append(expired, id)
		}
	}
	for _, id := range expired {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if len(expired) > 0 {
		logger.Debug().Int("count", len(expired)).Msg("Swept expired console sessions")
	}
}
