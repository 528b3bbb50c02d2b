package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Ayush99392003/resume-maker/internal/domain"
)

// SessionStore holds refinement proposals between the propose and apply
// requests. It is the only shared mutable state in the service; a single
// mutex is plenty at the expected contention level.
//
// Sessions expire after ttl (zero disables expiry). Expired entries are
// dropped lazily on read and opportunistically pruned on create, so the map
// cannot grow without bound under normal traffic.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.RefinementProposal
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*domain.RefinementProposal),
		ttl:      ttl,
		now:      time.Now,
	}
}

// CreateSession registers a fresh variant set and returns its id. Ids are
// UUIDs, so they never collide with live sessions.
func (s *SessionStore) CreateSession(originalLatex, sectionName string, variants []domain.DraftVariant) string {
	id := uuid.NewString()
	proposal := &domain.RefinementProposal{
		SessionID:     id,
		OriginalLatex: originalLatex,
		SectionName:   sectionName,
		Variants:      append([]domain.DraftVariant(nil), variants...),
		CreatedAt:     s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	s.sessions[id] = proposal
	return id
}

// GetSession returns a copy of the stored proposal. Callers never see the
// store's own record, so they cannot mutate session content.
func (s *SessionStore) GetSession(sessionID string) (*domain.RefinementProposal, error) {
	s.mu.RLock()
	proposal, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok || s.expired(proposal) {
		if ok {
			s.mu.Lock()
			delete(s.sessions, sessionID)
			s.mu.Unlock()
		}
		return nil, domain.ErrSessionNotFound
	}

	cp := *proposal
	cp.Variants = append([]domain.DraftVariant(nil), proposal.Variants...)
	return &cp, nil
}

// GetVariant looks up one variant inside a session.
func (s *SessionStore) GetVariant(sessionID, variantID string) (domain.DraftVariant, error) {
	proposal, err := s.GetSession(sessionID)
	if err != nil {
		return domain.DraftVariant{}, err
	}
	for _, v := range proposal.Variants {
		if v.ID == variantID {
			return v, nil
		}
	}
	return domain.DraftVariant{}, domain.ErrVariantNotFound
}

// Len reports the number of live sessions, expired entries excluded.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, p := range s.sessions {
		if !s.expired(p) {
			n++
		}
	}
	return n
}

func (s *SessionStore) expired(p *domain.RefinementProposal) bool {
	return s.ttl > 0 && s.now().Sub(p.CreatedAt) > s.ttl
}

func (s *SessionStore) pruneLocked() {
	if s.ttl <= 0 {
		return
	}
	for id, p := range s.sessions {
		if s.expired(p) {
			delete(s.sessions, id)
		}
	}
}
