package server

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piwi3910/tagcloud/internal/engine"
	"github.com/piwi3910/tagcloud/internal/model"
)

// session is one incremental layout. mu serializes every access to the
// Layouter and the placement list.
type session struct {
	id      string
	created time.Time

	mu         sync.Mutex
	layouter   *engine.Layouter
	placements []model.Placement
}

func newSession(settings model.LayoutSettings) *session {
	return &session{
		id:       uuid.NewString(),
		created:  time.Now().UTC(),
		layouter: engine.New(settings),
	}
}

// place lays out one word and records it.
func (s *session) place(w model.Word) (model.Placement, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rect, err := s.layouter.Place(w.Size)
	if err != nil {
		return model.Placement{}, len(s.placements), err
	}
	p := model.Placement{Word: w, Rect: rect}
	s.placements = append(s.placements, p)
	return p, len(s.placements), nil
}

// snapshot returns the session's current result and counters.
func (s *session) snapshot() (model.LayoutResult, engine.Stats) {
	s.mu.Lock()
	defer s.mu.Unlock()

	placements := make([]model.Placement, len(s.placements))
	copy(placements, s.placements)
	return model.LayoutResult{
		Center:     s.layouter.Center(),
		Placements: placements,
	}, s.layouter.Stats()
}

func (s *Server) addSession(sess *session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.id] = sess
}

func (s *Server) session(id string) (*session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *Server) removeSession(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

// SessionCount returns the number of live sessions.
func (s *Server) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
