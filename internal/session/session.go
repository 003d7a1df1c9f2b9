package session

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"backend-pathpal/internal/poi"
	"backend-pathpal/internal/route"
	"backend-pathpal/internal/stats"
	"backend-pathpal/internal/stream"

	"github.com/google/uuid"
)

type State string

const (
	StateSelectingMode  State = "selecting_mode"
	StateSelectingRoute State = "selecting_route"
	StateRouteActive    State = "route_active"
	StateRouteCompleted State = "route_completed"
)

var (
	ErrNotFound   = errors.New("session not found")
	ErrBadState   = errors.New("action not allowed in current state")
	ErrNotOnRoute = errors.New("poi is not on the active route")
)

var nowFn = time.Now

// Session is one traversal of a route. It lives in memory only; nothing
// here survives a process restart.
type Session struct {
	ID          string               `json:"id"`
	UserID      string               `json:"user_id"`
	State       State                `json:"state"`
	Mode        poi.Mode             `json:"mode,omitempty"`
	Route       route.Route          `json:"route,omitempty"`
	CheckIns    map[string]time.Time `json:"check_ins"`
	Points      int                  `json:"points"`
	StartedAt   time.Time            `json:"started_at,omitempty"`
	CompletedAt time.Time            `json:"completed_at,omitempty"`
}

func (s Session) checkedInAll() bool {
	for _, stop := range s.Route.Resolve() {
		if _, ok := s.CheckIns[stop.Name]; !ok {
			return false
		}
	}
	return true
}

// Recorder receives check-in and completion facts. Failures are logged
// and never alter in-memory session state.
type Recorder interface {
	RecordCheckIn(ctx context.Context, userID, poiName string, points int) error
	RecordCompletion(ctx context.Context, c stats.Completion) error
}

// Manager owns all live sessions. All mutation goes through its mutex.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	hub      *stream.Hub
	recorder Recorder
}

func NewManager(hub *stream.Hub, recorder Recorder) *Manager {
	return &Manager{
		sessions: map[string]*Session{},
		hub:      hub,
		recorder: recorder,
	}
}

// Start creates a fresh session in the mode-selection state.
func (m *Manager) Start(userID string) Session {
	s := &Session{
		ID:       uuid.NewString(),
		UserID:   userID,
		State:    StateSelectingMode,
		CheckIns: map[string]time.Time{},
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return *s
}

// ChooseMode moves a session from mode selection to route selection.
func (m *Manager) ChooseMode(id string, mode poi.Mode) (Session, error) {
	if !mode.Valid() {
		return Session{}, errors.New("mode must be walk or wheels")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	if s.State != StateSelectingMode {
		return Session{}, ErrBadState
	}
	s.Mode = mode
	s.State = StateSelectingRoute
	return *s, nil
}

// StartRoute commits the session to a route: empty check-in set, start
// timestamp, active state.
func (m *Manager) StartRoute(id string, r route.Route) (Session, error) {
	if !r.Valid() {
		return Session{}, errors.New("route must have a valid mode and in-range stops")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	if s.State != StateSelectingRoute {
		return Session{}, ErrBadState
	}
	if r.Mode != s.Mode {
		return Session{}, errors.New("route mode does not match session mode")
	}

	s.Route = r
	s.CheckIns = map[string]time.Time{}
	s.Points = 0
	s.StartedAt = nowFn()
	s.CompletedAt = time.Time{}
	s.State = StateRouteActive
	return *s, nil
}

// CheckIn marks a POI on the active route as visited. Re-checking an
// already visited POI is a no-op; points accrue exactly once per POI.
// When the check-in set covers the route the session completes, the
// route's bonus is applied once, and completion never re-fires.
func (m *Manager) CheckIn(ctx context.Context, id, poiName string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	if s.State != StateRouteActive && s.State != StateRouteCompleted {
		return Session{}, ErrBadState
	}

	var stop *poi.POI
	for _, p := range s.Route.Resolve() {
		if p.Name == poiName {
			p := p
			stop = &p
			break
		}
	}
	if stop == nil {
		return Session{}, ErrNotOnRoute
	}

	if _, already := s.CheckIns[poiName]; already {
		return *s, nil
	}
	// Completed sessions accept no new check-ins; nothing on the route is
	// left unvisited anyway once completion has fired.
	if s.State == StateRouteCompleted {
		return *s, nil
	}

	s.CheckIns[poiName] = nowFn()
	s.Points += stop.Points

	if m.recorder != nil {
		if err := m.recorder.RecordCheckIn(ctx, s.UserID, poiName, stop.Points); err != nil {
			log.Printf("record check-in failed: %v", err)
		}
	}
	m.broadcast(s.ID, "checkin", *s, poiName)

	if s.checkedInAll() {
		s.CompletedAt = nowFn()
		s.Points += s.Route.BonusPoints
		s.State = StateRouteCompleted

		if m.recorder != nil {
			metrics := route.CalculateMetrics(s.Route)
			c := stats.Completion{
				UserID:          s.UserID,
				RouteID:         s.Route.ID,
				RouteName:       s.Route.Name,
				Mode:            string(s.Route.Mode),
				DistanceMiles:   metrics.DistanceMiles,
				DurationMinutes: int(s.CompletedAt.Sub(s.StartedAt).Minutes()),
				Points:          s.Points,
				BonusPoints:     s.Route.BonusPoints,
			}
			if err := m.recorder.RecordCompletion(ctx, c); err != nil {
				log.Printf("record completion failed: %v", err)
			}
		}
		m.broadcast(s.ID, "completed", *s, "")
	}

	return *s, nil
}

// Get returns a snapshot of a session.
func (m *Manager) Get(id string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return *s, nil
}

// Reset discards traversal state. A completed session goes back to route
// selection, or all the way to mode selection when toModeSelection is set.
func (m *Manager) Reset(id string, toModeSelection bool) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}

	s.Route = route.Route{}
	s.CheckIns = map[string]time.Time{}
	s.Points = 0
	s.StartedAt = time.Time{}
	s.CompletedAt = time.Time{}
	if toModeSelection {
		s.Mode = ""
		s.State = StateSelectingMode
	} else {
		s.State = StateSelectingRoute
	}
	return *s, nil
}

type event struct {
	Type    string  `json:"type"`
	Session Session `json:"session"`
	POI     string  `json:"poi,omitempty"`
}

func (m *Manager) broadcast(sessionID, kind string, snapshot Session, poiName string) {
	if m.hub == nil {
		return
	}
	payload, _ := json.Marshal(event{Type: kind, Session: snapshot, POI: poiName})
	m.hub.Broadcast(sessionID, payload)
}
