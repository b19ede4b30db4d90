package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/config"
	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/filterengine"
	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/models"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const sessionTTL = 24 * time.Hour

// FilterSessionService holds one reconciler per storefront session. A
// client pushes its filter state in; the reconciler decides whether that
// push actually changed the committed state, and a change resets the
// session's page back to the first one. Committed states are written
// through to Redis best-effort so a restarted server can pick them up.
type FilterSessionService struct {
	mu       sync.Mutex
	sessions map[string]*filterSession
	redis    *redis.Client
}

type filterSession struct {
	rec  *filterengine.Reconciler
	page int
}

var (
	filterSessionService     *FilterSessionService
	filterSessionServiceOnce sync.Once
)

// GetFilterSessionService returns the process-wide session service.
func GetFilterSessionService() *FilterSessionService {
	filterSessionServiceOnce.Do(func() {
		filterSessionService = NewFilterSessionService(config.RedisClient)
	})
	return filterSessionService
}

// NewFilterSessionService builds a service; rdb may be nil, which disables
// persistence (tests).
func NewFilterSessionService(rdb *redis.Client) *FilterSessionService {
	return &FilterSessionService{
		sessions: make(map[string]*filterSession),
		redis:    rdb,
	}
}

// Push folds an externally owned filter state into the session. It returns
// the committed state, whether it changed, and the session's current page.
func (s *FilterSessionService) Push(sessionID string, external models.FilterState) (models.FilterState, bool, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	changed := sess.rec.SyncExternal(external)
	if changed {
		// Any filter change resets pagination to the first page.
		sess.page = 1
		s.persist(sessionID, sess.rec.State())
	}
	return sess.rec.State(), changed, sess.page
}

// Get returns the committed state and page for a session, creating an
// empty one (hydrated from Redis when available) on first sight.
func (s *FilterSessionService) Get(sessionID string) (models.FilterState, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	return sess.rec.State(), sess.page
}

// Clear resets the session's state to empty.
func (s *FilterSessionService) Clear(sessionID string) models.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	sess.rec.ClearAll()
	sess.page = 1
	s.persist(sessionID, sess.rec.State())
	return sess.rec.State()
}

// SetPage records the page a session is viewing.
func (s *FilterSessionService) SetPage(sessionID string, page int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	if page < 1 {
		page = 1
	}
	sess.page = page
	return sess.page
}

// session must be called with the lock held.
func (s *FilterSessionService) session(sessionID string) *filterSession {
	if sess, ok := s.sessions[sessionID]; ok {
		return sess
	}

	sess := &filterSession{
		rec:  filterengine.NewReconciler(filterengine.EnhancedConfig, filterengine.DerivePriceRange(nil, nil), nil),
		page: 1,
	}
	if state, ok := s.restore(sessionID); ok {
		sess.rec.SyncExternal(state)
	}
	s.sessions[sessionID] = sess
	return sess
}

// persist writes the committed state through to Redis. Failures are logged
// and ignored; the session stays correct in memory.
func (s *FilterSessionService) persist(sessionID string, state models.FilterState) {
	if s.redis == nil {
		return
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return
	}
	if err := s.redis.Set(config.Ctx, sessionKey(sessionID), payload, sessionTTL).Err(); err != nil {
		log.Warnf("[filter-session] persist failed for %s: %v", sessionID, err)
	}
}

func (s *FilterSessionService) restore(sessionID string) (models.FilterState, bool) {
	if s.redis == nil {
		return models.FilterState{}, false
	}
	payload, err := s.redis.Get(config.Ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		return models.FilterState{}, false
	}
	var state models.FilterState
	if err := json.Unmarshal(payload, &state); err != nil {
		log.Warnf("[filter-session] bad payload for %s: %v", sessionID, err)
		return models.FilterState{}, false
	}
	return state, true
}

func sessionKey(sessionID string) string {
	return "filter-session:" + sessionID
}
