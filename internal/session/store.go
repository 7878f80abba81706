// File path: internal/session/store.go
package session

import (
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/bluslide/namegallery/internal/attention"
	"github.com/bluslide/namegallery/internal/catalog"
)

const (
	defaultTTL    = 2 * time.Hour
	sweepInterval = 10 * time.Minute
)

var ErrNotFound = errors.New("session not found")

// Session is the server-side mirror of one browsing session. The canonical
// copy round-trips through the client; this mirror only exists so the
// passive-signal flow and the session endpoints can work without the client
// resending the full gallery, and it expires on its own.
type Session struct {
	ID        string             `json:"id"`
	Challenge string             `json:"challenge"`
	Gallery   catalog.Catalog    `json:"originalGallery"`
	Hybrids   []catalog.Concept  `json:"hybridGallery,omitempty"`
	Signals   *attention.Signals `json:"attentionData,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}

// Store is an ephemeral TTL cache of sessions. Nothing here survives a
// restart; durable storage is deliberately out of scope.
type Store struct {
	cache *gocache.Cache
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{cache: gocache.New(ttl, sweepInterval)}
}

func (s *Store) Put(sess Session) {
	s.cache.Set(sess.ID, sess, gocache.DefaultExpiration)
}

func (s *Store) Get(id string) (Session, error) {
	value, ok := s.cache.Get(id)
	if !ok {
		return Session{}, ErrNotFound
	}
	sess, ok := value.(Session)
	if !ok {
		return Session{}, ErrNotFound
	}
	return sess, nil
}

// SaveHybrids attaches a hybrid gallery to an existing session. Unknown ids
// are ignored; the client still holds the authoritative copy.
func (s *Store) SaveHybrids(id string, hybrids []catalog.Concept) {
	sess, err := s.Get(id)
	if err != nil {
		return
	}
	sess.Hybrids = hybrids
	s.Put(sess)
}

// SaveSignals records the latest attention snapshot for a session.
func (s *Store) SaveSignals(id string, signals attention.Signals) {
	sess, err := s.Get(id)
	if err != nil {
		return
	}
	sess.Signals = &signals
	s.Put(sess)
}
