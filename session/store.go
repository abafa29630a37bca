package session

import (
	"context"
	"sync"

	"workmate/models"

	"go.uber.org/zap"
)

// AuthClient is the slice of the backend API the store needs. client.Client
// satisfies it.
type AuthClient interface {
	Login(ctx context.Context, email, password string, role models.Role) (*models.Identity, error)
	Register(ctx context.Context, reg models.Registration) (*models.Identity, error)
}

// Store is the single source of truth for who is logged in. It owns the
// identity: consumers get copies via Current or Subscribe and never mutate
// it directly. All mutation funnels through Login, Register, Logout, and
// Restore.
//
// Each Login/Register call takes a sequence token at issue time; a response
// that resolves after a newer operation was issued is discarded with
// ErrSuperseded, so overlapping auth calls cannot leave a stale identity in
// place. Logout also advances the sequence, cancelling in-flight logins.
type Store struct {
	api     AuthClient
	persist PersistentStore
	logger  *zap.Logger

	mu       sync.Mutex
	identity *models.Identity
	seq      uint64
	nextSub  int
	subs     map[int]func(*models.Identity)

	// persistMu serializes durable writes so a Save from an older commit
	// cannot land after a newer Logout's Clear.
	persistMu sync.Mutex
}

// NewStore creates an empty (unauthenticated) session store.
func NewStore(api AuthClient, persist PersistentStore, logger *zap.Logger) *Store {
	return &Store{
		api:     api,
		persist: persist,
		logger:  logger,
		subs:    make(map[int]func(*models.Identity)),
	}
}

// Restore attempts to re-establish the session persisted by a previous run.
// It never fails: corrupt, expired, or missing persisted state yields an
// empty session. No network call is made.
func (s *Store) Restore(ctx context.Context) *models.Identity {
	id, err := s.persist.Load(ctx)
	if err != nil {
		s.logger.Debug("session: discarding unreadable persisted session", zap.Error(err))
		s.persistMu.Lock()
		if clearErr := s.persist.Clear(ctx); clearErr != nil {
			s.logger.Warn("session: failed to clear persisted session", zap.Error(clearErr))
		}
		s.persistMu.Unlock()
		return nil
	}
	if id == nil {
		return nil
	}

	s.mu.Lock()
	s.identity = id
	cur := *id
	subs := s.snapshotSubs()
	s.mu.Unlock()

	s.notify(subs, &cur)
	return &cur
}

// Login authenticates with the backend and, on success, makes the returned
// identity current and persists it. On failure the prior session is left
// untouched and the error surfaces to the caller.
func (s *Store) Login(ctx context.Context, email, password string, role models.Role) (*models.Identity, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	op := s.begin()

	id, err := s.api.Login(ctx, email, password, role)
	if err != nil {
		return nil, err
	}
	return s.commit(ctx, op, id)
}

// Register creates an account and logs it in (auto-login semantics).
func (s *Store) Register(ctx context.Context, reg models.Registration) (*models.Identity, error) {
	if !reg.Role.Valid() {
		return nil, ErrInvalidRole
	}
	op := s.begin()

	id, err := s.api.Register(ctx, reg)
	if err != nil {
		return nil, err
	}
	return s.commit(ctx, op, id)
}

// Logout clears the session and its persisted copy. Calling it while
// already logged out is a no-op, not an error.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.seq++ // cancel any in-flight login/register
	wasEmpty := s.identity == nil
	s.identity = nil
	subs := s.snapshotSubs()
	s.mu.Unlock()

	s.persistMu.Lock()
	if err := s.persist.Clear(ctx); err != nil {
		s.logger.Warn("session: failed to clear persisted session", zap.Error(err))
	}
	s.persistMu.Unlock()

	if !wasEmpty {
		s.notify(subs, nil)
	}
}

// Current returns a copy of the present identity, or nil when
// unauthenticated. Pure read; safe to call before Restore completes.
func (s *Store) Current() *models.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil
	}
	cur := *s.identity
	return &cur
}

// Subscribe registers fn to be called with a copy of the identity after
// every session change (nil on logout). It returns an unsubscribe func.
func (s *Store) Subscribe(fn func(*models.Identity)) func() {
	s.mu.Lock()
	key := s.nextSub
	s.nextSub++
	s.subs[key] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, key)
		s.mu.Unlock()
	}
}

// begin issues a sequence token for a new auth operation.
func (s *Store) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// commit installs a successful auth response unless a newer operation was
// issued while this one was in flight.
func (s *Store) commit(ctx context.Context, op uint64, id *models.Identity) (*models.Identity, error) {
	s.mu.Lock()
	if op != s.seq {
		s.mu.Unlock()
		s.logger.Debug("session: discarding superseded auth response",
			zap.Uint64("op", op), zap.String("email", id.Email))
		return nil, ErrSuperseded
	}
	s.identity = id
	cur := *id
	subs := s.snapshotSubs()
	s.mu.Unlock()

	// The token is re-checked under persistMu so the durable copy cannot
	// drift from Current() when a Logout lands between the in-memory commit
	// and the Save. A failed durable save must not undo a successful login;
	// the session just won't survive a restart.
	s.persistMu.Lock()
	s.mu.Lock()
	current := op == s.seq
	s.mu.Unlock()
	if current {
		if err := s.persist.Save(ctx, cur); err != nil {
			s.logger.Warn("session: failed to persist session", zap.Error(err))
		}
	}
	s.persistMu.Unlock()

	s.notify(subs, &cur)
	return &cur, nil
}

// snapshotSubs copies the subscriber set; callers must hold mu.
func (s *Store) snapshotSubs() []func(*models.Identity) {
	subs := make([]func(*models.Identity), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return subs
}

// notify calls subscribers outside the lock, each with its own copy.
func (s *Store) notify(subs []func(*models.Identity), id *models.Identity) {
	for _, fn := range subs {
		if id == nil {
			fn(nil)
			continue
		}
		cur := *id
		fn(&cur)
	}
}
