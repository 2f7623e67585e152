package progression

import (
	"fmt"
	"sync"

	"github.com/RdoLimaJunior/cosmus/internal/kvstore"
)

// RankUp reports a rank transition caused by an XP award.
type RankUp struct {
	From Rank
	To   Rank
}

// Store owns the durable progression state: the XP ledger, the earned
// badge set, the completed-module set and the starmap favorites. Every
// mutation persists before it returns.
//
// Mutations are serialized by a mutex so the "one notification per
// qualifying transition" guarantee survives a move to a multi-user host.
type Store struct {
	mu        sync.Mutex
	kv        kvstore.Store
	totalXP   int
	earned    []string
	completed []string
	favorites []string
}

// NewStore loads progression state from kv. Missing or corrupt entries
// fall back to zero values; a broken ledger must never prevent startup.
func NewStore(kv kvstore.Store) *Store {
	s := &Store{kv: kv}
	_, _ = kv.Get(kvstore.KeyXP, &s.totalXP)
	_, _ = kv.Get(kvstore.KeyBadges, &s.earned)
	_, _ = kv.Get(kvstore.KeyCompleted, &s.completed)
	_, _ = kv.Get(kvstore.KeyFavorites, &s.favorites)
	if s.totalXP < 0 {
		s.totalXP = 0
	}
	return s
}

// TotalXP returns the accumulated experience points.
func (s *Store) TotalXP() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalXP
}

// Level returns the level descriptor for the current XP total.
func (s *Store) Level() Level {
	return CalculateLevel(s.TotalXP())
}

// Rank returns the rank for the current level.
func (s *Store) Rank() Rank {
	return ResolveRank(s.Level().Level)
}

// AddXP adds amount to the ledger and persists the new total. It returns
// a non-nil RankUp when the award crossed a rank boundary.
//
// Negative amounts are a caller bug and are rejected. Repeated calls are
// additive by design: each call is a distinct earned reward.
func (s *Store) AddXP(amount int) (*RankUp, error) {
	if amount < 0 {
		return nil, fmt.Errorf("negative XP amount: %d", amount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	oldRank := ResolveRank(CalculateLevel(s.totalXP).Level)
	s.totalXP += amount
	newRank := ResolveRank(CalculateLevel(s.totalXP).Level)

	if err := s.kv.Put(kvstore.KeyXP, s.totalXP); err != nil {
		return nil, fmt.Errorf("persist XP ledger: %w", err)
	}

	if newRank.MinLevel > oldRank.MinLevel {
		return &RankUp{From: oldRank, To: newRank}, nil
	}
	return nil, nil
}

// EarnedBadges returns the ids of all earned badges.
func (s *Store) EarnedBadges() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.earned))
	copy(out, s.earned)
	return out
}

// HasBadge reports whether the badge id has been earned.
func (s *Store) HasBadge(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return contains(s.earned, id)
}

// EarnBadge adds id to the earned set and persists it. Earning an
// already-earned badge is a no-op: badges are one-time-earnable.
func (s *Store) EarnBadge(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if contains(s.earned, id) {
		return nil
	}
	s.earned = append(s.earned, id)
	if err := s.kv.Put(kvstore.KeyBadges, s.earned); err != nil {
		return fmt.Errorf("persist earned badges: %w", err)
	}
	return nil
}

// CompletedModules returns the number of completed study modules.
func (s *Store) CompletedModules() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.completed)
}

// IsCompleted reports whether the module id has been completed.
func (s *Store) IsCompleted(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return contains(s.completed, id)
}

// CompleteModule marks a module completed and reports whether this was
// the first completion. Repeat completions persist nothing.
func (s *Store) CompleteModule(id string) (first bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if contains(s.completed, id) {
		return false, nil
	}
	s.completed = append(s.completed, id)
	if err := s.kv.Put(kvstore.KeyCompleted, s.completed); err != nil {
		return false, fmt.Errorf("persist completed modules: %w", err)
	}
	return true, nil
}

// Favorites returns the favorited body ids.
func (s *Store) Favorites() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.favorites))
	copy(out, s.favorites)
	return out
}

// IsFavorite reports whether the body id is favorited.
func (s *Store) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return contains(s.favorites, id)
}

// ToggleFavorite flips the favorite state of id and reports the new state.
func (s *Store) ToggleFavorite(id string) (favorited bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if contains(s.favorites, id) {
		next := s.favorites[:0]
		for _, f := range s.favorites {
			if f != id {
				next = append(next, f)
			}
		}
		s.favorites = next
		favorited = false
	} else {
		s.favorites = append(s.favorites, id)
		favorited = true
	}

	if err := s.kv.Put(kvstore.KeyFavorites, s.favorites); err != nil {
		return favorited, fmt.Errorf("persist favorites: %w", err)
	}
	return favorited, nil
}

// Reset wipes all progression state, in memory and in storage.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalXP = 0
	s.earned = nil
	s.completed = nil
	s.favorites = nil

	for _, key := range []string{
		kvstore.KeyXP, kvstore.KeyBadges, kvstore.KeyCompleted, kvstore.KeyFavorites,
	} {
		if err := s.kv.Delete(key); err != nil {
			return fmt.Errorf("reset %s: %w", key, err)
		}
	}
	return nil
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
