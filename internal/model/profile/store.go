package profile

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store exposes profile access for the suggestion engine and handlers.
type Store interface {
	GetOrCreate(userID string) UserProfile
	AppendHistory(userID string, text, action string)
}

// MemoryStore implements Store with a mutex-guarded map, suitable for the
// process-lifetime profiles this service keeps.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]UserProfile
}

// NewMemoryStore returns an empty in-memory profile store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profiles: make(map[string]UserProfile)}
}

// GetOrCreate returns the profile for userID, creating the default lazily.
// The write lock spans lookup and insert so at most one profile object is
// ever visible per identifier. The returned value is a copy; mutating it does
// not affect the stored profile.
func (s *MemoryStore) GetOrCreate(userID string) UserProfile {
	s.mu.RLock()
	p, ok := s.profiles[userID]
	s.mu.RUnlock()
	if ok {
		return copyProfile(p)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok = s.profiles[userID]; ok {
		return copyProfile(p)
	}
	p = DefaultProfile(userID)
	s.profiles[userID] = p
	return copyProfile(p)
}

// AppendHistory records one interaction on the user's profile. This is the
// only mutation path; concurrent readers see either the old or the new slice,
// never a partially written one.
func (s *MemoryStore) AppendHistory(userID string, text, action string) {
	entry := HistoryEntry{
		ID:        uuid.NewString(),
		Text:      text,
		Action:    action,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[userID]
	if !ok {
		p = DefaultProfile(userID)
	}
	p.History = append(p.History, entry)
	s.profiles[userID] = p
}

func copyProfile(p UserProfile) UserProfile {
	out := p
	out.PreferredCategories = append([]string(nil), p.PreferredCategories...)
	out.History = append([]HistoryEntry(nil), p.History...)
	out.DayCategories = copyStringListMap(p.DayCategories)
	out.TimeCategories = copyStringListMap(p.TimeCategories)
	return out
}

func copyStringListMap(in map[string][]string) map[string][]string {
	if in == nil {
		return nil
	}
	out := make(map[string][]string, len(in))
	for k, v := range in {
		out[k] = append([]string(nil), v...)
	}
	return out
}
