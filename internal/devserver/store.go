// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Twinlab

package devserver

import (
	"strings"
	"sync"
	"time"

	"github.com/twinlab/healthsync/models"
)

type userRecord struct {
	userID   int64
	login    string
	password string
	metadata map[string]any
	samples  int
}

// memoryStore is the dev server's in-memory user/profile database. The first
// login with an unknown login creates the account, so the companion can be
// exercised without a registration step.
type memoryStore struct {
	mu     sync.Mutex
	users  map[string]*userRecord
	byID   map[int64]*userRecord
	nextID int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:  make(map[string]*userRecord),
		byID:   make(map[int64]*userRecord),
		nextID: 1,
	}
}

// authenticate returns the user id for the credentials, creating the account
// on first use. A wrong password for an existing account fails.
func (s *memoryStore) authenticate(login, password string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user, ok := s.users[login]; ok {
		if user.password != password {
			return 0, ErrWrongPassword
		}
		return user.userID, nil
	}

	user := &userRecord{
		userID:   s.nextID,
		login:    login,
		password: password,
		metadata: make(map[string]any),
	}
	s.nextID++
	s.users[login] = user
	s.byID[user.userID] = user
	return user.userID, nil
}

// profile returns the login and a deep copy of the metadata document.
func (s *memoryStore) profile(userID int64) (string, map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[userID]
	if !ok {
		return "", nil, ErrNoUserFound
	}
	return user.login, deepCopy(user.metadata), nil
}

// patchMetadata applies dotted-path updates to the metadata document,
// creating intermediate objects as needed.
func (s *memoryStore) patchMetadata(userID int64, patch map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[userID]
	if !ok {
		return ErrNoUserFound
	}

	for path, value := range patch {
		setDotted(user.metadata, path, value)
	}
	return nil
}

// recordSamples counts an accepted upload batch.
func (s *memoryStore) recordSamples(userID int64, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[userID]
	if !ok {
		return ErrNoUserFound
	}
	user.samples += count
	return nil
}

// chunkComplete advances the backfill cursor. Only the chunk index exactly
// one past the stored cursor is accepted; anything else is a conflict, which
// makes duplicate or stale acknowledgments harmless to progress.
func (s *memoryStore) chunkComplete(userID int64, chunkIndex, totalChunks int, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[userID]
	if !ok {
		return ErrNoUserFound
	}

	current := -1
	if raw, ok := getDotted(user.metadata, "historical_sync.current_chunk"); ok {
		current = asInt(raw)
	}
	if chunkIndex != current+1 {
		return ErrChunkConflict
	}

	setDotted(user.metadata, "historical_sync.current_chunk", chunkIndex)
	setDotted(user.metadata, "historical_sync.retry_count", 0)
	setDotted(user.metadata, "historical_sync.last_updated", now.UTC().Format(time.RFC3339))
	if chunkIndex >= totalChunks-1 {
		setDotted(user.metadata, "historical_sync.status", string(models.HistoricalSyncCompleted))
	} else {
		setDotted(user.metadata, "historical_sync.status", string(models.HistoricalSyncInProgress))
	}
	return nil
}

func setDotted(doc map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	for _, part := range parts[:len(parts)-1] {
		child, ok := doc[part].(map[string]any)
		if !ok {
			child = make(map[string]any)
			doc[part] = child
		}
		doc = child
	}
	doc[parts[len(parts)-1]] = value
}

func getDotted(doc map[string]any, path string) (any, bool) {
	parts := strings.Split(path, ".")
	for _, part := range parts[:len(parts)-1] {
		child, ok := doc[part].(map[string]any)
		if !ok {
			return nil, false
		}
		doc = child
	}
	value, ok := doc[parts[len(parts)-1]]
	return value, ok
}

func deepCopy(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for key, value := range doc {
		if child, ok := value.(map[string]any); ok {
			out[key] = deepCopy(child)
			continue
		}
		out[key] = value
	}
	return out
}

// asInt tolerates the numeric representations a JSON round trip produces.
func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
