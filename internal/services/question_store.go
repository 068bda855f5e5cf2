package services

import (
	"sync"

	"github.com/google/uuid"

	"prepview/interview-api/internal/models"
)

// QuestionStore keeps generated question sets in process memory, keyed by a
// generation handle so concurrent generations cannot clobber each other. The
// handle of the most recent successful generation is tracked for the legacy
// "last generated" read. Contents are lost on restart.
type QuestionStore struct {
	mu     sync.RWMutex
	sets   map[uuid.UUID]*models.GeneratedQuestionSet
	latest uuid.UUID
}

func NewQuestionStore() *QuestionStore {
	return &QuestionStore{
		sets: make(map[uuid.UUID]*models.GeneratedQuestionSet),
	}
}

// Put stores a set under a fresh handle and marks it as the latest.
func (s *QuestionStore) Put(set *models.GeneratedQuestionSet) uuid.UUID {
	id := uuid.New()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets[id] = set
	s.latest = id

	return id
}

func (s *QuestionStore) Get(id uuid.UUID) (*models.GeneratedQuestionSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.sets[id]
	if !ok {
		return nil, ErrQuestionSetNotFound
	}
	return set, nil
}

func (s *QuestionStore) Latest() (*models.GeneratedQuestionSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.sets[s.latest]
	if !ok {
		return nil, ErrQuestionSetNotFound
	}
	return set, nil
}
