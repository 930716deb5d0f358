// Package memstore provides an in-memory task store for the interactive CLI.
// Tasks are kept in a map keyed by id together with an explicit ordered index
// so listings are stable regardless of map iteration order.
package memstore

import (
	"sync"
	"time"

	"todopro-server/internal/domain/task"
)

// Store holds tasks in memory with monotonically increasing ids.
type Store struct {
	mu     sync.Mutex
	tasks  map[uint]task.Task
	order  []uint
	nextID uint
}

// New creates an empty store.
func New() *Store {
	return &Store{
		tasks:  make(map[uint]task.Task),
		nextID: 1,
	}
}

// Add inserts a new pending task and returns it with its assigned id.
func (s *Store) Add(title string, description *string) task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	t := task.Task{
		ID:          s.nextID,
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.tasks[t.ID] = t
	s.order = append(s.order, t.ID)
	s.nextID++
	return t
}

// Get returns the task with the given id.
func (s *Store) Get(id uint) (task.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	return t, ok
}

// All returns every task in insertion order.
func (s *Store) All() []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]task.Task, 0, len(s.order))
	for _, id := range s.order {
		if t, ok := s.tasks[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Update replaces the title and/or description of an existing task. Nil
// fields keep their current value.
func (s *Store) Update(id uint, title *string, description *string) (task.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return task.Task{}, false
	}
	if title != nil {
		t.Title = *title
	}
	if description != nil {
		t.Description = description
	}
	t.UpdatedAt = time.Now()
	s.tasks[id] = t
	return t, true
}

// SetCompleted flips the completion flag of an existing task.
func (s *Store) SetCompleted(id uint, completed bool) (task.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return task.Task{}, false
	}
	t.Completed = completed
	t.UpdatedAt = time.Now()
	s.tasks[id] = t
	return t, true
}

// Delete removes a task. It reports whether the task existed.
func (s *Store) Delete(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return false
	}
	delete(s.tasks, id)
	for i, ordered := range s.order {
		if ordered == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Len reports the number of stored tasks.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.tasks)
}
