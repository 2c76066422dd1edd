package store

import (
	"sort"
	"sync"

	"botforge/internal/entity"
)

// Store owns the two process-wide mutable collections: the trigger list and
// the dataset map. All mutation goes through its methods; readers get
// copies, so matcher, renderer and the report generators always see a
// consistent in-memory state regardless of persistence lag.
type Store struct {
	mu       sync.RWMutex
	triggers []entity.Trigger
	datasets map[string]entity.Dataset
}

func New() *Store {
	return &Store{
		datasets: make(map[string]entity.Dataset),
	}
}

func (s *Store) AddTrigger(trigger entity.Trigger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.triggers = append(s.triggers, trigger)
}

// Triggers returns the triggers in insertion order.
func (s *Store) Triggers() []entity.Trigger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Trigger, len(s.triggers))
	copy(out, s.triggers)
	return out
}

func (s *Store) TriggerByID(id string) (entity.Trigger, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, trigger := range s.triggers {
		if trigger.ID == id {
			return trigger, true
		}
	}
	return entity.Trigger{}, false
}

func (s *Store) DeleteTrigger(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, trigger := range s.triggers {
		if trigger.ID == id {
			s.triggers = append(s.triggers[:i], s.triggers[i+1:]...)
			return true
		}
	}
	return false
}

// IncrementUsage bumps the match counter of exactly one trigger. Only the
// matcher calls this.
func (s *Store) IncrementUsage(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.triggers {
		if s.triggers[i].ID == id {
			s.triggers[i].Usage++
			return true
		}
	}
	return false
}

func (s *Store) TriggerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.triggers)
}

func (s *Store) PutDataset(name string, dataset entity.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datasets[name] = dataset
}

func (s *Store) Dataset(name string) (entity.Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dataset, ok := s.datasets[name]
	return dataset, ok
}

func (s *Store) DeleteDataset(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.datasets[name]; !ok {
		return false
	}
	delete(s.datasets, name)
	return true
}

func (s *Store) DatasetNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.datasets))
	for name := range s.datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Store) Datasets() map[string]entity.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]entity.Dataset, len(s.datasets))
	for name, dataset := range s.datasets {
		out[name] = dataset
	}
	return out
}

func (s *Store) DatasetCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.datasets)
}

// Replace swaps in both collections wholesale. Used by backup import and
// snapshot restore on startup.
func (s *Store) Replace(triggers []entity.Trigger, datasets map[string]entity.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.triggers = make([]entity.Trigger, len(triggers))
	copy(s.triggers, triggers)

	s.datasets = make(map[string]entity.Dataset, len(datasets))
	for name, dataset := range datasets {
		s.datasets[name] = dataset
	}
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.triggers = nil
	s.datasets = make(map[string]entity.Dataset)
}
