package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/its-jojoo/anagramdex/internal/adapter/storage"
	"github.com/its-jojoo/anagramdex/internal/core"
)

type Store struct {
	mu     sync.RWMutex
	now    func() time.Time
	seq    int
	groups map[core.Key][]core.Entry // each group sorted by Text
}

func New() *Store {
	return &Store{
		now:    time.Now,
		groups: make(map[core.Key][]core.Entry),
	}
}

func (s *Store) Now() time.Time { return s.now() }

func (s *Store) Put(ctx context.Context, entry core.Entry) (bool, error) {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		s.seq++
		entry.ID = "mem-" + itoa(s.seq)
	}

	group := s.groups[entry.Key]
	i := sort.Search(len(group), func(i int) bool {
		return group[i].Text >= entry.Text
	})
	if i < len(group) && group[i].Text == entry.Text {
		return false, nil
	}

	// insert keeping the group sorted by text
	group = append(group, core.Entry{})
	copy(group[i+1:], group[i:])
	group[i] = entry
	s.groups[entry.Key] = group
	return true, nil
}

func (s *Store) Group(ctx context.Context, key core.Key) ([]core.Entry, error) {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()

	group, ok := s.groups[key]
	if !ok || len(group) == 0 {
		return nil, storage.ErrNotFound
	}

	out := make([]core.Entry, len(group))
	copy(out, group)
	return out, nil
}

func (s *Store) Keys(ctx context.Context) ([]core.Key, error) {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Key, 0, len(s.groups))
	for k := range s.groups {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (s *Store) Delete(ctx context.Context, key core.Key, text string) error {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	group, ok := s.groups[key]
	if !ok {
		return storage.ErrNotFound
	}
	for i := range group {
		if group[i].Text == text {
			group = append(group[:i], group[i+1:]...)
			if len(group) == 0 {
				delete(s.groups, key)
			} else {
				s.groups[key] = group
			}
			return nil
		}
	}
	return storage.ErrNotFound
}

func (s *Store) Count(ctx context.Context) (int, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, group := range s.groups {
		n += len(group)
	}
	return n, nil
}

// tiny int->string without strconv import (keeps file minimal)
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [32]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + (n % 10))
		n /= 10
	}
	return string(buf[i:])
}
