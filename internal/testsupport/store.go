// Package testsupport 测试用的内存存储
package testsupport

import (
	"context"
	"sort"
	"sync"

	"github.com/user/seriesdb/internal/model"
)

// MemoryStore 内存版剧集存储，实现 service.TVShowStore
type MemoryStore struct {
	mu     sync.Mutex
	shows  map[int]*model.TVShow
	nextID int

	FindCalls int
	Err       error // 非空时所有操作都返回该错误
}

func NewMemoryStore(shows ...*model.TVShow) *MemoryStore {
	s := &MemoryStore{shows: map[int]*model.TVShow{}, nextID: 1}
	for _, show := range shows {
		s.shows[show.ID] = show.Clone()
		if show.ID >= s.nextID {
			s.nextID = show.ID + 1
		}
	}
	return s
}

func (s *MemoryStore) FindByID(_ context.Context, id int) (*model.TVShow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FindCalls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.shows[id].Clone(), nil
}

func (s *MemoryStore) List(_ context.Context) ([]*model.TVShow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	shows := make([]*model.TVShow, 0, len(s.shows))
	for _, show := range s.shows {
		shows = append(shows, show.Clone())
	}
	sort.Slice(shows, func(i, j int) bool { return shows[i].Name < shows[j].Name })
	return shows, nil
}

func (s *MemoryStore) Save(_ context.Context, show *model.TVShow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if !show.HasID() {
		show.ID = s.nextID
		s.nextID++
	}
	s.shows[show.ID] = show.Clone()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	delete(s.shows, id)
	return nil
}

// Get 直接读取存储内容，不计入 FindCalls
func (s *MemoryStore) Get(id int) *model.TVShow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shows[id].Clone()
}
