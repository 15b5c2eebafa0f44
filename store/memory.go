package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/conchimbubam/Kamala-housekeeping-managerment/model"
)

// MemoryRoomStore bản in-memory của RoomStore, dùng cho test
type MemoryRoomStore struct {
	mu    sync.RWMutex
	rooms map[string]model.Room
}

func NewMemoryRoomStore() *MemoryRoomStore {
	return &MemoryRoomStore{rooms: map[string]model.Room{}}
}

func (s *MemoryRoomStore) Get(roomNo string) (*model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[roomNo]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return &room, nil
}

func (s *MemoryRoomStore) List() ([]model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sorted(func(model.Room) bool { return true }), nil
}

func (s *MemoryRoomStore) ReplaceAll(rooms []model.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = make(map[string]model.Room, len(rooms))
	for _, r := range rooms {
		s.rooms[r.RoomNo] = r
	}
	return nil
}

func (s *MemoryRoomStore) Update(room *model.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rooms[room.RoomNo]; !ok {
		return ErrRoomNotFound
	}
	s.rooms[room.RoomNo] = *room
	return nil
}

func (s *MemoryRoomStore) Search(term string) ([]model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	needle := strings.ToLower(term)
	return s.sorted(func(r model.Room) bool {
		return strings.Contains(strings.ToLower(r.RoomNo), needle) ||
			strings.Contains(strings.ToLower(r.CurrentGuest.Name), needle) ||
			strings.Contains(strings.ToLower(r.RoomStatus), needle)
	}), nil
}

func (s *MemoryRoomStore) ListByStatus(status string) ([]model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sorted(func(r model.Room) bool { return r.RoomStatus == status }), nil
}

func (s *MemoryRoomStore) StatusCounts() (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := map[string]int64{}
	for _, r := range s.rooms {
		counts[r.RoomStatus]++
	}
	return counts, nil
}

func (s *MemoryRoomStore) Count() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.rooms)), nil
}

func (s *MemoryRoomStore) sorted(keep func(model.Room) bool) []model.Room {
	rooms := make([]model.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		if keep(r) {
			rooms = append(rooms, r)
		}
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].RoomNo < rooms[j].RoomNo })
	return rooms
}

// MemoryLogStore bản in-memory của LogStore, dùng cho test
type MemoryLogStore struct {
	mu   sync.RWMutex
	logs []model.HkLog
}

func NewMemoryLogStore() *MemoryLogStore {
	return &MemoryLogStore{}
}

func (s *MemoryLogStore) Insert(log *model.HkLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	log.ID = uint(len(s.logs) + 1)
	s.logs = append(s.logs, *log)
	return nil
}

func (s *MemoryLogStore) Since(t time.Time) ([]model.HkLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.HkLog
	for _, l := range s.logs {
		if !l.Timestamp.Before(t) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (s *MemoryLogStore) ByRoom(roomNo string, limit int) ([]model.HkLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.HkLog
	for _, l := range s.logs {
		if l.RoomNo == roomNo {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryLogStore) Clear() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := int64(len(s.logs))
	s.logs = nil
	return n, nil
}

// MemorySyncStore bản in-memory của SyncStore, dùng cho test
type MemorySyncStore struct {
	mu     sync.RWMutex
	events []model.SyncEvent
}

func NewMemorySyncStore() *MemorySyncStore {
	return &MemorySyncStore{}
}

func (s *MemorySyncStore) Insert(event *model.SyncEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	event.ID = uint(len(s.events) + 1)
	s.events = append(s.events, *event)
	return nil
}

func (s *MemorySyncStore) Latest() (*model.SyncEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := len(s.events) - 1; i >= 0; i-- {
		if s.events[i].Success {
			e := s.events[i]
			return &e, nil
		}
	}
	return nil, nil
}
