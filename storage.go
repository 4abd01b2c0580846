package main

import "encoding/json"

// Room storage keys. All values are JSON-encoded.
const (
	keyHostID          = "hostId"
	keyTeamRed         = "team:red"
	keyTeamBlue        = "team:blue"
	keyQuestionIndex   = "questionIndex"
	keyCurrentQuestion = "currentQuestion"
)

// RoomStorage is the room-scoped key/value store backing roster and
// question-progress state. Every read and write for a room happens on that
// room's hub goroutine, so get/put pairs are effectively atomic.
type RoomStorage interface {
	Get(key string) ([]byte, bool)
	Put(key string, value []byte)
}

type memoryStorage struct {
	values map[string][]byte
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{values: make(map[string][]byte)}
}

func (m *memoryStorage) Get(key string) ([]byte, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *memoryStorage) Put(key string, value []byte) {
	m.values[key] = value
}

// getJSON decodes the value at key into out, reporting whether the key was
// present and decoded cleanly.
func getJSON(s RoomStorage, key string, out any) bool {
	raw, ok := s.Get(key)
	if !ok {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

// putJSON encodes v and stores it at key. Values are always
// marshal-friendly room types, so encoding failures are not expected.
func putJSON(s RoomStorage, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	s.Put(key, raw)
}
