package memtable

import (
	"encoding/binary"
	"github.com/coocood/freecache"
	"time"
)

// MemTable is a size bounded in-memory table with per entry expiration
type MemTable struct {
	cache *freecache.Cache
}

// New creates freecache with size
func New(size int) *MemTable {
	return &MemTable{
		cache: freecache.NewCache(size),
	}
}

// Get ...
func (m *MemTable) Get(key string) ([]byte, bool) {
	data, err := m.cache.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores the value, a zero ttl means no expiration
func (m *MemTable) Set(key string, value []byte, ttl time.Duration) {
	_ = m.cache.Set([]byte(key), value, int(ttl/time.Second))
}

// GetResponse returns a stored status code with its body
func (m *MemTable) GetResponse(key string) (status int, body []byte, ok bool) {
	data, ok := m.Get(key)
	if !ok {
		return 0, nil, false
	}
	if len(data) < 2 {
		return 0, nil, false
	}
	return int(binary.LittleEndian.Uint16(data)), data[2:], true
}

// SetResponse ...
func (m *MemTable) SetResponse(key string, status int, body []byte, ttl time.Duration) {
	data := make([]byte, 2+len(body))
	binary.LittleEndian.PutUint16(data, uint16(status))
	copy(data[2:], body)
	m.Set(key, data, ttl)
}
