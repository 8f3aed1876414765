package mock

import "sync"

// KVStore mocks github.KVStore.
type KVStore struct {
	data   map[string][]byte
	reads  int
	puts   int
	getErr error
	putErr error
	m      sync.Mutex
}

// NewKVStore creates new KVStore instance with given data
func NewKVStore(data map[string][]byte) *KVStore {
	return &KVStore{
		data: data,
	}
}

// FailWith makes every Get and Put return given errors.
func (s *KVStore) FailWith(getErr error, putErr error) {
	s.m.Lock()
	defer s.m.Unlock()

	s.getErr = getErr
	s.putErr = putErr
}

// Get returns data saved for given key.
func (s *KVStore) Get(key []byte) ([]byte, error) {
	s.m.Lock()
	defer s.m.Unlock()

	s.reads++
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.data == nil {
		return nil, nil
	}

	return s.data[string(key)], nil
}

// Put stores given data under given key.
func (s *KVStore) Put(key []byte, data []byte) error {
	s.m.Lock()
	defer s.m.Unlock()

	s.puts++
	if s.putErr != nil {
		return s.putErr
	}
	if s.data == nil {
		s.data = make(map[string][]byte)
	}
	s.data[string(key)] = data

	return nil
}

// Reads returns read call count.
func (s *KVStore) Reads() int {
	s.m.Lock()
	defer s.m.Unlock()

	return s.reads
}

// Puts returns put call count.
func (s *KVStore) Puts() int {
	s.m.Lock()
	defer s.m.Unlock()

	return s.puts
}

// Data returns value stored under given key.
func (s *KVStore) Data(key string) []byte {
	s.m.Lock()
	defer s.m.Unlock()

	return s.data[key]
}
