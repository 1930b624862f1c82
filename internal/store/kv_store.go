package store

import (
	"path/filepath"
	"sync"

	"shopadmin/internal/domain"
)

const (
	kvFilename       = "session.json"
	sealedKVFilename = "session.json.enc"
)

// KVFileStore persists string keys to a single file under dir. When a
// passphrase is set, the file is sealed with scrypt + ChaCha20-Poly1305.
type KVFileStore struct {
	dir        string
	passphrase string
	mu         sync.Mutex
}

// NewKVFileStore returns a plaintext KVFileStore rooted at dir.
func NewKVFileStore(dir string) *KVFileStore {
	return &KVFileStore{dir: dir}
}

// NewSealedKVFileStore returns a KVFileStore whose file is encrypted under
// passphrase.
func NewSealedKVFileStore(dir, passphrase string) *KVFileStore {
	return &KVFileStore{dir: dir, passphrase: passphrase}
}

// Path returns the file backing the store.
func (s *KVFileStore) Path() string {
	if s.passphrase != "" {
		return filepath.Join(s.dir, sealedKVFilename)
	}
	return filepath.Join(s.dir, kvFilename)
}

// Get returns the value stored under key.
func (s *KVFileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set stores value under key, replacing any previous value.
func (s *KVFileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value
	return s.save(values)
}

// Remove deletes key.
func (s *KVFileStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return s.save(values)
}

func (s *KVFileStore) load() (map[string]string, error) {
	values := make(map[string]string)
	var err error
	if s.passphrase != "" {
		err = readSealedJSON(s.Path(), s.passphrase, &values)
	} else {
		err = readJSON(s.Path(), &values)
	}
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (s *KVFileStore) save(values map[string]string) error {
	if s.passphrase != "" {
		return writeSealedJSON(s.Path(), s.passphrase, values, 0o600)
	}
	return writeJSON(s.Path(), values, 0o600)
}

// Compile-time assertion that KVFileStore implements domain.KeyValueStore.
var _ domain.KeyValueStore = (*KVFileStore)(nil)
