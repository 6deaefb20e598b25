package auth

import (
	"os"
	"path/filepath"
	"sync"

	"staykit/internal/pkg/errs"
)

// Storage persists the identity blob across process restarts. Load returns
// false when nothing is stored under name.
type Storage interface {
	Load(name string) (string, bool, error)
	Save(name string, value string) error
	Remove(name string) error
}

// FileStorage keeps one value per file under dir. It stands in for the
// platform keychain the mobile shell would normally provide.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if dir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, errs.Wrap(err, "failed to resolve config dir")
		}
		dir = filepath.Join(configDir, "staykit")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errs.Wrap(err, "failed to create storage dir")
	}
	return &FileStorage{dir: dir}, nil
}

func (f *FileStorage) Load(name string) (string, bool, error) {
	data, err := os.ReadFile(filepath.Join(f.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, errs.Wrap(err, "failed to load value")
	}
	return string(data), true, nil
}

func (f *FileStorage) Save(name string, value string) error {
	if err := os.WriteFile(filepath.Join(f.dir, name), []byte(value), 0o600); err != nil {
		return errs.Wrap(err, "failed to save value")
	}
	return nil
}

func (f *FileStorage) Remove(name string) error {
	err := os.Remove(filepath.Join(f.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return errs.Wrap(err, "failed to remove value")
	}
	return nil
}

// MemStorage is the in-memory Storage used in tests.
type MemStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemStorage() *MemStorage {
	return &MemStorage{values: make(map[string]string)}
}

func (m *MemStorage) Load(name string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[name]
	return v, ok, nil
}

func (m *MemStorage) Save(name string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[name] = value
	return nil
}

func (m *MemStorage) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, name)
	return nil
}
