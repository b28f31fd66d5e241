//go:build windows

package winpath

import (
	"golang.org/x/sys/windows/registry"

	"github.com/murfai/murf-setup/internal/errors"
)

// envKeyPath is the user-scope environment key. Values written here outlive
// the process and are inherited by future sessions. setx is deliberately
// avoided: it truncates values longer than 1024 characters.
const envKeyPath = `Environment`

// registryStore implements Store against HKCU\Environment.
type registryStore struct {
	key registry.Key
}

// OpenUserEnv opens the current user's persistent environment store.
func OpenUserEnv() (Store, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, envKeyPath, registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return nil, errors.Wrap(errors.ErrRegistryUnavailable, err.Error())
	}
	return &registryStore{key: key}, nil
}

// Get returns the user PATH value, treating an absent value as empty.
func (s *registryStore) Get() (string, error) {
	value, _, err := s.key.GetStringValue("Path")
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return "", nil
		}
		return "", errors.Wrap(err, "reading user PATH")
	}
	return value, nil
}

// Set writes the user PATH value as REG_EXPAND_SZ so %VAR% references in
// existing entries keep expanding.
func (s *registryStore) Set(value string) error {
	if err := s.key.SetExpandStringValue("Path", value); err != nil {
		return errors.Wrap(err, "writing user PATH")
	}
	return nil
}

// Close releases the registry key handle.
func (s *registryStore) Close() error {
	return s.key.Close()
}
