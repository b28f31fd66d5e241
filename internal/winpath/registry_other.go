//go:build !windows

package winpath

import "github.com/murfai/murf-setup/internal/errors"

// OpenUserEnv is only available on Windows. Other platforms have no
// user-scope persistent environment store to mutate.
func OpenUserEnv() (Store, error) {
	return nil, errors.ErrRegistryUnavailable
}
