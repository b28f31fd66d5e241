// Package winpath manages the user-scope persistent PATH value on Windows.
//
// The list manipulation is pure and portable so it can be tested on any
// OS; only the registry-backed Store is Windows-specific. The read-modify-
// write of the PATH value is a best-effort critical section: no locking is
// taken against other configuration tools writing concurrently, which is an
// accepted limitation.
package winpath

import "strings"

// ListSeparator separates entries in a Windows PATH value.
const ListSeparator = ";"

// Split breaks a PATH value into its entries. Entries are returned verbatim,
// including empty ones, so that Join(Split(v)) round-trips without dropping
// anything.
func Split(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, ListSeparator)
}

// Join assembles entries back into a PATH value.
func Join(entries []string) string {
	return strings.Join(entries, ListSeparator)
}

// Contains reports whether dir is already present as a distinct entry.
// Comparison is case-insensitive and ignores a trailing path separator,
// matching how Windows resolves directories.
func Contains(value, dir string) bool {
	target := normalize(dir)
	for _, entry := range Split(value) {
		if normalize(entry) == target {
			return true
		}
	}
	return false
}

// Append returns the PATH value with dir appended, and whether anything
// changed. When dir is already a distinct entry the value is returned
// untouched so callers can skip the persistent write entirely.
func Append(value, dir string) (string, bool) {
	if Contains(value, dir) {
		return value, false
	}
	return Join(append(Split(value), dir)), true
}

func normalize(entry string) string {
	entry = strings.TrimSpace(entry)
	entry = strings.TrimRight(entry, `\/`)
	return strings.ToLower(entry)
}

// Store provides access to the user-scope persistent PATH value.
type Store interface {
	// Get returns the current PATH value. An absent value is an empty
	// string, not an error.
	Get() (string, error)

	// Set overwrites the PATH value as a single logical update.
	Set(value string) error

	// Close releases the underlying handle.
	Close() error
}
