// Package hostinfo identifies the host operating system for the installer.
//
// The profile is computed once at startup and passed explicitly to every
// component; nothing re-queries the OS after that.
package hostinfo

import "runtime"

// Family identifies the host operating system family.
type Family string

const (
	// FamilyDarwin is macOS.
	FamilyDarwin Family = "darwin"

	// FamilyWindows is Windows.
	FamilyWindows Family = "windows"

	// FamilyLinux is Linux. No installation path is defined for it.
	FamilyLinux Family = "linux"

	// FamilyOther is any OS the installer does not recognize.
	FamilyOther Family = "other"
)

// String returns the family identifier.
func (f Family) String() string {
	return string(f)
}

// Supported reports whether the installer has an installation path
// for this OS family.
func (f Family) Supported() bool {
	return f == FamilyDarwin || f == FamilyWindows
}

// Profile describes the host machine. It is immutable for the process
// lifetime.
type Profile struct {
	// Family is the OS family derived from the Go runtime.
	Family Family

	// Arch is the machine architecture (e.g., "amd64", "arm64").
	Arch string
}

// Detect builds the host profile for the current process.
func Detect() Profile {
	return Profile{
		Family: FamilyFromGOOS(runtime.GOOS),
		Arch:   runtime.GOARCH,
	}
}

// FamilyFromGOOS maps a GOOS value to an OS family.
func FamilyFromGOOS(goos string) Family {
	switch goos {
	case "darwin":
		return FamilyDarwin
	case "windows":
		return FamilyWindows
	case "linux":
		return FamilyLinux
	default:
		return FamilyOther
	}
}
