package spark

import "strconv"

// Library release version components.
const (
	VersionMajor = 1
	VersionMinor = 0
	VersionPatch = 0
)

// Version returns the library version as "major.minor.patch".
func Version() string {
	return strconv.Itoa(VersionMajor) + "." +
		strconv.Itoa(VersionMinor) + "." +
		strconv.Itoa(VersionPatch)
}
