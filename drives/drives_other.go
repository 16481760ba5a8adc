//go:build !windows

package drives

import "github.com/deotya/unidrive/data"

// Hosts without drive letters have no native multi-root volume table, so the
// system enumerator exposes nothing. Embedders on such hosts mount a Static
// set instead.
func listSystemDrives() ([]DriveInfo, error) {
	return nil, nil
}

func systemDriveExists(data.DriveLetter) bool {
	return false
}
