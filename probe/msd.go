package probe

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// DAPLink firmware mounts its update volume under a DAPLINK name and drops
// a DETAILS.TXT whose contents include the unit serial number.
const (
	dapLinkVolumePrefix = "DAPLINK"
	dapLinkDetailsFile  = "DETAILS.TXT"
)

// ErrVolumeNotFound reports that no mounted volume matched the probe.
var ErrVolumeNotFound = errors.New("probe: no matching mass-storage volume")

// VolumeScanner locates a probe's mass-storage mount under a mounted-volumes
// root. Root and ReadFile are injectable so the scan can run against a
// synthetic tree in tests.
type VolumeScanner struct {
	Root     string
	ReadFile func(name string) ([]byte, error)
}

// DefaultVolumes scans the platform mount root.
func DefaultVolumes() VolumeScanner {
	return VolumeScanner{Root: "/Volumes", ReadFile: os.ReadFile}
}

// FindDapLink returns the mount point of the first DAPLINK volume whose
// DETAILS.TXT mentions serial. A candidate whose details file is missing or
// unreadable is logged and skipped; one damaged volume must not hide a
// match on another.
func (s VolumeScanner) FindDapLink(serial string) (string, error) {
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		log.Printf("probe: reading volumes root %s: %v", s.Root, err)
		return "", ErrVolumeNotFound
	}
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), dapLinkVolumePrefix) {
			continue
		}
		mount := filepath.Join(s.Root, e.Name())
		details, err := s.ReadFile(filepath.Join(mount, dapLinkDetailsFile))
		if err != nil {
			log.Printf("probe: skipping volume %s: %v", mount, err)
			continue
		}
		if strings.Contains(string(details), serial) {
			return mount, nil
		}
	}
	return "", ErrVolumeNotFound
}
