package domain

import (
	"cmp"
	"path/filepath"
	"strconv"
	"strings"
)

// File names.
const (
	ConfigFileName        = "config.toml"
	ProjectConfigFileName = ".leadtime.toml"
	StoreFileName         = "leadtime.db"
	LogFileName           = "leadtime.log"
	AppDirName            = "leadtime"
)

// GlobalConfigDir returns the global config directory under configHome.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// LogPath returns the path to the log file.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", LogFileName)
}

// StorePath returns the default path to the report database.
func StorePath(dataDir string) string {
	return filepath.Join(dataDir, StoreFileName)
}

// CompareKeys orders item keys such as "PROJ-9" and "PROJ-10" by project
// then by number. Keys without a numeric suffix compare as plain strings.
func CompareKeys(a, b string) int {
	pa, na, okA := splitKey(a)
	pb, nb, okB := splitKey(b)
	if !okA || !okB {
		return strings.Compare(a, b)
	}
	if c := strings.Compare(pa, pb); c != 0 {
		return c
	}
	return cmp.Compare(na, nb)
}

func splitKey(key string) (string, int, bool) {
	i := strings.LastIndex(key, "-")
	if i < 0 {
		return "", 0, false
	}
	n, err := strconv.Atoi(key[i+1:])
	if err != nil {
		return "", 0, false
	}
	return key[:i], n, true
}

// compareIDs compares numeric ids numerically and anything else as strings.
func compareIDs(a, b string) int {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return cmp.Compare(na, nb)
	}
	return strings.Compare(a, b)
}
