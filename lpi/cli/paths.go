package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// AppPaths is an interface to determine application specific paths for configuration,
// logging/tracing and cached data.
type AppPaths interface {
	ConfigDir() string
	LogDir() string
	CacheDir() string
}

// DefaultAppPaths returns an AppPaths instance with platform-dependent defaults
// set, given appTag. appTag is a string specific to a client's application to identify it.
func DefaultAppPaths(appTag string) (AppPaths, error) {
	a := userPaths{tag: strings.ToLower(appTag)}
	var err error
	if a.home, err = os.UserHomeDir(); err != nil {
		a.home = ""
	}
	return a, err
}

func appPaths() AppPaths {
	paths, err := DefaultAppPaths(appKey)
	if err != nil {
		tracing.Errorf("cannot configure paths: %v", err)
	}
	return paths
}

// userPaths derives paths from the platform's user directories, falling back
// to the home directory. If neither is known, paths are empty.
type userPaths struct {
	tag  string
	home string
}

var _ AppPaths = userPaths{}

func (a userPaths) ConfigDir() string {
	return a.under(os.UserConfigDir, ".config")
}

func (a userPaths) LogDir() string {
	if d := a.CacheDir(); d != "" {
		return filepath.Join(d, "logs")
	}
	return ""
}

func (a userPaths) CacheDir() string {
	return a.under(os.UserCacheDir, ".cache")
}

func (a userPaths) under(dir func() (string, error), fallback string) string {
	d, err := dir()
	if err != nil {
		if a.home == "" {
			return ""
		}
		d = filepath.Join(a.home, fallback)
	}
	return filepath.Join(d, a.tag)
}
