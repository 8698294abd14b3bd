package profile

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var profilesFS embed.FS

//go:embed scripts/*.tengo
var scriptsFS embed.FS

// Load reads a profile file, preferring an on-disk copy under profile/ so
// tuning edits apply without rebuilding, then the embedded defaults.
func Load(name string) ([]byte, error) {
	clean := cleanProfilePath(name)
	if data, err := os.ReadFile(diskProfilePath(clean)); err == nil {
		return data, nil
	}
	return profilesFS.ReadFile(clean)
}

// LoadScript reads a tengo constraint script the same way.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskProfilePath(clean)); err == nil {
		return data, nil
	}
	return scriptsFS.ReadFile(clean)
}

func cleanProfilePath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "profile/"); ok {
		return after
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}

	s := filepath.ToSlash(path)

	if after, ok := strings.CutPrefix(s, "profile/scripts/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "profile/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}

	return fmt.Sprintf("scripts/%s", s)
}

func diskProfilePath(clean string) string {
	return filepath.Join("profile", filepath.FromSlash(clean))
}
