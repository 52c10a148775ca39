// Package artifact is the path-addressable store for rendered text and
// downloaded binary files. All paths are relative to the download root;
// the caller supplies a filesystem already anchored there.
package artifact

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/spf13/afero"
)

type Store struct {
	fs afero.Fs
}

func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

func (s *Store) WriteText(relPath, text string) error {
	return s.WriteBytes(relPath, []byte(text))
}

func (s *Store) WriteBytes(relPath string, data []byte) error {
	if dir := path.Dir(relPath); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create dir %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(s.fs, relPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", relPath, err)
	}
	return nil
}

func (s *Store) ReadText(relPath string) (string, error) {
	data, err := afero.ReadFile(s.fs, relPath)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", relPath, err)
	}
	return string(data), nil
}

func (s *Store) Exists(relPath string) bool {
	ok, _ := afero.Exists(s.fs, relPath)
	return ok
}

var (
	invalidChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// Sanitize makes a title safe for use as a file or directory name.
func Sanitize(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = whitespace.ReplaceAllString(name, " ")
	name = strings.Trim(name, ". ")
	if name == "" {
		return "untitled"
	}
	runes := []rune(name)
	if len(runes) > 100 {
		name = strings.Trim(string(runes[:100]), ". ")
	}
	return name
}
