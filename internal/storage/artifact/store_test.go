package artifact

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_WriteCreatesParentDirs(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewStore(fs)

	require.NoError(t, s.WriteText("course/modules/Week 1/Intro.txt", "hello"))

	got, err := s.ReadText("course/modules/Week 1/Intro.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.True(t, s.Exists("course/modules/Week 1/Intro.txt"))
	assert.False(t, s.Exists("course/missing.txt"))
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Week 1: Intro", "Week 1_ Intro"},
		{"a/b\\c", "a_b_c"},
		{"  spaced   out  ", "spaced out"},
		{"trailing dots...", "trailing dots"},
		{"", "untitled"},
		{"???", "___"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Sanitize(tt.in), "input %q", tt.in)
	}
}

func TestSanitize_CapsLength(t *testing.T) {
	long := strings.Repeat("a", 300)
	assert.Len(t, []rune(Sanitize(long)), 100)
}
