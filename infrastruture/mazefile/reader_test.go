package mazefile

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/beka-birhanu/vinom-jumpmaze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	sync.Mutex
	warnings []string
}

func (l *recordingLogger) Debug(string) {}
func (l *recordingLogger) Info(string)  {}
func (l *recordingLogger) Error(string) {}
func (l *recordingLogger) Warning(msg string) {
	l.Lock()
	defer l.Unlock()
	l.warnings = append(l.warnings, msg)
}

func TestRead(t *testing.T) {
	t.Run("Reads mazes until the terminator", func(t *testing.T) {
		input := `3 3 0 0 2 2
1 1 1
1 1 1
1 1 1

1 2 0 0 0 1
1 1
0
2 2 0 0 1 1
1 1
1 1
`
		logger := &recordingLogger{}
		mazes, err := NewReader(logger).Read(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, mazes, 2)

		assert.Equal(t, 3, mazes[0].Rows())
		assert.Equal(t, maze.Coordinate{Row: 2, Col: 2}, mazes[0].Goal())
		assert.Equal(t, [][]int{{1, 1}}, mazes[1].Cells())
		assert.Empty(t, logger.warnings)
	})

	t.Run("Reads to end of input without terminator", func(t *testing.T) {
		mazes, err := NewReader(&recordingLogger{}).Read(strings.NewReader("1 1 0 0 0 0\n4\n"))
		require.NoError(t, err)
		require.Len(t, mazes, 1)
	})

	t.Run("Ignores lines that are not headers", func(t *testing.T) {
		input := "garbage line\n1 1 0 0 0 0\n4\n"
		mazes, err := NewReader(&recordingLogger{}).Read(strings.NewReader(input))
		require.NoError(t, err)
		assert.Len(t, mazes, 1)
	})

	t.Run("Skips malformed mazes and keeps reading", func(t *testing.T) {
		input := `2 2 0 0 1 1
1 x
1 1
2 2 0 0 1 1
1 1 1
1 1
2 2 0 0 5 5
1 1
1 1
a b c d e f
1 2 0 0 0 1
2 2
`
		logger := &recordingLogger{}
		mazes, err := NewReader(logger).Read(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, mazes, 1)
		assert.Equal(t, [][]int{{2, 2}}, mazes[0].Cells())
		assert.Len(t, logger.warnings, 4)
	})

	t.Run("Oversized header is skipped without swallowing the next maze", func(t *testing.T) {
		input := "1 1 0 0 0 0\n5\n99999999999999 1 0 0 0 0\n1\n1 2 0 0 0 1\n1 1\n0\n"
		logger := &recordingLogger{}

		var (
			mazes []*maze.Maze
			err   error
		)
		require.NotPanics(t, func() {
			mazes, err = NewReader(logger).Read(strings.NewReader(input))
		})
		require.NoError(t, err)
		require.Len(t, mazes, 2)
		assert.Equal(t, [][]int{{5}}, mazes[0].Cells())
		assert.Equal(t, [][]int{{1, 1}}, mazes[1].Cells())
		require.Len(t, logger.warnings, 1)
		assert.Contains(t, logger.warnings[0], maze.ErrInvalidDimensions.Error())
	})

	t.Run("Truncated maze", func(t *testing.T) {
		logger := &recordingLogger{}
		mazes, err := NewReader(logger).Read(strings.NewReader("3 1 0 0 2 0\n1\n1\n"))
		require.NoError(t, err)
		assert.Empty(t, mazes)
		require.Len(t, logger.warnings, 1)
		assert.Contains(t, logger.warnings[0], ErrTruncated.Error())
	})
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mazes.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 1 0 0 0 0\n3\n0\n"), 0600))

	mazes, err := NewReader(&recordingLogger{}).ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, mazes, 1)

	_, err = NewReader(&recordingLogger{}).ReadFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
