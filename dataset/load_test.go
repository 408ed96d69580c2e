package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/linefit/format"
)

func TestLoad_Text(t *testing.T) {
	path := writeTemp(t, "data.txt", "1, 2, 3, 4, 5\n14 13 9 5 2\n")

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Example().X, ds.X)
	assert.Equal(t, Example().Y, ds.Y)
}

func TestLoad_TextBlankLinesIgnored(t *testing.T) {
	path := writeTemp(t, "data.txt", "\n\n1 2 3\n\n4 5 6\n\n")

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, ds.X)
	assert.Equal(t, []float64{4, 5, 6}, ds.Y)
}

func TestLoad_JSON(t *testing.T) {
	path := writeTemp(t, "data.json", `{"x": [1, 2, 3], "y": [2, 4, 6]}`)

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, ds.X)
	assert.Equal(t, []float64{2, 4, 6}, ds.Y)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
		require.Error(t, err)
	})

	t.Run("bad token", func(t *testing.T) {
		path := writeTemp(t, "data.txt", "1 2 three\n4 5 6\n")
		_, err := Load(path)
		require.Error(t, err)

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "three", parseErr.Token)
	})

	t.Run("wrong line count", func(t *testing.T) {
		path := writeTemp(t, "data.txt", "1 2 3\n")
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		path := writeTemp(t, "data.json", `{"x": [1,`)
		_, err := Load(path)
		require.Error(t, err)
	})
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	ds := New(
		[]float64{0.5, 1.0, 1.5, 2.0, 2.5, 3.0, 3.5, 4.0},
		[]float64{1.25, 2.5, 3.75, 5.0, 6.25, 7.5, 8.75, 10.0},
	)

	files := []string{"ds.txt", "ds.txt.zst", "ds.txt.s2", "ds.txt.lz4"}
	for _, name := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Save(path, ds))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, ds.X, loaded.X)
			assert.Equal(t, ds.Y, loaded.Y)
		})
	}
}

func TestSaveLoad_JSONFormat(t *testing.T) {
	ds := Example()
	path := filepath.Join(t.TempDir(), "ds.json.zst")

	require.NoError(t, Save(path, ds, WithFormat(format.FormatJSON)))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ds.X, loaded.X)
	assert.Equal(t, ds.Y, loaded.Y)
}

func TestSaveLoad_CompressionOverride(t *testing.T) {
	// Extension says nothing, option forces S2 both ways.
	ds := Example()
	path := filepath.Join(t.TempDir(), "ds.dat")

	require.NoError(t, Save(path, ds, WithCompression(format.CompressionS2)))

	// Without the override the payload is unreadable text.
	_, err := Load(path)
	require.Error(t, err)

	loaded, err := Load(path, WithCompression(format.CompressionS2))
	require.NoError(t, err)
	assert.Equal(t, ds.X, loaded.X)
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}
