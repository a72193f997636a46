package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifelsik/dirlist/internal/utils/fileutil"
)

func TestWriteListing(t *testing.T) {
	var buf bytes.Buffer

	NewGenerator().WriteListing(&buf, "data", []fileutil.FileEntry{
		{Name: "a.txt", Path: filepath.Join("data", "a.txt")},
		{Name: "b.txt", Path: filepath.Join("data", "b.txt")},
	})

	want := "===== files in data =====\n" +
		"a.txt\t" + filepath.Join("data", "a.txt") + "\n" +
		"b.txt\t" + filepath.Join("data", "b.txt") + "\n" +
		"===== 2 file(s) =====\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteListingEmpty(t *testing.T) {
	var buf bytes.Buffer

	NewGenerator().WriteListing(&buf, "empty", nil)

	assert.Contains(t, buf.String(), "0 file(s)")
}

func TestCreateOutputFile(t *testing.T) {
	outputDir := t.TempDir()

	outputFile, outputPath, err := NewGenerator().CreateOutputFile(outputDir, filepath.Join("/srv", "photos"))
	require.NoError(t, err)
	defer outputFile.Close()

	assert.Equal(t, outputDir, filepath.Dir(outputPath))

	name := filepath.Base(outputPath)
	assert.True(t, strings.HasPrefix(name, OutputFilePrefix+"photos_"), "got %q", name)
	assert.True(t, strings.HasSuffix(name, OutputFileSuffix), "got %q", name)

	_, err = os.Stat(outputPath)
	assert.NoError(t, err)
}

func TestCreateOutputFileMissingDir(t *testing.T) {
	_, _, err := NewGenerator().CreateOutputFile(filepath.Join(t.TempDir(), "nope"), "data")
	assert.Error(t, err)
}
