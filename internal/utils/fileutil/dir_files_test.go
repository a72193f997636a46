package fileutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRegularFiles(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll(filepath.Join("data", "sub"), 0o755))
	require.NoError(t, afero.WriteFile(fsys, filepath.Join("data", "b.txt"), []byte("b"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, filepath.Join("data", "a.txt"), []byte("a"), 0o644))

	files, err := NewLister(fsys).ListRegularFiles("data")
	require.NoError(t, err)

	assert.Equal(t, []FileEntry{
		{Name: "a.txt", Path: filepath.Join("data", "a.txt")},
		{Name: "b.txt", Path: filepath.Join("data", "b.txt")},
	}, files)
}

func TestListRegularFilesJoinsDirAndName(t *testing.T) {
	fsys := afero.NewMemMapFs()
	dir := filepath.Join("var", "spool")
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(dir, "job.dat"), nil, 0o644))

	files, err := NewLister(fsys).ListRegularFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)

	assert.Equal(t, filepath.Join(dir, files[0].Name), files[0].Path)
}

func TestListRegularFilesEmptyDir(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("empty", 0o755))

	files, err := NewLister(fsys).ListRegularFiles("empty")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestListRegularFilesMissingDir(t *testing.T) {
	fsys := afero.NewMemMapFs()

	files, err := NewLister(fsys).ListRegularFiles("no-such-dir")
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Nil(t, files)
}

func TestListRegularFilesOnFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "plain.txt", []byte("x"), 0o644))

	files, err := NewLister(fsys).ListRegularFiles("plain.txt")
	assert.ErrorIs(t, err, ErrNotDirectory)
	assert.Nil(t, files)
}

func TestListRegularFilesIdempotent(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, filepath.Join("d", "one"), nil, 0o644))
	require.NoError(t, afero.WriteFile(fsys, filepath.Join("d", "two"), nil, 0o644))

	lister := NewLister(fsys)

	first, err := lister.ListRegularFiles("d")
	require.NoError(t, err)
	second, err := lister.ListRegularFiles("d")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestListRegularFilesSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "f.txt"), []byte("f"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "d"), 0o755))
	require.NoError(t, os.Symlink(filepath.Join(root, "f.txt"), filepath.Join(root, "ln_file")))
	require.NoError(t, os.Symlink(filepath.Join(root, "d"), filepath.Join(root, "ln_dir")))
	require.NoError(t, os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "ln_broken")))

	files, err := ListRegularFiles(root)
	require.NoError(t, err)

	names := make([]string, 0, len(files))
	for _, file := range files {
		names = append(names, file.Name)
	}
	assert.Equal(t, []string{"f.txt", "ln_file"}, names)
}

func TestFilename(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/mnt/my_disk/amelia.jpg", want: "amelia"},
		{path: "report.tar.gz", want: "report.tar"},
		{path: "/var/log/syslog", want: "syslog"},
		{path: filepath.Join("a", "b") + string(filepath.Separator), want: "b"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Filename(tt.path), "path %q", tt.path)
	}
}
