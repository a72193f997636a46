package pathutil

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
)

var ErrNilRequest = errors.New("request is nil")
var ErrEmptyPath = errors.New("directory is not specified")
var ErrEscapesRoot = errors.New("path escapes root")

// RootedPath is a caller supplied directory resolved against a root.
type RootedPath struct {
	Root string
	Rel  string
	Abs  string
}

func (p *RootedPath) String() string {
	return p.Abs
}

const dirParam = "dir"

// Resolve joins rel onto root. Absolute paths and paths that climb
// out of root are rejected.
func Resolve(root, rel string) (RootedPath, error) {
	rel = strings.TrimSpace(rel)
	if rel == "" {
		return RootedPath{}, ErrEmptyPath
	}
	if filepath.IsAbs(rel) {
		return RootedPath{}, fmt.Errorf("%s: %w", rel, ErrEscapesRoot)
	}

	cleaned := filepath.Clean(rel)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return RootedPath{}, fmt.Errorf("%s: %w", rel, ErrEscapesRoot)
	}

	return RootedPath{
		Root: root,
		Rel:  cleaned,
		Abs:  filepath.Join(root, cleaned),
	}, nil
}

// FromRequest resolves the "dir" query parameter of r against root.
func FromRequest(r *http.Request, root string) (RootedPath, error) {
	if r == nil {
		return RootedPath{}, ErrNilRequest
	}
	return Resolve(root, r.URL.Query().Get(dirParam))
}
