package resource

import (
	"context"
	"errors"
	"io/fs"
	"path"
	"strings"
)

// FSFetcher reads references from a file system rooted at the site
// directory. Cache modes are irrelevant here and ignored.
type FSFetcher struct {
	fsys fs.FS
}

// NewFSFetcher wraps fsys, e.g. os.DirFS("./public") or an embed.FS.
func NewFSFetcher(fsys fs.FS) *FSFetcher {
	return &FSFetcher{fsys: fsys}
}

func (f *FSFetcher) Fetch(ctx context.Context, ref string, _ CacheMode) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrFetch, err)
	}
	if IsAbsoluteURL(ref) {
		return nil, ErrUnsupportedRef
	}

	name := fsPath(ref)
	if !fs.ValidPath(name) {
		return nil, notFound(ref)
	}
	data, err := fs.ReadFile(f.fsys, name)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, notFound(ref)
	case err != nil:
		return nil, errors.Join(ErrFetch, err)
	}
	return data, nil
}

// fsPath turns "/a/b.json" or "./a/b.json" into "a/b.json". Query strings
// and fragments are dropped.
func fsPath(ref string) string {
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}
	p := path.Clean("/" + ref)
	return strings.TrimPrefix(p, "/")
}
