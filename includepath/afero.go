package includepath

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// maxLinkHops bounds symlink expansion in AferoFS.Canonicalize.
const maxLinkHops = 255

// ErrTooManyLinks is returned when canonicalization exceeds maxLinkHops.
var ErrTooManyLinks = errors.New("includepath: too many levels of symbolic links")

// AferoFS adapts an afero.Fs to FS. Afero filesystems have no working
// directory, so relative paths are taken relative to the root.
//
// Symlinks are resolved only when Fs implements both afero.Lstater and
// afero.LinkReader (afero.OsFs does, afero.MemMapFs does not). Otherwise
// canonicalization is lexical.
type AferoFS struct {
	Fs afero.Fs
}

// Join uses the same host join rules as OSFS.
func (a AferoFS) Join(dir, ref string) string {
	return joinPath(dir, ref, string(filepath.Separator), filepath.IsAbs)
}

// Exists stats path on Fs. The empty path never exists.
func (a AferoFS) Exists(path string) bool {
	_, err := a.Stat(path)
	return err == nil
}

// Stat returns the FileInfo for path on Fs.
func (a AferoFS) Stat(path string) (os.FileInfo, error) {
	if path == "" {
		return nil, &os.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
	}
	return a.Fs.Stat(a.abs(path))
}

// Canonicalize roots path, then resolves "." and ".." and any symlinks the
// filesystem can report.
func (a AferoFS) Canonicalize(path string) (string, error) {
	if path == "" {
		return "", &os.PathError{Op: "canonicalize", Path: path, Err: os.ErrNotExist}
	}
	path = a.abs(path)

	lstater, okLstat := a.Fs.(afero.Lstater)
	reader, okRead := a.Fs.(afero.LinkReader)
	if !okLstat || !okRead {
		if _, err := a.Fs.Stat(path); err != nil {
			return "", err
		}
		return filepath.Clean(path), nil
	}

	root := filepath.VolumeName(path) + string(filepath.Separator)
	resolved := root
	rest := components(path)
	hops := 0
	for len(rest) > 0 {
		name := rest[0]
		rest = rest[1:]

		switch name {
		case ".":
			continue
		case "..":
			resolved = filepath.Dir(resolved)
			continue
		}

		next := filepath.Join(resolved, name)
		fi, _, err := lstater.LstatIfPossible(next)
		if err != nil {
			return "", err
		}
		if fi.Mode()&os.ModeSymlink == 0 {
			resolved = next
			continue
		}

		hops++
		if hops > maxLinkHops {
			return "", &os.PathError{Op: "canonicalize", Path: path, Err: ErrTooManyLinks}
		}
		target, err := reader.ReadlinkIfPossible(next)
		if err != nil {
			return "", err
		}
		if filepath.IsAbs(target) {
			resolved = filepath.VolumeName(target) + string(filepath.Separator)
		}
		rest = append(components(target), rest...)
	}
	return resolved, nil
}

func (a AferoFS) abs(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return string(filepath.Separator) + path
}

// components splits path after its volume name, dropping empty elements.
func components(path string) []string {
	path = path[len(filepath.VolumeName(path)):]
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == filepath.Separator
	})
}
