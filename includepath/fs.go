package includepath

import (
	"os"
	"path/filepath"
	"strings"
)

// FS supplies the filesystem primitives the resolver is built on.
type FS interface {
	// Join combines a search directory and a reference. An absolute
	// reference replaces the directory.
	Join(dir, ref string) string

	// Exists reports whether path names an existing entry, following
	// symbolic links. Any error counts as absent.
	Exists(path string) bool

	// Canonicalize returns the absolute path of path with ".", ".."
	// and symbolic links resolved.
	Canonicalize(path string) (string, error)
}

// StatFS is an FS that can also report file metadata.
type StatFS interface {
	FS
	Stat(path string) (os.FileInfo, error)
}

// OSFS implements FS and StatFS on the host filesystem.
type OSFS struct{}

// Join does not use filepath.Join: that cleans ".." lexically, which is
// wrong when the preceding component is a symlink, and it appends
// absolute references instead of letting them replace dir.
func (OSFS) Join(dir, ref string) string {
	return joinPath(dir, ref, string(filepath.Separator), filepath.IsAbs)
}

// Exists stats path, following links.
func (OSFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Stat is os.Stat.
func (OSFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Canonicalize resolves path against the working directory and evaluates
// every symlink along the way.
func (OSFS) Canonicalize(path string) (string, error) {
	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		path = joinPath(wd, path, string(filepath.Separator), filepath.IsAbs)
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}

// joinPath appends ref to dir with exactly one separator between them,
// leaving both otherwise untouched.
func joinPath(dir, ref, sep string, isAbs func(string) bool) string {
	switch {
	case isAbs(ref):
		return ref
	case dir == "":
		return ref
	case ref == "":
		return dir
	case strings.HasSuffix(dir, sep) || (sep != "/" && strings.HasSuffix(dir, "/")):
		return dir + ref
	}
	return dir + sep + ref
}
