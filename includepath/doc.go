// Package includepath resolves include-style file references against an
// ordered list of search directories.
//
// A reference is joined onto each directory in turn. The first candidate
// that exists and canonicalizes wins, and its canonical absolute path is
// returned. Earlier directories shadow later ones. A miss is reported as
// a false second return value, never as an error: missing, unreadable and
// uncanonicalizable candidates are all skipped.
//
// The current working directory is never searched implicitly. Callers
// that want it must put "" or "." in the search list themselves.
package includepath
