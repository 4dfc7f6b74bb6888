package includepath

// Probe describes one candidate examined during a resolution.
type Probe struct {
	Dir       string
	Candidate string
	Exists    bool
	Resolved  string
	Err       error // canonicalization failure, if any
}

// Resolver searches directories through an FS.
type Resolver struct {
	// FS defaults to OSFS when nil.
	FS FS

	// Trace, when set, is called once per candidate in probe order.
	Trace func(Probe)
}

// New returns a Resolver over fsys.
func New(fsys FS) *Resolver {
	return &Resolver{FS: fsys}
}

// Resolve returns the canonical path of ref under the first directory in
// searchList where it exists and canonicalizes. ok is false on a miss.
func Resolve(searchList []string, ref string) (path string, ok bool) {
	var r Resolver
	return r.Resolve(searchList, ref)
}

// Resolve is the FS-parameterized form of the package-level Resolve.
func (r *Resolver) Resolve(searchList []string, ref string) (string, bool) {
	fsys := r.fs()
	for _, dir := range searchList {
		candidate := fsys.Join(dir, ref)
		probe := Probe{Dir: dir, Candidate: candidate}

		if !fsys.Exists(candidate) {
			r.trace(probe)
			continue
		}
		probe.Exists = true

		resolved, err := fsys.Canonicalize(candidate)
		if err != nil {
			// Vanished or untraversable since the stat: try the next dir.
			probe.Err = err
			r.trace(probe)
			continue
		}
		probe.Resolved = resolved
		r.trace(probe)
		return resolved, true
	}
	return "", false
}

func (r *Resolver) fs() FS {
	if r == nil || r.FS == nil {
		return OSFS{}
	}
	return r.FS
}

func (r *Resolver) trace(p Probe) {
	if r != nil && r.Trace != nil {
		r.Trace(p)
	}
}
