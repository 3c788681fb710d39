package reivm

// Realm is a security origin.
type Realm struct {
	Name string
}

// SameOrigin reports whether two realms share a trust boundary. Named
// realms compare by name so that identity survives Snapshot/Restore.
func (r *Realm) SameOrigin(other *Realm) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil {
		return false
	}
	return r.Name != "" && r.Name == other.Name
}
