package reivm

type Function struct {
	Name       string
	NumParams  int
	ParamNames []string
	Code       []OpCode
	Constants  []any

	Script *Script
	Lines  []LineEntry

	// Hidden functions never appear in developer-facing traces.
	Hidden bool

	// Realm is the security origin of the function. Nil means the
	// function belongs to the realm of whatever VM runs it.
	Realm *Realm
}

// LineEntry maps instructions starting at IP to a source position.
// Entries are sorted by IP.
type LineEntry struct {
	IP     int
	Line   int
	Column int
}

// PositionFor returns the source position of the instruction at ip,
// or zeros if the function has no line table.
func (f *Function) PositionFor(ip int) (line, column int) {
	for i := len(f.Lines) - 1; i >= 0; i-- {
		if f.Lines[i].IP <= ip {
			return f.Lines[i].Line, f.Lines[i].Column
		}
	}
	return 0, 0
}
