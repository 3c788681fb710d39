package traces

// Options controls which frames a capture may expose. The zero value is
// the default: detailed, same-origin frames only.
type Options uint8

const (
	// ExposeFramesAcrossOrigins allows frames whose realm differs from
	// the capturing VM's realm.
	ExposeFramesAcrossOrigins Options = 1 << iota
)

func (o Options) Has(flag Options) bool {
	return o&flag != 0
}
