package shape

// Kind selects one of the six shape variants.
type Kind uint8

// Shape kinds.
const (
	KindPoint Kind = iota
	KindHorizontalLine
	KindVerticalLine
	KindTriangle
	KindSquare
	KindCircle

	kindCount
)

var kindInfo = [kindCount]struct {
	key   byte
	label string
}{
	KindPoint:          {'p', "point"},
	KindHorizontalLine: {'h', "horizontal line"},
	KindVerticalLine:   {'v', "vertical line"},
	KindTriangle:       {'t', "triangle"},
	KindSquare:         {'q', "square"},
	KindCircle:         {'c', "circle"},
}

// Kinds returns all shape kinds in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k < kindCount }

// Key returns the key that selects this kind.
func (k Kind) Key() byte {
	if !k.Valid() {
		return 0
	}
	return kindInfo[k].key
}

// Label returns the human-readable mode name, e.g. "horizontal line".
func (k Kind) Label() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindInfo[k].label
}

// String implements fmt.Stringer.
func (k Kind) String() string { return k.Label() }

// KindForKey returns the kind selected by key.
func KindForKey(key byte) (Kind, bool) {
	for i, info := range kindInfo {
		if info.key == key {
			return Kind(i), true
		}
	}
	return 0, false
}
