package core

import "strings"

// Kind enumerates the particle categories a cell can hold.
type Kind uint8

const (
	Empty Kind = iota
	Sand
	Stone
	Water
)

var kindNames = [...]string{
	Empty: "empty",
	Sand:  "sand",
	Stone: "stone",
	Water: "water",
}

// KindFromID maps a raw numeric tag to a Kind. Unknown ids become Empty.
func KindFromID(id uint8) Kind {
	if int(id) >= len(kindNames) {
		return Empty
	}
	return Kind(id)
}

// ParseKind resolves a kind by its lowercase name.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return Empty, false
}

// Kinds lists every defined kind in tag order.
func Kinds() []Kind {
	return []Kind{Empty, Sand, Stone, Water}
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// Black is the color of an empty cell.
var Black = Color{}

// Cell is one grid slot. The zero value is an empty black cell.
type Cell struct {
	Kind  Kind
	Color Color
}

// IsEmpty reports whether the cell holds no particle.
func (c Cell) IsEmpty() bool { return c.Kind == Empty }
