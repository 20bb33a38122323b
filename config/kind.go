package config

import "fmt"

// Kind is the type tag of a node.
type Kind uint8

const (
	Undefined Kind = iota
	Nil
	True
	False
	Number
	String
	Array
	Object
	Raw
)

var kindNames = [...]string{
	Undefined: "undefined",
	Nil:       "null",
	True:      "true",
	False:     "false",
	Number:    "number",
	String:    "string",
	Array:     "array",
	Object:    "object",
	Raw:       "raw",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsContainer reports whether k holds children.
func (k Kind) IsContainer() bool { return k == Array || k == Object }

// IsScalar reports whether k is a defined non-container kind.
func (k Kind) IsScalar() bool { return k != Undefined && !k.IsContainer() }
