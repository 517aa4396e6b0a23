package wire

import (
	"fmt"
	"strings"
)

// FlagName pairs a flag bit with its enumerator name.
type FlagName struct {
	Value uint64
	Name  string
}

// UnknownEnum formats a value with no enumerator.
func UnknownEnum(typeName string, v uint64) string {
	return fmt.Sprintf("%s(%d)", typeName, v)
}

// FlagString joins the names of every set flag with '|'. Bits without a name
// are rendered in hex. Zero renders as the zero-valued name, if any.
func FlagString(v uint64, names []FlagName) string {
	var parts []string
	rest := v
	for _, n := range names {
		if n.Value == 0 {
			if v == 0 {
				return n.Name
			}
			continue
		}
		if v&n.Value == n.Value {
			parts = append(parts, n.Name)
			rest &^= n.Value
		}
	}
	if rest != 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("0x%X", rest))
	}
	return strings.Join(parts, "|")
}
