package codegen

import (
	"strings"
	"unicode"
)

// methodNames are generated on containers and cannot be used as field names.
var methodNames = map[string]bool{
	"Decode":                true,
	"AppendTo":              true,
	"Size":                  true,
	"Opcode":                true,
	"Encode":                true,
	"EncodeEncrypted":       true,
	"EncodeUnencrypted":     true,
	"EncodeClientEncrypted": true,
	"EncodeServerEncrypted": true,
	"LoginClientMessage":    true,
	"LoginServerMessage":    true,
	"WorldClientMessage":    true,
	"WorldServerMessage":    true,
}

// reservedLocals are identifiers the generated method bodies use themselves,
// plus predeclared Go names and imported package names a local would shadow.
var reservedLocals = map[string]bool{
	"b": true, "v": true, "r": true, "w": true, "h": true, "p": true, "m": true,
	"e": true, "i": true, "n": true, "err": true, "raw": true, "size": true,
	"consumed": true, "rest": true, "bodySize": true,

	"wire": true, "io": true, "netip": true,

	"any": true, "append": true, "bool": true, "byte": true, "cap": true,
	"clear": true, "close": true, "complex": true, "copy": true, "delete": true,
	"error": true, "false": true, "float32": true, "float64": true, "imag": true,
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"iota": true, "len": true, "make": true, "max": true, "min": true,
	"new": true, "nil": true, "panic": true, "print": true, "println": true,
	"real": true, "recover": true, "rune": true, "string": true, "true": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"uintptr": true,
}

func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == ' ' || r == '-'
	})
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// fieldName converts a snake_case member name to an exported field name.
func fieldName(s string) string {
	var sb strings.Builder
	for _, w := range words(s) {
		sb.WriteString(upperFirst(w))
	}
	name := sb.String()
	if name == "" || unicode.IsDigit([]rune(name)[0]) {
		name = "F" + name
	}
	if methodNames[name] {
		name += "Value"
	}
	return name
}

// localName converts a member name to an unexported identifier that is safe
// to declare inside generated methods.
func localName(s string) string {
	name := fieldName(s)
	r := []rune(name)
	r[0] = unicode.ToLower(r[0])
	name = string(r)
	if reservedLocals[name] {
		name += "_"
	}
	return name
}

// constName is the Go name of an enumerator.
func constName(typeName, variant string) string {
	return typeName + "_" + variant
}

// sizeConstName is the exported constant holding a fixed container size.
func sizeConstName(typeName string) string {
	if strings.Contains(typeName, "_") {
		return typeName + "_Size"
	}
	return typeName + "Size"
}

// unexportedName lowercases the first letter of an identifier.
func unexportedName(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
