package codegen

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/gstoney/wowproto/schema"
)

type variant struct {
	Const string
	Name  string
	Value string
}

type definerData struct {
	Name   string
	Type   string
	Read   string
	Append string
	Names  string
	Flag   bool

	Variants []variant
	// Unique holds the first variant of every distinct value, for switches.
	Unique []variant
}

var definerTemplate = template.Must(template.New("definer").Parse(`
type {{.Name}} {{.Type}}

const (
{{- range .Variants}}
	{{.Const}} {{$.Name}} = {{.Value}}
{{- end}}
)
{{if .Flag}}
var {{.Names}} = []wire.FlagName{
{{- range .Unique}}
	{Value: uint64({{.Const}}), Name: "{{.Name}}"},
{{- end}}
}

func (e {{.Name}}) Has(f {{.Name}}) bool {
	return e&f == f
}

func (e {{.Name}}) String() string {
	return wire.FlagString(uint64(e), {{.Names}})
}
{{else}}
func (e {{.Name}}) Valid() bool {
{{- if .Unique}}
	switch e {
	case {{range $i, $v := .Unique}}{{if $i}}, {{end}}{{$v.Const}}{{end}}:
		return true
	}
{{- end}}
	return false
}

func (e {{.Name}}) String() string {
{{- if .Unique}}
	switch e {
{{- range .Unique}}
	case {{.Const}}:
		return "{{.Name}}"
{{- end}}
	}
{{- end}}
	return wire.UnknownEnum("{{.Name}}", uint64(e))
}
{{end}}
func (e *{{.Name}}) Decode(r wire.Reader) (err error) {
	var raw {{.Type}}
	if raw, err = {{.Read}}; err != nil {
		return
	}
{{if .Flag}}
	*e = {{.Name}}(raw)
{{- else}}
	v := {{.Name}}(raw)
	if !v.Valid() {
		return &wire.EnumError{Type: "{{.Name}}", Value: uint64(raw)}
	}
	*e = v
{{- end}}
	return
}

func (e {{.Name}}) AppendTo(b []byte) []byte {
	return {{.Append}}(b, {{.Type}}(e))
}
`))

func definerValue(d *schema.Definer, v uint64, flag bool) string {
	switch {
	case d.Type.Signed():
		return fmt.Sprint(int64(v))
	case flag:
		return fmt.Sprintf("0x%02X", v)
	}
	return fmt.Sprint(v)
}

// emitDefiner writes an enum or flag type with its methods.
func emitDefiner(w *writer, d *schema.Definer, flag bool) error {
	typ, err := intGoType(d.Type)
	if err != nil {
		return err
	}

	data := definerData{
		Name:   d.Name,
		Type:   typ,
		Read:   "wire.Read" + string(d.Type) + "(r)",
		Append: "wire.Append" + string(d.Type),
		Names:  unexportedName(d.Name) + "Names",
		Flag:   flag,
	}
	seen := make(map[uint64]bool)
	for _, f := range d.Fields {
		v := variant{Const: constName(d.Name, f.Name), Name: f.Name, Value: definerValue(d, f.Value, flag)}
		data.Variants = append(data.Variants, v)
		if !seen[f.Value] {
			seen[f.Value] = true
			data.Unique = append(data.Unique, v)
		}
	}

	var sb strings.Builder
	if err := definerTemplate.Execute(&sb, data); err != nil {
		return err
	}
	w.sb.WriteString(strings.TrimLeft(sb.String(), "\n"))
	return nil
}
