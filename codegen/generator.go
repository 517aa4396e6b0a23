// Package codegen turns a schema.IR into Go source: one package per login
// revision and per world target, each with its enums, flags, structs,
// messages and opcode dispatch.
package codegen

import (
	"fmt"
	"go/format"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gstoney/wowproto/schema"
)

type Config struct {
	// ImportPath is the import path of the output root directory.
	ImportPath string
	// WireImport is the import path of the runtime package.
	WireImport string
	LoginDir   string
	WorldDir   string
	FileName   string
	// Generator names the tool in the generated file header.
	Generator string
}

func (c Config) withDefaults() Config {
	if c.WireImport == "" {
		c.WireImport = "github.com/gstoney/wowproto/wire"
	}
	if c.LoginDir == "" {
		c.LoginDir = "login"
	}
	if c.WorldDir == "" {
		c.WorldDir = "world"
	}
	if c.FileName == "" {
		c.FileName = "zz_generated_messages.go"
	}
	if c.Generator == "" {
		c.Generator = "wowgen"
	}
	return c
}

// File is the formatted source of one unit.
type File struct {
	Unit   string
	Path   string
	Source []byte
}

type UnitReport struct {
	Unit     string
	Emitted  int
	Linked   int
	Excluded int
	Failed   int
}

type Result struct {
	RunID       uuid.UUID
	Files       []File
	Units       []UnitReport
	Diagnostics Diagnostics
}

// WriteFiles writes every unit under root, creating directories as needed.
func (r *Result) WriteFiles(root string) error {
	for _, f := range r.Files {
		p := filepath.Join(root, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(p, f.Source, 0o644); err != nil {
			return err
		}
	}
	return nil
}

type Generator struct {
	cfg Config
	log zerolog.Logger

	ir     *schema.IR
	units  []*unit
	result *Result
}

func New(cfg Config, logger zerolog.Logger) *Generator {
	return &Generator{cfg: cfg.withDefaults(), log: logger}
}

// unit is one output package.
type unit struct {
	name       string
	pkg        string
	importPath string

	login        bool
	loginVersion int
	target       schema.WorldTarget
	targetIndex  int
	objects      *schema.Objects

	scope    *scope
	enums    []*schema.Definer
	flags    []*schema.Definer
	structs  []*schema.Container
	messages []*schema.Container

	failed    map[string]bool
	available map[any]bool
	report    UnitReport
}

func (g *Generator) newUnit(dir, pkg string) *unit {
	name := path.Join(dir, pkg)
	return &unit{
		name:        name,
		pkg:         pkg,
		importPath:  path.Join(g.cfg.ImportPath, name),
		targetIndex: -1,
		scope: &scope{
			enums:   make(map[string]*schema.Definer),
			flags:   make(map[string]*schema.Definer),
			structs: make(map[string]*schema.Container),
			sizes:   make(map[*schema.Container]sizeInfo),
		},
		failed:    make(map[string]bool),
		available: make(map[any]bool),
		report:    UnitReport{Unit: name},
	}
}

func packageName(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' && sb.Len() > 0 {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// plan lists the units in generation order: the shared login unit, then
// each login revision ascending, then the world targets as configured.
func (g *Generator) plan() error {
	all := g.newUnit(g.cfg.LoginDir, "all")
	all.login = true
	all.objects = &g.ir.Login
	g.units = append(g.units, all)

	versions := slices.Clone(g.ir.LoginVersions)
	slices.Sort(versions)
	for _, v := range slices.Compact(versions) {
		if v == 0 {
			continue
		}
		u := g.newUnit(g.cfg.LoginDir, fmt.Sprintf("version%d", v))
		u.login = true
		u.loginVersion = v
		u.objects = &g.ir.Login
		g.units = append(g.units, u)
	}

	seen := make(map[string]bool)
	for i, t := range g.ir.WorldTargets {
		pkg := packageName(t.Name)
		if pkg == "" || seen[pkg] {
			return fmt.Errorf("%w: world target name %q", ErrConfig, t.Name)
		}
		if _, ok := auraMaskTypes[t.Family]; !ok {
			return fmt.Errorf("%w: world target %s has family %q", ErrConfig, t.Name, t.Family)
		}
		seen[pkg] = true

		u := g.newUnit(g.cfg.WorldDir, pkg)
		u.target = t
		u.targetIndex = i
		u.objects = &g.ir.World
		g.units = append(g.units, u)
	}
	return nil
}

// Generate produces one formatted file per unit. Failures of individual
// objects do not stop the run; they are returned in Result.Diagnostics.
func (g *Generator) Generate(ir *schema.IR) (*Result, error) {
	if g.cfg.ImportPath == "" {
		return nil, fmt.Errorf("%w: import path is empty", ErrConfig)
	}

	g.ir = ir
	g.units = nil
	g.result = &Result{RunID: uuid.New()}
	log := g.log.With().Str("run", g.result.RunID.String()).Logger()

	if err := g.plan(); err != nil {
		return nil, err
	}

	for _, u := range g.units {
		src, err := g.generateUnit(u)
		if err != nil {
			return nil, fmt.Errorf("unit %s: %w", u.name, err)
		}
		g.result.Files = append(g.result.Files, File{
			Unit:   u.name,
			Path:   path.Join(u.name, g.cfg.FileName),
			Source: src,
		})
		g.result.Units = append(g.result.Units, u.report)

		log.Debug().
			Str("unit", u.name).
			Int("emitted", u.report.Emitted).
			Int("linked", u.report.Linked).
			Int("excluded", u.report.Excluded).
			Int("failed", u.report.Failed).
			Msg("unit generated")
	}

	log.Info().
		Int("units", len(g.units)).
		Int("failures", len(g.result.Diagnostics)).
		Msg("generation finished")
	return g.result, nil
}

func (g *Generator) fail(u *unit, object string, err error) {
	u.failed[object] = true
	u.report.Failed++
	g.result.Diagnostics = append(g.result.Diagnostics, &ObjectError{Unit: u.name, Object: object, Err: err})
	g.log.Warn().Err(err).Str("unit", u.name).Str("object", object).Msg("object failed")
}

func (g *Generator) exclude(u *unit, object, reason string) {
	u.report.Excluded++
	g.log.Debug().Str("unit", u.name).Str("object", object).Str("reason", reason).Msg("object excluded")
}

func (g *Generator) matches(u *unit, t schema.Tags) (bool, error) {
	if u.login {
		return t.MatchesLogin(u.loginVersion)
	}
	return t.MatchesWorld(u.target.Version)
}

func allVersions(t schema.Tags) bool {
	switch v := t.Version.(type) {
	case schema.LoginVersions:
		return v.All
	case schema.WorldVersions:
		return v.All
	}
	return false
}

// selectVersion keeps the objects that exist in u. When a name is defined
// both for all revisions and for specific ones, the specific definition
// wins; two specific definitions of one name are an error.
func selectVersion[T comparable](g *Generator, u *unit, objs []T, meta func(T) (string, schema.Tags)) (byName map[string]T, order []T) {
	byName = make(map[string]T)
	for _, o := range objs {
		name, tags := meta(o)
		ok, err := g.matches(u, tags)
		if err != nil {
			g.fail(u, name, err)
			continue
		}
		if !ok {
			continue
		}

		prev, exists := byName[name]
		if !exists {
			byName[name] = o
			order = append(order, o)
			continue
		}
		if allVersions(tags) {
			continue
		}
		if _, prevTags := meta(prev); allVersions(prevTags) {
			byName[name] = o
			order[slices.Index(order, prev)] = o
			continue
		}
		g.fail(u, name, fmt.Errorf("%w: %s is defined twice for this revision", ErrDuplicate, name))
	}
	return
}

func definerMeta(d *schema.Definer) (string, schema.Tags)    { return d.Name, d.Tags }
func containerMeta(c *schema.Container) (string, schema.Tags) { return c.Name, c.Tags }

// collect fills the unit's scope with every object that exists in its
// revision and can be generated.
func (g *Generator) collect(u *unit) {
	u.scope.enums, u.enums = selectVersion(g, u, u.objects.Enums, definerMeta)
	u.scope.flags, u.flags = selectVersion(g, u, u.objects.Flags, definerMeta)
	structs, structOrder := selectVersion(g, u, u.objects.Structs, containerMeta)
	_, messageOrder := selectVersion(g, u, u.objects.Messages, containerMeta)

	candidates := append(slices.Clone(structOrder), messageOrder...)
	excluded := make(map[*schema.Container]bool)
	failed := make(map[*schema.Container]bool)
	for _, c := range candidates {
		if reason := exclusion(c); reason != "" {
			excluded[c] = true
			g.exclude(u, c.Name, reason)
		}
	}

	for changed := true; changed; {
		changed = false
		for _, c := range candidates {
			if excluded[c] || failed[c] {
				continue
			}
			reason, err := g.refStatus(u, c, structs, excluded, failed)
			switch {
			case err != nil:
				failed[c] = true
				g.fail(u, c.Name, err)
				changed = true
			case reason != "":
				excluded[c] = true
				g.exclude(u, c.Name, reason)
				changed = true
			}
		}
	}

	for _, c := range structOrder {
		if !excluded[c] && !failed[c] {
			u.scope.structs[c.Name] = c
			u.structs = append(u.structs, c)
		}
	}
	for _, c := range messageOrder {
		if !excluded[c] && !failed[c] {
			u.messages = append(u.messages, c)
		}
	}
}

func (g *Generator) refStatus(u *unit, c *schema.Container, structs map[string]*schema.Container, excluded, failed map[*schema.Container]bool) (string, error) {
	r := containerRefs(c)
	for _, n := range r.enums {
		if u.scope.enums[n] == nil {
			return "", g.missing(u, "enum", n)
		}
	}
	for _, n := range r.flags {
		if u.scope.flags[n] == nil {
			return "", g.missing(u, "flag", n)
		}
	}
	for _, n := range r.structs {
		s := structs[n]
		switch {
		case s == nil:
			return "", g.missing(u, "struct", n)
		case failed[s]:
			return "", fmt.Errorf("%w: %s", ErrDependency, n)
		case excluded[s]:
			return "uses excluded struct " + n, nil
		}
	}
	return "", nil
}

func (g *Generator) missing(u *unit, kind, name string) error {
	if u.failed[name] {
		return fmt.Errorf("%w: %s", ErrDependency, name)
	}
	return fmt.Errorf("%w: %s %s", ErrUnresolved, kind, name)
}

// object is the generated code of one schema object.
type object struct {
	obj     any
	name    string
	code    string
	imports map[string]bool
	linked  bool
	refs    refs
}

// checkSyntax parses a single object so a bad emission fails that object
// instead of the whole unit.
func checkSyntax(code string) error {
	_, err := format.Source([]byte("package p\n\n" + code))
	return err
}

func (g *Generator) emitDefiners(u *unit, ds []*schema.Definer, flag bool) (out []*object) {
	for _, d := range ds {
		o := &object{obj: d, name: d.Name, imports: make(map[string]bool)}
		var w writer
		if owner := g.owner(u, d.Tags); owner != nil && linkable(u, owner, d) {
			writeDefinerAlias(&w, d, owner.pkg)
			o.imports[owner.importPath] = true
			o.linked = true
		} else if err := emitDefiner(&w, d, flag); err != nil {
			g.fail(u, d.Name, err)
			continue
		} else if err = checkSyntax(w.String()); err != nil {
			g.fail(u, d.Name, err)
			continue
		}
		o.code = w.String()
		out = append(out, o)
	}
	return
}

func (g *Generator) emitContainers(u *unit, cs []*schema.Container) (out []*object) {
	for _, c := range cs {
		o := &object{obj: c, name: c.Name, imports: make(map[string]bool), refs: containerRefs(c)}
		var w writer
		if owner := g.owner(u, c.Tags); owner != nil && linkable(u, owner, c) {
			writeContainerAlias(&w, u.scope, c, owner.pkg)
			o.imports[owner.importPath] = true
			o.linked = true
		} else {
			cg, err := newContainerGen(u.scope, c)
			if err == nil {
				err = cg.emit(&w)
			}
			if err == nil {
				err = checkSyntax(w.String())
			}
			if err != nil {
				g.fail(u, c.Name, err)
				continue
			}
			o.imports = cg.imports
		}
		o.code = w.String()
		out = append(out, o)
	}
	return
}

// dropDependents removes emitted containers that refer to an object that did
// not make it into the unit, repeating until nothing else fails.
func (g *Generator) dropDependents(u *unit, objs []*object) []*object {
	for changed := true; changed; {
		changed = false
		present := make(map[string]bool, len(objs))
		for _, o := range objs {
			present[o.name] = true
		}

		kept := objs[:0]
		for _, o := range objs {
			if dep := missingRef(o, present); dep != "" {
				g.fail(u, o.name, fmt.Errorf("%w: %s", ErrDependency, dep))
				changed = true
				continue
			}
			kept = append(kept, o)
		}
		objs = kept
	}
	return objs
}

// missingRef returns a type o refers to that is not in the unit. Aliases
// refer to the owning unit's types and never miss.
func missingRef(o *object, present map[string]bool) string {
	if o.linked {
		return ""
	}
	for _, names := range [][]string{o.refs.enums, o.refs.flags, o.refs.structs} {
		for _, n := range names {
			if !present[n] {
				return n
			}
		}
	}
	return ""
}

var auraMaskTypes = map[schema.MaskFamily]string{
	schema.FamilyVanilla: "VanillaAuraMask",
	schema.FamilyTbc:     "TbcAuraMask",
	schema.FamilyWrath:   "WrathAuraMask",
}

// writeMasks aliases the runtime mask types of the unit's family and lists
// the update field offsets.
func (g *Generator) writeMasks(w *writer, u *unit) {
	w.ln("type UpdateMask = wire.UpdateMask")
	w.blank()
	w.ln("type AuraMask = wire.%s", auraMaskTypes[u.target.Family])

	fields := g.ir.UpdateMasks[u.target.Family]
	if len(fields) == 0 {
		return
	}
	w.blank()
	w.ln("// Update field offsets, in 32-bit words.")
	w.ln("const (")
	w.indent++
	seen := make(map[string]bool)
	for _, f := range fields {
		name := "Update" + fieldName(f.Object) + fieldName(f.Name)
		if seen[name] {
			continue
		}
		seen[name] = true
		w.ln("%s = 0x%04X", name, f.Offset)
	}
	w.indent--
	w.ln(")")
}

type fileData struct {
	Generator string
	Package   string
	Imports   [][]string
	Body      string
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by {{.Generator}}; DO NOT EDIT.

package {{.Package}}
{{if .Imports}}
import (
{{- range $i, $g := .Imports}}{{if $i}}
{{end}}
{{- range $g}}
	"{{.}}"
{{- end}}
{{- end}}
)
{{end}}
{{.Body}}`))

func (g *Generator) generateUnit(u *unit) ([]byte, error) {
	g.collect(u)

	var objs []*object
	objs = append(objs, g.emitDefiners(u, u.enums, false)...)
	objs = append(objs, g.emitDefiners(u, u.flags, true)...)
	objs = append(objs, g.emitContainers(u, u.structs)...)
	objs = append(objs, g.emitContainers(u, u.messages)...)
	objs = g.dropDependents(u, objs)

	var messages []*schema.Container
	opcodes := make(map[string]bool)
	kept := objs[:0]
	for _, o := range objs {
		c, ok := o.obj.(*schema.Container)
		if !ok || !c.Object.IsMessage() {
			kept = append(kept, o)
			continue
		}
		keys := opcodeKeys(c.Object)
		if slices.ContainsFunc(keys, func(k string) bool { return opcodes[k] }) {
			g.fail(u, c.Name, fmt.Errorf("%w: opcode %#x", ErrDuplicate, c.Object.Opcode))
			continue
		}
		for _, k := range keys {
			opcodes[k] = true
		}
		messages = append(messages, c)
		kept = append(kept, o)
	}
	objs = kept

	std := make(map[string]bool)
	ext := make(map[string]bool)
	var body writer
	needWire := !u.login

	if !u.login {
		g.writeMasks(&body, u)
		body.blank()
	}
	for _, o := range objs {
		u.available[o.obj] = true
		if o.linked {
			u.report.Linked++
		} else {
			u.report.Emitted++
			needWire = true
		}
		for imp := range o.imports {
			if strings.Contains(imp, ".") {
				ext[imp] = true
			} else {
				std[imp] = true
			}
		}
		body.sb.WriteString(o.code)
		body.blank()
	}

	if !u.login || u.loginVersion != 0 {
		if u.login {
			std["io"] = true
		}
		needWire = true
		if err := emitDispatch(&body, dispatchCases(messages, u.login), u.login); err != nil {
			return nil, err
		}
	}
	if needWire {
		ext[g.cfg.WireImport] = true
	}

	data := fileData{Generator: g.cfg.Generator, Package: u.pkg, Body: body.String()}
	for _, group := range []map[string]bool{std, ext} {
		if len(group) == 0 {
			continue
		}
		paths := make([]string, 0, len(group))
		for p := range group {
			paths = append(paths, p)
		}
		slices.Sort(paths)
		data.Imports = append(data.Imports, paths)
	}

	var sb strings.Builder
	if err := fileTemplate.Execute(&sb, data); err != nil {
		return nil, err
	}
	src, err := format.Source([]byte(sb.String()))
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	return src, nil
}

// opcodeKeys are the dispatch table slots a message occupies.
func opcodeKeys(t schema.ObjectType) []string {
	client := fmt.Sprintf("client/%d", t.Opcode)
	server := fmt.Sprintf("server/%d", t.Opcode)
	switch t.Kind {
	case schema.KindCLogin, schema.KindCMsg:
		return []string{client}
	case schema.KindSLogin, schema.KindSMsg:
		return []string{server}
	}
	return []string{client, server}
}
