package template

import (
	"bytes"
	"embed"
	"fmt"
	"sort"
	"strings"
	gotmpl "text/template"

	"github.com/Masterminds/sprig/v3"
)

// Names of the built-in templates.
const (
	Startup = "startup.tmpl"
	Deps    = "deps.tmpl"
	Plugin  = "plugin.tmpl"
	Plugins = "plugins.tmpl"
	Table   = "table.tmpl"
)

//go:embed templates/*.tmpl
var builtin embed.FS

// Engine renders the Lua fragments written by the generator.
type Engine struct {
	tmpl *gotmpl.Template
}

// New creates an engine with the built-in templates parsed.
func New() (*Engine, error) {
	tmpl, err := gotmpl.New("oboro").
		Option("missingkey=error").
		Funcs(FuncMap()).
		ParseFS(builtin, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing built-in templates: %w", err)
	}
	return &Engine{tmpl: tmpl}, nil
}

// Render executes the named template with data.
func (e *Engine) Render(name string, data interface{}) (string, error) {
	t := e.tmpl.Lookup(name)
	if t == nil {
		return "", fmt.Errorf("unknown template %q", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}

// Names returns the names of every parsed template, sorted.
func (e *Engine) Names() []string {
	var names []string
	for _, t := range e.tmpl.Templates() {
		if strings.HasSuffix(t.Name(), ".tmpl") {
			names = append(names, t.Name())
		}
	}
	sort.Strings(names)
	return names
}

// FuncMap returns the sprig text functions plus the Lua helpers.
func FuncMap() gotmpl.FuncMap {
	funcs := sprig.TxtFuncMap()
	funcs["luaString"] = LuaString
	funcs["luaTable"] = luaTable
	return funcs
}

// LuaString quotes s as a single-quoted Lua string literal.
func LuaString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)
	return "'" + r.Replace(s) + "'"
}

// LuaTable renders values as a Lua sequence, e.g. {'a','b',}.
func LuaTable(values []string) string {
	var b strings.Builder
	b.WriteString("{")
	for _, v := range values {
		b.WriteString(LuaString(v))
		b.WriteString(",")
	}
	b.WriteString("}")
	return b.String()
}

// luaTable accepts the list types templates produce: []string from
// fields and []interface{} from sprig list functions.
func luaTable(list interface{}) (string, error) {
	switch v := list.(type) {
	case nil:
		return LuaTable(nil), nil
	case []string:
		return LuaTable(v), nil
	case []interface{}:
		values := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return "", fmt.Errorf("luaTable: element %d is %T, not string", i, item)
			}
			values = append(values, s)
		}
		return LuaTable(values), nil
	default:
		return "", fmt.Errorf("luaTable: unsupported type %T", list)
	}
}
