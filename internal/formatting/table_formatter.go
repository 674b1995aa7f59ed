package formatting

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"oboro/internal/dependency"
	"oboro/internal/resolver"
	pkgstrings "oboro/pkg/strings"
)

// TableFormatter provides rich table output formatting
type TableFormatter struct {
	options Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(options Options) Formatter {
	return &TableFormatter{
		options: options,
	}
}

// FormatConfig renders the entities of cfg followed by the trigger registries.
func (f *TableFormatter) FormatConfig(w io.Writer, cfg *resolver.Config) error {
	if cfg == nil {
		return errNilConfig
	}
	total := len(cfg.StartPlugins) + len(cfg.LazyPlugins) + len(cfg.Bundles)
	if total == 0 {
		_, err := fmt.Fprint(w, f.formatEmptyMessage("📋", "No plugins found"))
		return err
	}

	t := f.createTable()
	t.AppendHeader(f.header("ID", "CATEGORY", "LAZY", "DEPENDS ON", "MEMBERS"))
	for _, p := range cfg.StartPlugins {
		t.AppendRow(table.Row{f.paint(text.FgHiCyan, p.ID), resolver.CategoryStart, "", "", ""})
	}
	for _, p := range cfg.LazyPlugins {
		t.AppendRow(table.Row{
			f.paint(text.FgHiCyan, p.ID),
			resolver.CategoryLazy,
			f.formatBool(p.Lazy),
			joinList(p.Deps, p.DepBundles),
			"",
		})
	}
	for _, b := range cfg.Bundles {
		t.AppendRow(table.Row{
			f.paint(text.FgHiCyan, b.ID),
			resolver.CategoryBundle,
			f.formatBool(b.Lazy),
			joinList(b.Deps, b.DepBundles),
			joinList(b.Plugins),
		})
	}
	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}

	triggers := []struct {
		kind  string
		index resolver.Index
	}{
		{"mod", cfg.ModIndex},
		{"ev", cfg.EvIndex},
		{"ft", cfg.FtIndex},
		{"cmd", cfg.CmdIndex},
	}
	tt := f.createTable()
	tt.AppendHeader(f.header("TRIGGER", "TAG", "PLUGINS"))
	rows := 0
	for _, tr := range triggers {
		for _, tag := range tr.index.Tags() {
			tt.AppendRow(table.Row{tr.kind, f.paint(text.FgHiCyan, tag), joinList(tr.index[tag])})
			rows++
		}
	}
	if rows > 0 {
		if _, err := fmt.Fprintln(w, tt.Render()); err != nil {
			return err
		}
	}

	if f.options.Quiet {
		return nil
	}
	_, err := fmt.Fprintf(w, "\n%s %s %s, %s %s\n",
		f.paint(text.FgHiBlue, "Total:"),
		f.paint(text.FgHiWhite, fmt.Sprint(total)),
		f.paint(text.FgHiBlue, "entities"),
		f.paint(text.FgHiWhite, fmt.Sprint(len(cfg.Lazys))),
		f.paint(text.FgHiBlue, "loaded on demand"))
	return err
}

// FormatDependencies renders one row per graph node.
func (f *TableFormatter) FormatDependencies(w io.Writer, g *dependency.Graph, ids ...dependency.NodeID) error {
	entries := DependencyEntries(g, ids...)
	if len(entries) == 0 {
		_, err := fmt.Fprint(w, f.formatEmptyMessage("📋", "No dependencies found"))
		return err
	}

	t := f.createTable()
	t.AppendHeader(f.header("ID", "KIND", "DEPENDS ON", "REQUIRED BY", "IN BUNDLES"))
	for _, e := range entries {
		t.AppendRow(table.Row{
			f.paint(text.FgHiCyan, e.ID),
			e.Kind,
			joinList(e.DependsOn, e.Members),
			joinList(e.Dependents),
			joinList(e.Bundles),
		})
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// SetOptions updates the formatter options
func (f *TableFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *TableFormatter) GetOptions() Options {
	return f.options
}

// Helper methods

// createTable creates a new table with standard styling
func (f *TableFormatter) createTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	return t
}

func (f *TableFormatter) header(cols ...string) table.Row {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = f.paint(text.FgHiCyan, c)
	}
	return row
}

// paint colours s when colour output is enabled.
func (f *TableFormatter) paint(c text.Color, s string) string {
	if !f.options.Color {
		return s
	}
	return c.Sprint(s)
}

func (f *TableFormatter) formatBool(b bool) string {
	if b {
		return f.paint(text.FgGreen, "yes")
	}
	return ""
}

// formatEmptyMessage formats empty result messages
func (f *TableFormatter) formatEmptyMessage(icon, message string) string {
	if f.options.Quiet {
		return ""
	}
	return fmt.Sprintf("%s %s\n", f.paint(text.FgYellow, icon), f.paint(text.FgYellow, message))
}

// joinList renders lists as one comma separated table cell.
func joinList(lists ...[]string) string {
	var all []string
	for _, l := range lists {
		all = append(all, l...)
	}
	return pkgstrings.Truncate(strings.Join(all, ", "), pkgstrings.DefaultColumnWidth)
}
