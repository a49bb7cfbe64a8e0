package helpfmt

import (
	"io"

	"github.com/napalu/helpfmt/errs"
)

// Renderer is the entry point for producing help text. It owns the label table, the column
// width and the pluggable option and command formatters.
//
// A Renderer is not safe for concurrent configuration changes; rendering itself does not mutate
// the renderer or the command tree.
type Renderer struct {
	labels           *Labels
	columnWidth      int
	optionFormatter  OptionFormatter
	commandFormatter CommandFormatter
	depth            int
}

// NewRenderer creates a Renderer with the default labels, DefaultColumnWidth and the default
// formatters, then applies configs.
func NewRenderer(configs ...ConfigureRendererFunc) *Renderer {
	r := &Renderer{
		labels:           NewLabels(),
		columnWidth:      DefaultColumnWidth,
		optionFormatter:  NewOptionFormatter(),
		commandFormatter: NewCommandFormatter(),
	}

	for _, config := range configs {
		config(r)
	}

	return r
}

// Render produces the help text of cmd in the given mode. name is the externally visible program
// name used on the usage line; when empty the command's own name is used. The tree is checked
// for cycles before anything is rendered.
func (r *Renderer) Render(cmd *Command, name string, mode CommandMode) (string, error) {
	if cmd == nil {
		return "", errs.ErrNilCommand
	}
	if err := cmd.Walk(nil); err != nil {
		return "", err
	}
	if name == "" {
		name = cmd.Name
	}

	return r.FormatCommand(cmd, name, mode)
}

// Print renders cmd and writes the result to w
func (r *Renderer) Print(w io.Writer, cmd *Command, name string, mode CommandMode) error {
	help, err := r.Render(cmd, name, mode)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, help); err != nil {
		return errs.ErrWriteFailed.Wrap(err)
	}

	return nil
}

// FormatCommand delegates to the configured CommandFormatter without validating the tree.
// Formatters use it to render descendants.
func (r *Renderer) FormatCommand(cmd *Command, name string, mode CommandMode) (string, error) {
	return r.commandFormatter.FormatCommand(r, cmd, name, mode)
}

// FormatOption delegates to the configured OptionFormatter
func (r *Renderer) FormatOption(opt *Option, mode OptionMode) (string, error) {
	return r.optionFormatter.FormatOption(r, opt, mode)
}

// OptionUsage delegates to the configured OptionFormatter
func (r *Renderer) OptionUsage(opt *Option) string {
	return r.optionFormatter.OptionUsage(r, opt)
}

// Label returns the label stored under key or errs.ErrUnknownLabelKey
func (r *Renderer) Label(key string) (string, error) {
	return r.labels.Get(key)
}

// Labels returns the renderer's label table
func (r *Renderer) Labels() *Labels {
	return r.labels
}

// Depth returns the number of All mode expansions enclosing the command being formatted: 0 for
// the command passed to Render, 1 for its subcommands expanded in All mode and so on.
func (r *Renderer) Depth() int {
	return r.depth
}

// nested returns a copy of r one expansion level deeper. The copy shares labels and formatters.
func (r *Renderer) nested() *Renderer {
	n := *r
	n.depth++
	return &n
}

// ColumnWidth returns the width of the left help column
func (r *Renderer) ColumnWidth() int {
	return r.columnWidth
}

// SetOptionFormatter allows overriding the built-in option formatter. nil restores the default.
func (r *Renderer) SetOptionFormatter(f OptionFormatter) {
	if f == nil {
		f = NewOptionFormatter()
	}
	r.optionFormatter = f
}

// SetCommandFormatter allows overriding the built-in command formatter. nil restores the default.
func (r *Renderer) SetCommandFormatter(f CommandFormatter) {
	if f == nil {
		f = NewCommandFormatter()
	}
	r.commandFormatter = f
}
