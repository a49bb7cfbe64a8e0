package helpfmt

import (
	"github.com/napalu/helpfmt/types"
)

// Aliases so callers rarely need to import the types package
type (
	OptionMode  = types.OptionMode
	CommandMode = types.CommandMode
)

const (
	ModeUsage      = types.Usage
	ModePositional = types.Positional
	ModeOptional   = types.Optional

	ModeNormal = types.Normal
	ModeAll    = types.All
	ModeSub    = types.Sub
)

const (
	// DefaultColumnWidth is the width of the left help column
	DefaultColumnWidth = 30
	// DefaultOptionGroup is the group new options are listed under
	DefaultOptionGroup = "Options"
	// DefaultSubcommandGroup is the group new subcommands are listed under
	DefaultSubcommandGroup = "Subcommands"
)

// OptionFilter selects options in Command.GetOptions
type OptionFilter func(opt *Option) bool

// CommandFilter selects subcommands in Command.GetSubcommands
type CommandFilter func(cmd *Command) bool

// ConfigureOptionFunc is used when defining options
type ConfigureOptionFunc func(opt *Option)

// ConfigureCommandFunc is used when defining commands
type ConfigureCommandFunc func(cmd *Command)

// ConfigureRendererFunc is used when creating a Renderer
type ConfigureRendererFunc func(r *Renderer)

// OptionFormatter renders a single option. Implementations may call back into r for labels,
// the column width or other formatters.
type OptionFormatter interface {
	// FormatOption renders opt as one help item in the given mode
	FormatOption(r *Renderer, opt *Option, mode OptionMode) (string, error)
	// OptionUsage renders a positional option for the command usage line
	OptionUsage(r *Renderer, opt *Option) string
}

// CommandFormatter renders a whole command node. name is the externally visible program name,
// used on the usage line.
type CommandFormatter interface {
	FormatCommand(r *Renderer, cmd *Command, name string, mode CommandMode) (string, error)
}
