package types

// OptionMode signifies the situation an option is being rendered in.
type OptionMode int

const (
	Usage      OptionMode = iota // Usage renders the option on the command usage line
	Positional                   // Positional renders the option in the positionals section
	Optional                     // Optional renders the option in a named option group
)

// String returns the string representation of an OptionMode
func (m OptionMode) String() string {
	switch m {
	case Usage:
		return "usage"
	case Positional:
		return "positional"
	case Optional:
		return "optional"
	}
	return "unknown"
}

// CommandMode signifies the type of help requested for a command.
type CommandMode int

const (
	Normal CommandMode = iota // Normal is the standalone, detailed help
	All                       // All is Normal plus every descendant expanded recursively
	Sub                       // Sub is the compact form used when listed inside a parent's expansion
)

// String returns the string representation of a CommandMode
func (m CommandMode) String() string {
	switch m {
	case Normal:
		return "normal"
	case All:
		return "all"
	case Sub:
		return "sub"
	}
	return "unknown"
}

// ParseCommandMode returns the CommandMode matching s. The second return value is false when s
// does not name a mode.
func ParseCommandMode(s string) (CommandMode, bool) {
	switch s {
	case "normal", "":
		return Normal, true
	case "all":
		return All, true
	case "sub":
		return Sub, true
	}
	return Normal, false
}

// Label keys known to the default formatters. Custom formatters may introduce their own.
const (
	LabelUsage       = "USAGE"
	LabelOptions     = "OPTIONS"
	LabelSubcommand  = "SUBCOMMAND"
	LabelSubcommands = "SUBCOMMANDS"
	LabelPositionals = "POSITIONALS"
	LabelRequired    = "REQUIRED"
	LabelNeeds       = "NEEDS"
	LabelExcludes    = "EXCLUDES"
	LabelEnv         = "ENV"
)
