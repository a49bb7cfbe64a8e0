package helpfmt

import (
	"github.com/iancoleman/strcase"
)

// WithName sets the long name of the option (without leading dashes)
func WithName(name string) ConfigureOptionFunc {
	return func(opt *Option) {
		opt.Name = name
	}
}

// WithShortFlag sets the short name of the option (without leading dash)
func WithShortFlag(short string) ConfigureOptionFunc {
	return func(opt *Option) {
		opt.Short = short
	}
}

// WithDescription sets the help text shown in the right column
func WithDescription(description string) ConfigureOptionFunc {
	return func(opt *Option) {
		opt.Description = description
	}
}

// WithGroup sets the group the option is listed under. An empty group hides the option.
func WithGroup(group string) ConfigureOptionFunc {
	return func(opt *Option) {
		opt.Group = group
	}
}

// Hidden removes the option from every help listing
func Hidden() ConfigureOptionFunc {
	return WithGroup("")
}

// AsPositional marks the option as a positional parameter displayed as name
func AsPositional(name string) ConfigureOptionFunc {
	return func(opt *Option) {
		opt.Positional = true
		opt.PositionalName = name
		if opt.Name == "" {
			opt.Name = name
		}
	}
}

// AsFlag marks the option as taking no value
func AsFlag() ConfigureOptionFunc {
	return WithExpected(0)
}

// WithExpected sets the number of values the option consumes (-1 for unlimited)
func WithExpected(n int) ConfigureOptionFunc {
	return func(opt *Option) {
		if n < -1 {
			n = -1
		}
		opt.Expected = n
	}
}

// SetRequired marks the option as required
func SetRequired(required bool) ConfigureOptionFunc {
	return func(opt *Option) {
		opt.Required = required
	}
}

// WithDefaultValue sets the default value shown after the type hint
func WithDefaultValue(defaultValue string) ConfigureOptionFunc {
	return func(opt *Option) {
		opt.DefaultValue = defaultValue
	}
}

// WithTypeHint sets the value placeholder, e.g. "TEXT" or "INT"
func WithTypeHint(typeHint string) ConfigureOptionFunc {
	return func(opt *Option) {
		opt.TypeHint = typeHint
	}
}

// WithEnvName sets the environment variable the option may be read from
func WithEnvName(envName string) ConfigureOptionFunc {
	return func(opt *Option) {
		opt.EnvName = envName
	}
}

// WithEnvFromName derives the environment variable name from prefix and the option name, e.g.
// prefix "app" and name "logLevel" become APP_LOG_LEVEL. Apply it after the name is set.
func WithEnvFromName(prefix string) ConfigureOptionFunc {
	return func(opt *Option) {
		name := opt.Name
		if name == "" {
			name = opt.PositionalName
		}
		if name == "" {
			return
		}
		if prefix != "" {
			name = prefix + "_" + name
		}
		opt.EnvName = strcase.ToScreamingSnake(name)
	}
}

// WithNeeds records needs relations, see Option.Needs
func WithNeeds(others ...*Option) ConfigureOptionFunc {
	return func(opt *Option) {
		opt.Needs(others...)
	}
}

// WithExcludes records excludes relations, see Option.Excludes
func WithExcludes(others ...*Option) ConfigureOptionFunc {
	return func(opt *Option) {
		opt.Excludes(others...)
	}
}
