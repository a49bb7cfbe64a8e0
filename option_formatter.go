package helpfmt

import (
	"strconv"
	"strings"

	"github.com/napalu/helpfmt/types"
)

// OptionPartFunc replaces one part of the default option rendering
type OptionPartFunc func(r *Renderer, opt *Option, mode OptionMode) (string, error)

// ConfigureOptionFormatterFunc is used when creating a DefaultOptionFormatter
type ConfigureOptionFormatterFunc func(f *DefaultOptionFormatter)

// DefaultOptionFormatter renders an option as name and decorations in the left column and the
// description in the right column. Each of the three parts can be replaced on its own with
// WithNameFunc, WithOptsFunc and WithDescFunc.
type DefaultOptionFormatter struct {
	nameFunc OptionPartFunc
	optsFunc OptionPartFunc
	descFunc OptionPartFunc
}

// NewOptionFormatter returns the default option formatter configured by configs
func NewOptionFormatter(configs ...ConfigureOptionFormatterFunc) *DefaultOptionFormatter {
	f := &DefaultOptionFormatter{}
	for _, config := range configs {
		config(f)
	}

	return f
}

// WithNameFunc replaces the name part (MakeName)
func WithNameFunc(fn OptionPartFunc) ConfigureOptionFormatterFunc {
	return func(f *DefaultOptionFormatter) {
		f.nameFunc = fn
	}
}

// WithOptsFunc replaces the decoration part (MakeOpts)
func WithOptsFunc(fn OptionPartFunc) ConfigureOptionFormatterFunc {
	return func(f *DefaultOptionFormatter) {
		f.optsFunc = fn
	}
}

// WithDescFunc replaces the description part (MakeDesc)
func WithDescFunc(fn OptionPartFunc) ConfigureOptionFormatterFunc {
	return func(f *DefaultOptionFormatter) {
		f.descFunc = fn
	}
}

// FormatOption implements OptionFormatter
func (f *DefaultOptionFormatter) FormatOption(r *Renderer, opt *Option, mode OptionMode) (string, error) {
	name, err := f.part(f.nameFunc, r, opt, mode, func() (string, error) {
		return f.MakeName(opt, mode), nil
	})
	if err != nil {
		return "", err
	}
	opts, err := f.part(f.optsFunc, r, opt, mode, func() (string, error) {
		return f.MakeOpts(r, opt, mode)
	})
	if err != nil {
		return "", err
	}
	desc, err := f.part(f.descFunc, r, opt, mode, func() (string, error) {
		return f.MakeDesc(opt, mode), nil
	})
	if err != nil {
		return "", err
	}

	return FormatHelp(name+opts, desc, r.ColumnWidth()), nil
}

// OptionUsage implements OptionFormatter
func (f *DefaultOptionFormatter) OptionUsage(_ *Renderer, opt *Option) string {
	return f.MakeUsage(opt)
}

// MakeName returns the positional name in Positional mode, the flag names otherwise
func (f *DefaultOptionFormatter) MakeName(opt *Option, mode OptionMode) string {
	if mode == types.Positional {
		return opt.GetPositionalName()
	}

	return opt.GetFlagNames()
}

// MakeOpts returns the decorations following the name: type hint, default, multiplicity and
// required marker for options taking a value, then environment variable, needs and excludes.
func (f *DefaultOptionFormatter) MakeOpts(r *Renderer, opt *Option, _ OptionMode) (string, error) {
	var sb strings.Builder

	if opt.TakesValue() {
		if opt.TypeHint != "" {
			sb.WriteString(" " + opt.TypeHint)
		}
		if opt.DefaultValue != "" {
			sb.WriteString("=" + opt.DefaultValue)
		}
		if opt.Expected > 1 {
			sb.WriteString(" x " + strconv.Itoa(opt.Expected))
		}
		if opt.Expected == -1 {
			sb.WriteString(" ...")
		}
		if opt.Required {
			label, err := r.Label(types.LabelRequired)
			if err != nil {
				return "", err
			}
			sb.WriteString(" " + label)
		}
	}

	if opt.EnvName != "" {
		label, err := r.Label(types.LabelEnv)
		if err != nil {
			return "", err
		}
		sb.WriteString(" (" + label + ":" + opt.EnvName + ")")
	}

	if err := writeRelations(&sb, r, types.LabelNeeds, opt.GetNeeds()); err != nil {
		return "", err
	}
	if err := writeRelations(&sb, r, types.LabelExcludes, opt.GetExcludes()); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// MakeDesc returns the description unchanged
func (f *DefaultOptionFormatter) MakeDesc(opt *Option, _ OptionMode) string {
	return opt.Description
}

// MakeUsage returns the token a positional contributes to the usage line: its name, a
// multiplicity marker, and brackets unless it is required.
func (f *DefaultOptionFormatter) MakeUsage(opt *Option) string {
	usage := opt.GetPositionalName()
	if opt.Expected > 1 {
		usage += "(" + strconv.Itoa(opt.Expected) + "x)"
	} else if opt.Expected == -1 {
		usage += "..."
	}
	if !opt.Required {
		usage = "[" + usage + "]"
	}

	return usage
}

func (f *DefaultOptionFormatter) part(override OptionPartFunc, r *Renderer, opt *Option, mode OptionMode,
	fallback func() (string, error)) (string, error) {
	if override != nil {
		return override(r, opt, mode)
	}
	return fallback()
}

func writeRelations(sb *strings.Builder, r *Renderer, labelKey string, related []*Option) error {
	if len(related) == 0 {
		return nil
	}

	label, err := r.Label(labelKey)
	if err != nil {
		return err
	}
	sb.WriteString(" " + label + ":")
	for _, other := range related {
		sb.WriteString(" " + other.SingleName())
	}

	return nil
}
