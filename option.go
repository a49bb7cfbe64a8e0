package helpfmt

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Option describes a named option or a positional parameter of a Command.
//
// Expected is the number of argument tokens the option consumes: 0 for a flag, 1 for a single
// value, N > 1 for a fixed multiplicity and -1 for an unlimited number of values.
type Option struct {
	Name           string // long name without leading dashes
	Short          string // short name without leading dash
	PositionalName string // display name when listed as a positional, defaults to Name
	Description    string
	Group          string // empty means the option is never shown
	Positional     bool
	Expected       int
	Required       bool
	DefaultValue   string
	TypeHint       string
	EnvName        string

	uniqueID string
	needs    []string
	excludes []string
	owner    *Command
}

// NewOption creates an option configured by configs. New options expect a single value and are
// listed in DefaultOptionGroup.
func NewOption(configs ...ConfigureOptionFunc) *Option {
	opt := &Option{
		Group:    DefaultOptionGroup,
		Expected: 1,
	}
	opt.ensureInit()

	for _, config := range configs {
		config(opt)
	}

	return opt
}

// Set applies configs to an existing option
func (o *Option) Set(configs ...ConfigureOptionFunc) {
	o.ensureInit()
	for _, config := range configs {
		config(o)
	}
}

// ID returns the stable identifier other options use to refer to o
func (o *Option) ID() string {
	o.ensureInit()
	return o.uniqueID
}

// Owner returns the command o was added to, or nil
func (o *Option) Owner() *Command {
	return o.owner
}

// IsHidden reports whether o is excluded from every listing
func (o *Option) IsHidden() bool {
	return o.Group == ""
}

// NonPositional reports whether o is addressed by a flag name
func (o *Option) NonPositional() bool {
	return !o.Positional
}

// TakesValue reports whether o consumes at least one argument token
func (o *Option) TakesValue() bool {
	return o.Expected != 0
}

// GetPositionalName returns the name used when o is listed as a positional
func (o *Option) GetPositionalName() string {
	if o.PositionalName != "" {
		return o.PositionalName
	}
	return o.Name
}

// GetFlagNames returns the combined short/long display form, e.g. "-f,--file". Options
// without flag names fall back to the positional name.
func (o *Option) GetFlagNames() string {
	var names []string
	if o.Short != "" {
		names = append(names, "-"+o.Short)
	}
	if o.Name != "" && (!o.Positional || o.Short != "") {
		names = append(names, "--"+o.Name)
	}
	if len(names) == 0 {
		return o.GetPositionalName()
	}

	return strings.Join(names, ",")
}

// SingleName returns the shortest unambiguous display name of o: the long flag if any, then the
// short flag, then the positional name.
func (o *Option) SingleName() string {
	switch {
	case o.Positional && o.Short == "":
		return o.GetPositionalName()
	case o.Name != "":
		return "--" + o.Name
	case o.Short != "":
		return "-" + o.Short
	}
	return o.GetPositionalName()
}

// Needs records that o requires each of others. Relations are weak: they are stored as ids and
// resolved through the owning command when rendering.
func (o *Option) Needs(others ...*Option) *Option {
	for _, other := range others {
		if other != nil && other != o {
			o.needs = appendUnique(o.needs, other.ID())
		}
	}
	return o
}

// Excludes records that o cannot be combined with each of others
func (o *Option) Excludes(others ...*Option) *Option {
	for _, other := range others {
		if other != nil && other != o {
			o.excludes = appendUnique(o.excludes, other.ID())
		}
	}
	return o
}

// GetNeeds resolves the needs relations. Ids which no longer resolve within the owning command
// are omitted.
func (o *Option) GetNeeds() []*Option {
	return o.resolve(o.needs)
}

// GetExcludes resolves the excludes relations, see GetNeeds
func (o *Option) GetExcludes() []*Option {
	return o.resolve(o.excludes)
}

// String returns a compact description used in debugging output
func (o *Option) String() string {
	s := o.GetFlagNames()
	if o.TakesValue() {
		s += " (" + strconv.Itoa(o.Expected) + ")"
	}
	if o.Required {
		s += " required"
	}
	return s
}

func (o *Option) ensureInit() {
	if o.uniqueID == "" {
		o.uniqueID = uuid.NewString()
	}
}

func (o *Option) resolve(ids []string) []*Option {
	if o.owner == nil || len(ids) == 0 {
		return nil
	}

	resolved := make([]*Option, 0, len(ids))
	for _, id := range ids {
		if other, ok := o.owner.optionByID(id); ok {
			resolved = append(resolved, other)
		}
	}

	return resolved
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
