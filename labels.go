package helpfmt

import (
	"github.com/napalu/helpfmt/errs"
	"github.com/napalu/helpfmt/types"
	"github.com/napalu/helpfmt/types/orderedmap"
)

// Labels maps symbolic label keys to the fixed words used in help output ("Usage", "REQUIRED",
// ...). Keys are not restricted to the defaults so custom formatters can add their own.
//
// A Labels value is owned by one renderer. It is not safe for concurrent modification.
type Labels struct {
	table *orderedmap.OrderedMap[string, string]
}

// NewLabels returns a table holding the default labels
func NewLabels() *Labels {
	l := &Labels{table: orderedmap.NewOrderedMap[string, string]()}
	l.table.Set(types.LabelUsage, "Usage")
	l.table.Set(types.LabelOptions, "OPTIONS")
	l.table.Set(types.LabelSubcommand, "SUBCOMMAND")
	l.table.Set(types.LabelSubcommands, "SUBCOMMANDS")
	l.table.Set(types.LabelPositionals, "Positionals")
	l.table.Set(types.LabelRequired, "(REQUIRED)")
	l.table.Set(types.LabelNeeds, "Needs")
	l.table.Set(types.LabelExcludes, "Excludes")
	l.table.Set(types.LabelEnv, "Env")

	return l
}

// Get returns the label stored under key or errs.ErrUnknownLabelKey
func (l *Labels) Get(key string) (string, error) {
	if v, ok := l.table.Get(key); ok {
		return v, nil
	}

	return "", errs.ErrUnknownLabelKey.WithArgs(key)
}

// Set inserts or overrides the label stored under key
func (l *Labels) Set(key, value string) *Labels {
	l.table.Set(key, value)
	return l
}

// Keys returns the label keys, defaults first, in insertion order
func (l *Labels) Keys() []string {
	return l.table.Keys()
}

// Clone returns an independent copy of the table
func (l *Labels) Clone() *Labels {
	return &Labels{table: l.table.Clone()}
}
