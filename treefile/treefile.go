// Package treefile reads a helpfmt command tree from YAML.
//
//	name: app
//	description: Does things
//	help: -h,--help
//	options:
//	  - name: verbose
//	    short: v
//	    flag: true
//	    env: auto
//	commands:
//	  - name: build
//	    group: Tools
package treefile

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/napalu/helpfmt"
	"github.com/napalu/helpfmt/errs"
	"gopkg.in/yaml.v3"
)

// EnvAuto derives the environment variable from the command path and option name
const EnvAuto = "auto"

// Command is the YAML form of a helpfmt.Command
type Command struct {
	Name            string     `yaml:"name"`
	Description     string     `yaml:"description"`
	Footer          string     `yaml:"footer"`
	Group           *string    `yaml:"group"`
	Hidden          bool       `yaml:"hidden"`
	RequireMin      int        `yaml:"require_min"`
	RequireMax      int        `yaml:"require_max"`
	Help            string     `yaml:"help"`
	HelpDescription string     `yaml:"help_description"`
	HelpAll         string     `yaml:"help_all"`
	HelpAllDesc     string     `yaml:"help_all_description"`
	Options         []Option   `yaml:"options"`
	Commands        []*Command `yaml:"commands"`
}

// Option is the YAML form of a helpfmt.Option. Needs and Excludes refer to sibling options by
// name.
type Option struct {
	Name        string   `yaml:"name"`
	Short       string   `yaml:"short"`
	Positional  string   `yaml:"positional"`
	Description string   `yaml:"description"`
	Group       *string  `yaml:"group"`
	Hidden      bool     `yaml:"hidden"`
	Flag        bool     `yaml:"flag"`
	Expected    *int     `yaml:"expected"`
	Required    bool     `yaml:"required"`
	Default     string   `yaml:"default"`
	Type        string   `yaml:"type"`
	Env         string   `yaml:"env"`
	Needs       []string `yaml:"needs"`
	Excludes    []string `yaml:"excludes"`
}

// LoadFile reads and builds the tree stored at path
func LoadFile(path string) (*helpfmt.Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.ErrInvalidTreeFile.WithArgs(path).Wrap(err)
	}

	return Decode(bytes.NewReader(data), path)
}

// Decode reads a tree from r. name identifies the source in errors. Unknown keys are rejected.
func Decode(r io.Reader, name string) (*helpfmt.Command, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var root Command
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty document")
		}
		return nil, errs.ErrInvalidTreeFile.WithArgs(name).Wrap(err)
	}

	cmd, err := root.Build("")
	if err != nil {
		return nil, errs.ErrInvalidTreeFile.WithArgs(name).Wrap(err)
	}

	return cmd, nil
}

// Build converts c and its descendants. envPrefix is used for options with env "auto".
func (c *Command) Build(envPrefix string) (*helpfmt.Command, error) {
	cmd := helpfmt.NewCommand(
		helpfmt.WithCommandName(c.Name),
		helpfmt.WithCommandDescription(c.Description),
		helpfmt.WithFooter(c.Footer),
		helpfmt.WithRequireSubcommand(c.RequireMin, c.RequireMax),
	)
	if c.Group != nil {
		cmd.Group = *c.Group
	}
	if c.Hidden {
		cmd.Set(helpfmt.HiddenCommand())
	}
	if c.Help != "" {
		cmd.SetHelpFlag(c.Help, c.HelpDescription)
	}
	if c.HelpAll != "" {
		cmd.SetHelpAllFlag(c.HelpAll, c.HelpAllDesc)
	}

	prefix := c.Name
	if envPrefix != "" {
		prefix = envPrefix + "_" + c.Name
	}

	byName := map[string]*helpfmt.Option{}
	for i := range c.Options {
		opt := c.Options[i].build(prefix)
		if err := cmd.AddOption(opt); err != nil {
			return nil, err
		}
		byName[c.Options[i].key()] = opt
	}
	for i := range c.Options {
		opt := byName[c.Options[i].key()]
		for _, name := range c.Options[i].Needs {
			other, ok := byName[name]
			if !ok {
				return nil, errs.ErrOptionNotFound.WithArgs(name, c.Name)
			}
			opt.Needs(other)
		}
		for _, name := range c.Options[i].Excludes {
			other, ok := byName[name]
			if !ok {
				return nil, errs.ErrOptionNotFound.WithArgs(name, c.Name)
			}
			opt.Excludes(other)
		}
	}

	for _, sub := range c.Commands {
		if sub == nil {
			continue
		}
		child, err := sub.Build(prefix)
		if err != nil {
			return nil, err
		}
		if err := cmd.AddSubcommand(child); err != nil {
			return nil, err
		}
	}

	return cmd, nil
}

func (o *Option) key() string {
	if o.Name != "" {
		return o.Name
	}
	return o.Positional
}

func (o *Option) build(envPrefix string) *helpfmt.Option {
	opt := helpfmt.NewOption(
		helpfmt.WithName(o.Name),
		helpfmt.WithShortFlag(o.Short),
		helpfmt.WithDescription(o.Description),
		helpfmt.SetRequired(o.Required),
		helpfmt.WithDefaultValue(o.Default),
		helpfmt.WithTypeHint(o.Type),
	)
	if o.Positional != "" {
		opt.Set(helpfmt.AsPositional(o.Positional))
	}
	if o.Group != nil {
		opt.Set(helpfmt.WithGroup(*o.Group))
	}
	if o.Hidden {
		opt.Set(helpfmt.Hidden())
	}
	switch {
	case o.Flag:
		opt.Set(helpfmt.AsFlag())
	case o.Expected != nil:
		opt.Set(helpfmt.WithExpected(*o.Expected))
	}
	switch o.Env {
	case "":
	case EnvAuto:
		opt.Set(helpfmt.WithEnvFromName(envPrefix))
	default:
		opt.Set(helpfmt.WithEnvName(o.Env))
	}

	return opt
}
