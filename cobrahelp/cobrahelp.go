// Package cobrahelp renders the help of spf13/cobra commands with a helpfmt.Renderer.
//
// FromCobra converts a cobra command and its descendants into a helpfmt.Command tree, Install
// replaces cobra's help function with one that renders that tree.
package cobrahelp

import (
	"strings"

	"github.com/napalu/helpfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	// AnnotationGroup on a flag selects the option group it is listed under
	AnnotationGroup = "helpfmt_group"
	// AnnotationEnv on a flag names the environment variable it can be read from
	AnnotationEnv = "helpfmt_env"
	// HelpAllFlag is the persistent flag added by Install
	HelpAllFlag = "help-all"
	// GlobalGroup lists flags inherited from parent commands
	GlobalGroup = "Global Options"
)

// FromCobra converts c and its subcommands. Local flags are listed in their annotated group
// (helpfmt.DefaultOptionGroup by default), inherited flags under GlobalGroup. Positionals are
// taken from the words following the command name in c.Use.
func FromCobra(c *cobra.Command) *helpfmt.Command {
	c.InitDefaultHelpFlag()

	description := c.Long
	if description == "" {
		description = c.Short
	}
	cmd := helpfmt.NewCommand(
		helpfmt.WithCommandName(c.Name()),
		helpfmt.WithCommandDescription(description),
	)

	for _, opt := range positionals(c.Use) {
		_ = cmd.AddOption(opt)
	}
	addFlags(cmd, c.LocalFlags(), helpfmt.DefaultOptionGroup)
	addFlags(cmd, c.InheritedFlags(), GlobalGroup)

	if c.HasSubCommands() {
		if c.Runnable() {
			cmd.Set(helpfmt.WithRequireSubcommand(0, 1))
		} else {
			cmd.Set(helpfmt.WithRequireSubcommand(1, 1))
		}
	}
	for _, sub := range c.Commands() {
		child := FromCobra(sub)
		child.Description = sub.Short
		child.Group = groupTitle(c, sub)
		_ = cmd.AddSubcommand(child)
	}

	return cmd
}

// RendererFunc returns the renderer used for the help of c. It is called each time help is
// printed, after the command line has been parsed.
type RendererFunc func(c *cobra.Command) (*helpfmt.Renderer, error)

// Install makes root and all of its descendants print their help with r. It adds the persistent
// --help-all flag; combined with --help, or on commands that cannot run on their own, it
// switches to the fully expanded help.
func Install(root *cobra.Command, r *helpfmt.Renderer) {
	InstallFunc(root, func(*cobra.Command) (*helpfmt.Renderer, error) {
		return r, nil
	})
}

// InstallFunc is like Install but obtains the renderer from newRenderer when help is requested,
// so the renderer can depend on parsed flags or loaded configuration.
func InstallFunc(root *cobra.Command, newRenderer RendererFunc) {
	if root.PersistentFlags().Lookup(HelpAllFlag) == nil {
		root.PersistentFlags().Bool(HelpAllFlag, false, "Print help for all subcommands")
	}

	root.SetHelpFunc(func(c *cobra.Command, _ []string) {
		mode := helpfmt.ModeNormal
		if all, err := c.Flags().GetBool(HelpAllFlag); err == nil && all {
			mode = helpfmt.ModeAll
		}
		r, err := newRenderer(c)
		if err == nil {
			err = r.Print(c.OutOrStdout(), FromCobra(c), c.CommandPath(), mode)
		}
		if err != nil {
			c.PrintErrln(err)
		}
	})
}

func addFlags(cmd *helpfmt.Command, flags *pflag.FlagSet, group string) {
	flags.VisitAll(func(f *pflag.Flag) {
		switch f.Name {
		case "help":
			cmd.SetHelpFlag(flagNames(f), f.Usage).Group = group
			return
		case HelpAllFlag:
			cmd.SetHelpAllFlag(flagNames(f), f.Usage).Group = group
			return
		}
		_ = cmd.AddOption(convertFlag(f, group))
	})
}

func convertFlag(f *pflag.Flag, group string) *helpfmt.Option {
	typeHint, usage := pflag.UnquoteUsage(f)
	configs := []helpfmt.ConfigureOptionFunc{
		helpfmt.WithName(f.Name),
		helpfmt.WithShortFlag(f.Shorthand),
		helpfmt.WithDescription(usage),
		helpfmt.WithGroup(annotation(f, AnnotationGroup, group)),
		helpfmt.WithEnvName(annotation(f, AnnotationEnv, "")),
		helpfmt.SetRequired(annotation(f, cobra.BashCompOneRequiredFlag, "") == "true"),
	}

	valueType := f.Value.Type()
	switch {
	case valueType == "bool" || valueType == "count":
		configs = append(configs, helpfmt.AsFlag())
	case strings.HasSuffix(valueType, "Slice") || strings.HasSuffix(valueType, "Array"):
		configs = append(configs, helpfmt.WithExpected(-1), helpfmt.WithTypeHint(typeHint))
	default:
		configs = append(configs, helpfmt.WithTypeHint(typeHint))
	}
	if !isZeroDefault(f.DefValue) {
		configs = append(configs, helpfmt.WithDefaultValue(f.DefValue))
	}
	if f.Hidden {
		configs = append(configs, helpfmt.Hidden())
	}

	return helpfmt.NewOption(configs...)
}

func flagNames(f *pflag.Flag) string {
	if f.Shorthand == "" {
		return "--" + f.Name
	}
	return "-" + f.Shorthand + ",--" + f.Name
}

func annotation(f *pflag.Flag, key, fallback string) string {
	if values := f.Annotations[key]; len(values) > 0 && values[0] != "" {
		return values[0]
	}
	return fallback
}

func isZeroDefault(value string) bool {
	switch value {
	case "", "false", "0", "[]", "<nil>":
		return true
	}
	return false
}

func groupTitle(parent, sub *cobra.Command) string {
	if sub.Hidden || !(sub.IsAvailableCommand() || sub.Name() == "help") {
		return ""
	}
	for _, g := range parent.Groups() {
		if g.ID == sub.GroupID {
			return strings.TrimSuffix(strings.TrimSpace(g.Title), ":")
		}
	}
	return helpfmt.DefaultSubcommandGroup
}

// positionals parses the argument words of a cobra Use line: "<name>" and "NAME" are required,
// "[name]" is optional and a trailing "..." accepts any number of values. "[flags]" and
// "[command]" are skipped.
func positionals(use string) []*helpfmt.Option {
	words := strings.Fields(use)
	if len(words) < 2 {
		return nil
	}

	var opts []*helpfmt.Option
	for _, word := range words[1:] {
		if strings.EqualFold(word, "[flags]") || strings.EqualFold(word, "[command]") {
			continue
		}
		required := true
		if strings.HasPrefix(word, "[") && strings.HasSuffix(word, "]") {
			required = false
			word = word[1 : len(word)-1]
		}
		expected := 1
		if strings.HasSuffix(word, "...") {
			expected = -1
			word = strings.TrimSuffix(word, "...")
		}
		word = strings.Trim(word, "<>")
		if word == "" {
			continue
		}
		opts = append(opts, helpfmt.NewOption(
			helpfmt.AsPositional(word),
			helpfmt.WithExpected(expected),
			helpfmt.SetRequired(required),
		))
	}

	return opts
}
