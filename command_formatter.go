package helpfmt

import (
	"strings"

	"github.com/napalu/helpfmt/errs"
	"github.com/napalu/helpfmt/internal/util"
	"github.com/napalu/helpfmt/types"
	"github.com/napalu/helpfmt/types/orderedmap"
)

// DefaultCommandFormatter composes the help of a command node:
//
//	Normal: description, usage line, option groups, one line per subcommand, footer
//	All:    like Normal, but every subcommand line is followed by the subcommand rendered in Sub
//	        mode one level deeper, which lists its options and, recursively, its own subcommands
//	Sub:    "SUBCOMMAND name: description" followed by the option groups, help options excluded
type DefaultCommandFormatter struct{}

// NewCommandFormatter returns the default command formatter
func NewCommandFormatter() *DefaultCommandFormatter {
	return &DefaultCommandFormatter{}
}

// FormatCommand implements CommandFormatter
func (f *DefaultCommandFormatter) FormatCommand(r *Renderer, cmd *Command, name string, mode CommandMode) (string, error) {
	if cmd == nil {
		return "", errs.ErrNilCommand
	}

	switch mode {
	case types.Sub:
		return f.formatSub(r, cmd)
	case types.Normal, types.All:
	default:
		return "", errs.ErrUnknownMode.WithArgs(mode.String())
	}

	usage, err := f.MakeUsage(r, cmd, name)
	if err != nil {
		return "", err
	}
	groups, err := f.MakeGroups(r, cmd, mode)
	if err != nil {
		return "", err
	}
	subcommands, err := f.MakeSubcommands(r, cmd, mode)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(f.MakeDescription(cmd))
	sb.WriteString(usage)
	sb.WriteString(groups)
	sb.WriteString(subcommands)
	if footer := f.MakeFooter(cmd); footer != "" {
		if groups != "" || subcommands != "" {
			sb.WriteByte('\n')
		}
		sb.WriteString(footer)
	}

	return sb.String(), nil
}

// MakeDescription returns the description followed by a newline, or nothing
func (f *DefaultCommandFormatter) MakeDescription(cmd *Command) string {
	if cmd.Description == "" {
		return ""
	}
	return cmd.Description + "\n"
}

// MakeUsage returns the usage line: the program name, an options badge when visible named
// options exist, the positionals, and a subcommand marker when subcommands exist.
func (f *DefaultCommandFormatter) MakeUsage(r *Renderer, cmd *Command, name string) (string, error) {
	usageLabel, err := r.Label(types.LabelUsage)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(usageLabel + ":")
	if name != "" {
		sb.WriteString(" " + name)
	}

	named := cmd.GetOptions(func(opt *Option) bool {
		return !opt.IsHidden() && opt.NonPositional()
	})
	if len(named) > 0 {
		optionsLabel, err := r.Label(types.LabelOptions)
		if err != nil {
			return "", err
		}
		sb.WriteString(" [" + optionsLabel + "]")
	}

	positionals := cmd.GetOptions(func(opt *Option) bool {
		return !opt.IsHidden() && opt.Positional
	})
	if len(positionals) > 0 {
		sb.WriteString(" " + strings.Join(util.Map(positionals, r.OptionUsage), " "))
	}

	if len(cmd.GetSubcommands(nil)) > 0 {
		key := types.LabelSubcommands
		if cmd.RequireSubcommandMax() == 1 {
			key = types.LabelSubcommand
		}
		label, err := r.Label(key)
		if err != nil {
			return "", err
		}
		if cmd.RequireSubcommandMin() == 0 {
			label = "[" + label + "]"
		}
		sb.WriteString(" " + label)
	}
	sb.WriteByte('\n')

	return sb.String(), nil
}

// MakeGroups lists the visible positionals under the POSITIONALS label, then the visible named
// options group by group in declaration order. Empty groups are skipped. In Sub mode the help
// options are left out.
func (f *DefaultCommandFormatter) MakeGroups(r *Renderer, cmd *Command, mode CommandMode) (string, error) {
	var sb strings.Builder
	visible := cmd.GetOptions(func(opt *Option) bool {
		return !opt.IsHidden() && !(mode == types.Sub && cmd.IsHelpOption(opt))
	})

	positionals := util.Filter(visible, func(opt *Option) bool { return opt.Positional })
	if len(positionals) > 0 {
		label, err := r.Label(types.LabelPositionals)
		if err != nil {
			return "", err
		}
		group, err := f.MakeGroup(r, label, positionals, types.Positional)
		if err != nil {
			return "", err
		}
		sb.WriteString(group)
	}

	for _, name := range cmd.GetGroups() {
		items := util.Filter(visible, func(opt *Option) bool {
			return opt.NonPositional() && opt.Group == name
		})
		if len(items) == 0 {
			continue
		}
		group, err := f.MakeGroup(r, name, items, types.Optional)
		if err != nil {
			return "", err
		}
		sb.WriteString(group)
	}

	return sb.String(), nil
}

// MakeGroup renders a header line followed by each option in order
func (f *DefaultCommandFormatter) MakeGroup(r *Renderer, group string, opts []*Option, mode OptionMode) (string, error) {
	var sb strings.Builder
	sb.WriteString("\n" + group + ":\n")
	for _, opt := range opts {
		item, err := r.FormatOption(opt, mode)
		if err != nil {
			return "", err
		}
		sb.WriteString(item)
	}

	return sb.String(), nil
}

type subcommandGroup struct {
	header  string
	members []*Command
}

// MakeSubcommands lists the visible subcommands by group. Group names are compared
// case-insensitively; the header text and the order of groups follow the first subcommand seen
// in each group.
func (f *DefaultCommandFormatter) MakeSubcommands(r *Renderer, cmd *Command, mode CommandMode) (string, error) {
	groups := orderedmap.NewOrderedMap[string, *subcommandGroup]()
	for _, sub := range cmd.GetSubcommands(func(sub *Command) bool { return !sub.IsHidden() }) {
		key := util.FoldKey(sub.Group)
		if g, ok := groups.Get(key); ok {
			g.members = append(g.members, sub)
			continue
		}
		groups.Set(key, &subcommandGroup{header: sub.Group, members: []*Command{sub}})
	}

	var sb strings.Builder
	for _, g := range groups.Values() {
		sb.WriteString("\n" + g.header + ":\n")
		for _, sub := range g.members {
			item, err := f.MakeSubcommand(r, sub, mode)
			if err != nil {
				return "", err
			}
			sb.WriteString(item)
		}
	}

	return sb.String(), nil
}

// MakeSubcommand renders one listed subcommand. Outside All mode this is a single line with the
// name and description. In All mode the line is followed by the subcommand rendered in Sub mode
// through the renderer, one level deeper, so a plugged CommandFormatter formats every nested
// body.
func (f *DefaultCommandFormatter) MakeSubcommand(r *Renderer, sub *Command, mode CommandMode) (string, error) {
	line := FormatHelp(sub.Name, sub.Description, r.ColumnWidth())
	if mode != types.All {
		return line, nil
	}

	body, err := r.nested().FormatCommand(sub, sub.Name, types.Sub)
	if err != nil {
		return "", err
	}

	return line + body, nil
}

// MakeFooter returns the footer followed by a newline, or nothing
func (f *DefaultCommandFormatter) MakeFooter(cmd *Command) string {
	if cmd.Footer == "" {
		return ""
	}
	return cmd.Footer + "\n"
}

// formatSub renders the compact form. Below the top level (r.Depth() > 0) the parent already
// printed the one-line summary, so only the option groups follow, together with the command's own
// subcommands expanded in All mode.
func (f *DefaultCommandFormatter) formatSub(r *Renderer, cmd *Command) (string, error) {
	groups, err := f.MakeGroups(r, cmd, types.Sub)
	if err != nil {
		return "", err
	}
	if r.Depth() > 0 {
		nested, err := f.MakeSubcommands(r, cmd, types.All)
		if err != nil {
			return "", err
		}
		return groups + nested, nil
	}

	label, err := r.Label(types.LabelSubcommand)
	if err != nil {
		return "", err
	}
	header := label + " " + cmd.Name + ":"
	if cmd.Description != "" {
		header += " " + cmd.Description
	}

	return header + "\n" + groups, nil
}
