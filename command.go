package helpfmt

import (
	"strings"

	"github.com/ef-ds/deque"
	"github.com/napalu/helpfmt/errs"
	"github.com/napalu/helpfmt/internal/util"
	"github.com/napalu/helpfmt/types/orderedmap"
)

// Command is a node of the command tree: a program or one of its subcommands. A Command owns its
// options and subcommands. The tree must be acyclic and must not be modified while a render is
// in progress.
type Command struct {
	Name        string
	Description string
	Footer      string
	Group       string // empty means the command is not listed by its parent

	options     []*Option
	byID        map[string]*Option
	subcommands []*Command
	parent      *Command
	requireMin  int
	requireMax  int
	helpOption  *Option
	helpAll     *Option
}

// NewCommand creates and returns a new Command configured by configs. New commands are listed
// in DefaultSubcommandGroup.
func NewCommand(configs ...ConfigureCommandFunc) *Command {
	cmd := &Command{
		Group: DefaultSubcommandGroup,
		byID:  map[string]*Option{},
	}

	for _, config := range configs {
		config(cmd)
	}

	return cmd
}

// Set applies configs to an existing command
func (c *Command) Set(configs ...ConfigureCommandFunc) {
	for _, config := range configs {
		config(c)
	}
}

// AddOption appends opt to the command. An option can belong to one command only.
func (c *Command) AddOption(opt *Option) error {
	if opt == nil {
		return errs.ErrNilOption
	}
	if opt.owner != nil && opt.owner != c {
		return errs.ErrOptionOwned.WithArgs(opt.SingleName(), opt.owner.Name)
	}
	if opt.owner == c {
		return nil
	}
	if c.byID == nil {
		c.byID = map[string]*Option{}
	}

	opt.ensureInit()
	opt.owner = c
	c.options = append(c.options, opt)
	c.byID[opt.uniqueID] = opt

	return nil
}

// RemoveOption detaches opt from the command. Relations pointing at opt stop resolving.
func (c *Command) RemoveOption(opt *Option) {
	if opt == nil || opt.owner != c {
		return
	}
	for i, o := range c.options {
		if o == opt {
			c.options = append(c.options[:i], c.options[i+1:]...)
			break
		}
	}
	delete(c.byID, opt.uniqueID)
	opt.owner = nil
	if c.helpOption == opt {
		c.helpOption = nil
	}
	if c.helpAll == opt {
		c.helpAll = nil
	}
}

// AddSubcommand appends sub to the command's children. A command has one parent: a command that
// already belongs to another command yields errs.ErrCommandOwned, and c itself or one of its
// ancestors yields errs.ErrCycleDetected. Adding sub to its current parent again is a no-op.
func (c *Command) AddSubcommand(sub *Command) error {
	if sub == nil {
		return errs.ErrNilCommand
	}
	if sub.parent == c {
		return nil
	}
	if sub.parent != nil {
		return errs.ErrCommandOwned.WithArgs(sub.Name, sub.parent.Name)
	}
	for ancestor := c; ancestor != nil; ancestor = ancestor.parent {
		if ancestor == sub {
			return errs.ErrCycleDetected.WithArgs(sub.Name)
		}
	}

	sub.parent = c
	c.subcommands = append(c.subcommands, sub)

	return nil
}

// Needs records that opt requires each of others. All options must belong to c.
func (c *Command) Needs(opt *Option, others ...*Option) error {
	if err := c.checkOwned(append([]*Option{opt}, others...)...); err != nil {
		return err
	}
	opt.Needs(others...)

	return nil
}

// Excludes records that opt cannot be combined with each of others. All options must belong to c.
func (c *Command) Excludes(opt *Option, others ...*Option) error {
	if err := c.checkOwned(append([]*Option{opt}, others...)...); err != nil {
		return err
	}
	opt.Excludes(others...)

	return nil
}

// SetHelpFlag adds (or replaces) the help option. names is a comma separated list of flag forms,
// e.g. "-h,--help". An empty names removes the help option.
func (c *Command) SetHelpFlag(names, description string) *Option {
	c.helpOption = c.replaceHelp(c.helpOption, names, description)
	return c.helpOption
}

// SetHelpAllFlag adds (or replaces) the option requesting the fully expanded help
func (c *Command) SetHelpAllFlag(names, description string) *Option {
	c.helpAll = c.replaceHelp(c.helpAll, names, description)
	return c.helpAll
}

// GetHelpOption returns the help option or nil
func (c *Command) GetHelpOption() *Option {
	return c.helpOption
}

// GetHelpAllOption returns the help-all option or nil
func (c *Command) GetHelpAllOption() *Option {
	return c.helpAll
}

// IsHelpOption reports whether opt is the help or help-all option of c
func (c *Command) IsHelpOption(opt *Option) bool {
	return opt != nil && (opt == c.helpOption || opt == c.helpAll)
}

// GetOptions returns the options selected by filter in declaration order. A nil filter selects
// every option.
func (c *Command) GetOptions(filter OptionFilter) []*Option {
	return util.Filter(c.options, filter)
}

// GetSubcommands returns the subcommands selected by filter in declaration order. A nil filter
// selects every subcommand.
func (c *Command) GetSubcommands(filter CommandFilter) []*Command {
	return util.Filter(c.subcommands, filter)
}

// GetGroups returns the non-empty option group names in first-declaration order
func (c *Command) GetGroups() []string {
	groups := orderedmap.NewOrderedMap[string, struct{}]()
	for _, opt := range c.options {
		if opt.Group != "" && !groups.Has(opt.Group) {
			groups.Set(opt.Group, struct{}{})
		}
	}

	return groups.Keys()
}

// RequireSubcommandMin returns the minimum number of subcommands required; 0 makes the
// subcommand section optional.
func (c *Command) RequireSubcommandMin() int {
	return c.requireMin
}

// RequireSubcommandMax returns the maximum number of subcommands accepted; 0 means unlimited.
func (c *Command) RequireSubcommandMax() int {
	return c.requireMax
}

// Parent returns the command c was added to, or nil for a root
func (c *Command) Parent() *Command {
	return c.parent
}

// IsHidden reports whether c is left out of its parent's subcommand listing
func (c *Command) IsHidden() bool {
	return c.Group == ""
}

// Path returns the space separated names from the root down to c
func (c *Command) Path() string {
	var names []string
	for cmd := c; cmd != nil; cmd = cmd.parent {
		names = append([]string{cmd.Name}, names...)
	}
	return strings.Join(names, " ")
}

// Walk visits c and all of its descendants breadth-first, calling fn with each command and its
// depth below c. A command reached twice means the tree is not a tree and yields
// errs.ErrCycleDetected. Walking stops at the first error returned by fn.
func (c *Command) Walk(fn func(cmd *Command, depth int) error) error {
	type visit struct {
		cmd   *Command
		depth int
	}

	seen := map[*Command]struct{}{}
	queue := deque.New()
	queue.PushBack(visit{cmd: c})
	for queue.Len() > 0 {
		v, _ := queue.PopFront()
		current := v.(visit)
		if _, ok := seen[current.cmd]; ok {
			return errs.ErrCycleDetected.WithArgs(current.cmd.Name)
		}
		seen[current.cmd] = struct{}{}

		if fn != nil {
			if err := fn(current.cmd, current.depth); err != nil {
				return err
			}
		}
		for _, sub := range current.cmd.subcommands {
			queue.PushBack(visit{cmd: sub, depth: current.depth + 1})
		}
	}

	return nil
}

func (c *Command) optionByID(id string) (*Option, bool) {
	opt, ok := c.byID[id]
	return opt, ok
}

func (c *Command) checkOwned(opts ...*Option) error {
	for _, opt := range opts {
		if opt == nil {
			return errs.ErrNilOption
		}
		if opt.owner != c {
			return errs.ErrOptionNotFound.WithArgs(opt.SingleName(), c.Name)
		}
	}
	return nil
}

func (c *Command) replaceHelp(previous *Option, names, description string) *Option {
	if previous != nil {
		c.RemoveOption(previous)
	}
	if names == "" {
		return nil
	}

	opt := NewOption(WithDescription(description), AsFlag())
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		switch {
		case strings.HasPrefix(name, "--"):
			opt.Name = strings.TrimPrefix(name, "--")
		case strings.HasPrefix(name, "-"):
			opt.Short = strings.TrimPrefix(name, "-")
		case name != "":
			opt.Name = name
		}
	}
	_ = c.AddOption(opt)

	return opt
}
