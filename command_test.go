package helpfmt

import (
	"testing"

	"github.com/napalu/helpfmt/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_AddOption(t *testing.T) {
	t.Run("nil option", func(t *testing.T) {
		assert.ErrorIs(t, NewCommand().AddOption(nil), errs.ErrNilOption)
	})

	t.Run("option owned by another command", func(t *testing.T) {
		opt := NewOption(WithName("x"))
		first := NewCommand(WithCommandName("first"), WithOptions(opt))
		second := NewCommand(WithCommandName("second"))

		err := second.AddOption(opt)
		assert.ErrorIs(t, err, errs.ErrOptionOwned)
		assert.Equal(t, first, opt.Owner())
		assert.Empty(t, second.GetOptions(nil))
	})

	t.Run("adding twice is a no-op", func(t *testing.T) {
		opt := NewOption(WithName("x"))
		cmd := NewCommand(WithOptions(opt))
		require.NoError(t, cmd.AddOption(opt))
		assert.Len(t, cmd.GetOptions(nil), 1)
	})

	t.Run("zero value command", func(t *testing.T) {
		cmd := &Command{Name: "bare"}
		require.NoError(t, cmd.AddOption(NewOption(WithName("x"))))
		assert.Len(t, cmd.GetOptions(nil), 1)
	})
}

func TestCommand_Queries(t *testing.T) {
	pos := NewOption(AsPositional("file"))
	a := NewOption(WithName("a"), WithGroup("Alpha"))
	b := NewOption(WithName("b"), WithGroup("Beta"))
	c := NewOption(WithName("c"), WithGroup("Alpha"))
	hidden := NewOption(WithName("h"), Hidden())
	one := NewCommand(WithCommandName("one"))
	two := NewCommand(WithCommandName("two"), HiddenCommand())
	cmd := NewCommand(
		WithCommandName("app"),
		WithOptions(pos, a, b, c, hidden),
		WithSubcommands(one, two),
		WithRequireSubcommand(1, 2),
	)

	assert.Equal(t, []*Option{pos, a, b, c, hidden}, cmd.GetOptions(nil))
	assert.Equal(t, []*Option{a, c}, cmd.GetOptions(func(o *Option) bool { return o.Group == "Alpha" }))
	assert.Equal(t, []string{DefaultOptionGroup, "Alpha", "Beta"}, cmd.GetGroups())
	assert.Equal(t, []*Command{one, two}, cmd.GetSubcommands(nil))
	assert.Equal(t, []*Command{one}, cmd.GetSubcommands(func(s *Command) bool { return !s.IsHidden() }))
	assert.Equal(t, 1, cmd.RequireSubcommandMin())
	assert.Equal(t, 2, cmd.RequireSubcommandMax())
	assert.Equal(t, cmd, one.Parent())
	assert.Equal(t, "app one", one.Path())
}

func TestCommand_Relations(t *testing.T) {
	a := NewOption(WithName("a"))
	b := NewOption(WithName("b"))
	foreign := NewOption(WithName("foreign"))
	cmd := NewCommand(WithCommandName("app"), WithOptions(a, b))

	require.NoError(t, cmd.Needs(a, b))
	require.NoError(t, cmd.Excludes(b, a))
	assert.Equal(t, []*Option{b}, a.GetNeeds())
	assert.Equal(t, []*Option{a}, b.GetExcludes())

	assert.ErrorIs(t, cmd.Needs(a, foreign), errs.ErrOptionNotFound)
	assert.ErrorIs(t, cmd.Excludes(nil, a), errs.ErrNilOption)
}

func TestCommand_HelpFlags(t *testing.T) {
	cmd := NewCommand(
		WithHelpFlag("-h,--help", "Print this help message and exit"),
		WithHelpAllFlag("--help-all", "Show all help"),
	)

	help := cmd.GetHelpOption()
	require.NotNil(t, help)
	assert.Equal(t, "h", help.Short)
	assert.Equal(t, "help", help.Name)
	assert.False(t, help.TakesValue())
	assert.True(t, cmd.IsHelpOption(help))
	assert.True(t, cmd.IsHelpOption(cmd.GetHelpAllOption()))
	assert.Len(t, cmd.GetOptions(nil), 2)

	replaced := cmd.SetHelpFlag("-?", "Help")
	assert.Equal(t, "?", replaced.Short)
	assert.Len(t, cmd.GetOptions(nil), 2)
	assert.False(t, cmd.IsHelpOption(help))

	assert.Nil(t, cmd.SetHelpAllFlag("", ""))
	assert.Len(t, cmd.GetOptions(nil), 1)
	assert.False(t, cmd.IsHelpOption(nil))
}

func TestCommand_Walk(t *testing.T) {
	t.Run("breadth first with depth", func(t *testing.T) {
		leaf := NewCommand(WithCommandName("leaf"))
		one := NewCommand(WithCommandName("one"), WithSubcommands(leaf))
		two := NewCommand(WithCommandName("two"))
		root := NewCommand(WithCommandName("root"), WithSubcommands(one, two))

		var visited []string
		var depths []int
		err := root.Walk(func(cmd *Command, depth int) error {
			visited = append(visited, cmd.Name)
			depths = append(depths, depth)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"root", "one", "two", "leaf"}, visited)
		assert.Equal(t, []int{0, 1, 1, 2}, depths)
	})

	t.Run("cycle detected", func(t *testing.T) {
		root := NewCommand(WithCommandName("root"))
		child := NewCommand(WithCommandName("child"))
		require.NoError(t, root.AddSubcommand(child))
		child.subcommands = append(child.subcommands, root)

		err := root.Walk(nil)
		assert.ErrorIs(t, err, errs.ErrCycleDetected)
		assert.Contains(t, err.Error(), "root")
	})

	t.Run("callback error stops walk", func(t *testing.T) {
		root := NewCommand(WithSubcommands(NewCommand(), NewCommand()))
		calls := 0
		err := root.Walk(func(*Command, int) error {
			calls++
			return errs.ErrNilCommand
		})
		assert.ErrorIs(t, err, errs.ErrNilCommand)
		assert.Equal(t, 1, calls)
	})

	t.Run("nil subcommand rejected", func(t *testing.T) {
		assert.ErrorIs(t, NewCommand().AddSubcommand(nil), errs.ErrNilCommand)
	})
}

func TestCommand_AddSubcommand(t *testing.T) {
	t.Run("subcommand owned by another command", func(t *testing.T) {
		one := NewCommand(WithCommandName("one"))
		a := NewCommand(WithCommandName("a"), WithSubcommands(one))
		b := NewCommand(WithCommandName("b"))

		err := b.AddSubcommand(one)
		assert.ErrorIs(t, err, errs.ErrCommandOwned)
		assert.Contains(t, err.Error(), `"a"`)
		assert.Same(t, a, one.Parent())
		assert.Empty(t, b.GetSubcommands(nil))

		_, err = NewRenderer().Render(a, "", ModeAll)
		assert.NoError(t, err)
	})

	t.Run("adding twice is a no-op", func(t *testing.T) {
		one := NewCommand(WithCommandName("one"))
		root := NewCommand(WithSubcommands(one))
		require.NoError(t, root.AddSubcommand(one))
		assert.Len(t, root.GetSubcommands(nil), 1)
	})

	t.Run("self and ancestors rejected", func(t *testing.T) {
		leaf := NewCommand(WithCommandName("leaf"))
		mid := NewCommand(WithCommandName("mid"), WithSubcommands(leaf))
		root := NewCommand(WithCommandName("root"), WithSubcommands(mid))

		assert.ErrorIs(t, root.AddSubcommand(root), errs.ErrCycleDetected)
		assert.ErrorIs(t, leaf.AddSubcommand(root), errs.ErrCycleDetected)
		assert.Empty(t, leaf.GetSubcommands(nil))
		assert.Nil(t, root.Parent())
	})
}
