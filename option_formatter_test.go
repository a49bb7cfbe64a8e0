package helpfmt

import (
	"fmt"
	"testing"

	"github.com/napalu/helpfmt/errs"
	"github.com/napalu/helpfmt/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptionFormatter_MakeOpts(t *testing.T) {
	tests := []struct {
		name string
		opt  *Option
		want string
	}{
		{
			name: "plain single value",
			opt:  NewOption(WithName("name")),
			want: "",
		},
		{
			name: "required unlimited",
			opt:  NewOption(WithName("files"), WithExpected(-1), SetRequired(true)),
			want: " ... (REQUIRED)",
		},
		{
			name: "type default and multiplicity",
			opt:  NewOption(WithName("pair"), WithTypeHint("INT"), WithDefaultValue("3"), WithExpected(2)),
			want: " INT=3 x 2",
		},
		{
			name: "flag ignores value decorations",
			opt:  NewOption(WithName("force"), AsFlag(), SetRequired(true), WithTypeHint("BOOL"), WithDefaultValue("false")),
			want: "",
		},
		{
			name: "flag keeps env",
			opt:  NewOption(WithName("force"), AsFlag(), WithEnvName("FORCE")),
			want: " (Env:FORCE)",
		},
	}
	r := NewRenderer()
	f := NewOptionFormatter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.MakeOpts(r, tt.opt, types.Optional)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("relations in recorded order", func(t *testing.T) {
		verbose := NewOption(WithName("verbose"), AsFlag())
		file := NewOption(AsPositional("file"))
		quiet := NewOption(WithShortFlag("q"), AsFlag())
		count := NewOption(WithName("count"), WithShortFlag("c"), WithTypeHint("INT"), WithDefaultValue("3"),
			WithExpected(2), SetRequired(true), WithEnvName("COUNT"),
			WithNeeds(verbose, file), WithExcludes(quiet))
		NewCommand(WithOptions(verbose, file, quiet, count))

		got, err := f.MakeOpts(r, count, types.Optional)
		require.NoError(t, err)
		assert.Equal(t, " INT=3 x 2 (REQUIRED) (Env:COUNT) Needs: --verbose file Excludes: -q", got)
	})

	t.Run("unresolvable relation omitted", func(t *testing.T) {
		other := NewOption(WithName("other"))
		opt := NewOption(WithName("opt"), AsFlag(), WithNeeds(other))
		NewCommand(WithOptions(opt))

		got, err := f.MakeOpts(r, opt, types.Optional)
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})
}

func TestDefaultOptionFormatter_MakeName(t *testing.T) {
	f := NewOptionFormatter()
	opt := NewOption(WithName("input"), WithShortFlag("i"), AsPositional("INPUT"))

	assert.Equal(t, "INPUT", f.MakeName(opt, types.Positional))
	assert.Equal(t, "-i,--input", f.MakeName(opt, types.Optional))
	assert.Equal(t, "-i,--input", f.MakeName(opt, types.Usage))
}

func TestDefaultOptionFormatter_MakeUsage(t *testing.T) {
	f := NewOptionFormatter()
	tests := []struct {
		name string
		opt  *Option
		want string
	}{
		{"optional single", NewOption(AsPositional("file")), "[file]"},
		{"required single", NewOption(AsPositional("file"), SetRequired(true)), "file"},
		{"fixed multiplicity", NewOption(AsPositional("pair"), WithExpected(2)), "[pair(2x)]"},
		{"unlimited required", NewOption(AsPositional("rest"), WithExpected(-1), SetRequired(true)), "rest..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.MakeUsage(tt.opt))
		})
	}
}

func TestDefaultOptionFormatter_FormatOption(t *testing.T) {
	t.Run("two columns", func(t *testing.T) {
		r := NewRenderer()
		opt := NewOption(WithName("file"), WithShortFlag("f"), WithTypeHint("PATH"), WithDescription("Input file"))

		got, err := r.FormatOption(opt, types.Optional)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%-30s%s\n", "-f,--file PATH", "Input file"), got)
	})

	t.Run("missing description", func(t *testing.T) {
		r := NewRenderer()
		got, err := r.FormatOption(NewOption(WithName("file")), types.Optional)
		require.NoError(t, err)
		assert.Equal(t, "--file\n", got)
	})

	t.Run("label override", func(t *testing.T) {
		r := NewRenderer(WithLabel(types.LabelRequired, "[必須]"))
		opt := NewOption(WithName("id"), SetRequired(true))

		got, err := r.FormatOption(opt, types.Optional)
		require.NoError(t, err)
		assert.Equal(t, "--id [必須]\n", got)
	})

	t.Run("missing label aborts", func(t *testing.T) {
		r := NewRenderer()
		r.Labels().table.Delete(types.LabelEnv)
		opt := NewOption(WithName("token"), WithEnvName("TOKEN"))

		_, err := r.FormatOption(opt, types.Optional)
		assert.ErrorIs(t, err, errs.ErrUnknownLabelKey)

		_, err = r.FormatOption(NewOption(WithName("other")), types.Optional)
		assert.NoError(t, err, "labels not on the active path are not looked up")
	})

	t.Run("part overrides", func(t *testing.T) {
		f := NewOptionFormatter(
			WithOptsFunc(func(*Renderer, *Option, OptionMode) (string, error) { return " OPTION", nil }),
			WithDescFunc(func(_ *Renderer, o *Option, _ OptionMode) (string, error) { return "<" + o.Description + ">", nil }),
		)
		r := NewRenderer(WithOptionFormatter(f), WithColumnWidth(15))

		got, err := r.FormatOption(NewOption(WithName("flag"), WithDescription("d")), types.Optional)
		require.NoError(t, err)
		assert.Equal(t, "--flag OPTION  <d>\n", got)
	})

	t.Run("part override error", func(t *testing.T) {
		f := NewOptionFormatter(WithNameFunc(func(*Renderer, *Option, OptionMode) (string, error) {
			return "", errs.ErrUnknownLabelKey.WithArgs("CUSTOM")
		}))
		r := NewRenderer(WithOptionFormatter(f))

		_, err := r.FormatOption(NewOption(), types.Optional)
		assert.ErrorIs(t, err, errs.ErrUnknownLabelKey)
	})
}
