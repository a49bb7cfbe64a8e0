package treefile

import (
	"strings"
	"testing"

	"github.com/napalu/helpfmt"
	"github.com/napalu/helpfmt/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func option(t *testing.T, cmd *helpfmt.Command, name string) *helpfmt.Option {
	t.Helper()
	found := cmd.GetOptions(func(opt *helpfmt.Option) bool { return opt.Name == name })
	require.Len(t, found, 1, name)
	return found[0]
}

func TestLoadFile(t *testing.T) {
	root, err := LoadFile("testdata/app.yaml")
	require.NoError(t, err)

	t.Run("command fields", func(t *testing.T) {
		assert.Equal(t, "app", root.Name)
		assert.Equal(t, "Builds and ships things", root.Description)
		assert.Equal(t, "Report bugs to the issue tracker", root.Footer)
		assert.Equal(t, 1, root.RequireSubcommandMin())
		assert.Equal(t, 1, root.RequireSubcommandMax())
		require.NotNil(t, root.GetHelpOption())
		assert.Equal(t, "-h,--help", root.GetHelpOption().GetFlagNames())
		require.NotNil(t, root.GetHelpAllOption())
		assert.Equal(t, "--help-all", root.GetHelpAllOption().GetFlagNames())
	})

	t.Run("options", func(t *testing.T) {
		verbose := option(t, root, "verbose")
		assert.Equal(t, 0, verbose.Expected)
		assert.Equal(t, "APP_VERBOSE", verbose.EnvName)

		output := option(t, root, "output")
		assert.Equal(t, "Output", output.Group)
		assert.Equal(t, "./out", output.DefaultValue)
		assert.Equal(t, "APP_OUT", output.EnvName)

		assert.True(t, option(t, root, "dry-run").IsHidden())

		file := option(t, root, "file")
		assert.True(t, file.Positional)
		assert.True(t, file.Required)
		assert.Equal(t, -1, option(t, root, "extra").Expected)
	})

	t.Run("subcommands", func(t *testing.T) {
		subs := root.GetSubcommands(nil)
		require.Len(t, subs, 3)
		build, secret, lint := subs[0], subs[1], subs[2]

		assert.Equal(t, "Tools", build.Group)
		assert.True(t, secret.IsHidden())
		assert.Equal(t, "tools", lint.Group)
		assert.Equal(t, "app build", build.Path())

		assert.Equal(t, "APP_BUILD_TARGET_DIR", option(t, build, "target-dir").EnvName)
		jobs := option(t, build, "jobs")
		assert.Equal(t, 2, jobs.Expected)
		require.Len(t, jobs.GetNeeds(), 1)
		assert.Equal(t, "--target-dir", jobs.GetNeeds()[0].SingleName())
		require.Len(t, jobs.GetExcludes(), 1)
		assert.Equal(t, "--serial", jobs.GetExcludes()[0].SingleName())
	})

	t.Run("renders", func(t *testing.T) {
		help, err := helpfmt.NewRenderer().Render(root, "", helpfmt.ModeNormal)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(help, "Builds and ships things\nUsage: app [OPTIONS] file [extra...] SUBCOMMAND\n"))
		assert.Contains(t, help, "\nTools:\n")
		assert.NotContains(t, help, "\ntools:\n")
		assert.NotContains(t, help, "secret")
		assert.True(t, strings.HasSuffix(help, "\n\nReport bugs to the issue tracker\n"))
	})
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target error
	}{
		{"empty document", "", errs.ErrInvalidTreeFile},
		{"unknown key", "name: app\ncolour: red\n", errs.ErrInvalidTreeFile},
		{"malformed", "name: [app\n", errs.ErrInvalidTreeFile},
		{"unknown relation", "name: app\noptions:\n  - name: a\n    needs: [b]\n", errs.ErrOptionNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), "inline.yaml")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			assert.ErrorIs(t, err, errs.ErrInvalidTreeFile)
			assert.Contains(t, err.Error(), "inline.yaml")
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile("testdata/does-not-exist.yaml")
		assert.ErrorIs(t, err, errs.ErrInvalidTreeFile)
	})
}
