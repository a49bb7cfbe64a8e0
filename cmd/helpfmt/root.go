package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/napalu/helpfmt"
	"github.com/napalu/helpfmt/cobrahelp"
	"github.com/napalu/helpfmt/errs"
	"github.com/napalu/helpfmt/i18n"
	"github.com/napalu/helpfmt/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
)

const envPrefix = "HELPFMT"

// config keys
const (
	keyColumnWidth = "columnWidth"
	keyMode        = "mode"
	keyLabels      = "labels"
	keyLabelSpec   = "labelSpec"
	keyDebug       = "debug"
	keyLang        = "lang"
)

type loggerFactory func(debug bool) (*zap.Logger, error)

type app struct {
	v         *viper.Viper
	cfgFile   string
	logger    *zap.Logger
	newLogger loggerFactory
	ready     bool
}

func productionLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func newRootCmd(newLogger loggerFactory) *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop(), newLogger: newLogger}

	root := &cobra.Command{
		Use:               "helpfmt",
		Short:             "Render command-line help",
		Long:              "helpfmt renders the help text of a command tree described in YAML.",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "read configuration from `FILE`")
	flags.Int("column-width", helpfmt.DefaultColumnWidth, "width of the left help column")
	flags.String("mode", types.Normal.String(), "help mode: normal, all or sub")
	flags.String("labels", "", "label overrides as shell-quoted KEY=VALUE words")
	flags.String("lang", "", "language of error messages, e.g. de")
	flags.Bool("debug", false, "enable debug logging")
	_ = a.v.BindPFlag(keyColumnWidth, flags.Lookup("column-width"))
	_ = a.v.BindPFlag(keyMode, flags.Lookup("mode"))
	_ = a.v.BindPFlag(keyLabelSpec, flags.Lookup("labels"))
	_ = a.v.BindPFlag(keyLang, flags.Lookup("lang"))
	_ = a.v.BindPFlag(keyDebug, flags.Lookup("debug"))

	root.AddCommand(a.renderCmd(), a.demoCmd(), a.labelsCmd())
	cobrahelp.InstallFunc(root, a.helpRenderer)

	return root
}

// setup loads the configuration, the logger and the message language once. Help requests skip
// the pre-run hooks, so helpRenderer calls it as well.
func (a *app) setup(*cobra.Command, []string) error {
	if a.ready {
		return nil
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	a.v.SetDefault(keyColumnWidth, helpfmt.DefaultColumnWidth)
	a.v.SetDefault(keyMode, types.Normal.String())

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		a.v.SetConfigName(".helpfmt")
		a.v.AddConfigPath(".")
		if err := a.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("failed to load config: %w", err)
			}
		}
	}

	logger, err := a.newLogger(a.v.GetBool(keyDebug))
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	a.logger.Debug("configuration loaded", zap.String("file", a.v.ConfigFileUsed()))

	if err := a.applyLanguage(a.v.GetString(keyLang)); err != nil {
		return err
	}
	a.ready = true

	return nil
}

func (a *app) applyLanguage(lang string) error {
	if lang == "" {
		return nil
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return err
	}
	if !i18n.Default().HasLanguage(tag) {
		a.logger.Warn("language not available, keeping English", zap.String("lang", lang))
		return nil
	}
	i18n.SetDefaultMessageProvider(i18n.NewBundleMessageProvider(i18n.Default(), tag))

	return nil
}

// helpRenderer renders the help of helpfmt itself with the same labels and column width as
// render and demo.
func (a *app) helpRenderer(c *cobra.Command) (*helpfmt.Renderer, error) {
	if err := a.setup(c, nil); err != nil {
		return nil, err
	}
	return a.renderer()
}

// renderer builds a renderer from the merged configuration. Labels from the config file are
// applied first, then the --labels words.
func (a *app) renderer(configs ...helpfmt.ConfigureRendererFunc) (*helpfmt.Renderer, error) {
	labels := map[string]string{}
	for key, value := range a.v.GetStringMapString(keyLabels) {
		labels[strings.ToUpper(key)] = value
	}
	overrides, err := parseLabelSpec(a.v.GetString(keyLabelSpec))
	if err != nil {
		return nil, err
	}
	for key, value := range overrides {
		labels[key] = value
	}

	configs = append([]helpfmt.ConfigureRendererFunc{
		helpfmt.WithColumnWidth(a.v.GetInt(keyColumnWidth)),
		helpfmt.WithLabels(labels),
	}, configs...)

	return helpfmt.NewRenderer(configs...), nil
}

func (a *app) mode() (helpfmt.CommandMode, error) {
	name := a.v.GetString(keyMode)
	mode, ok := types.ParseCommandMode(name)
	if !ok {
		return mode, errs.ErrUnknownMode.WithArgs(name)
	}
	return mode, nil
}

func (a *app) print(cmd *cobra.Command, tree *helpfmt.Command, name string, configs ...helpfmt.ConfigureRendererFunc) error {
	r, err := a.renderer(configs...)
	if err != nil {
		return err
	}
	mode, err := a.mode()
	if err != nil {
		return err
	}

	a.logger.Debug("rendering",
		zap.String("command", tree.Name),
		zap.String("mode", mode.String()),
		zap.Int("columnWidth", r.ColumnWidth()))

	return r.Print(cmd.OutOrStdout(), tree, name, mode)
}
