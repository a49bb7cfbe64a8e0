package main

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/napalu/helpfmt"
	"github.com/napalu/helpfmt/treefile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//go:embed demo.yaml
var demoTree []byte

func (a *app) renderCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render the help of a YAML command tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger.Debug("loading tree", zap.String("file", args[0]))
			tree, err := treefile.LoadFile(args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, tree, name)
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "program name shown on the usage line")

	return cmd
}

func (a *app) demoCmd() *cobra.Command {
	var placeholder string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render the built-in demo tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree, err := treefile.Decode(bytes.NewReader(demoTree), "demo.yaml")
			if err != nil {
				return err
			}

			var configs []helpfmt.ConfigureRendererFunc
			if placeholder != "" {
				configs = append(configs, helpfmt.WithOptionFormatter(helpfmt.NewOptionFormatter(
					helpfmt.WithOptsFunc(func(*helpfmt.Renderer, *helpfmt.Option, helpfmt.OptionMode) (string, error) {
						return " " + placeholder, nil
					}),
				)))
			}
			return a.print(cmd, tree, "", configs...)
		},
	}
	cmd.Flags().StringVar(&placeholder, "placeholder", "", "replace every option decoration with `TEXT`")

	return cmd
}

func (a *app) labelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "labels",
		Short: "Print the effective label table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.renderer()
			if err != nil {
				return err
			}
			for _, key := range r.Labels().Keys() {
				value, err := r.Label(key)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key, value)
			}
			return nil
		},
	}
}
