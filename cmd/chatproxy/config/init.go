package configcmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/chatproxy/pkg/cliui"
	"github.com/papercomputeco/chatproxy/pkg/config"
)

const initLongDesc string = `Write a config.toml holding the built-in defaults.

Refuses to overwrite an existing file unless --force is given.

Examples:
  chatproxy config init
  chatproxy config init --config-dir ./deploy --force`

const initShortDesc string = "Write a default config.toml"

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: initShortDesc,
		Long:  initLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfger, err := newConfiger(cmd)
			if err != nil {
				return err
			}
			return runInit(cmd, cfger, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config.toml")

	return cmd
}

func runInit(cmd *cobra.Command, cfger *config.Configer, force bool) error {
	if cfger.GetTarget() == "" {
		return fmt.Errorf("no config directory: set --config-dir or $HOME")
	}
	if cfger.Exists() && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", cfger.GetTarget())
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w)
	err := cliui.Step(w, "Writing "+cfger.GetTarget(), func() error {
		return cfger.SaveConfig(config.NewDefaultConfig())
	})
	fmt.Fprintln(w)
	return err
}
