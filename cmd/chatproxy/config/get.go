package configcmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/chatproxy/pkg/cliui"
)

const getLongDesc string = `Get a configuration value.

Reads the value for the given key from config.toml, falling back to the
built-in default when the file or key is absent.

Examples:
  chatproxy config get proxy.listen
  chatproxy config get upstream.anthropic`

const getShortDesc string = "Get a configuration value"

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "get <key>",
		Short:             getShortDesc,
		Long:              getLongDesc,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateKey(args[0]); err != nil {
				return err
			}

			cfger, err := newConfiger(cmd)
			if err != nil {
				return err
			}

			value, err := cfger.GetConfigValue(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printTarget(w, cfger)
			if value == "" {
				fmt.Fprintf(w, "  %s  %s\n\n", cliui.KeyStyle.Render(args[0]), cliui.DimStyle.Render("<not set>"))
			} else {
				fmt.Fprintf(w, "  %s  %s\n\n", cliui.KeyStyle.Render(args[0]), cliui.ValueStyle.Render(value))
			}
			return nil
		},
	}
}
