package configcmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/chatproxy/pkg/cliui"
)

const setLongDesc string = `Set a configuration value.

Sets the given key in config.toml, creating the file and its directory when
needed. Upstream keys must be absolute URLs and log.json must be a boolean.

Examples:
  chatproxy config set proxy.listen :9090
  chatproxy config set upstream.google http://localhost:4010
  chatproxy config set log.json true`

const setShortDesc string = "Set a configuration value"

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "set <key> <value>",
		Short:             setShortDesc,
		Long:              setLongDesc,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := validateKey(key); err != nil {
				return err
			}

			cfger, err := newConfiger(cmd)
			if err != nil {
				return err
			}

			if err := cfger.SetConfigValue(key, value); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printTarget(w, cfger)
			fmt.Fprintf(w, "  %s Set %s = %s\n\n",
				cliui.SuccessMark,
				cliui.KeyStyle.Render(key),
				cliui.ValueStyle.Render(value),
			)
			return nil
		},
	}
}
