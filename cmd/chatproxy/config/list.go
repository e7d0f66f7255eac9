package configcmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/chatproxy/pkg/config"
)

const listLongDesc string = `List all configuration values.

Displays every configuration key with its value from config.toml, or the
built-in default when the file does not set it.

Examples:
  chatproxy config list`

const listShortDesc string = "List all configuration values"

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: listShortDesc,
		Long:  listLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfger, err := newConfiger(cmd)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if cfger.Exists() {
				fmt.Fprintf(w, "Using config file: %s\n\n", cfger.GetTarget())
			} else {
				fmt.Fprint(w, "No config file found. Using default config.\n\n")
			}

			keys := config.ValidConfigKeys()

			// Find the longest key name for alignment.
			maxLen := 0
			for _, k := range keys {
				maxLen = max(maxLen, len(k))
			}

			for _, key := range keys {
				value, err := cfger.GetConfigValue(key)
				if err != nil {
					return err
				}

				if value == "" {
					fmt.Fprintf(w, "%-*s = <not set>\n", maxLen, key)
				} else {
					fmt.Fprintf(w, "%-*s = %q\n", maxLen, key, value)
				}
			}

			return nil
		},
	}
}
