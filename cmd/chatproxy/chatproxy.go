// Package chatproxycmder
package chatproxycmder

import (
	"github.com/spf13/cobra"

	configcmder "github.com/papercomputeco/chatproxy/cmd/chatproxy/config"
	servecmder "github.com/papercomputeco/chatproxy/cmd/chatproxy/serve"
	versioncmder "github.com/papercomputeco/chatproxy/cmd/version"
)

const chatproxyLongDesc string = `chatproxy forwards chat-completion requests to OpenAI, Anthropic
or Google, normalizing the request shape and relaying the provider's answer.

Clients POST {"provider", "apiKey", "messages", "model"} to any path:
  chatproxy serve          Run the proxy server
  chatproxy config init    Write a default config.toml
  chatproxy config list    Show the effective configuration`

const chatproxyShortDesc string = "chatproxy - multi-provider chat proxy"

func NewChatproxyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "chatproxy",
		Short:         chatproxyShortDesc,
		Long:          chatproxyLongDesc,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("config-dir", "", "Directory holding config.toml (default: $HOME/.chatproxy)")

	cmd.AddCommand(servecmder.NewServeCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}
