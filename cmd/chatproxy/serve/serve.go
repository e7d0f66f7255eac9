// Package servecmder provides the serve command that runs the chat proxy.
package servecmder

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/chatproxy/pkg/config"
	"github.com/papercomputeco/chatproxy/pkg/llm/provider"
	"github.com/papercomputeco/chatproxy/pkg/logger"
	"github.com/papercomputeco/chatproxy/pkg/metrics"
	"github.com/papercomputeco/chatproxy/proxy"
)

type serveCommander struct {
	listen            string
	metricsListen     string
	openaiUpstream    string
	anthropicUpstream string
	googleUpstream    string
	logJSON           bool
	logFile           string
	debug             bool

	cfg    *config.Config
	logger *slog.Logger
}

const serveLongDesc string = `Run the chat proxy.

Every request, on any path, is a chat request:
  POST {"provider": "openai"|"anthropic"|"google", "apiKey": "...",
        "messages": [{"role": "...", "content": "..."}], "model": "..."}

The request is translated for the named provider, sent upstream once, and
the provider's JSON answer is relayed back unchanged.

Configuration precedence: flags, then CHATPROXY_* environment variables,
then config.toml, then built-in defaults.`

const serveShortDesc string = "Run the chat proxy server"

// serveFlagKeys are the registry keys bound to viper for this command.
var serveFlagKeys = []string{
	config.FlagListen,
	config.FlagMetricsListen,
	config.FlagOpenAIUpstream,
	config.FlagAnthropicUpstream,
	config.FlagGoogleUpstream,
	config.FlagLogJSON,
	config.FlagLogFile,
}

func NewServeCmd() *cobra.Command {
	return newServeCmd(&serveCommander{})
}

func newServeCmd(cmder *serveCommander) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return cmder.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %w", err)
			}
			return cmder.run()
		},
	}

	config.AddStringFlag(cmd, config.ServeFlags, config.FlagListen, &cmder.listen)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagMetricsListen, &cmder.metricsListen)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagOpenAIUpstream, &cmder.openaiUpstream)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagAnthropicUpstream, &cmder.anthropicUpstream)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagGoogleUpstream, &cmder.googleUpstream)
	config.AddBoolFlag(cmd, config.ServeFlags, config.FlagLogJSON, &cmder.logJSON)
	config.AddStringFlag(cmd, config.ServeFlags, config.FlagLogFile, &cmder.logFile)

	return cmd
}

// loadConfig resolves the effective configuration through viper so that
// flags, environment and config.toml are merged in one place.
func (c *serveCommander) loadConfig(cmd *cobra.Command) error {
	configDir, _ := cmd.Flags().GetString("config-dir")

	v, err := config.InitViper(configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	config.BindRegisteredFlags(v, cmd, config.ServeFlags, serveFlagKeys)

	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	c.cfg = cfg
	return nil
}

func (c *serveCommander) proxyConfig(m *metrics.Metrics) proxy.Config {
	return proxy.Config{
		ListenAddr: c.cfg.Proxy.Listen,
		Endpoints: provider.Endpoints{
			OpenAI:    c.cfg.Upstream.OpenAI,
			Anthropic: c.cfg.Upstream.Anthropic,
			Google:    c.cfg.Upstream.Google,
		},
		Metrics: m,
	}
}

// newLogger builds the process logger. Stdout gets pretty output on a
// terminal and JSON when requested; log.file adds a JSON copy on disk.
func (c *serveCommander) newLogger(stdout *os.File) (*slog.Logger, func() error, error) {
	console := logger.New(
		logger.WithOutput(stdout),
		logger.WithDebug(c.debug),
		logger.WithJSON(c.cfg.Log.JSON),
		logger.WithPretty(logger.IsTerminal(stdout)),
	)

	if c.cfg.Log.File == "" {
		return console, func() error { return nil }, nil
	}

	f, err := os.OpenFile(c.cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	file := logger.New(
		logger.WithOutput(f),
		logger.WithDebug(c.debug),
		logger.WithJSON(true),
	)

	return logger.Multi(console, file), f.Close, nil
}

func (c *serveCommander) run() error {
	var (
		closeLog func() error
		err      error
	)
	c.logger, closeLog, err = c.newLogger(os.Stdout)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	m := metrics.New()

	p, err := proxy.New(c.proxyConfig(m), c.logger)
	if err != nil {
		return fmt.Errorf("creating proxy: %w", err)
	}
	defer func() { _ = p.Close() }()

	c.logger.Info("proxy configured",
		"listen", c.cfg.Proxy.Listen,
		"openai_upstream", c.cfg.Upstream.OpenAI,
		"anthropic_upstream", c.cfg.Upstream.Anthropic,
		"google_upstream", c.cfg.Upstream.Google,
		"providers", provider.SupportedProviders(),
	)

	// Channel to capture errors from goroutines
	errChan := make(chan error, 2)

	go func() {
		if err := p.Run(); err != nil {
			errChan <- fmt.Errorf("proxy error: %w", err)
		}
	}()

	if c.cfg.Proxy.MetricsListen != "" {
		metricsApp := m.NewApp()
		defer func() { _ = metricsApp.Shutdown() }()

		c.logger.Info("starting metrics server", "listen", c.cfg.Proxy.MetricsListen)
		go func() {
			if err := metricsApp.Listen(c.cfg.Proxy.MetricsListen); err != nil {
				errChan <- fmt.Errorf("metrics server error: %w", err)
			}
		}()
	}

	// Wait for interrupt signal or error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		c.logger.Info("received signal, shutting down", "signal", sig.String())
		return nil
	}
}
