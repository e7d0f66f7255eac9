// Package proxy provides the single-endpoint chat proxy. Every request, on any
// path, is validated, translated into the request format of the provider it
// names, and sent upstream exactly once. The upstream result is relayed back
// without interpretation.
package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/papercomputeco/chatproxy/pkg/llm"
	"github.com/papercomputeco/chatproxy/pkg/llm/provider"
	"github.com/papercomputeco/chatproxy/pkg/metrics"
	"github.com/papercomputeco/chatproxy/pkg/utils"
	"github.com/papercomputeco/chatproxy/proxy/header"
)

// maxLoggedBody caps how much of an upstream error body goes into a log line.
// The client still receives the full body.
const maxLoggedBody = 1024

// Proxy is the chat request router. It holds only immutable configuration,
// so concurrent requests share nothing but the HTTP client.
type Proxy struct {
	config        Config
	logger        *slog.Logger
	httpClient    *http.Client
	server        *fiber.App
	providers     *provider.Registry
	metrics       *metrics.Metrics
	headerHandler *header.Handler
}

// New creates a new Proxy.
func New(config Config, logger *slog.Logger) (*Proxy, error) {
	providers, err := provider.NewRegistry(config.Endpoints)
	if err != nil {
		return nil, fmt.Errorf("could not create providers: %w", err)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		// No timeout: the call waits for as long as the upstream takes.
		httpClient = &http.Client{}
	}

	p := &Proxy{
		config:        config,
		logger:        logger,
		httpClient:    httpClient,
		providers:     providers,
		metrics:       config.Metrics,
		headerHandler: header.NewHandler(),
	}

	app := fiber.New(fiber.Config{
		// Disable startup message for cleaner logs
		DisableStartupMessage: true,
		ErrorHandler:          p.handleError,
	})

	app.Use(requestid.New(requestid.Config{
		Header:     header.RequestIDHeader,
		Generator:  header.NewRequestID,
		ContextKey: header.RequestIDLocal,
	}))
	app.Use(func(c *fiber.Ctx) error {
		p.headerHandler.SetCORSHeaders(c)
		return c.Next()
	})
	app.Use(p.observe)

	// Every method on every path lands on the chat handler, which owns the
	// method check.
	app.All("/*", p.handleChat)

	p.server = app

	return p, nil
}

// Run starts the proxy server on the configured listening address
func (p *Proxy) Run() error {
	p.logger.Info("starting proxy server",
		"listen", p.config.ListenAddr,
	)

	return p.server.Listen(p.config.ListenAddr)
}

// RunWithListener starts the proxy server using the provided listener.
func (p *Proxy) RunWithListener(listener net.Listener) error {
	p.logger.Info("starting proxy server",
		"listen", listener.Addr().String(),
	)

	return p.server.Listener(listener)
}

// Close gracefully shuts down the proxy, waiting for in-flight requests.
func (p *Proxy) Close() error {
	return p.server.Shutdown()
}

// handleChat runs Validate -> Dispatch -> AwaitUpstream -> RelayResult for a
// single request. Any failure ends the request through handleError.
func (p *Proxy) handleChat(c *fiber.Ctx) error {
	switch c.Method() {
	case fiber.MethodOptions:
		// Preflight: 200 with an empty body. SendStatus would write "OK".
		c.Status(fiber.StatusOK)
		return nil
	case fiber.MethodPost:
	default:
		return errMethodNotAllowed
	}

	req, err := decodeChatRequest(c.Body())
	if err != nil {
		return err
	}

	prov, err := p.providers.Lookup(req.Provider)
	if err != nil {
		return errUnsupportedProvider
	}

	// The upstream call is not tied to the client connection: a client that
	// goes away does not cancel it.
	ctx := context.WithoutCancel(c.UserContext())

	httpReq, err := prov.BuildRequest(ctx, req)
	if err != nil {
		return fmt.Errorf("building %s request: %w", prov.Name(), err)
	}

	p.logger.Debug("forwarding request to upstream",
		"provider", prov.Name(),
		"host", httpReq.URL.Host,
		"path", httpReq.URL.Path,
		"message_count", len(req.Messages),
		"request_id", header.RequestID(c),
	)

	body, err := p.callUpstream(prov.Name(), httpReq)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(body)
}

// decodeChatRequest parses and presence-checks the inbound body.
func decodeChatRequest(body []byte) (*llm.ChatRequest, error) {
	req := &llm.ChatRequest{}
	if len(body) == 0 {
		return nil, errMissingRequiredFields
	}
	if err := json.Unmarshal(body, req); err != nil {
		return nil, errInvalidBody
	}
	if !req.HasRequiredFields() {
		return nil, errMissingRequiredFields
	}
	return req, nil
}

// callUpstream performs the one outbound call and returns the success body.
// Non-2xx responses become *UpstreamError; everything else that goes wrong
// is a transport error.
func (p *Proxy) callUpstream(providerName string, httpReq *http.Request) ([]byte, error) {
	startTime := time.Now()

	httpResp, err := p.httpClient.Do(httpReq)
	if err != nil {
		p.observeProvider(providerName, 0, time.Since(startTime))
		return nil, redactTransportError(err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	p.observeProvider(providerName, httpResp.StatusCode, time.Since(startTime))
	if err != nil {
		return nil, fmt.Errorf("reading upstream response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, &UpstreamError{
			Provider: providerName,
			Status:   httpResp.StatusCode,
			Body:     string(respBody),
		}
	}

	var payload json.RawMessage
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return nil, fmt.Errorf("decoding upstream response: %w", err)
	}

	p.logger.Debug("received response from upstream",
		"provider", providerName,
		"status", httpResp.StatusCode,
		"duration", time.Since(startTime),
	)

	return respBody, nil
}

// handleError is the fiber ErrorHandler. It maps every failure onto the
// {"error": "..."} envelope and logs it.
func (p *Proxy) handleError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	requestID := header.RequestID(c)

	var (
		validationErr *ValidationError
		upstreamErr   *UpstreamError
		fiberErr      *fiber.Error
	)

	switch {
	case errors.As(err, &validationErr):
		status = validationErr.Status
		p.logger.Warn("rejected request",
			"method", c.Method(),
			"status", status,
			"error", validationErr.Message,
			"request_id", requestID,
		)
	case errors.As(err, &upstreamErr):
		status = upstreamErr.Status
		p.logger.Error("upstream returned error",
			"provider", upstreamErr.Provider,
			"status", upstreamErr.Status,
			"body", utils.Truncate(upstreamErr.Body, maxLoggedBody),
			"request_id", requestID,
		)
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
		p.logger.Warn("request failed",
			"status", status,
			"error", fiberErr.Message,
			"request_id", requestID,
		)
	default:
		p.logger.Error("backend error",
			"error", err,
			"request_id", requestID,
		)
	}

	return c.Status(status).JSON(llm.ErrorResponse{Error: err.Error()})
}

// observe logs each request and records it in metrics once the handler chain
// has finished, including the error envelope.
func (p *Proxy) observe(c *fiber.Ctx) error {
	startTime := time.Now()

	if err := c.Next(); err != nil {
		if herr := p.handleError(c, err); herr != nil {
			return herr
		}
	}

	status := c.Response().StatusCode()
	if p.metrics != nil {
		p.metrics.ObserveRequest(c.Method(), status)
	}

	p.logger.Info("request",
		"method", c.Method(),
		"path", c.Path(),
		"status", status,
		"duration_ms", time.Since(startTime).Milliseconds(),
		"request_id", header.RequestID(c),
	)

	return nil
}

func (p *Proxy) observeProvider(providerName string, status int, elapsed time.Duration) {
	if p.metrics != nil {
		p.metrics.ObserveProvider(providerName, status, elapsed)
	}
}
