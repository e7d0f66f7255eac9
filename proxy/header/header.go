// Package header owns the headers the proxy adds to every client response.
//
//	Client <--> Proxy <--> Upstream LLM Provider
//
// Upstream response headers are never relayed: the client only ever sees the
// proxy's own JSON envelope or the raw upstream body, so the client-facing leg
// carries a fixed header set.
package header

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request id in both directions.
const RequestIDHeader = fiber.HeaderXRequestID

// RequestIDLocal is the fiber.Ctx locals key the request id is stored under.
const RequestIDLocal = "requestid"

// cors is the fixed, permissive CORS header set sent on every response.
var cors = [][2]string{
	{fiber.HeaderAccessControlAllowOrigin, "*"},
	{fiber.HeaderAccessControlAllowMethods, "POST, OPTIONS"},
	{fiber.HeaderAccessControlAllowHeaders, "Content-Type"},
}

// Handler manages headers on the client leg.
type Handler struct{}

// NewHandler creates a new header Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// SetCORSHeaders writes the CORS header set onto the response.
func (h *Handler) SetCORSHeaders(c *fiber.Ctx) {
	for _, kv := range cors {
		c.Set(kv[0], kv[1])
	}
}

// NewRequestID generates a fresh request id.
func NewRequestID() string {
	return uuid.NewString()
}

// RequestID returns the id assigned to the current request, or "" when the
// request id middleware is not installed.
func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(RequestIDLocal).(string)
	return id
}
