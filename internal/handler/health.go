package handler

import (
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"
)

type componentHealth struct {
	Status      string `json:"status"`
	LastChecked string `json:"last_checked"`
	Error       string `json:"error,omitempty"`
}

// Health pings every backing dependency and reports per-component status.
// Any failing component turns the overall response into a 503.
func (h *Handler) Health(c *ginext.Context) {
	ctx := c.Request.Context()
	now := time.Now().UTC().Format(time.RFC3339)

	overall := "ok"
	components := make(map[string]componentHealth, len(h.health))
	for name, pinger := range h.health {
		ch := componentHealth{Status: "ok", LastChecked: now}
		if err := pinger.Ping(ctx); err != nil {
			ch.Status = "unavailable"
			ch.Error = err.Error()
			overall = "degraded"
		}
		components[name] = ch
	}

	status := http.StatusOK
	if overall != "ok" {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, ginext.H{
		"status":     overall,
		"uptime":     time.Since(h.startedAt).Truncate(time.Second).String(),
		"components": components,
	})
}
