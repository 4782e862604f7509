package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JulianRR24/planningweb-push-scheduler/internal/service/cycle"
)

// Browser clients invoke the trigger endpoint directly, so every response
// carries permissive CORS headers and preflight is answered inline.
var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "authorization, x-client-info, apikey, content-type",
	"Access-Control-Allow-Methods": "POST, GET, OPTIONS",
}

type SchedulerHandler struct {
	cycleService *cycle.Service
}

func NewSchedulerHandler(cycleService *cycle.Service) *SchedulerHandler {
	return &SchedulerHandler{
		cycleService: cycleService,
	}
}

// Handle serves the trigger endpoint for any verb: preflight requests get
// the CORS acknowledgment, everything else runs a cycle.
func (h *SchedulerHandler) Handle(c *gin.Context) {
	if c.Request.Method == http.MethodOptions {
		h.HandlePreflight(c)
		return
	}
	h.HandleTrigger(c)
}

// HandleTrigger runs one evaluation cycle. The optional at query parameter
// overrides the evaluation instant for testing.
func (h *SchedulerHandler) HandleTrigger(c *gin.Context) {
	setCORSHeaders(c)

	ctx := c.Request.Context()

	at := time.Now()
	if atStr := c.Query("at"); atStr != "" {
		parsed, err := time.Parse(time.RFC3339, atStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid at time format, expected RFC3339"})
			return
		}
		at = parsed
		slog.InfoContext(ctx, "using evaluation time override",
			slog.Time("at", at),
		)
	}

	resp, err := h.cycleService.Run(ctx, at)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandlePreflight answers the CORS preflight for the trigger endpoint.
func (h *SchedulerHandler) HandlePreflight(c *gin.Context) {
	setCORSHeaders(c)
	c.String(http.StatusOK, "ok")
}

func setCORSHeaders(c *gin.Context) {
	for k, v := range corsHeaders {
		c.Header(k, v)
	}
}
