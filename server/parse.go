package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	eserrors "github.com/hrygo/eventsense/internal/errors"
	"github.com/hrygo/eventsense/internal/observability"
	"github.com/hrygo/eventsense/plugin/nlp/eventparse"
)

// parseRequest is the wire form of a parse request. Text stays raw so a
// non-string value can be rejected explicitly instead of coerced.
type parseRequest struct {
	Text json.RawMessage `json:"text"`
}

// parseResponse is the wire form of a ParsedEvent.
type parseResponse struct {
	Title    string  `json:"title"`
	Datetime *string `json:"datetime"`
	EndTime  *string `json:"end_time"`
	Type     string  `json:"type"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleParse(c echo.Context) error {
	reqCtx := observability.NewRequestContext(s.logger)
	ctx := c.Request().Context()

	var req parseRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return badRequest(c, reqCtx, "request body must be a JSON object")
	}
	if req.Text == nil {
		return badRequest(c, reqCtx, "missing 'text' field in request body")
	}
	var text string
	if err := json.Unmarshal(req.Text, &text); err != nil {
		return badRequest(c, reqCtx, "'text' must be a string")
	}

	if err := s.parseSemaphore.Acquire(ctx, 1); err != nil {
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "server busy"})
	}
	defer s.parseSemaphore.Release(1)

	event, err := s.parser.Parse(ctx, text)
	if err != nil {
		perr := eserrors.Wrap(eserrors.ErrCodeInternal, "parsing failed", err)
		reqCtx.Error("parse failed", perr,
			slog.String(observability.LogFieldErrorCode, string(perr.Code)),
			slog.Int(observability.LogFieldTextLen, len(text)))
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: perr.Error()})
	}

	reqCtx.Info("parsed",
		slog.Int(observability.LogFieldTextLen, len(text)),
		slog.String(observability.LogFieldIntent, event.Type.String()),
		slog.Int64(observability.LogFieldDuration, reqCtx.DurationMs()))

	return c.JSON(http.StatusOK, toResponse(event))
}

func badRequest(c echo.Context, reqCtx *observability.RequestContext, msg string) error {
	reqCtx.Warn("bad request",
		slog.String(observability.LogFieldErrorCode, string(eserrors.ErrCodeInvalidArgument)),
		slog.String("reason", msg))
	return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}

func toResponse(event eventparse.ParsedEvent) parseResponse {
	resp := parseResponse{
		Title: event.Title,
		Type:  event.Type.String(),
	}
	if event.Datetime != nil {
		resp.Datetime = formatTime(*event.Datetime)
	}
	if event.EndTime != nil {
		resp.EndTime = formatTime(*event.EndTime)
	}
	return resp
}

func formatTime(t time.Time) *string {
	formatted := t.Format(time.RFC3339)
	return &formatted
}
