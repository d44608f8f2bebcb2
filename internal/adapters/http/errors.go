package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventplanner/internal/domain"
	"eventplanner/internal/domain/schedule"
	"eventplanner/internal/ports/output"
)

const (
	codeInvalidRequestBody = "invalid_request_body"
	codeInvalidQuery       = "invalid_query"
	codeNotFound           = "not_found"
	codeInternalError      = "internal_error"
)

type errorResponse struct {
	Error            string        `json:"error"`
	Code             string        `json:"code"`
	Details          string        `json:"details,omitempty"`
	ConflictingEvent *conflictSlot `json:"conflictingEvent,omitempty"`
}

type conflictSlot struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func newConflictSlot(s schedule.Slot) *conflictSlot {
	return &conflictSlot{Date: s.Date.String(), StartTime: s.Start.String(), EndTime: s.End.String()}
}

// statusFor maps a domain error code to its HTTP status.
func statusFor(code string) int {
	switch code {
	case "malformed_time", "malformed_date", "invalid_time_range", "starts_in_past",
		"invalid_input", "cannot_delete_self":
		return http.StatusBadRequest
	case "unauthorized", "invalid_credentials":
		return http.StatusUnauthorized
	case "forbidden":
		return http.StatusForbidden
	case "event_not_found", "user_not_found":
		return http.StatusNotFound
	case "event_time_conflict", "email_taken":
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeError(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: msg, Code: code})
}

// errorWriter renders service errors with a message localized from the
// request's Accept-Language header.
type errorWriter struct {
	translator output.T
	logger     *slog.Logger
}

func (w errorWriter) write(c *gin.Context, err error) {
	code := domain.Code(err)
	status := statusFor(code)
	if code == "" {
		w.logger.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
		writeError(c, status, codeInternalError, "internal error")
		return
	}

	resp := errorResponse{Error: err.Error(), Code: code}
	var data map[string]any
	var conflict *schedule.ConflictError
	if errors.As(err, &conflict) {
		resp.ConflictingEvent = newConflictSlot(conflict.Existing)
		data = map[string]any{
			"Start": conflict.Existing.Start.String(),
			"End":   conflict.Existing.End.String(),
			"Date":  conflict.Existing.Date.USString(),
		}
	}
	if w.translator != nil {
		resp.Details = w.translator.T(c.GetHeader("Accept-Language"), "errors."+code, data)
	}
	c.AbortWithStatusJSON(status, resp)
}
