// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dayplan/internal/ai"
	"dayplan/internal/modules/usage"
	"dayplan/internal/planner"
)

type errorResponse struct {
	Error string `json:"error"`
}

// isValidUID ensures uids are short and alphanumeric (matches the client's
// anonymous-id generator).
func isValidUID(v string) bool {
	if v == "" || len(v) > 64 {
		return false
	}
	for _, c := range v {
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '-' {
			continue
		}
		return false
	}
	return true
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writePlannerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrPlanNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, planner.ErrIndexOutOfRange):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, planner.ErrAlternativeInFlight):
		writeError(c, http.StatusConflict, err.Error())
	case errors.Is(err, usage.ErrQuotaExceeded):
		writeError(c, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, ai.ErrProvider),
		errors.Is(err, planner.ErrExtraction),
		errors.Is(err, planner.ErrValidation):
		writeError(c, http.StatusBadGateway, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
