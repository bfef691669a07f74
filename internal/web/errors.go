package web

import (
	"errors"
	"net/http"

	"github.com/antiquecw/importgen/internal/core"
	"github.com/antiquecw/importgen/internal/logging"
	"github.com/go-chi/render"
)

// errNoFile is returned when a convert request carries no upload.
var errNoFile = errors.New("no file provided")

// errorResponse is the JSON body sent for failed requests.
type errorResponse struct {
	Error  string `json:"error"`
	Action string `json:"action,omitempty"`
	Code   string `json:"code"`
	Detail string `json:"detail,omitempty"`
}

// respondError maps an internal error to a user-facing JSON response.
// Validation errors keep their detail (e.g. which columns are missing)
// so the user can fix the file; everything else gets the mapped message
// only.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, status int) {
	msg := core.MapError(err)

	resp := errorResponse{
		Error:  msg.Message,
		Action: msg.Action,
		Code:   msg.Code,
	}

	var missing *core.MissingColumnsError
	var processing *core.ProcessingError
	if errors.As(err, &missing) || errors.As(err, &processing) {
		resp.Detail = err.Error()
	}

	log := logging.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error("request failed", "code", msg.Code, "status", status, "error", err)
	} else {
		log.Warn("request rejected", "code", msg.Code, "status", status, "error", err)
	}

	render.Status(r, status)
	render.JSON(w, r, resp)
}
