// Package v1handler implements the JSON endpoints of the v1 tool API. Every
// endpoint is a thin adapter: decode the request body, call the pure tool
// function, encode the result. Failures are classified through serrors kinds
// and rendered as {"error": ...} bodies with the matching status code.
package v1handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"textkit/pkg/domain"
	"textkit/pkg/logger"
	"textkit/pkg/metrics"
	"textkit/pkg/serrors"
)

// maxBodyBytes bounds request bodies. The tools operate on human-typed text,
// so anything past 1 MiB is a client mistake.
const maxBodyBytes = 1 << 20

// Deps carries the handler's injectable collaborators.
type Deps struct {
	// NewUUID produces a random UUID; defaults to uuid.New. Injectable so
	// tests can pin the output.
	NewUUID func() uuid.UUID
}

// Handler serves the v1 tool endpoints.
type Handler struct {
	deps Deps
}

// New returns a Handler with the given dependencies, filling in defaults.
func New(deps Deps) *Handler {
	if deps.NewUUID == nil {
		deps.NewUUID = uuid.New
	}

	return &Handler{deps: deps}
}

// Register adds every v1 route to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/encode", h.UnicodeEncode)
	mux.HandleFunc("POST /api/decode", h.UnicodeDecode)
	mux.HandleFunc("POST /api/jwt/decode", h.JWTDecode)
	mux.HandleFunc("POST /api/validate/ipv4", h.ValidateIPv4)
	mux.HandleFunc("POST /api/validate/ipv6", h.ValidateIPv6)
	mux.HandleFunc("POST /api/validate/domain", h.ValidateDomain)
	mux.HandleFunc("POST /api/url/encode", h.URLEncode)
	mux.HandleFunc("POST /api/url/decode", h.URLDecode)
	mux.HandleFunc("POST /api/html/escape", h.HTMLEscape)
	mux.HandleFunc("POST /api/html/unescape", h.HTMLUnescape)
	mux.HandleFunc("GET /api/uuid", h.UUID)
}

// TextRequest is the request body shared by the transform endpoints.
// Text is a pointer so a missing field can be told apart from "".
type TextRequest struct {
	Text *string `json:"text"`
}

// ValueRequest is the request body of the validation endpoints.
type ValueRequest struct {
	Value *string `json:"value"`
}

// TokenRequest is the request body of the JWT decode endpoint.
type TokenRequest struct {
	Token *string `json:"token"`
}

// ResultResponse is the success body of the transform endpoints.
type ResultResponse struct {
	Result string `json:"result"`
}

// ValidResponse is the body of the validation endpoints. Invalid input is a
// normal outcome, not an error.
type ValidResponse struct {
	Valid bool `json:"valid"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// decodeBody parses the request body into dst, rejecting oversized and
// syntactically invalid JSON with a BAD_REQUEST error.
func decodeBody(r *http.Request, dst any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "request body is not valid JSON")
	}

	return nil
}

// readText extracts the mandatory "text" field from the request body.
func readText(r *http.Request) (string, error) {
	var req TextRequest
	if err := decodeBody(r, &req); err != nil {
		return "", err
	}
	if req.Text == nil {
		return "", serrors.With(serrors.ErrBadRequest, "missing required field: text")
	}

	return *req.Text, nil
}

// readValue extracts the mandatory "value" field from the request body.
func readValue(r *http.Request) (string, error) {
	var req ValueRequest
	if err := decodeBody(r, &req); err != nil {
		return "", err
	}
	if req.Value == nil {
		return "", serrors.With(serrors.ErrBadRequest, "missing required field: value")
	}

	return *req.Value, nil
}

// writeJSON renders v with the given status. Encoding failures at this point
// can only be logged; headers are already out.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(r.Context(), "could not encode response: "+err.Error())
	}
}

// ok records a successful invocation of tool and renders v with 200.
// A validator reporting false still counts as success; the request was
// processed.
func ok(w http.ResponseWriter, r *http.Request, tool domain.Tool, v any) {
	metrics.ToolInvocationsTotal.WithLabelValues(string(tool), "success").Inc()
	writeJSON(w, r, http.StatusOK, v)
}

// fail records a failed invocation of tool, classifies err through its
// serrors kind and renders the matching status with an {"error": ...} body.
// Unclassified errors are logged and hidden behind a generic message.
func fail(w http.ResponseWriter, r *http.Request, tool domain.Tool, err error) {
	metrics.ToolInvocationsTotal.WithLabelValues(string(tool), "error").Inc()

	status := serrors.HTTPStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), err.Error())
		msg = "internal error"
	}

	writeJSON(w, r, status, ErrorResponse{Error: msg})
}
