package v1handler

import (
	"html"
	"net/http"
	"net/url"
	"strconv"

	"textkit/pkg/domain"
	"textkit/pkg/serrors"
)

// maxUUIDBatch bounds the number of UUIDs returned per request.
const maxUUIDBatch = 100

// URLEncode percent-encodes the request text as a URL query component.
func (h *Handler) URLEncode(w http.ResponseWriter, r *http.Request) {
	text, err := readText(r)
	if err != nil {
		fail(w, r, domain.ToolURLEncode, err)

		return
	}

	ok(w, r, domain.ToolURLEncode, ResultResponse{Result: url.QueryEscape(text)})
}

// URLDecode reverses percent-encoding on the request text.
func (h *Handler) URLDecode(w http.ResponseWriter, r *http.Request) {
	text, err := readText(r)
	if err != nil {
		fail(w, r, domain.ToolURLDecode, err)

		return
	}

	decoded, err := url.QueryUnescape(text)
	if err != nil {
		fail(w, r, domain.ToolURLDecode, serrors.Wrap(serrors.ErrDecode, err, "invalid percent-encoding"))

		return
	}

	ok(w, r, domain.ToolURLDecode, ResultResponse{Result: decoded})
}

// HTMLEscape replaces HTML special characters in the request text with
// entities.
func (h *Handler) HTMLEscape(w http.ResponseWriter, r *http.Request) {
	text, err := readText(r)
	if err != nil {
		fail(w, r, domain.ToolHTMLEscape, err)

		return
	}

	ok(w, r, domain.ToolHTMLEscape, ResultResponse{Result: html.EscapeString(text)})
}

// HTMLUnescape replaces HTML entities in the request text with the
// characters they denote.
func (h *Handler) HTMLUnescape(w http.ResponseWriter, r *http.Request) {
	text, err := readText(r)
	if err != nil {
		fail(w, r, domain.ToolHTMLUnescape, err)

		return
	}

	ok(w, r, domain.ToolHTMLUnescape, ResultResponse{Result: html.UnescapeString(text)})
}

// UUIDResponse is the body of the UUID generation endpoint.
type UUIDResponse struct {
	UUIDs []string `json:"uuids"`
}

// UUID generates a batch of random version-4 UUIDs. The count query
// parameter selects the batch size (default 1, at most 100).
func (h *Handler) UUID(w http.ResponseWriter, r *http.Request) {
	count := 1
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxUUIDBatch {
			fail(w, r, domain.ToolUUID, serrors.With(serrors.ErrBadRequest,
				"count must be an integer between 1 and %d", maxUUIDBatch))

			return
		}
		count = n
	}

	ids := make([]string, count)
	for i := range ids {
		ids[i] = h.deps.NewUUID().String()
	}

	ok(w, r, domain.ToolUUID, UUIDResponse{UUIDs: ids})
}
