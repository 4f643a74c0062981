package v1handler

import (
	"net/http"

	"textkit/internal/escape"
	"textkit/pkg/domain"
)

// UnicodeEncode converts the request text to its \uXXXX-escaped ASCII form.
func (h *Handler) UnicodeEncode(w http.ResponseWriter, r *http.Request) {
	text, err := readText(r)
	if err != nil {
		fail(w, r, domain.ToolUnicodeEncode, err)

		return
	}

	ok(w, r, domain.ToolUnicodeEncode, ResultResponse{Result: escape.Encode(text)})
}

// UnicodeDecode replaces \uXXXX escapes in the request text with the
// characters they denote. Malformed escapes pass through unchanged, so this
// endpoint only fails on a bad request body.
func (h *Handler) UnicodeDecode(w http.ResponseWriter, r *http.Request) {
	text, err := readText(r)
	if err != nil {
		fail(w, r, domain.ToolUnicodeDecode, err)

		return
	}

	ok(w, r, domain.ToolUnicodeDecode, ResultResponse{Result: escape.Decode(text)})
}
