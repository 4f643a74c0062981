package v1handler

import (
	"net/http"

	"textkit/internal/validate"
	"textkit/pkg/domain"
)

// ValidateIPv4 reports whether the submitted value is a canonical dotted-quad
// IPv4 address.
func (h *Handler) ValidateIPv4(w http.ResponseWriter, r *http.Request) {
	h.validateWith(w, r, domain.ToolValidateIPv4, validate.IPv4)
}

// ValidateIPv6 reports whether the submitted value is a syntactically valid
// IPv6 address.
func (h *Handler) ValidateIPv6(w http.ResponseWriter, r *http.Request) {
	h.validateWith(w, r, domain.ToolValidateIPv6, validate.IPv6)
}

// ValidateDomain reports whether the submitted value is a syntactically valid
// DNS domain name.
func (h *Handler) ValidateDomain(w http.ResponseWriter, r *http.Request) {
	h.validateWith(w, r, domain.ToolValidateDomain, validate.Domain)
}

func (h *Handler) validateWith(w http.ResponseWriter, r *http.Request, tool domain.Tool, pred func(string) bool) {
	value, err := readValue(r)
	if err != nil {
		fail(w, r, tool, err)

		return
	}

	ok(w, r, tool, ValidResponse{Valid: pred(value)})
}
