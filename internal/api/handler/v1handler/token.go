package v1handler

import (
	"net/http"

	"textkit/internal/token"
	"textkit/pkg/domain"
	"textkit/pkg/serrors"
)

// JWTDecode splits the submitted token into its three segments and returns
// the header and payload as pretty-printed JSON plus the raw signature.
// The signature is never verified; the response proves nothing about the
// token's authenticity.
func (h *Handler) JWTDecode(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := decodeBody(r, &req); err != nil {
		fail(w, r, domain.ToolJWTDecode, err)

		return
	}
	if req.Token == nil {
		fail(w, r, domain.ToolJWTDecode, serrors.With(serrors.ErrBadRequest, "missing required field: token"))

		return
	}

	decoded, err := token.Decode(*req.Token)
	if err != nil {
		fail(w, r, domain.ToolJWTDecode, err)

		return
	}

	ok(w, r, domain.ToolJWTDecode, decoded)
}
