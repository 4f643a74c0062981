package v1handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"textkit/internal/api/handler/v1handler"
	"textkit/pkg/domain"
)

const sampleJWT = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
	"eyJzdWIiOiIxMjM0NTY3ODkwIiwibmFtZSI6IkpvaG4gRG9lIiwiaWF0IjoxNTE2MjM5MDIyfQ." +
	"SflKxwRJSMeKKF2QT4fwpMeJf36POk6yJV_adQssw5c"

func TestJWTDecode(t *testing.T) {
	mux := newMux(t)

	body, err := jsonBody(map[string]string{"token": sampleJWT})
	require.NoError(t, err)

	rec := post(t, mux, "/api/jwt/decode", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.DecodedToken
	decodeInto(t, rec, &resp)
	require.Contains(t, resp.Header, `"alg": "HS256"`)
	require.Contains(t, resp.Payload, `"name": "John Doe"`)
	require.Equal(t, "SflKxwRJSMeKKF2QT4fwpMeJf36POk6yJV_adQssw5c", resp.Signature)
}

func TestJWTDecodeMalformed(t *testing.T) {
	mux := newMux(t)

	rec := post(t, mux, "/api/jwt/decode", `{"token": "header.payload"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp v1handler.ErrorResponse
	decodeInto(t, rec, &resp)
	require.Contains(t, resp.Error, "3 dot-separated segments")
}

func TestJWTDecodeUndecodableSegment(t *testing.T) {
	mux := newMux(t)

	rec := post(t, mux, "/api/jwt/decode", `{"token": "!!!.!!!.sig"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp v1handler.ErrorResponse
	decodeInto(t, rec, &resp)
	require.Contains(t, resp.Error, "base64")
}
