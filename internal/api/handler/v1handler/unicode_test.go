package v1handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"textkit/internal/api/handler/v1handler"
)

func TestUnicodeEncode(t *testing.T) {
	mux := newMux(t)

	cases := []struct {
		name   string
		body   string
		result string
	}{
		{
			name:   "japanese greeting",
			body:   `{"text": "こんにちは"}`,
			result: `\u3053\u3093\u306b\u3061\u306f`,
		},
		{
			name:   "ascii unchanged",
			body:   `{"text": "Hello"}`,
			result: "Hello",
		},
		{
			name:   "empty text is allowed",
			body:   `{"text": ""}`,
			result: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(t, mux, "/api/encode", tc.body)
			require.Equal(t, http.StatusOK, rec.Code)

			var resp v1handler.ResultResponse
			decodeInto(t, rec, &resp)
			require.Equal(t, tc.result, resp.Result)
		})
	}
}

func TestUnicodeDecode(t *testing.T) {
	mux := newMux(t)

	body, err := jsonBody(map[string]string{"text": `\u3053\u3093\u306b\u3061\u306f`})
	require.NoError(t, err)

	rec := post(t, mux, "/api/decode", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp v1handler.ResultResponse
	decodeInto(t, rec, &resp)
	require.Equal(t, "こんにちは", resp.Result)
}

func TestUnicodeDecodeMalformedEscapesPassThrough(t *testing.T) {
	mux := newMux(t)

	body, err := jsonBody(map[string]string{"text": `\uZZZZ stays`})
	require.NoError(t, err)

	rec := post(t, mux, "/api/decode", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp v1handler.ResultResponse
	decodeInto(t, rec, &resp)
	require.Equal(t, `\uZZZZ stays`, resp.Result)
}

func TestUnicodeRoundTripOverHTTP(t *testing.T) {
	mux := newMux(t)

	rec := post(t, mux, "/api/encode", `{"text": "𝄞 clef"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var encoded v1handler.ResultResponse
	decodeInto(t, rec, &encoded)
	require.Equal(t, `\ud834\udd1e clef`, encoded.Result)

	body, err := jsonBody(map[string]string{"text": encoded.Result})
	require.NoError(t, err)

	rec = post(t, mux, "/api/decode", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var decoded v1handler.ResultResponse
	decodeInto(t, rec, &decoded)
	require.Equal(t, "𝄞 clef", decoded.Result)
}
