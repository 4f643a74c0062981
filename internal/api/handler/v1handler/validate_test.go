package v1handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"textkit/internal/api/handler/v1handler"
)

func TestValidateEndpoints(t *testing.T) {
	mux := newMux(t)

	cases := []struct {
		path  string
		value string
		valid bool
	}{
		{"/api/validate/ipv4", "192.168.1.1", true},
		{"/api/validate/ipv4", "256.1.1.1", false},
		{"/api/validate/ipv4", "not an ip", false},
		{"/api/validate/ipv6", "::1", true},
		{"/api/validate/ipv6", "2001::db8::1", false},
		{"/api/validate/domain", "example.com", true},
		{"/api/validate/domain", "-example.com", false},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s %s", tc.path, tc.value), func(t *testing.T) {
			body, err := jsonBody(map[string]string{"value": tc.value})
			require.NoError(t, err)

			rec := post(t, mux, tc.path, body)
			// invalid input is a normal 200 outcome, never an error status
			require.Equal(t, http.StatusOK, rec.Code)

			var resp v1handler.ValidResponse
			decodeInto(t, rec, &resp)
			require.Equal(t, tc.valid, resp.Valid)
		})
	}
}
