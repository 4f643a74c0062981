// Package token implements structural decoding of compact JWTs for display.
// It splits a token into its three segments and decodes the header and
// payload into readable JSON. It never verifies signatures: a successful
// decode says nothing about the token's authenticity.
package token

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"

	"textkit/pkg/domain"
	"textkit/pkg/serrors"
)

// segments is the number of dot-separated parts in a compact JWT.
const segments = 3

// indent is the indentation used when pretty-printing decoded JSON.
const indent = "  "

// Decode splits raw into header.payload.signature, base64url-decodes the
// first two segments and pretty-prints them as JSON. The signature segment
// is returned verbatim, undecoded.
//
// A token without exactly three segments yields a serrors.ErrMalformedToken
// error; a segment that is not valid base64url or does not decode to valid
// JSON yields a serrors.ErrDecode error.
func Decode(raw string) (*domain.DecodedToken, error) {
	parts := strings.Split(raw, ".")
	if len(parts) != segments {
		return nil, serrors.With(serrors.ErrMalformedToken,
			"token must have 3 dot-separated segments, got %d", len(parts))
	}

	header, err := decodeSegment("header", parts[0])
	if err != nil {
		return nil, err
	}

	payload, err := decodeSegment("payload", parts[1])
	if err != nil {
		return nil, err
	}

	return &domain.DecodedToken{
		Header:    header,
		Payload:   payload,
		Signature: parts[2],
	}, nil
}

// decodeSegment base64url-decodes one segment and pretty-prints the JSON it
// contains. Both padded and unpadded base64url input is accepted; the JSON
// key order of the token is preserved in the output.
func decodeSegment(name, seg string) (string, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(seg, "="))
	if err != nil {
		return "", serrors.Wrap(serrors.ErrDecode, err, "could not base64-decode %s", name)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, decoded, "", indent); err != nil {
		return "", serrors.Wrap(serrors.ErrDecode, err, "%s is not valid JSON", name)
	}

	return pretty.String(), nil
}
