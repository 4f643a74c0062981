package domain

// DecodedToken is the structural breakdown of a compact JWT. Header and
// Payload hold pretty-printed JSON text recovered from the base64url
// segments; Signature is the third segment exactly as it appeared in the
// token, undecoded and unverified. A DecodedToken says nothing about the
// token's authenticity.
type DecodedToken struct {
	// Header is the decoded JOSE header, pretty-printed.
	Header string `json:"header"`
	// Payload is the decoded claims set, pretty-printed.
	Payload string `json:"payload"`
	// Signature is the raw third segment, returned verbatim.
	Signature string `json:"signature"`
}
