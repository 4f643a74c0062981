package domain

// Tool identifies one of the text utility tools. The names are used as
// metric labels and in access logs, so they are stable identifiers, not
// display strings.
type Tool string

const (
	ToolUnicodeEncode  Tool = "unicode_encode"
	ToolUnicodeDecode  Tool = "unicode_decode"
	ToolJWTDecode      Tool = "jwt_decode"
	ToolValidateIPv4   Tool = "validate_ipv4"
	ToolValidateIPv6   Tool = "validate_ipv6"
	ToolValidateDomain Tool = "validate_domain"
	ToolURLEncode      Tool = "url_encode"
	ToolURLDecode      Tool = "url_decode"
	ToolHTMLEscape     Tool = "html_escape"
	ToolHTMLUnescape   Tool = "html_unescape"
	ToolUUID           Tool = "uuid"
)
