package envinfo

const (
	redactHead = 10
	redactTail = 4
	ellipsis   = "…"
)

// Redact masks a secret for display. Secrets of up to ten characters are shown
// as-is; longer ones keep their first ten and last four characters.
func Redact(secret string) string {
	if secret == "" {
		return NotSet
	}
	runes := []rune(secret)
	if len(runes) <= redactHead {
		return secret
	}
	return string(runes[:redactHead]) + ellipsis + string(runes[len(runes)-redactTail:])
}
