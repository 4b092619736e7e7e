package envinfo

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestRedact(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		want   string
	}{
		{name: "empty_is_not_set", secret: "", want: NotSet},
		{name: "short_is_verbatim", secret: "sk-short", want: "sk-short"},
		{name: "exactly_ten_is_verbatim", secret: "0123456789", want: "0123456789"},
		{name: "eleven_is_masked", secret: "0123456789A", want: "0123456789…789A"},
		{name: "api_key", secret: "sk-ABCDEFGHIJKLMNOP", want: "sk-ABCDEFG…MNOP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Redact(tt.secret))
		})
	}
}

func TestRedact_PropertyBased_DisplayLength(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		secret := rapid.StringMatching(`[A-Za-z0-9\-_]{1,64}`).Draw(t, "secret")
		shown := Redact(secret)
		n := utf8.RuneCountInString(secret)

		if n <= 10 {
			assert.Equal(t, secret, shown)
			return
		}
		assert.Equal(t, 15, utf8.RuneCountInString(shown))
		assert.True(t, strings.HasPrefix(shown, secret[:10]))
		assert.True(t, strings.HasSuffix(shown, secret[len(secret)-4:]))
	})
}
