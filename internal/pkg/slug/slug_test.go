package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"simple", "Netflix Premium", "netflix-premium"},
		{"vietnamese diacritics", "Đánh Giá Tốt", "danh-gia-tot"},
		{"mixed punctuation", "Spotify (1 Năm) - Gói Family!", "spotify-1-nam-goi-family"},
		{"collapses whitespace", "  ChatGPT   Plus  ", "chatgpt-plus"},
		{"collapses hyphen runs", "a --- b", "a-b"},
		{"trims edge hyphens", "-hello-", "hello"},
		{"numbers kept", "Office 365", "office-365"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.input))
		})
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{"Đánh Giá Tốt", "Netflix Premium", "Tài khoản ChatGPT Plus (1 tháng)"}
	for _, in := range inputs {
		once := Make(in)
		assert.Equal(t, once, Make(once), "slug of a slug must be the slug itself: %q", in)
	}
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"netflix", "premium"}, Tokens("Netflix  Premium"))
	assert.Equal(t, []string{"goi", "1", "nam"}, Tokens("gói 1 năm"))
	assert.Nil(t, Tokens(""))
	assert.Nil(t, Tokens("!!!"))
}
