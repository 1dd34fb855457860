package util

import (
	"html"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	xhtml "golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// SanitizeText strips markup, escapes HTML special characters and
// truncates the result to maxLength runes.
func SanitizeText(text string, maxLength int) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	text = norm.NFC.String(StripTags(text))
	text = html.EscapeString(text)

	if runes := []rune(text); maxLength > 0 && len(runes) > maxLength {
		text = dropPartialEntity(string(runes[:maxLength]))
	}

	return strings.TrimSpace(text)
}

// dropPartialEntity cuts a trailing entity that truncation split, so "Tom &am"
// becomes "Tom ". Every '&' in escaped text opens an entity.
func dropPartialEntity(s string) string {
	amp := strings.LastIndexByte(s, '&')
	if amp >= 0 && !strings.Contains(s[amp:], ";") {
		return s[:amp]
	}

	return s
}

// SanitizeOptional sanitizes a pointer field; blank input becomes nil.
func SanitizeOptional(text *string, maxLength int) *string {
	if text == nil {
		return nil
	}

	cleaned := SanitizeText(*text, maxLength)
	if cleaned == "" {
		return nil
	}

	return &cleaned
}

// StripTags returns the text content of s with every tag removed.
func StripTags(s string) string {
	tokenizer := xhtml.NewTokenizer(strings.NewReader(s))

	var b strings.Builder
	for {
		switch tokenizer.Next() {
		case xhtml.ErrorToken:
			return strings.TrimSpace(b.String())
		case xhtml.TextToken:
			// Text tokens come back unescaped; they are re-escaped by the caller.
			b.Write(tokenizer.Text())
		}
	}
}

// NormalizeDomain returns the lowercased host of rawURL without a leading "www.".
func NormalizeDomain(rawURL string) string {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || parsed.Host == "" {
		return ""
	}

	host := strings.ToLower(parsed.Hostname())

	return strings.TrimPrefix(host, "www.")
}

var urlValidate = validator.New()

// IsHTTPURL reports whether raw is an absolute http or https URL with a host.
func IsHTTPURL(raw string) bool {
	return urlValidate.Var(raw, "required,http_url") == nil
}
