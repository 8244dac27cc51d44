// Package normalize canonicalizes extracted document text so that the same
// content always produces the same fingerprint, regardless of the original
// file format or line-ending convention.
package normalize

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Text collapses all line-ending variants to "\n", strips form-feed and NUL
// characters, collapses whitespace runs to a single space, and trims the result.
func Text(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\f", "\n")
	s = strings.ReplaceAll(s, "\x00", "")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Fingerprint computes the content fingerprint of normalized text.
// The hash basis is always the post-normalization text, so two uploads with
// identical extracted content collapse to the same key regardless of filename.
func Fingerprint(normalized string) string {
	sum := md5.Sum([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
