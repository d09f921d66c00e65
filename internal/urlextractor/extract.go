// Package urlextractor implements the url-extractor plugin, which pulls
// HTTP and HTTPS URLs out of text files for OSINT purposes.
package urlextractor

import (
	"github.com/osintkit/osintkit/internal/cachedregexp"
)

// urlPattern matches a maximal run of non-whitespace characters beginning
// with an http or https scheme. Matching is purely lexical: there is no
// validation of host, port, or path syntax, and trailing punctuation that is
// not separated from the URL by whitespace is part of the match.
//
// RE2's \S only covers ASCII whitespace, so the Unicode whitespace
// characters are spelled out to keep characters like no-break space from
// being treated as part of a URL.
const urlPattern = `https?://[^\s\x{85}\x{A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}]+`

// Extract returns every match of urlPattern in text, left to right and
// non-overlapping, with duplicates preserved. Text without any URLs yields
// an empty result, which is not an error.
func Extract(text string) []string {
	return cachedregexp.MustCompile(urlPattern).FindAllString(text, -1)
}
