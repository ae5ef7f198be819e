// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package htmlfmt provides helpers for building and degrading the
// HTML-formatted message bodies that Matrix clients render.
//
// Matrix text messages carry two bodies: formatted_body (HTML) and
// body (the plaintext fallback shown by clients that do not render
// HTML). Wrap and the Replace helpers build the formatted side; Strip
// derives the fallback side.
package htmlfmt

import (
	"fmt"
	"regexp"
	"strings"
)

// Tag is one of the closed set of HTML tags supported for message
// formatting. The value is the tag name as it appears in markup.
type Tag string

// Supported formatting tags.
const (
	H1        Tag = "h1"
	H2        Tag = "h2"
	H3        Tag = "h3"
	H4        Tag = "h4"
	Paragraph Tag = "p"
	Code      Tag = "code"
	Bold      Tag = "strong"
	Italic    Tag = "em"
)

// Wrap returns content surrounded by the tag's markup. Code wraps in
// <pre><code> so that Matrix clients render a block, not inline code.
// An unknown tag returns the content unchanged.
func (t Tag) Wrap(content string) string {
	switch t {
	case Code:
		return "<pre><code>" + content + "</code></pre>"
	case H1, H2, H3, H4, Paragraph, Bold, Italic:
		return fmt.Sprintf("<%s>%s</%s>", t, content, t)
	default:
		return content
	}
}

// ReplaceNewLines replaces newlines with <br>.
func ReplaceNewLines(content string) string {
	return strings.ReplaceAll(content, "\n", "<br>")
}

// ReplaceSpaces replaces spaces with &nbsp;.
func ReplaceSpaces(content string) string {
	return strings.ReplaceAll(content, " ", "&nbsp;")
}

// ReplaceSpacesAndNewLines replaces spaces with &nbsp; and newlines
// with <br>. Useful for preformatted output (build logs, tables) sent
// outside a <pre> block.
func ReplaceSpacesAndNewLines(content string) string {
	return ReplaceNewLines(ReplaceSpaces(content))
}

var (
	tagPattern      = regexp.MustCompile(`<.*?>`)
	nonASCIIPattern = regexp.MustCompile(`[^\x00-\x7F]+`)
)

// Strip derives the plaintext fallback body from an HTML message:
// first removes everything matching a non-greedy <...> tag pattern,
// then removes all non-ASCII characters.
//
// The tag removal is regex-based and best-effort — malformed or
// nested markup can be mishandled. The fallback body is advisory
// (clients prefer formatted_body), so this is an accepted limitation
// rather than a reason to pull in a full HTML parser.
func Strip(html string) string {
	plain := tagPattern.ReplaceAllString(html, "")
	return nonASCIIPattern.ReplaceAllString(plain, "")
}
