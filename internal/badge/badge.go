// Package badge renders the SVG documents served by the badge endpoint.
package badge

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ContentType is the media type of every document produced here.
const ContentType = "image/svg+xml; charset=utf-8"

// Empty is served whenever no failure should be shown.
const Empty = `<svg xmlns="http://www.w3.org/2000/svg" width="1" height="1"></svg>`

const (
	charWidth     = 10
	namePadding   = 10
	faultBoxWidth = 43
)

const faultTemplate = `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%[1]d" height="20">
    <linearGradient id="b" x2="0" y2="100%%">
        <stop offset="0" stop-color="#bbb" stop-opacity=".1" />
        <stop offset="1" stop-opacity=".1" />
    </linearGradient>
    <clipPath id="a">
        <rect width="%[1]d" height="20" rx="3" fill="#fff" />
    </clipPath>
    <g clip-path="url(#a)">
        <path fill="#555" d="M0 0h%[2]dv20H0z" />
        <path fill="#e05d44" d="M%[2]d 0h%[3]dv20H%[2]dz" />
        <path fill="url(#b)" d="M0 0h%[1]dv20H0z" />
    </g>
    <g fill="#fff" text-anchor="middle" font-family="DejaVu Sans,Verdana,Geneva,sans-serif" font-size="11">
        <a xlink:href="%[4]s">
            <text x="%[5]s" y="14" fill="#eee">%[6]s&apos;s</text>
            <text x="%[7]s" y="14" fill="#eee">FAULT</text>
        </a>
    </g>
</svg>`

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Escape makes s safe for XML text and attribute values.
func Escape(s string) string {
	return xmlEscaper.Replace(s)
}

// Width returns the total pixel width of the badge for name.
func Width(name string) int {
	return nameBoxWidth(name) + faultBoxWidth
}

// nameBoxWidth counts runes of the unescaped name, not bytes of the escaped
// text, so entities and multibyte names do not stretch the box.
func nameBoxWidth(name string) int {
	return utf8.RuneCountInString(name)*charWidth + namePadding
}

// Render returns the failure badge naming the culprit and linking to the commit.
func Render(name, commitURL string) string {
	nameBox := nameBoxWidth(name)
	total := nameBox + faultBoxWidth

	return fmt.Sprintf(faultTemplate,
		total,
		nameBox,
		faultBoxWidth,
		Escape(commitURL),
		formatCoord(float64(nameBox)/2),
		Escape(name),
		formatCoord(float64(faultBoxWidth)/2+float64(nameBox)),
	)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
