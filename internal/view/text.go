package view

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	. "maragu.dev/gomponents"
)

// postTextPolicy admits line breaks and nothing else.
var postTextPolicy = bluemonday.NewPolicy().AllowElements("br")

// postText renders stored post text with its line breaks. The text is
// escaped first; the policy then ensures only <br> reaches the page.
func postText(text string) Node {
	escaped := html.EscapeString(strings.ReplaceAll(text, "\r\n", "\n"))
	return Raw(postTextPolicy.Sanitize(strings.ReplaceAll(escaped, "\n", "<br>\n")))
}
