package chat

import (
	"regexp"
	"strings"
)

var boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// FormatReply converts the model's markdown-style emphasis, bullet markers
// and newlines into display markup: **text** to <b>text</b>, remaining
// asterisks to bullet points, newlines to <br>.
func FormatReply(text string) string {
	text = boldPattern.ReplaceAllString(text, "<b>$1</b>")
	text = strings.ReplaceAll(text, "*", "•")
	text = strings.ReplaceAll(text, "\n", "<br>")
	return text
}
