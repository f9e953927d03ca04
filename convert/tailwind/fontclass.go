package tailwind

import (
	"regexp"
	"strings"
)

var (
	fontNameBlanks  = regexp.MustCompile(`[\s\p{Z}]+`)
	fontNameInvalid = regexp.MustCompile(`[^a-z0-9-]`)
)

// FontClassName turns typographic style path from design tool comment, such
// as "New/Paragraph/P3 Semibold", into class name "paragraph-p3-semibold".
// Result may be empty when comment has no usable characters.
func FontClassName(comment string) string {
	name := strings.ToLower(strings.TrimSpace(comment))
	name = fontNameBlanks.ReplaceAllString(name, "-")
	name = strings.ReplaceAll(name, "/", "-")
	name = fontNameInvalid.ReplaceAllString(name, "")
	return strings.TrimPrefix(name, "new-")
}
