package datemath

import (
	"regexp"
	"strings"
)

// PlaceholderTitle is returned when stripping leaves nothing behind.
const PlaceholderTitle = "Event"

// titleTimeRe strips clock expressions. It must run before the bare-number
// pass, otherwise "9 pm" would lose its hour digits to the number pass first
// and leave a dangling meridiem word.
var titleTimeRe = regexp.MustCompile(`(?i)\d{1,2}:?\d{0,2}\s*(am|pm)`)

// bareNumberRe strips leftover day numbers, ordinal suffix included ("15th").
var bareNumberRe = regexp.MustCompile(`(?i)\b\d{1,2}(st|nd|rd|th)?\b`)

var stopWordRes = compileStopWords([]string{
	"today", "tomorrow", "on", "at", "the", "next",
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
})

func compileStopWords(words []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		res = append(res, regexp.MustCompile(`(?i)\b`+w+`\b`))
	}
	return res
}

// ExtractTitle derives an event title from free text by removing the
// recognized date/time tokens and connective words.
func ExtractTitle(text string) string {
	title := titleTimeRe.ReplaceAllString(text, "")

	for _, re := range stopWordRes {
		title = re.ReplaceAllString(title, "")
	}

	title = bareNumberRe.ReplaceAllString(title, "")
	title = strings.Join(strings.Fields(title), " ")

	if title == "" {
		return PlaceholderTitle
	}
	return title
}
