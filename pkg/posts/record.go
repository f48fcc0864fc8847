package posts

import (
	"strings"
	"time"
)

// Record is one diary entry of the manifest.
type Record struct {
	Slug    string        `json:"slug"`
	Date    string        `json:"date"`
	Name    LocalizedText `json:"name"`
	Image   string        `json:"image"`
	Caption LocalizedText `json:"caption"`
	Alt     LocalizedText `json:"alt"`
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// Time parses the publish date. It reports false for unparseable dates.
func (r Record) Time() (time.Time, bool) {
	raw := strings.TrimSpace(r.Date)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// byDateDesc orders newer entries first. An unparseable date compares equal
// to every other date.
func byDateDesc(a, b Record) int {
	ta, okA := a.Time()
	tb, okB := b.Time()
	if !okA || !okB {
		return 0
	}
	return tb.Compare(ta)
}
