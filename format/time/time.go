package time

import (
	"strings"
	"time"

	tformat "github.com/viant/tagly/format/time"
	"github.com/viant/timely/internal/cache"
	"github.com/vjeantet/jodaTime"
)

// DefaultPattern is used whenever pattern is not specified
const DefaultPattern = time.RFC3339

// reference renders every Go layout token differently from its own text
var reference = time.Date(2009, time.November, 17, 8, 34, 58, 651387237, time.FixedZone("EET", 2*3600))

// placeholderBase starts private use runes standing for layout fragments jodaTime does not produce
const placeholderBase = '\uE000'

var layouts = cache.NewMap[string, string]()

// DateFormatToTimeLayout converts ISO 2022-07-15 date format to RFC3339 time layout
func DateFormatToTimeLayout(dateFormat string) string {
	return tformat.DateFormatToTimeLayout(dateFormat)
}

// IsLayout returns true if pattern holds at least one Go reference layout token
func IsLayout(pattern string) bool {
	return reference.Format(pattern) != pattern
}

// Layout returns Go time layout for supplied pattern, pattern can be either Go layout or
// date pattern i.e. dd-MM-yyyy HH:mm:ss, YYYY-MM-DDTHH:mm:ssZ
func Layout(pattern string) string {
	if pattern == "" {
		return DefaultPattern
	}
	if cached, ok := layouts.Get(pattern); ok {
		return cached
	}
	layout := pattern
	if !IsLayout(pattern) {
		layout = translate(pattern)
	}
	layouts.Put(pattern, layout)
	return layout
}

// Parse parses value with supplied pattern, zone-less values are read in loc (UTC when loc is nil),
// result is converted to loc when specified
func Parse(pattern, value string, loc *time.Location) (time.Time, error) {
	location := loc
	if location == nil {
		location = time.UTC
	}
	ts, err := time.ParseInLocation(Layout(pattern), value, location)
	if err != nil {
		return time.Time{}, err
	}
	if loc != nil {
		ts = ts.In(loc)
	}
	return ts, nil
}

// Format formats ts with supplied pattern
func Format(ts time.Time, pattern string) string {
	return ts.Format(Layout(pattern))
}

// translate resolves date pattern with jodaTime, lenient tokens (YYYY, DD, S, Z, X, x)
// and letters unknown to joda are replaced with placeholders restored after translation
func translate(pattern string) string {
	runes := []rune(pattern)
	var fragments []string
	placeholder := func(fragment string) string {
		fragments = append(fragments, fragment)
		return string(placeholderBase + rune(len(fragments)-1))
	}
	builder := strings.Builder{}
	for i := 0; i < len(runes); {
		r := runes[i]
		if r == '\'' {
			end := quoteEnd(runes, i)
			builder.WriteString(string(runes[i:end]))
			i = end
			continue
		}
		j := i
		for j < len(runes) && runes[j] == r {
			j++
		}
		builder.WriteString(shim(r, j-i, placeholder))
		i = j
	}
	layout := jodaTime.GetLayout(builder.String())
	for i, fragment := range fragments {
		layout = strings.ReplaceAll(layout, string(placeholderBase+rune(i)), fragment)
	}
	return layout
}

// quoteEnd returns index after quoted literal starting at runes[start], '' stands for single quote
func quoteEnd(runes []rune, start int) int {
	i := start + 1
	if i < len(runes) && runes[i] == '\'' {
		return i + 1
	}
	for ; i < len(runes); i++ {
		if runes[i] != '\'' {
			continue
		}
		if i+1 < len(runes) && runes[i+1] == '\'' {
			i++
			continue
		}
		return i + 1
	}
	return i
}

func shim(letter rune, count int, placeholder func(string) string) string {
	run := strings.Repeat(string(letter), count)
	switch letter {
	case 'y', 'M', 'd', 'H', 'h', 'm', 's', 'a', 'E', 'z':
		return run
	case 'Y', 'u':
		return strings.Repeat("y", count)
	case 'L':
		return strings.Repeat("M", count)
	case 'k':
		return strings.Repeat("H", count)
	case 'K':
		return strings.Repeat("h", count)
	case 'D': //lenient: DD is day of month as in YYYY-MM-DD, DDD is day of year
		if count <= 2 {
			return strings.Repeat("d", count)
		}
		return placeholder("002")
	case 'S':
		return placeholder(strings.Repeat("0", count))
	case 'Z':
		switch count {
		case 1, 5:
			return placeholder("Z07:00")
		case 4:
			return placeholder("GMT-07:00")
		}
		return placeholder("-0700")
	case 'X':
		switch count {
		case 1:
			return placeholder("Z07")
		case 2, 4:
			return placeholder("Z0700")
		}
		return placeholder("Z07:00")
	case 'x':
		switch count {
		case 1:
			return placeholder("-07")
		case 2, 4:
			return placeholder("-0700")
		}
		return placeholder("-07:00")
	}
	if (letter >= 'a' && letter <= 'z') || (letter >= 'A' && letter <= 'Z') {
		return placeholder(run)
	}
	return run
}
