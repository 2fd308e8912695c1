package tags

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/viant/timely/datetime"
)

// TagName defines date time field tag name, i.e. `timely:"timezone=UTC,layout={Mon, 02 Jan 2006},variant=carbon.Carbon"`
const TagName = "timely"

// Tag represents date time field tag
type Tag struct {
	Timezone  string
	Layout    string
	Variant   datetime.Variant
	Omitempty bool
}

// Parse parses timely tag, it returns nil when tag is not defined
func Parse(tag reflect.StructTag) (*Tag, error) {
	literal, ok := tag.Lookup(TagName)
	if !ok {
		return nil, nil
	}
	ret := &Tag{}
	err := Values(literal).MatchPairs(ret.update)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func (t *Tag) update(key, value string) error {
	switch strings.ToLower(key) {
	case "timezone", "tz":
		t.Timezone = value
	case "layout", "format":
		t.Layout = value
	case "variant":
		variant := datetime.Variant(value)
		if !variant.IsSupported() {
			return fmt.Errorf("unsupported variant %q", value)
		}
		t.Variant = variant
	case "omitempty":
		t.Omitempty = value == "" || value == "true"
	default:
		return fmt.Errorf("unknown %v tag key %q", TagName, key)
	}
	return nil
}

// String returns tag literal
func (t *Tag) String() string {
	var elements []string
	if t.Timezone != "" {
		elements = append(elements, "timezone="+wrapValueIfNeeded(t.Timezone))
	}
	if t.Layout != "" {
		elements = append(elements, "layout="+wrapValueIfNeeded(t.Layout))
	}
	if t.Variant != "" {
		elements = append(elements, "variant="+string(t.Variant))
	}
	if t.Omitempty {
		elements = append(elements, "omitempty")
	}
	return TagName + ":" + strconv.Quote(strings.Join(elements, ","))
}

func wrapValueIfNeeded(actual string) string {
	if strings.Contains(actual, ",") && !strings.HasPrefix(actual, "{") {
		actual = "{" + actual + "}"
	}
	return actual
}
