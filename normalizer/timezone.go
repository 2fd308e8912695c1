package normalizer

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/viant/timely/internal/cache"
)

var offsetExpr = regexp.MustCompile(`^([+-])(\d{2}):?(\d{2})$`)

// maxOffset is the largest offset in use, UTC+14:00
const maxOffset = 14 * 3600

var locations = cache.NewMap[string, *time.Location]()

func loadLocation(name string) (*time.Location, error) {
	loc, err := locations.GetOrLoad(name, parseTimezone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid timezone %q", name)
	}
	return loc, nil
}

func parseTimezone(name string) (*time.Location, error) {
	switch strings.ToUpper(name) {
	case "Z", "UTC":
		return time.UTC, nil
	}
	if matched := offsetExpr.FindStringSubmatch(name); matched != nil {
		hours, _ := strconv.Atoi(matched[2])
		minutes, _ := strconv.Atoi(matched[3])
		offset := hours*3600 + minutes*60
		if minutes > 59 || offset > maxOffset {
			return nil, errors.Errorf("offset out of range")
		}
		if matched[1] == "-" {
			offset = -offset
		}
		return time.FixedZone(name, offset), nil
	}
	return time.LoadLocation(name)
}
