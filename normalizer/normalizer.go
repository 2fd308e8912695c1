package normalizer

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/timely/datetime"
	ftime "github.com/viant/timely/format/time"
)

const emptyDataMessage = "The data is either an empty string or null, you should pass a string that can be parsed with the passed format or a valid date time string."

// DateTimeNormalizer converts date time variants to text and back
type DateTimeNormalizer struct {
	defaults Context
}

// New creates normalizer, defaults to RFC3339 format and value own timezone
func New(opts ...Option) *DateTimeNormalizer {
	ret := &DateTimeNormalizer{defaults: Context{Format: ftime.DefaultPattern}}
	ret.SetDefaultContext(opts...)
	return ret
}

// SetDefaultContext merges options into default context, it is not safe to call concurrently with other methods
func (n *DateTimeNormalizer) SetDefaultContext(opts ...Option) {
	n.defaults = n.defaults.apply(opts)
}

// DefaultContext returns copy of default context
func (n *DateTimeNormalizer) DefaultContext() Context {
	return n.defaults
}

// SupportsNormalization returns true if data implements datetime.DateTime
func (n *DateTimeNormalizer) SupportsNormalization(data interface{}) bool {
	_, ok := asDateTime(data)
	return ok
}

// Normalize formats data with effective format, when timezone is set a converted copy is formatted
func (n *DateTimeNormalizer) Normalize(data interface{}, opts ...Option) (string, error) {
	value, ok := asDateTime(data)
	if !ok {
		return "", newInvalidArgumentError(fmt.Sprintf(`the value must implement "datetime.DateTime", %T given`, data), nil)
	}
	ctx := n.defaults.apply(opts)
	loc, err := ctx.ResolveLocation()
	if err != nil {
		return "", newInvalidArgumentError("failed to resolve timezone", err)
	}
	if loc != nil {
		value = value.Clone().In(loc)
	}
	return value.Format(ctx.Format), nil
}

// SupportsDenormalization returns true for recognized variants, data is not inspected
func (n *DateTimeNormalizer) SupportsDenormalization(data interface{}, variant datetime.Variant) bool {
	return variant.IsSupported()
}

// Denormalize parses data into supplied variant
func (n *DateTimeNormalizer) Denormalize(data interface{}, variant datetime.Variant, opts ...Option) (datetime.DateTime, error) {
	ctx := n.defaults.apply(opts)
	text, err := asText(data, ctx.Path)
	if err != nil {
		return nil, err
	}
	constructor, ok := datetime.LookupConstructor(variant)
	if !ok {
		return nil, &NotNormalizableError{Message: "The type is not recognized or supported.", Data: data, Path: ctx.Path}
	}
	loc, err := ctx.ResolveLocation()
	if err != nil {
		return nil, newInvalidArgumentError("failed to resolve timezone", err)
	}
	ret, err := constructor(ctx.Format, text, loc)
	if err != nil {
		return nil, newUnexpectedDataError(err.Error(), data, ctx.Path, false, err)
	}
	return ret, nil
}

// SupportedVariants returns variants accepted by SupportsDenormalization
func (n *DateTimeNormalizer) SupportedVariants() map[datetime.Variant]bool {
	variants := datetime.Variants()
	ret := make(map[datetime.Variant]bool, len(variants))
	for _, variant := range variants {
		ret[variant] = true
	}
	return ret
}

// Cacheable returns true, support checks depend only on data type and variant
func (n *DateTimeNormalizer) Cacheable() bool {
	return true
}

func asDateTime(data interface{}) (datetime.DateTime, bool) {
	value, ok := data.(datetime.DateTime)
	if !ok {
		return nil, false
	}
	if rValue := reflect.ValueOf(data); rValue.Kind() == reflect.Ptr && rValue.IsNil() {
		return nil, false
	}
	return value, true
}

func asText(data interface{}, path string) (string, error) {
	var text string
	switch actual := data.(type) {
	case nil:
		return "", newUnexpectedDataError(emptyDataMessage, data, path, true, nil)
	case string:
		text = actual
	case *string:
		if actual == nil {
			return "", newUnexpectedDataError(emptyDataMessage, data, path, true, nil)
		}
		text = *actual
	case []byte:
		text = string(actual)
	default:
		return "", newUnexpectedDataError(fmt.Sprintf("The data must be a string, %T given.", data), data, path, true, nil)
	}
	if strings.TrimSpace(text) == "" {
		return "", newUnexpectedDataError(emptyDataMessage, data, path, true, nil)
	}
	return text, nil
}
