package datetime

import (
	"reflect"
	"time"

	"github.com/pkg/errors"
	ftime "github.com/viant/timely/format/time"
)

// Variant identifies a recognized date time shape
type Variant string

const (
	VariantInterface       Variant = "datetime.DateTime"
	VariantMutable         Variant = "datetime.Mutable"
	VariantImmutable       Variant = "datetime.Immutable"
	VariantCarbon          Variant = "datetime.Carbon"
	VariantCarbonImmutable Variant = "datetime.CarbonImmutable"
	//VariantCarbonAlias alternative name recognized for Carbon
	VariantCarbonAlias Variant = "carbon.Carbon"
)

// ErrUnsupportedVariant is returned when variant has no constructor
var ErrUnsupportedVariant = errors.New("unsupported date time variant")

// Constructor creates a variant from text formatted with pattern, loc is optional
type Constructor func(pattern, text string, loc *time.Location) (DateTime, error)

var variants = []Variant{
	VariantInterface,
	VariantMutable,
	VariantImmutable,
	VariantCarbon,
	VariantCarbonImmutable,
	VariantCarbonAlias,
}

var constructors = map[Variant]Constructor{
	VariantMutable: func(pattern, text string, loc *time.Location) (DateTime, error) {
		ts, err := ftime.Parse(pattern, text, loc)
		if err != nil {
			return nil, err
		}
		return NewMutable(ts), nil
	},
	VariantImmutable: func(pattern, text string, loc *time.Location) (DateTime, error) {
		ts, err := ftime.Parse(pattern, text, loc)
		if err != nil {
			return nil, err
		}
		return NewImmutable(ts), nil
	},
	VariantCarbon:          createCarbon,
	VariantCarbonAlias:     createCarbon,
	VariantCarbonImmutable: createCarbonImmutable,
}

var (
	dateTimeType        = reflect.TypeOf((*DateTime)(nil)).Elem()
	mutableType         = reflect.TypeOf(&Mutable{})
	immutableType       = reflect.TypeOf(Immutable{})
	carbonType          = reflect.TypeOf(&Carbon{})
	carbonImmutableType = reflect.TypeOf(CarbonImmutable{})
	timeType            = reflect.TypeOf(time.Time{})
)

func createCarbon(pattern, text string, loc *time.Location) (DateTime, error) {
	ts, err := ftime.Parse(pattern, text, loc)
	if err != nil {
		return nil, err
	}
	return NewCarbon(ts), nil
}

func createCarbonImmutable(pattern, text string, loc *time.Location) (DateTime, error) {
	ts, err := ftime.Parse(pattern, text, loc)
	if err != nil {
		return nil, err
	}
	return NewCarbonImmutable(ts), nil
}

// IsSupported returns true for recognized variants
func (v Variant) IsSupported() bool {
	for _, candidate := range variants {
		if candidate == v {
			return true
		}
	}
	return false
}

// Variants returns all recognized variants
func Variants() []Variant {
	ret := make([]Variant, len(variants))
	copy(ret, variants)
	return ret
}

// LookupConstructor returns variant constructor
func LookupConstructor(variant Variant) (Constructor, bool) {
	ret, ok := constructors[variant]
	return ret, ok
}

// CreateFromFormat creates variant from text formatted with pattern
func CreateFromFormat(variant Variant, pattern, text string, loc *time.Location) (DateTime, error) {
	constructor, ok := constructors[variant]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedVariant, "%v", variant)
	}
	return constructor(pattern, text, loc)
}

// New wraps ts with supplied variant
func New(variant Variant, ts time.Time) (DateTime, error) {
	switch variant {
	case VariantMutable:
		return NewMutable(ts), nil
	case VariantImmutable:
		return NewImmutable(ts), nil
	case VariantCarbon, VariantCarbonAlias:
		return NewCarbon(ts), nil
	case VariantCarbonImmutable:
		return NewCarbonImmutable(ts), nil
	}
	return nil, errors.Wrapf(ErrUnsupportedVariant, "%v", variant)
}

// VariantOf returns variant for Go type, time.Time is handled as immutable
func VariantOf(t reflect.Type) (Variant, bool) {
	switch t {
	case dateTimeType:
		return VariantInterface, true
	case mutableType:
		return VariantMutable, true
	case immutableType, timeType:
		return VariantImmutable, true
	case carbonType:
		return VariantCarbon, true
	case carbonImmutableType:
		return VariantCarbonImmutable, true
	}
	return "", false
}
