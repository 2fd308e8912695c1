package serializer

import (
	"fmt"
	"reflect"
	"strings"
	"time"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/viant/tagly/format"
	"github.com/viant/timely/datetime"
	ftime "github.com/viant/timely/format/time"
	"github.com/viant/timely/internal/cache"
	"github.com/viant/timely/normalizer"
	"github.com/viant/timely/tags"
	"github.com/viant/xunsafe"
)

var (
	timeType    = reflect.TypeOf(time.Time{})
	timePtrType = reflect.PtrTo(timeType)
)

type (
	fieldKind int

	field struct {
		xField    *xunsafe.Field
		name      string
		layout    string
		timezone  string
		variant   datetime.Variant
		kind      fieldKind
		omitEmpty bool
	}

	structType struct {
		fields []*field
	}
)

const (
	plainField fieldKind = iota
	dateTimeField
	timeField
	timePtrField
)

var structTypes = cache.NewMap[reflect.Type, *structType]()

// NormalizeStruct returns struct fields map, date time and time.Time fields are normalized to text
// with layout and timezone taken from field tags, i.e. `format:"dateFormat=YYYY-MM-DD" timely:"timezone=UTC"`
func (s *Serializer) NormalizeStruct(src interface{}, opts ...normalizer.Option) (map[string]interface{}, error) {
	ptr, rType, err := structPointer(src)
	if err != nil {
		return nil, err
	}
	sType, err := lookupStructType(rType)
	if err != nil {
		return nil, err
	}
	ret := make(map[string]interface{}, len(sType.fields))
	for _, f := range sType.fields {
		value := f.value(ptr)
		var dt datetime.DateTime
		switch f.kind {
		case timeField:
			dt = datetime.NewImmutable(value.(time.Time))
		case timePtrField:
			if ts := value.(*time.Time); ts != nil {
				dt = datetime.NewImmutable(*ts)
			}
		case dateTimeField:
			if !isNil(value) {
				dt = value.(datetime.DateTime)
			}
		default:
			if f.omitEmpty && isZero(value) {
				continue
			}
			ret[f.name] = value
			continue
		}
		if dt == nil || f.omitEmpty && dt.Time().IsZero() {
			if !f.omitEmpty {
				ret[f.name] = nil
			}
			continue
		}
		text, err := s.Normalize(dt, f.options(opts)...)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to normalize %v.%v", rType.Name(), f.name)
		}
		ret[f.name] = text
	}
	return ret, nil
}

// DenormalizeStruct sets dest struct fields from src, text values are denormalized into date time fields
func (s *Serializer) DenormalizeStruct(src map[string]interface{}, dest interface{}, opts ...normalizer.Option) error {
	rValue := reflect.ValueOf(dest)
	if rValue.Kind() != reflect.Ptr || rValue.IsNil() || rValue.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("expected non nil pointer to struct, got %T", dest)
	}
	rType := rValue.Elem().Type()
	sType, err := lookupStructType(rType)
	if err != nil {
		return err
	}
	ptr := xunsafe.AsPointer(dest)
	for _, f := range sType.fields {
		value, ok := src[f.name]
		if !ok || value == nil {
			continue
		}
		if f.kind == plainField {
			if err = f.setPlain(ptr, value); err != nil {
				return errors.Wrapf(err, "failed to set %v.%v", rType.Name(), f.name)
			}
			continue
		}
		dt, err := s.Denormalize(value, f.variant, f.options(opts)...)
		if err != nil {
			return errors.Wrapf(err, "failed to denormalize %v.%v", rType.Name(), f.name)
		}
		f.setDateTime(ptr, dt)
	}
	return nil
}

func (f *field) options(opts []normalizer.Option) []normalizer.Option {
	ret := make([]normalizer.Option, 0, len(opts)+3)
	ret = append(ret, opts...)
	return append(ret, normalizer.WithFormat(f.layout), normalizer.WithTimezone(f.timezone), normalizer.WithPath(f.name))
}

func (f *field) value(ptr unsafe.Pointer) interface{} {
	if f.xField.Type.Kind() == reflect.Interface {
		return reflect.NewAt(f.xField.Type, f.xField.Pointer(ptr)).Elem().Interface()
	}
	return f.xField.Value(ptr)
}

func (f *field) setDateTime(ptr unsafe.Pointer, dt datetime.DateTime) {
	switch f.kind {
	case timeField:
		f.xField.SetValue(ptr, dt.Time())
	case timePtrField:
		ts := dt.Time()
		f.xField.SetValue(ptr, &ts)
	default:
		reflect.NewAt(f.xField.Type, f.xField.Pointer(ptr)).Elem().Set(reflect.ValueOf(dt))
	}
}

func (f *field) setPlain(ptr unsafe.Pointer, value interface{}) error {
	fieldType := f.xField.Type
	rValue := reflect.ValueOf(value)
	if !rValue.Type().AssignableTo(fieldType) {
		converted, err := convert(value, fieldType)
		if err != nil {
			return err
		}
		rValue = converted
	}
	reflect.NewAt(fieldType, f.xField.Pointer(ptr)).Elem().Set(rValue)
	return nil
}

// convert converts value to fieldType kind, values out of fieldType range are reported as error
func convert(value interface{}, fieldType reflect.Type) (reflect.Value, error) {
	zero := reflect.Zero(fieldType)
	switch fieldType.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := cast.ToInt64E(value)
		if err != nil {
			return zero, err
		}
		if zero.OverflowInt(i) {
			return zero, fmt.Errorf("value %v overflows %v", value, fieldType)
		}
		return reflect.ValueOf(i).Convert(fieldType), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := cast.ToUint64E(value)
		if err != nil {
			return zero, err
		}
		if zero.OverflowUint(u) {
			return zero, fmt.Errorf("value %v overflows %v", value, fieldType)
		}
		return reflect.ValueOf(u).Convert(fieldType), nil
	case reflect.Float32, reflect.Float64:
		f, err := cast.ToFloat64E(value)
		if err != nil {
			return zero, err
		}
		if zero.OverflowFloat(f) {
			return zero, fmt.Errorf("value %v overflows %v", value, fieldType)
		}
		return reflect.ValueOf(f).Convert(fieldType), nil
	case reflect.Bool:
		b, err := cast.ToBoolE(value)
		return reflect.ValueOf(b).Convert(fieldType), err
	case reflect.String:
		text, err := cast.ToStringE(value)
		return reflect.ValueOf(text).Convert(fieldType), err
	}
	return zero, fmt.Errorf("cannot assign %T to %v", value, fieldType)
}

func lookupStructType(rType reflect.Type) (*structType, error) {
	if cached, ok := structTypes.Get(rType); ok {
		return cached, nil
	}
	ret := &structType{}
	for i := 0; i < rType.NumField(); i++ {
		structField := rType.Field(i)
		if !structField.IsExported() {
			continue
		}
		tag, err := format.Parse(structField.Tag)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid format tag on %v.%v", rType.Name(), structField.Name)
		}
		if tag == nil {
			tag = &format.Tag{}
		}
		name, omitEmpty, skip := fieldName(structField, tag)
		if skip {
			continue
		}
		dtTag, err := tags.Parse(structField.Tag)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %v tag on %v.%v", tags.TagName, rType.Name(), structField.Name)
		}
		if dtTag == nil {
			dtTag = &tags.Tag{}
		}
		f := &field{
			xField:    xunsafe.NewField(structField),
			name:      name,
			layout:    fieldLayout(tag, dtTag),
			timezone:  dtTag.Timezone,
			omitEmpty: omitEmpty || tag.Omitempty || dtTag.Omitempty,
		}
		switch structField.Type {
		case timeType:
			f.kind, f.variant = timeField, datetime.VariantImmutable
		case timePtrType:
			f.kind, f.variant = timePtrField, datetime.VariantImmutable
		default:
			if variant, ok := datetime.VariantOf(structField.Type); ok {
				f.kind, f.variant = dateTimeField, variant
				if variant == datetime.VariantInterface {
					f.variant = datetime.VariantImmutable
				}
			}
		}
		if dtTag.Variant != "" {
			if f.kind != dateTimeField || structField.Type.Kind() != reflect.Interface {
				return nil, fmt.Errorf("%v.%v: variant can only be set on %v field", rType.Name(), structField.Name, datetime.VariantInterface)
			}
			f.variant = dtTag.Variant
		}
		ret.fields = append(ret.fields, f)
	}
	structTypes.Put(rType, ret)
	return ret, nil
}

// fieldName returns output name, format tag name takes precedence over json tag name
func fieldName(structField reflect.StructField, tag *format.Tag) (name string, omitEmpty bool, skip bool) {
	if tag.Ignore {
		return "", false, true
	}
	jsonTag := structField.Tag.Get("json")
	if jsonTag == "-" {
		return "", false, true
	}
	parts := strings.Split(jsonTag, ",")
	for _, option := range parts[1:] {
		if option == "omitempty" {
			omitEmpty = true
		}
	}
	switch {
	case tag.Name != "":
		name = tag.Name
	case parts[0] != "":
		name = parts[0]
	default:
		name = structField.Name
	}
	return name, omitEmpty, false
}

func fieldLayout(tag *format.Tag, dtTag *tags.Tag) string {
	switch {
	case dtTag.Layout != "":
		return dtTag.Layout
	case tag.TimeLayout != "":
		return tag.TimeLayout
	case tag.DateFormat != "":
		return ftime.DateFormatToTimeLayout(tag.DateFormat)
	}
	return ""
}

func structPointer(src interface{}) (unsafe.Pointer, reflect.Type, error) {
	rValue := reflect.ValueOf(src)
	switch rValue.Kind() {
	case reflect.Ptr:
		if rValue.IsNil() || rValue.Elem().Kind() != reflect.Struct {
			return nil, nil, fmt.Errorf("expected non nil pointer to struct, got %T", src)
		}
		return xunsafe.AsPointer(src), rValue.Elem().Type(), nil
	case reflect.Struct:
		holder := reflect.New(rValue.Type())
		holder.Elem().Set(rValue)
		return xunsafe.AsPointer(holder.Interface()), rValue.Type(), nil
	}
	return nil, nil, fmt.Errorf("expected struct or pointer to struct, got %T", src)
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	rValue := reflect.ValueOf(value)
	return rValue.Kind() == reflect.Ptr && rValue.IsNil()
}

func isZero(value interface{}) bool {
	return value == nil || reflect.ValueOf(value).IsZero()
}
