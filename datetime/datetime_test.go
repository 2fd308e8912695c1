package datetime

import (
	"reflect"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCreateFromFormat(t *testing.T) {
	amsterdam, err := time.LoadLocation("Europe/Amsterdam")
	if !assert.Nil(t, err) {
		return
	}
	var testCases = []struct {
		description string
		variant     Variant
		expectType  reflect.Type
	}{
		{description: "mutable", variant: VariantMutable, expectType: reflect.TypeOf(&Mutable{})},
		{description: "immutable", variant: VariantImmutable, expectType: reflect.TypeOf(Immutable{})},
		{description: "carbon", variant: VariantCarbon, expectType: reflect.TypeOf(&Carbon{})},
		{description: "carbon alias", variant: VariantCarbonAlias, expectType: reflect.TypeOf(&Carbon{})},
		{description: "carbon immutable", variant: VariantCarbonImmutable, expectType: reflect.TypeOf(CarbonImmutable{})},
	}

	for _, testCase := range testCases {
		actual, err := CreateFromFormat(testCase.variant, "dd-MM-yyyy HH:mm:ss", "25-06-2014 08:40:00", amsterdam)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expectType, reflect.TypeOf(actual), testCase.description)
		assert.Equal(t, "2014-06-25T08:40:00+02:00", actual.Format(time.RFC3339), testCase.description)
		assert.Equal(t, amsterdam, actual.Location(), testCase.description)
	}
}

func TestCreateFromFormat_Unsupported(t *testing.T) {
	_, err := CreateFromFormat(VariantInterface, time.RFC3339, "2014-06-25T08:40:00+02:00", nil)
	assert.True(t, errors.Is(err, ErrUnsupportedVariant))

	_, err = CreateFromFormat(Variant("ArrayObject"), time.RFC3339, "2014-06-25T08:40:00+02:00", nil)
	assert.True(t, errors.Is(err, ErrUnsupportedVariant))
}

func TestVariant_IsSupported(t *testing.T) {
	for _, variant := range Variants() {
		assert.True(t, variant.IsSupported(), variant)
	}
	assert.Len(t, Variants(), 6)
	assert.False(t, Variant("ArrayObject").IsSupported())
}

func TestVariantOf(t *testing.T) {
	var testCases = []struct {
		description string
		rType       reflect.Type
		expect      Variant
		expectOk    bool
	}{
		{description: "interface", rType: reflect.TypeOf((*DateTime)(nil)).Elem(), expect: VariantInterface, expectOk: true},
		{description: "mutable", rType: reflect.TypeOf(&Mutable{}), expect: VariantMutable, expectOk: true},
		{description: "time", rType: reflect.TypeOf(time.Time{}), expect: VariantImmutable, expectOk: true},
		{description: "carbon", rType: reflect.TypeOf(&Carbon{}), expect: VariantCarbon, expectOk: true},
		{description: "string", rType: reflect.TypeOf(""), expectOk: false},
	}
	for _, testCase := range testCases {
		actual, ok := VariantOf(testCase.rType)
		assert.Equal(t, testCase.expectOk, ok, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestIn(t *testing.T) {
	amsterdam, _ := time.LoadLocation("Europe/Amsterdam")
	ts := time.Date(2014, 6, 25, 6, 40, 0, 0, time.UTC)

	mutable := NewMutable(ts)
	converted := mutable.In(amsterdam)
	assert.Same(t, mutable, converted)
	assert.Equal(t, amsterdam, mutable.Location())

	carbon := NewCarbon(ts)
	clone := carbon.Clone()
	clone.In(amsterdam)
	assert.Equal(t, time.UTC, carbon.Location())
	assert.Equal(t, amsterdam, clone.Location())

	immutable := NewImmutable(ts)
	other := immutable.In(amsterdam)
	assert.Equal(t, time.UTC, immutable.Location())
	assert.Equal(t, "2014-06-25T08:40:00+02:00", other.Format(""))

	carbonImmutable := NewCarbonImmutable(ts)
	assert.Equal(t, VariantCarbonImmutable, carbonImmutable.In(amsterdam).Variant())
	assert.Equal(t, time.UTC, carbonImmutable.Location())
}

func TestCarbon_Helpers(t *testing.T) {
	ts := time.Date(2014, 6, 25, 8, 40, 10, 0, time.UTC)

	carbon := NewCarbon(ts)
	carbon.StartOfDay()
	assert.Equal(t, "2014-06-25T00:00:00Z", carbon.Format(time.RFC3339))
	carbon.AddDays(3)
	assert.True(t, carbon.IsWeekend())
	carbon.EndOfMonth()
	assert.Equal(t, "2014-06-30 23:59:59", carbon.Format("yyyy-MM-dd HH:mm:ss"))

	immutable := NewCarbonImmutable(ts)
	assert.Equal(t, "2014-06-01T00:00:00Z", immutable.StartOfMonth().Format(time.RFC3339))
	assert.Equal(t, "2014-06-25T08:00:00Z", immutable.StartOfHour().Format(time.RFC3339))
	assert.Equal(t, "2014-07-25T08:40:10Z", immutable.AddMonths(1).Format(time.RFC3339))
	assert.Equal(t, ts, immutable.Time())
	assert.False(t, immutable.IsWeekend())
	assert.Equal(t, 2, immutable.DiffInDays(NewImmutable(ts.AddDate(0, 0, 2))))

	amsterdam, err := time.LoadLocation("Europe/Amsterdam")
	if assert.Nil(t, err) {
		local := NewCarbonImmutable(time.Date(2014, 6, 25, 1, 30, 0, 0, amsterdam))
		assert.Equal(t, "2014-06-25T23:59:59+02:00", local.EndOfDay().Format(time.RFC3339))
		assert.Equal(t, "2014-06-25T00:00:00+02:00", local.StartOfDay().Format(time.RFC3339))
	}
}

func TestNew(t *testing.T) {
	ts := time.Date(2014, 6, 25, 8, 40, 0, 0, time.UTC)
	for _, variant := range Variants() {
		actual, err := New(variant, ts)
		if variant == VariantInterface {
			assert.NotNil(t, err)
			continue
		}
		if !assert.Nil(t, err, variant) {
			continue
		}
		assert.Equal(t, ts, actual.Time(), variant)
	}
}
