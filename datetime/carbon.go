package datetime

import (
	"time"

	"github.com/dromara/carbon/v2"
)

// Carbon represents enhanced mutable date time, helpers modify the receiver and return it,
// calendar arithmetic is delegated to dromara/carbon
type Carbon struct {
	Mutable
}

// NewCarbon creates enhanced mutable date time
func NewCarbon(ts time.Time) *Carbon {
	return &Carbon{Mutable: Mutable{ts: ts}}
}

// In sets timezone
func (c *Carbon) In(loc *time.Location) DateTime {
	c.ts = c.ts.In(loc)
	return c
}

func (c *Carbon) Clone() DateTime {
	ret := *c
	return &ret
}

func (c *Carbon) Variant() Variant {
	return VariantCarbon
}

// StartOfDay sets time to 00:00:00
func (c *Carbon) StartOfDay() *Carbon {
	c.ts = carbon.CreateFromStdTime(c.ts).StartOfDay().StdTime()
	return c
}

// EndOfDay sets time to 23:59:59.999999999
func (c *Carbon) EndOfDay() *Carbon {
	c.ts = carbon.CreateFromStdTime(c.ts).EndOfDay().StdTime()
	return c
}

func (c *Carbon) StartOfMonth() *Carbon {
	c.ts = carbon.CreateFromStdTime(c.ts).StartOfMonth().StdTime()
	return c
}

func (c *Carbon) EndOfMonth() *Carbon {
	c.ts = carbon.CreateFromStdTime(c.ts).EndOfMonth().StdTime()
	return c
}

func (c *Carbon) StartOfHour() *Carbon {
	c.ts = carbon.CreateFromStdTime(c.ts).StartOfHour().StdTime()
	return c
}

func (c *Carbon) AddDays(days int) *Carbon {
	c.ts = carbon.CreateFromStdTime(c.ts).AddDays(days).StdTime()
	return c
}

func (c *Carbon) AddMonths(months int) *Carbon {
	c.ts = carbon.CreateFromStdTime(c.ts).AddMonths(months).StdTime()
	return c
}

func (c *Carbon) IsWeekend() bool {
	return carbon.CreateFromStdTime(c.ts).IsWeekend()
}

// DiffInDays returns number of whole days from the receiver to other
func (c *Carbon) DiffInDays(other DateTime) int {
	return diffInDays(c.ts, other.Time())
}

// CarbonImmutable represents enhanced immutable date time, helpers return new values
type CarbonImmutable struct {
	Immutable
}

// NewCarbonImmutable creates enhanced immutable date time
func NewCarbonImmutable(ts time.Time) CarbonImmutable {
	return CarbonImmutable{Immutable: Immutable{ts: ts}}
}

// In returns a copy in supplied timezone
func (c CarbonImmutable) In(loc *time.Location) DateTime {
	return NewCarbonImmutable(c.ts.In(loc))
}

func (c CarbonImmutable) Clone() DateTime {
	return c
}

func (c CarbonImmutable) Variant() Variant {
	return VariantCarbonImmutable
}

func (c CarbonImmutable) StartOfDay() CarbonImmutable {
	return NewCarbonImmutable(carbon.CreateFromStdTime(c.ts).StartOfDay().StdTime())
}

func (c CarbonImmutable) EndOfDay() CarbonImmutable {
	return NewCarbonImmutable(carbon.CreateFromStdTime(c.ts).EndOfDay().StdTime())
}

func (c CarbonImmutable) StartOfMonth() CarbonImmutable {
	return NewCarbonImmutable(carbon.CreateFromStdTime(c.ts).StartOfMonth().StdTime())
}

func (c CarbonImmutable) EndOfMonth() CarbonImmutable {
	return NewCarbonImmutable(carbon.CreateFromStdTime(c.ts).EndOfMonth().StdTime())
}

func (c CarbonImmutable) StartOfHour() CarbonImmutable {
	return NewCarbonImmutable(carbon.CreateFromStdTime(c.ts).StartOfHour().StdTime())
}

func (c CarbonImmutable) AddDays(days int) CarbonImmutable {
	return NewCarbonImmutable(carbon.CreateFromStdTime(c.ts).AddDays(days).StdTime())
}

func (c CarbonImmutable) AddMonths(months int) CarbonImmutable {
	return NewCarbonImmutable(carbon.CreateFromStdTime(c.ts).AddMonths(months).StdTime())
}

func (c CarbonImmutable) IsWeekend() bool {
	return carbon.CreateFromStdTime(c.ts).IsWeekend()
}

// DiffInDays returns number of whole days from the receiver to other
func (c CarbonImmutable) DiffInDays(other DateTime) int {
	return diffInDays(c.ts, other.Time())
}

func diffInDays(from, to time.Time) int {
	return int(carbon.CreateFromStdTime(from).DiffInDays(carbon.CreateFromStdTime(to)))
}
