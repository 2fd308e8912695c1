package datetime

import (
	"time"

	ftime "github.com/viant/timely/format/time"
)

// DateTime represents an instant exposed by every supported variant
type DateTime interface {
	//Time returns the instant
	Time() time.Time
	Location() *time.Location
	//Format formats instant with Go layout or date pattern
	Format(pattern string) string
	//In converts instant to loc, mutable variants modify and return the receiver
	In(loc *time.Location) DateTime
	Clone() DateTime
	Variant() Variant
}

// Mutable represents mutable date time
type Mutable struct {
	ts time.Time
}

// Time returns the instant
func (m *Mutable) Time() time.Time {
	return m.ts
}

func (m *Mutable) Location() *time.Location {
	return m.ts.Location()
}

// Format formats instant with Go layout or date pattern
func (m *Mutable) Format(pattern string) string {
	return ftime.Format(m.ts, pattern)
}

// SetTime replaces the instant
func (m *Mutable) SetTime(ts time.Time) {
	m.ts = ts
}

// In sets timezone
func (m *Mutable) In(loc *time.Location) DateTime {
	m.ts = m.ts.In(loc)
	return m
}

func (m *Mutable) Clone() DateTime {
	ret := *m
	return &ret
}

func (m *Mutable) Variant() Variant {
	return VariantMutable
}

func (m *Mutable) String() string {
	return m.ts.Format(time.RFC3339Nano)
}

// NewMutable creates mutable date time
func NewMutable(ts time.Time) *Mutable {
	return &Mutable{ts: ts}
}

// Immutable represents immutable date time
type Immutable struct {
	ts time.Time
}

// Time returns the instant
func (i Immutable) Time() time.Time {
	return i.ts
}

func (i Immutable) Location() *time.Location {
	return i.ts.Location()
}

// Format formats instant with Go layout or date pattern
func (i Immutable) Format(pattern string) string {
	return ftime.Format(i.ts, pattern)
}

// In returns a copy in supplied timezone
func (i Immutable) In(loc *time.Location) DateTime {
	return Immutable{ts: i.ts.In(loc)}
}

func (i Immutable) Clone() DateTime {
	return i
}

func (i Immutable) Variant() Variant {
	return VariantImmutable
}

func (i Immutable) String() string {
	return i.ts.Format(time.RFC3339Nano)
}

// NewImmutable creates immutable date time
func NewImmutable(ts time.Time) Immutable {
	return Immutable{ts: ts}
}
