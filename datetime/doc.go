// Package datetime defines the date time capability and its variants.
// Mutable and Carbon change in place on timezone conversion, Immutable and
// CarbonImmutable return new values. Variants are created from text through a
// fixed constructor table keyed by Variant.
package datetime
