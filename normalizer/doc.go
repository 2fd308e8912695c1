// Package normalizer provides DateTimeNormalizer, a pluggable converter between
// date time variants and text.
//
// Format and timezone are taken from per call options first, then from the
// default context set with New or SetDefaultContext.
//
//	n := normalizer.New(normalizer.WithTimezone("Europe/Amsterdam"))
//	text, err := n.Normalize(value, normalizer.WithFormat("dd-MM-yyyy HH:mm:ss"))
//	value, err := n.Denormalize(text, datetime.VariantCarbon, normalizer.WithFormat("dd-MM-yyyy HH:mm:ss"))
package normalizer
