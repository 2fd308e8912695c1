package serializer

import (
	"reflect"

	"github.com/pkg/errors"
	"github.com/viant/timely/datetime"
	"github.com/viant/timely/internal/cache"
	"github.com/viant/timely/normalizer"
)

// ErrUnsupported is returned when no registered (de)normalizer supports data
var ErrUnsupported = errors.New("unsupported data")

type (
	// Normalizer converts date time to text
	Normalizer interface {
		SupportsNormalization(data interface{}) bool
		Normalize(data interface{}, opts ...normalizer.Option) (string, error)
	}

	// Denormalizer converts text to date time variant
	Denormalizer interface {
		SupportsDenormalization(data interface{}, variant datetime.Variant) bool
		Denormalize(data interface{}, variant datetime.Variant, opts ...normalizer.Option) (datetime.DateTime, error)
	}

	// Cacheable marks converters which support decision depends only on data type and variant
	Cacheable interface {
		Cacheable() bool
	}

	// Serializer dispatches to the first registered (de)normalizer supporting data
	Serializer struct {
		normalizers     []Normalizer
		denormalizers   []Denormalizer
		normalizerIdx   *cache.Map[supportKey, int]
		denormalizerIdx *cache.Map[supportKey, int]
	}

	supportKey struct {
		rType   reflect.Type
		variant datetime.Variant
	}
)

// New creates serializer, converters are registered as Normalizer and/or Denormalizer,
// without converters date time normalizer with default context is used
func New(converters ...interface{}) *Serializer {
	if len(converters) == 0 {
		converters = []interface{}{normalizer.New()}
	}
	ret := &Serializer{normalizerIdx: cache.NewMap[supportKey, int](), denormalizerIdx: cache.NewMap[supportKey, int]()}
	for _, converter := range converters {
		if candidate, ok := converter.(Normalizer); ok {
			ret.normalizers = append(ret.normalizers, candidate)
		}
		if candidate, ok := converter.(Denormalizer); ok {
			ret.denormalizers = append(ret.denormalizers, candidate)
		}
	}
	return ret
}

// Normalize normalizes data with the first supporting normalizer
func (s *Serializer) Normalize(data interface{}, opts ...normalizer.Option) (string, error) {
	candidate := s.normalizerFor(data)
	if candidate == nil {
		return "", errors.Wrapf(ErrUnsupported, "no normalizer for %T", data)
	}
	return candidate.Normalize(data, opts...)
}

// Denormalize denormalizes data with the first supporting denormalizer
func (s *Serializer) Denormalize(data interface{}, variant datetime.Variant, opts ...normalizer.Option) (datetime.DateTime, error) {
	candidate := s.denormalizerFor(data, variant)
	if candidate == nil {
		return nil, errors.Wrapf(ErrUnsupported, "no denormalizer for %T into %v", data, variant)
	}
	return candidate.Denormalize(data, variant, opts...)
}

// normalizerFor returns first supporting normalizer, nil pointers bypass the support cache
// since support of a typed nil differs from support of its type
func (s *Serializer) normalizerFor(data interface{}) Normalizer {
	key := supportKey{rType: reflect.TypeOf(data)}
	nilPtr := isNil(data)
	if !nilPtr {
		if idx, ok := s.normalizerIdx.Get(key); ok {
			return s.normalizers[idx]
		}
	}
	for i, candidate := range s.normalizers {
		if !candidate.SupportsNormalization(data) {
			continue
		}
		if !nilPtr && isCacheable(candidate) {
			s.normalizerIdx.Put(key, i)
		}
		return candidate
	}
	return nil
}

func (s *Serializer) denormalizerFor(data interface{}, variant datetime.Variant) Denormalizer {
	key := supportKey{rType: reflect.TypeOf(data), variant: variant}
	nilPtr := isNil(data)
	if !nilPtr {
		if idx, ok := s.denormalizerIdx.Get(key); ok {
			return s.denormalizers[idx]
		}
	}
	for i, candidate := range s.denormalizers {
		if !candidate.SupportsDenormalization(data, variant) {
			continue
		}
		if !nilPtr && isCacheable(candidate) {
			s.denormalizerIdx.Put(key, i)
		}
		return candidate
	}
	return nil
}

func isCacheable(candidate interface{}) bool {
	cacheable, ok := candidate.(Cacheable)
	return ok && cacheable.Cacheable()
}
