package normalizer

import (
	"time"
)

// Context keys recognized by WithContext
const (
	FormatKey   = "datetime_format"
	TimezoneKey = "datetime_timezone"
	PathKey     = "deserialization_path"
)

type (
	// Context represents effective (de)normalization settings
	Context struct {
		Format   string
		Timezone string
		Location *time.Location
		//Path deserialization path reported with errors
		Path string
	}

	// Option modifies context, options with empty values are ignored, so defaults apply
	Option func(c *Context)
)

// WithFormat sets Go layout or date pattern
func WithFormat(format string) Option {
	return func(c *Context) {
		if format == "" {
			return
		}
		c.Format = format
	}
}

// WithTimezone sets timezone name (Europe/Amsterdam) or offset (+02:00)
func WithTimezone(timezone string) Option {
	return func(c *Context) {
		if timezone == "" {
			return
		}
		c.Timezone = timezone
		c.Location = nil
	}
}

// WithLocation sets timezone location
func WithLocation(loc *time.Location) Option {
	return func(c *Context) {
		if loc == nil {
			return
		}
		c.Location = loc
		c.Timezone = ""
	}
}

func WithPath(path string) Option {
	return func(c *Context) {
		if path == "" {
			return
		}
		c.Path = path
	}
}

// WithContext applies FormatKey, TimezoneKey and PathKey entries, timezone can be string or *time.Location
func WithContext(context map[string]interface{}) Option {
	return func(c *Context) {
		if format, ok := context[FormatKey].(string); ok {
			WithFormat(format)(c)
		}
		switch timezone := context[TimezoneKey].(type) {
		case string:
			WithTimezone(timezone)(c)
		case *time.Location:
			WithLocation(timezone)(c)
		}
		if path, ok := context[PathKey].(string); ok {
			WithPath(path)(c)
		}
	}
}

// HasTimezone returns true if timezone was specified
func (c *Context) HasTimezone() bool {
	return c.Location != nil || c.Timezone != ""
}

// ResolveLocation returns timezone location or nil when timezone was not specified
func (c *Context) ResolveLocation() (*time.Location, error) {
	if c.Location != nil {
		return c.Location, nil
	}
	if c.Timezone == "" {
		return nil, nil
	}
	return loadLocation(c.Timezone)
}

func (c Context) apply(opts []Option) Context {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&c)
	}
	return c
}
