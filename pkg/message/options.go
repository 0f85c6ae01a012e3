package message

import (
	"log/slog"
	"reflect"
)

// Option is a function that configures a Catalog while it is being built.
type Option func(*Catalog)

// WithDefaultLocale sets the locale the fallback chain ends on.
func WithDefaultLocale(locale string) Option {
	return func(c *Catalog) {
		if locale != "" {
			c.defaultLocale = locale
		}
	}
}

// WithSource adds a template source. Sources load in the order they were
// added, after all other options, overriding earlier entries on conflicting
// keys.
func WithSource(src Source) Option {
	return func(c *Catalog) {
		if src != nil {
			c.sources = append(c.sources, src)
		}
	}
}

// WithLocale merges templates for one locale directly, without a source.
func WithLocale(locale string, templates map[string]string) Option {
	return func(c *Catalog) {
		c.addTemplates(map[string]map[string]string{locale: templates})
	}
}

// WithoutBundledLocales drops the built-in en/pt/pt-BR templates, leaving the
// catalog to the caller's sources alone.
func WithoutBundledLocales() Option {
	return func(c *Catalog) {
		c.templates = make(map[string]map[string]string)
	}
}

// WithLogger provides a logger for resolution gaps (missing locales and
// templates). If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFormatterRegistry replaces the formatter registry.
func WithFormatterRegistry(r *FormatterRegistry) Option {
	return func(c *Catalog) {
		if r != nil {
			c.formatters = r
		}
	}
}

// WithFormatter overrides formatting for one concrete type.
func WithFormatter(t reflect.Type, f FormatterFunc) Option {
	return func(c *Catalog) {
		c.formatters.RegisterType(t, f)
	}
}

// WithDateLayouts sets a locale's date-only and date-time layouts.
func WithDateLayouts(locale, date, dateTime string) Option {
	return func(c *Catalog) {
		c.formatters.SetDateLayouts(locale, date, dateTime)
	}
}
