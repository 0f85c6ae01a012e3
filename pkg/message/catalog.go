package message

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"regexp"
	"sort"
	"strings"

	"github.com/go-veto/veto/pkg/constraint"
)

// Catalog resolves violations into localized strings. It pairs a template
// table keyed by (locale, constraint name) with a formatter registry, both
// populated while the catalog is being built and read-only afterwards, so a
// single catalog serves concurrent validations without synchronization.
//
// There is no ambient catalog: callers construct one explicitly and pass it
// wherever messages are resolved.
type Catalog struct {
	defaultLocale string
	templates     map[string]map[string]string
	formatters    *FormatterRegistry
	logger        *slog.Logger
	sources       []Source
}

// New builds a catalog. Without options it carries the bundled locales and
// formats values with the default registry. Sources added via WithSource are
// loaded here, in order, overriding earlier entries on conflicting keys.
func New(ctx context.Context, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		defaultLocale: DefaultLocale,
		templates:     builtinTemplates(),
		formatters:    NewFormatterRegistry(),
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)), // Nope-logger by default
	}

	for _, opt := range opts {
		opt(c)
	}

	for _, src := range c.sources {
		templates, err := src.Load(ctx)
		if err != nil {
			return nil, err
		}
		c.addTemplates(templates)
	}
	c.sources = nil

	return c, nil
}

// addTemplates merges entries into the catalog under normalized locale keys.
func (c *Catalog) addTemplates(templates map[string]map[string]string) {
	for locale, byName := range templates {
		key := normalizeLocale(locale)
		if key == "" {
			continue
		}
		dst, ok := c.templates[key]
		if !ok {
			dst = make(map[string]string, len(byName))
			c.templates[key] = dst
		}
		maps.Copy(dst, byName)
	}
}

// Locales returns the locale keys the catalog holds templates for, sorted.
func (c *Catalog) Locales() []string {
	locales := make([]string, 0, len(c.templates))
	for locale := range c.templates {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// DefaultLocale returns the locale the fallback chain ends on.
func (c *Catalog) DefaultLocale() string {
	return c.defaultLocale
}

// Formatters returns the catalog's formatter registry.
func (c *Catalog) Formatters() *FormatterRegistry {
	return c.formatters
}

// Resolve renders a localized message for v. It never fails: the locale
// falls back along the exact -> language-only -> default chain, and when even
// the resolved locale lacks a template for the constraint, the violation's
// raw string form is returned. Given the same violation, locale and catalog,
// Resolve always returns the same string.
func (c *Catalog) Resolve(v constraint.Violation, locale string) string {
	resolved, ok := c.resolveLocale(locale)
	if !ok {
		c.logger.Warn("No catalog entry on locale fallback chain", "locale", locale)
		return v.String()
	}

	tmpl, ok := c.templates[resolved][v.Constraint.Name]
	if !ok {
		c.logger.Warn("Template not found", "locale", resolved, "constraint", v.Constraint.Name)
		return v.String()
	}

	params := make(map[string]string, len(v.Constraint.Params)+1)
	params["value"] = c.formatters.Format(v.Value, resolved)
	for _, p := range v.Constraint.Params {
		params[p.Name] = c.formatters.Format(p.Value, resolved)
	}

	return interpolate(tmpl, params)
}

// FormatAll formats value once per supported locale, keyed by locale. Used to
// check that a value renders consistently across the whole locale set.
func (c *Catalog) FormatAll(value any) map[string]string {
	out := make(map[string]string, len(c.templates))
	for locale := range c.templates {
		out[locale] = c.formatters.Format(value, locale)
	}
	return out
}

// resolveLocale returns the first locale key on the fallback chain that the
// catalog holds templates for.
func (c *Catalog) resolveLocale(locale string) (string, bool) {
	key := normalizeLocale(locale)

	candidates := make([]string, 0, 3)
	if key != "" {
		candidates = append(candidates, key)
	}
	if i := strings.Index(key, "-"); i > 0 {
		candidates = append(candidates, key[:i])
	}
	candidates = append(candidates, normalizeLocale(c.defaultLocale))

	for _, cand := range candidates {
		if _, ok := c.templates[cand]; ok {
			return cand, true
		}
	}
	return "", false
}

// normalizeLocale lowercases a locale key and unifies separators, so matching
// is case-insensitive and "pt_BR" and "pt-br" address the same entry.
func normalizeLocale(locale string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
}

// Regex to find named parameters in the form {name}
var placeholderRegex = regexp.MustCompile(`\{([^{}]+)\}`)

// interpolate substitutes {name} placeholders using the provided map,
// leaving unknown placeholders untouched.
func interpolate(tmpl string, params map[string]string) string {
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[1:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
