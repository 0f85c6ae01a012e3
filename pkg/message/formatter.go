package message

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	xmessage "golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatterFunc renders a single value for a locale.
type FormatterFunc func(value any, loc language.Tag) string

// dateLayouts holds a locale's date-only and date-time layouts.
type dateLayouts struct {
	date     string
	dateTime string
}

var fallbackLayouts = dateLayouts{date: "2006-01-02", dateTime: "2006-01-02 15:04:05"}

// FormatterRegistry maps runtime value types to locale-aware stringification.
// A registry is populated before the catalog is built and read-only
// afterwards; Format dispatches on the runtime type of the value, not on any
// declared type.
type FormatterRegistry struct {
	byType  map[reflect.Type]FormatterFunc
	layouts map[string]dateLayouts
}

// NewFormatterRegistry returns a registry with the built-in formatters:
// locale-aware decimal rendering for numbers, per-locale date and date-time
// layouts for time values, strconv for booleans, Stringer where implemented,
// and plain fmt rendering for everything else.
func NewFormatterRegistry() *FormatterRegistry {
	return &FormatterRegistry{
		byType: make(map[reflect.Type]FormatterFunc),
		layouts: map[string]dateLayouts{
			"en":    {date: "Jan 2, 2006", dateTime: "Jan 2, 2006 15:04:05"},
			"pt":    {date: "02/01/2006", dateTime: "02/01/2006 15:04:05"},
			"pt-br": {date: "02/01/2006", dateTime: "02/01/2006 15:04:05"},
		},
	}
}

// RegisterType overrides formatting for one concrete type.
func (r *FormatterRegistry) RegisterType(t reflect.Type, f FormatterFunc) {
	r.byType[t] = f
}

// SetDateLayouts sets a locale's date-only and date-time layouts.
func (r *FormatterRegistry) SetDateLayouts(locale, date, dateTime string) {
	r.layouts[normalizeLocale(locale)] = dateLayouts{date: date, dateTime: dateTime}
}

// Format renders value for locale. Unformattable or unknown types degrade to
// a locale-agnostic default rendering; Format never fails.
func (r *FormatterRegistry) Format(value any, locale string) string {
	if value == nil {
		return "null"
	}

	tag := language.Make(normalizeLocale(locale))
	if f, ok := r.byType[reflect.TypeOf(value)]; ok {
		return f(value, tag)
	}

	if t, ok := value.(time.Time); ok {
		return r.formatTime(t, locale)
	}
	if s, ok := value.(fmt.Stringer); ok {
		return s.String()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return xmessage.NewPrinter(tag).Sprint(number.Decimal(value))
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.String:
		return rv.String()
	}

	return fmt.Sprint(value)
}

// formatTime renders t with the locale's date-time layout, collapsing to the
// date-only layout when t is exactly the start of its day.
func (r *FormatterRegistry) formatTime(t time.Time, locale string) string {
	layouts := r.localeLayouts(locale)

	layout := layouts.dateTime
	if startOfDay(t) {
		layout = layouts.date
	}
	return t.Format(layout)
}

// localeLayouts walks the exact locale, its base language and the built-in
// fallback, in that order.
func (r *FormatterRegistry) localeLayouts(locale string) dateLayouts {
	key := normalizeLocale(locale)
	if l, ok := r.layouts[key]; ok {
		return l
	}
	if i := strings.Index(key, "-"); i > 0 {
		if l, ok := r.layouts[key[:i]]; ok {
			return l
		}
	}
	return fallbackLayouts
}

func startOfDay(t time.Time) bool {
	h, m, s := t.Clock()
	return h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0
}
