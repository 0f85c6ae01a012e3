package message_test

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/go-veto/veto/pkg/message"
)

type weekday int

func (d weekday) String() string {
	return [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}[d]
}

func TestFormatNumbers(t *testing.T) {
	t.Parallel()
	r := message.NewFormatterRegistry()

	t.Run("english grouping", func(t *testing.T) {
		assert.Equal(t, "12,345", r.Format(12345, "en"))
	})

	t.Run("portuguese grouping", func(t *testing.T) {
		assert.Equal(t, "12.345", r.Format(12345, "pt-BR"))
	})

	t.Run("small numbers have no separator", func(t *testing.T) {
		assert.Equal(t, "0", r.Format(0, "en"))
		assert.Equal(t, "10", r.Format(10, "en"))
	})

	t.Run("named numeric types dispatch on kind", func(t *testing.T) {
		type quantity int
		assert.Equal(t, "12,345", r.Format(quantity(12345), "en"))
	})

	t.Run("unknown locale still renders", func(t *testing.T) {
		assert.NotEmpty(t, r.Format(12345, "zz-ZZ"))
	})
}

func TestFormatTime(t *testing.T) {
	t.Parallel()
	r := message.NewFormatterRegistry()

	t.Run("start of day renders as date only", func(t *testing.T) {
		v := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "Mar 5, 2026", r.Format(v, "en"))
		assert.Equal(t, "05/03/2026", r.Format(v, "pt"))
	})

	t.Run("any time of day renders as date and time", func(t *testing.T) {
		v := time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)
		assert.Equal(t, "Mar 5, 2026 14:30:00", r.Format(v, "en"))
		assert.Equal(t, "05/03/2026 14:30:00", r.Format(v, "pt"))
	})

	t.Run("a single nanosecond past midnight is not start of day", func(t *testing.T) {
		v := time.Date(2026, time.March, 5, 0, 0, 0, 1, time.UTC)
		assert.Equal(t, "Mar 5, 2026 00:00:00", r.Format(v, "en"))
	})

	t.Run("region locale inherits language layouts", func(t *testing.T) {
		v := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, r.Format(v, "pt"), r.Format(v, "pt-BR"))
	})

	t.Run("unknown locale uses the fallback layout", func(t *testing.T) {
		v := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "2026-03-05", r.Format(v, "zz"))
	})

	t.Run("custom layouts override", func(t *testing.T) {
		r := message.NewFormatterRegistry()
		r.SetDateLayouts("en", "2006/01/02", "2006/01/02 15:04")
		v := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "2026/03/05", r.Format(v, "en"))
	})
}

func TestFormatOtherTypes(t *testing.T) {
	t.Parallel()
	r := message.NewFormatterRegistry()

	t.Run("booleans", func(t *testing.T) {
		assert.Equal(t, "true", r.Format(true, "en"))
		assert.Equal(t, "false", r.Format(false, "pt"))
	})

	t.Run("strings pass through", func(t *testing.T) {
		assert.Equal(t, "hello", r.Format("hello", "en"))
	})

	t.Run("nil renders as null", func(t *testing.T) {
		assert.Equal(t, "null", r.Format(nil, "en"))
	})

	t.Run("stringers render through String", func(t *testing.T) {
		assert.Equal(t, "Fri", r.Format(weekday(5), "en"))
	})

	t.Run("unknown types degrade to a default conversion", func(t *testing.T) {
		type point struct{ X, Y int }
		assert.Equal(t, fmt.Sprint(point{1, 2}), r.Format(point{1, 2}, "en"))
	})

	t.Run("registered type formatter wins over built-ins", func(t *testing.T) {
		r := message.NewFormatterRegistry()
		r.RegisterType(reflect.TypeOf(time.Duration(0)), func(v any, _ language.Tag) string {
			return v.(time.Duration).String()
		})
		assert.Equal(t, "1h0m0s", r.Format(time.Hour, "en"))
	})
}
