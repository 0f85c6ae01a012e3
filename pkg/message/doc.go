// Package message resolves validation violations into human-readable,
// locale-correct strings. It is independent of the traversal engine: all it
// needs is the violation record — property path, offending value and
// constraint descriptor — plus a target locale.
//
// # Architecture
//
// The central type is the Catalog, an explicitly constructed, read-only
// lookup table pairing message templates with a FormatterRegistry. Templates
// are keyed by locale and constraint name and carry named placeholders:
// {value} for the offending value and one placeholder per constraint
// parameter ({start}, {end}, {min}, …).
//
// Resolution walks a deterministic fallback chain: the exact locale key
// (case-insensitive, "pt_BR" and "pt-br" are the same key), then the
// language-only key, then the default locale. Formatting dispatches on the
// runtime type of each placeholder value — numbers render with locale-aware
// grouping via x/text, time values with per-locale date or date-time layouts
// (a value at the exact start of its day renders as a date only), everything
// else degrades to a plain string conversion.
//
// Resolution can never fail. A missing locale, a missing template or an
// unformattable value degrades to a best-effort string, so rendering
// validation results cannot crash the caller.
//
// # Usage
//
//	catalog, err := message.New(ctx)
//	if err != nil {
//		log.Fatalf("failed to build catalog: %v", err)
//	}
//
//	for _, v := range validate.Extract(err) {
//		fmt.Println(v.Path, catalog.Resolve(v, "pt-BR"))
//	}
//
// The bundled locales (en, pt, pt-BR) cover every built-in constraint.
// Additional locales or overrides load from YAML/JSON files or directories
// through Source implementations:
//
//	catalog, err := message.New(ctx,
//		message.WithDefaultLocale("en"),
//		message.WithSource(message.NewFileSource(message.NewYAMLParser(), "./messages.yaml")),
//	)
//
// # Concurrency
//
// A catalog is immutable once New returns; concurrent Resolve calls from any
// number of validations are safe without synchronization.
package message
