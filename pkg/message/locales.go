package message

import "maps"

// DefaultLocale is the locale used when the fallback chain is exhausted.
const DefaultLocale = "en"

// builtinTemplates returns the bundled catalog: en (the default), pt
// (language-only) and pt-BR (language plus region). Adding a locale means
// adding an entry here or loading one through a source, never code.
func builtinTemplates() map[string]map[string]string {
	en := map[string]string{
		"Null":                 "must be null",
		"NotNull":              "must not be null",
		"Equals":               "must be equal to {other}",
		"NotEquals":            "must not be equal to {other}",
		"EqualsIgnoringCase":   "must be equal to {other} (case insensitive)",
		"In":                   "must be one of {allowed}",
		"NotIn":                "must not be one of {denied}",
		"Less":                 "must be less than {limit}",
		"LessOrEqual":          "must be less than or equal to {limit}",
		"Greater":              "must be greater than {limit}",
		"GreaterOrEqual":       "must be greater than or equal to {limit}",
		"Between":              "must be between {start} and {end}",
		"NotBetween":           "must not be between {start} and {end}",
		"Zero":                 "must be zero",
		"NotZero":              "must not be zero",
		"Positive":             "must be positive",
		"PositiveOrZero":       "must be positive or zero",
		"Negative":             "must be negative",
		"NegativeOrZero":       "must be negative or zero",
		"Even":                 "must be even",
		"Odd":                  "must be odd",
		"Digits":               "must have between {min} and {max} digits",
		"Empty":                "must be empty",
		"NotEmpty":             "must not be empty",
		"Blank":                "must be blank",
		"NotBlank":             "must not be blank",
		"Contains":             "must contain {substring}",
		"ContainsIgnoringCase": "must contain {substring} (case insensitive)",
		"StartsWith":           "must start with {prefix}",
		"EndsWith":             "must end with {suffix}",
		"Matches":              "must match {pattern}",
		"Size":                 "size must be between {min} and {max}",
		"Before":               "must be before {limit}",
		"After":                "must be after {limit}",
	}

	pt := map[string]string{
		"Null":                 "deve ser nulo",
		"NotNull":              "não deve ser nulo",
		"Equals":               "deve ser igual a {other}",
		"NotEquals":            "não deve ser igual a {other}",
		"EqualsIgnoringCase":   "deve ser igual a {other} (ignorando maiúsculas e minúsculas)",
		"In":                   "deve ser um de {allowed}",
		"NotIn":                "não deve ser um de {denied}",
		"Less":                 "deve ser menor que {limit}",
		"LessOrEqual":          "deve ser menor ou igual a {limit}",
		"Greater":              "deve ser maior que {limit}",
		"GreaterOrEqual":       "deve ser maior ou igual a {limit}",
		"Between":              "deve estar entre {start} e {end}",
		"NotBetween":           "não deve estar entre {start} e {end}",
		"Zero":                 "deve ser zero",
		"NotZero":              "não deve ser zero",
		"Positive":             "deve ser positivo",
		"PositiveOrZero":       "deve ser positivo ou zero",
		"Negative":             "deve ser negativo",
		"NegativeOrZero":       "deve ser negativo ou zero",
		"Even":                 "deve ser par",
		"Odd":                  "deve ser ímpar",
		"Digits":               "deve ter entre {min} e {max} dígitos",
		"Empty":                "deve ser vazio",
		"NotEmpty":             "não deve ser vazio",
		"Blank":                "deve estar em branco",
		"NotBlank":             "não deve estar em branco",
		"Contains":             "deve conter {substring}",
		"ContainsIgnoringCase": "deve conter {substring} (ignorando maiúsculas e minúsculas)",
		"StartsWith":           "deve começar com {prefix}",
		"EndsWith":             "deve terminar com {suffix}",
		"Matches":              "deve corresponder ao padrão {pattern}",
		"Size":                 "o tamanho deve estar entre {min} e {max}",
		"Before":               "deve ser anterior a {limit}",
		"After":                "deve ser posterior a {limit}",
	}

	// pt-BR currently reads the same as pt; the separate entry keeps the
	// region key addressable so regional overrides stay a data change.
	return map[string]map[string]string{
		"en":    en,
		"pt":    pt,
		"pt-br": maps.Clone(pt),
	}
}
