package i18n

import (
	"fmt"
	"strings"
)

// Translator retrieves message templates for violation keys. Keys are
// "category.rule" strings such as "string.min" or "base.required"; templates
// may carry {path}, {min}, {max}, {pattern} and {plural_suffix} tokens which
// are substituted from the violation parameters.
type Translator interface {
	Template(key string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{}

var defaultTemplates = map[string]string{
	"base.required": "{path} is required",
	"base.nullable": "{path} must not be null",
	"base.union":    "{path} does not match any of the allowed shapes",

	"string.type":    "{path} must be a string",
	"string.enum":    "{path} must be one of the allowed values",
	"string.pattern": "{path} must match the pattern {pattern}",
	"string.min":     "{path} must be at least {min} character{plural_suffix} long",
	"string.max":     "{path} must be at most {max} character{plural_suffix} long",

	"number.type":     "{path} must be a number",
	"number.enum":     "{path} must be one of the allowed values",
	"number.min":      "{path} must be greater than or equal to {min}",
	"number.max":      "{path} must be less than or equal to {max}",
	"number.integer":  "{path} must be an integer",
	"number.positive": "{path} must be a positive number",
	"number.negative": "{path} must be a negative number",

	"boolean.type": "{path} must be a boolean",

	"date.type": "{path} must be a valid date",
	"date.min":  "{path} must not be before {min}",
	"date.max":  "{path} must not be after {max}",

	"object.type": "{path} must be an object",

	"array.type": "{path} must be an array",
	"array.min":  "{path} must contain at least {min} item{plural_suffix}",
	"array.max":  "{path} must contain at most {max} item{plural_suffix}",
}

func (dictTranslator) Template(key string) string {
	if t, ok := defaultTemplates[key]; ok {
		return t
	}
	return key
}

var currentTranslator Translator = dictTranslator{}

// SetTranslator replaces the Translator implementation. Passing nil restores
// the built-in dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{}
		return
	}
	currentTranslator = tr
}

// T fetches the template for key using the current Translator.
func T(key string) string { return currentTranslator.Template(key) }

// Render substitutes {token} placeholders in tmpl from params. Unknown
// tokens are left untouched.
func Render(tmpl string, params map[string]any) string {
	if len(params) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, "{"+k+"}", fmt.Sprint(v))
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
