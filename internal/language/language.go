// Package language lists the languages words and question types can be stored in.
package language

import (
	"slices"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/collate"
	xlanguage "golang.org/x/text/language"
)

// Language is a supported language, named in the language itself.
type Language struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

var supported = []Language{
	{Code: "fr", Name: "Français"},
	{Code: "en", Name: "English"},
}

// Supported returns all supported languages.
func Supported() []Language {
	return slices.Clone(supported)
}

// Codes returns the ISO 639 codes of the supported languages.
func Codes() []string {
	codes := make([]string, 0, len(supported))
	for _, l := range supported {
		codes = append(codes, l.Code)
	}
	return codes
}

// Name returns the display name of code, or code itself when it is unknown.
func Name(code string) string {
	for _, l := range supported {
		if l.Code == code {
			return l.Name
		}
	}
	return code
}

// IsSupported reports whether code is a supported language.
func IsSupported(code string) bool {
	return slices.ContainsFunc(supported, func(l Language) bool {
		return l.Code == code
	})
}

// NewCollator returns a collator ordering strings the way speakers of code expect.
// A Collator is not safe for concurrent use.
func NewCollator(code string) *collate.Collator {
	tag, err := xlanguage.Parse(code)
	if err != nil {
		tag = xlanguage.Und
	}
	return collate.New(tag)
}

// RegisterValidation registers the "language" tag on v.
func RegisterValidation(v *validator.Validate) error {
	return v.RegisterValidation("language", func(fl validator.FieldLevel) bool {
		return IsSupported(fl.Field().String())
	})
}
