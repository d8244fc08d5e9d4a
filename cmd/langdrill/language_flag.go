package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/langdrill/internal/language"
)

var _ pflag.Value = (*languageValue)(nil)

// languageValue is a pflag.Value accepting supported language codes.
type languageValue struct {
	code string
}

func (v *languageValue) String() string {
	return v.code
}

func (v *languageValue) Set(s string) error {
	code := strings.ToLower(strings.TrimSpace(s))
	if !language.IsSupported(code) {
		return fmt.Errorf("unsupported language %q, expected one of: %s", s, strings.Join(language.Codes(), ", "))
	}
	v.code = code
	return nil
}

func (v *languageValue) Type() string {
	return "language"
}

func completeLanguage(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	completions := make([]string, 0, len(language.Supported()))
	for _, l := range language.Supported() {
		completions = append(completions, l.Code+"\t"+l.Name)
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
