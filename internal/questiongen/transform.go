package questiongen

import (
	"fmt"
	"strings"
)

const storeHelperName = "storeData"

// transformDataTemplate rewrites each "name = expression" line into a call of the
// store helper. Blank lines become empty, and lines that are not a binding are
// kept as they are.
func transformDataTemplate(dataTemplate string) string {
	lines := strings.Split(dataTemplate, "\n")
	for i, line := range lines {
		lines[i] = transformDataLine(line)
	}
	return strings.Join(lines, "\n")
}

func transformDataLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}

	name, expr, found := strings.Cut(trimmed, "=")
	if !found {
		return line
	}
	name = strings.TrimSpace(name)
	expr = strings.TrimSpace(expr)
	if name == "" || expr == "" {
		return line
	}
	return fmt.Sprintf(`{{{%s "%s" (%s)}}}`, storeHelperName, name, expr)
}
