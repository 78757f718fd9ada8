package template

import (
	"strings"
	"text/template"
)

// CustomFuncMap returns the custom template functions available in templates.
func CustomFuncMap() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"toLower":   strings.ToLower,
		"toUpper":   strings.ToUpper,
		"replace":   strings.ReplaceAll,
		"trimSpace": strings.TrimSpace,
		"contains":  strings.Contains,
		"join":      strings.Join,
		"indent": func(spaces int, s string) string {
			pad := strings.Repeat(" ", spaces)
			lines := strings.Split(s, "\n")
			for i, line := range lines {
				if line != "" {
					lines[i] = pad + line
				}
			}
			return strings.Join(lines, "\n")
		},
		// cell makes a value safe inside a Markdown table cell.
		"cell": func(s string) string {
			s = strings.TrimSpace(s)
			s = strings.ReplaceAll(s, "|", `\|`)
			return strings.ReplaceAll(s, "\n", "<br>")
		},
		// fence maps an executor name to a code fence language.
		"fence": func(executor string) string {
			switch executor {
			case "powershell":
				return "powershell"
			case "command prompt":
				return "cmd"
			case "bash":
				return "bash"
			case "sh":
				return "sh"
			}
			return ""
		},
	}
}
