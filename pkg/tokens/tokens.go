// Package tokens implements the literal placeholder substitution shared by
// template files and configured commands.
package tokens

import "strings"

// Placeholders recognized in template contents and command lines.
const (
	Name   = "{{__NAME__}}"
	Output = "{{__OUT__}}"
)

// Vars holds the values substituted for the placeholders.
type Vars struct {
	ProjectName string
	OutputPath  string
}

// Apply replaces every placeholder in s in a single pass. Both tokens are
// matched against the original input only, so replacement values are never
// rescanned and the result does not depend on token order.
func (v Vars) Apply(s string) string {
	return strings.NewReplacer(Name, v.ProjectName, Output, v.OutputPath).Replace(s)
}

// Contains reports whether s holds any placeholder.
func Contains(s string) bool {
	return strings.Contains(s, Name) || strings.Contains(s, Output)
}
