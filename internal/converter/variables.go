package converter

import (
	"regexp"
	"strings"
)

var (
	variablePattern      = regexp.MustCompile(`@[a-z|_-]+:`)
	camelizeSeparators   = regexp.MustCompile(`(\-|\_|\.|\s)+(.)?`)
	camelizeLeadingUpper = regexp.MustCompile(`(^|/)([A-Z])`)
)

// Variable pairs a camelized key with the declaration it was derived from.
type Variable struct {
	Key         string
	Declaration string
}

// Camelize removes separator runs (-, _, ., whitespace) and upper-cases the
// character following each run, then lower-cases a capital at the start of
// the string or after a slash.
func Camelize(s string) string {
	s = camelizeSeparators.ReplaceAllStringFunc(s, func(match string) string {
		groups := camelizeSeparators.FindStringSubmatch(match)
		if len(groups) < 3 {
			return ""
		}
		return strings.ToUpper(groups[2])
	})
	return camelizeLeadingUpper.ReplaceAllStringFunc(s, strings.ToLower)
}

// VariableKey maps a matched declaration such as "@btn-flat-bg:" to its key.
// Only the first "flat" is dropped, matching the naming convention of the
// variables files this tool was written for.
func VariableKey(match string) (key, declaration string) {
	declaration = strings.Replace(match, ":", "", 1)
	name := strings.Replace(declaration, "@", "", 1)
	name = strings.Replace(name, "flat", "", 1)
	return Camelize(name), declaration
}

// ExtractVariables returns the declarations found in src in first-seen key
// order. A later declaration with the same key replaces the earlier one.
func ExtractVariables(src string) []Variable {
	matches := variablePattern.FindAllString(src, -1)
	if len(matches) == 0 {
		return nil
	}

	vars := make([]Variable, 0, len(matches))
	index := make(map[string]int, len(matches))
	for _, match := range matches {
		key, decl := VariableKey(match)
		if i, ok := index[key]; ok {
			vars[i].Declaration = decl
			continue
		}
		index[key] = len(vars)
		vars = append(vars, Variable{Key: key, Declaration: decl})
	}
	return vars
}

// BuildIntermediate appends one "@value key: @decl;" line per variable to the
// original source so the processor resolves every value in place.
func BuildIntermediate(src string, vars []Variable) string {
	lines := make([]string, 0, len(vars))
	for _, v := range vars {
		lines = append(lines, "@value "+v.Key+": "+v.Declaration+";")
	}

	var sb strings.Builder
	sb.WriteString(src)
	// An unterminated last declaration would swallow the first @value line.
	if trimmed := strings.TrimRight(src, " \t\r\n"); trimmed != "" && !strings.HasSuffix(trimmed, ";") && !strings.HasSuffix(trimmed, "}") {
		sb.WriteString(";")
	}
	if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Join(lines, "\n"))
	return sb.String()
}
