package converter

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	apperrors "github.com/alexisbeaulieu97/streamui/pkg/errors"
)

var (
	declarationPattern = regexp.MustCompile(`(?s)^@([A-Za-z0-9_-]+)\s*:\s*(.*)$`)
	referencePattern   = regexp.MustCompile(`@\{([A-Za-z0-9_-]+)\}|@([A-Za-z0-9_-]+)`)
	interpolatePattern = regexp.MustCompile(`@\{([A-Za-z0-9_-]+)\}`)
	escapedPattern     = regexp.MustCompile(`^~(?:"(.*)"|'(.*)')$`)
)

// BuiltinProcessor resolves Less variable declarations without an external
// compiler. It understands plain declarations, references between them,
// block scoped variables, @{name} interpolation and ~"escaped" strings;
// operations, mixins and imports are left untouched.
type BuiltinProcessor struct{}

// Name identifies the processor in logs and errors.
func (BuiltinProcessor) Name() string {
	return BuiltinProcessorName
}

// Render drops declarations and emits every other statement and block with
// variable references substituted.
func (p BuiltinProcessor) Render(ctx context.Context, _ string, source string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	root := parseLess(source)
	global := newScope(nil, make(map[string]*scope))
	buildScopes(root, global)

	var out strings.Builder
	if err := renderNodes(&out, root.children, global, ""); err != nil {
		return "", apperrors.NewProcessorError(BuiltinProcessorName, "render failed", err)
	}
	return out.String(), nil
}

// lessNode is a statement, or a block when children is non-nil.
type lessNode struct {
	text     string
	children []*lessNode
	scope    *scope
}

func (n *lessNode) isBlock() bool { return n.children != nil }

// parseLess splits source into statements and blocks by brace depth.
// Comments are removed; strings and parentheses are kept intact.
func parseLess(source string) *lessNode {
	root := &lessNode{children: []*lessNode{}}
	stack := []*lessNode{root}
	var buf strings.Builder
	parens := 0

	flush := func() {
		text := strings.TrimSpace(buf.String())
		buf.Reset()
		if text == "" {
			return
		}
		top := stack[len(stack)-1]
		top.children = append(top.children, &lessNode{text: text})
	}

	for i := 0; i < len(source); i++ {
		c := source[i]
		switch {
		case c == '"' || c == '\'':
			end := stringEnd(source, i)
			buf.WriteString(source[i:end])
			i = end - 1
		case c == '/' && i+1 < len(source) && source[i+1] == '*':
			end := strings.Index(source[i+2:], "*/")
			if end < 0 {
				i = len(source)
			} else {
				i += end + 3
			}
		case c == '/' && parens == 0 && i+1 < len(source) && source[i+1] == '/':
			end := strings.IndexByte(source[i:], '\n')
			if end < 0 {
				i = len(source)
			} else {
				i += end - 1
			}
		case c == '(':
			parens++
			buf.WriteByte(c)
		case c == ')':
			if parens > 0 {
				parens--
			}
			buf.WriteByte(c)
		case c == ';' && parens == 0:
			flush()
		case c == '{' && parens == 0:
			block := &lessNode{text: strings.TrimSpace(buf.String()), children: []*lessNode{}}
			buf.Reset()
			top := stack[len(stack)-1]
			top.children = append(top.children, block)
			stack = append(stack, block)
		case c == '}' && parens == 0:
			flush()
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		default:
			buf.WriteByte(c)
		}
	}
	flush()
	return root
}

// stringEnd returns the index just past the string literal opening at start.
func stringEnd(s string, start int) int {
	quote := s[start]
	for i := start + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case quote:
			return i + 1
		}
	}
	return len(s)
}

type scopeKey struct {
	scope *scope
	name  string
}

type scope struct {
	parent       *scope
	declarations map[string]string
	resolved     map[string]string
	// nested maps names declared only inside rulesets to the last block
	// declaring them. It is shared by every scope of one source.
	nested map[string]*scope
}

func newScope(parent *scope, nested map[string]*scope) *scope {
	return &scope{
		parent:       parent,
		declarations: make(map[string]string),
		resolved:     make(map[string]string),
		nested:       nested,
	}
}

// declare registers the declarations among nodes. A later declaration of the
// same name wins, as in Less.
func (s *scope) declare(nodes []*lessNode) {
	for _, n := range nodes {
		if n.isBlock() {
			continue
		}
		if m := declarationPattern.FindStringSubmatch(n.text); m != nil {
			s.declarations[m[1]] = strings.TrimSpace(m[2])
		}
	}
}

// buildScopes gives every block its own scope under s. Nested declarations
// are reachable from outside their block only when nothing in scope
// declares the name.
func buildScopes(block *lessNode, s *scope) {
	block.scope = s
	s.declare(block.children)
	for _, n := range block.children {
		if !n.isBlock() {
			continue
		}
		inner := newScope(s, s.nested)
		buildScopes(n, inner)
		for name := range inner.declarations {
			s.nested[name] = inner
		}
	}
}

func renderNodes(out *strings.Builder, nodes []*lessNode, s *scope, indent string) error {
	for _, n := range nodes {
		if n.isBlock() {
			prelude, err := expandStatement(n.text, s)
			if err != nil {
				return err
			}
			out.WriteString(indent + prelude + " {\n")
			if err := renderNodes(out, n.children, n.scope, indent+"  "); err != nil {
				return err
			}
			out.WriteString(indent + "}\n")
			continue
		}
		if declarationPattern.MatchString(n.text) || isMixinCall(n.text) {
			continue
		}
		stmt, err := expandStatement(n.text, s)
		if err != nil {
			return err
		}
		out.WriteString(indent + stmt + ";\n")
	}
	return nil
}

// isMixinCall reports statements such as ".m();" or "#ns > .m;": not an
// at-rule and no colon outside strings and parentheses. Mixins are not
// evaluated, so the call is dropped.
func isMixinCall(stmt string) bool {
	if strings.HasPrefix(stmt, "@") {
		return false
	}
	parens := 0
	for i := 0; i < len(stmt); i++ {
		switch c := stmt[i]; c {
		case '"', '\'':
			i = stringEnd(stmt, i) - 1
		case '(':
			parens++
		case ')':
			if parens > 0 {
				parens--
			}
		case ':':
			if parens == 0 {
				return false
			}
		}
	}
	return true
}

// expandStatement keeps a leading at-rule keyword so it is not mistaken for a
// variable reference.
func expandStatement(stmt string, s *scope) (string, error) {
	keyword, rest := splitAtKeyword(stmt)
	value, err := s.expand(rest, nil)
	if err != nil {
		return "", err
	}
	return keyword + value, nil
}

func splitAtKeyword(stmt string) (string, string) {
	if !strings.HasPrefix(stmt, "@") || declarationPattern.MatchString(stmt) {
		return "", stmt
	}
	idx := strings.IndexAny(stmt, " \t\n(")
	if idx < 0 {
		return stmt, ""
	}
	return stmt[:idx], stmt[idx:]
}

func (s *scope) lookup(name string, stack []scopeKey) (string, error) {
	owner := s
	for owner != nil {
		if _, ok := owner.declarations[name]; ok {
			break
		}
		owner = owner.parent
	}
	if owner == nil {
		owner = s.nested[name]
	}
	if owner == nil {
		return "", fmt.Errorf("variable @%s is undefined", name)
	}
	if value, ok := owner.resolved[name]; ok {
		return value, nil
	}

	key := scopeKey{scope: owner, name: name}
	for _, seen := range stack {
		if seen == key {
			return "", fmt.Errorf("recursive variable definition for @%s", name)
		}
	}

	value, err := owner.expand(owner.declarations[name], append(stack, key))
	if err != nil {
		return "", err
	}
	value = unescape(value)
	owner.resolved[name] = value
	return value, nil
}

// expand substitutes references outside string literals and @{name}
// interpolations inside them.
func (s *scope) expand(value string, stack []scopeKey) (string, error) {
	var out strings.Builder
	for i := 0; i < len(value); {
		if c := value[i]; c == '"' || c == '\'' {
			end := stringEnd(value, i)
			lit, err := s.substitute(interpolatePattern, value[i:end], stack)
			if err != nil {
				return "", err
			}
			out.WriteString(lit)
			i = end
			continue
		}
		next := strings.IndexAny(value[i:], `"'`)
		end := len(value)
		if next >= 0 {
			end = i + next
		}
		plain, err := s.substitute(referencePattern, value[i:end], stack)
		if err != nil {
			return "", err
		}
		out.WriteString(plain)
		i = end
	}
	return out.String(), nil
}

func (s *scope) substitute(pattern *regexp.Regexp, text string, stack []scopeKey) (string, error) {
	var firstErr error
	expanded := pattern.ReplaceAllStringFunc(text, func(ref string) string {
		if firstErr != nil {
			return ref
		}
		m := pattern.FindStringSubmatch(ref)
		name := m[1]
		if name == "" && len(m) > 2 {
			name = m[2]
		}
		resolved, err := s.lookup(name, stack)
		if err != nil {
			firstErr = err
			return ref
		}
		return resolved
	})
	if firstErr != nil {
		return "", firstErr
	}
	return expanded, nil
}

func unescape(value string) string {
	m := escapedPattern.FindStringSubmatch(value)
	if m == nil {
		return value
	}
	if m[1] != "" {
		return m[1]
	}
	return m[2]
}
