package converter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCamelize(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"foo-bar":        "fooBar",
		"baz":            "baz",
		"btn-bg_active":  "btnBgActive",
		"text.color":     "textColor",
		"trailing-":      "trailing",
		"double--dash":   "doubleDash",
		"Upper-case":     "upperCase",
		"-leading":       "leading",
		"path/Segment-x": "path/segmentX",
	}

	for in, want := range cases {
		assert.Equal(t, want, Camelize(in), "camelize %q", in)
	}
}

func TestVariableKeyStripsFirstFlatOnly(t *testing.T) {
	t.Parallel()

	key, decl := VariableKey("@btn-flat-bg:")
	assert.Equal(t, "btnBg", key)
	assert.Equal(t, "@btn-flat-bg", decl)

	key, _ = VariableKey("@flat-flat-border:")
	assert.Equal(t, "flatBorder", key)
}

func TestExtractVariables(t *testing.T) {
	t.Parallel()

	src := "@foo-bar: red;\n@baz: 2px;\n.rule { color: @foo-bar; }\n"
	vars := ExtractVariables(src)

	require.Len(t, vars, 2)
	assert.Equal(t, Variable{Key: "fooBar", Declaration: "@foo-bar"}, vars[0])
	assert.Equal(t, Variable{Key: "baz", Declaration: "@baz"}, vars[1])
}

func TestExtractVariablesKeepsFirstPositionForDuplicateKeys(t *testing.T) {
	t.Parallel()

	vars := ExtractVariables("@a_b: 1px;\n@c: 2px;\n@a-b: 3px;\n")

	require.Len(t, vars, 2)
	assert.Equal(t, "aB", vars[0].Key)
	assert.Equal(t, "@a-b", vars[0].Declaration)
	assert.Equal(t, "c", vars[1].Key)
}

func TestExtractVariablesIgnoresNonDeclarations(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ExtractVariables("@import 'x.less';\n.a { color: red; }\n"))
	assert.Empty(t, ExtractVariables(""))
}

func TestBuildIntermediate(t *testing.T) {
	t.Parallel()

	src := "@foo-bar: red;\n@baz: 2px;"
	vars := ExtractVariables(src)

	got := BuildIntermediate(src, vars)
	want := "@foo-bar: red;\n@baz: 2px;\n@value fooBar: @foo-bar;\n@value baz: @baz;"
	assert.Equal(t, want, got)
}

func TestBuildIntermediateTerminatesLastDeclaration(t *testing.T) {
	t.Parallel()

	src := "@foo: red;\n@bar: 2px\n"
	got := BuildIntermediate(src, ExtractVariables(src))
	assert.Equal(t, "@foo: red;\n@bar: 2px\n;\n@value foo: @foo;\n@value bar: @bar;", got)

	out, err := BuiltinProcessor{}.Render(context.Background(), "", got)
	require.NoError(t, err)
	assert.Equal(t, "@value foo: red;\n@value bar: 2px;\n", out)

	rules := ".a { color: red }\n"
	assert.Equal(t, ".a { color: red }\n@value a: @a;", BuildIntermediate(rules, []Variable{{Key: "a", Declaration: "@a"}}))
}
