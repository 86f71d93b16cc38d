package converter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the shape of the generated data module.
type Format string

const (
	FormatJS   Format = "js"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var jsEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// Formats lists every supported output format.
func Formats() []Format {
	return []Format{FormatJS, FormatJSON, FormatYAML}
}

// WriteModule renders entries in the requested format, preserving order.
func WriteModule(w io.Writer, entries []Entry, format Format) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case FormatJS, "":
		data = renderJS(entries)
	case FormatJSON:
		data, err = renderJSON(entries)
	case FormatYAML:
		data, err = renderYAML(entries)
	default:
		return fmt.Errorf("unsupported module format %q", format)
	}
	if err != nil {
		return err
	}

	_, err = w.Write(data)
	return err
}

func renderJS(entries []Entry) []byte {
	fields := make([]string, 0, len(entries))
	for _, e := range entries {
		fields = append(fields, fmt.Sprintf(`%s: "%s"`, e.Key, jsEscaper.Replace(e.Value)))
	}
	return []byte("export default {\n " + strings.Join(fields, ",\n ") + " \n}; \n")
}

func renderJSON(entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, e := range entries {
		if i > 0 {
			buf.WriteString(",")
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.WriteString("\n  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
	}
	if len(entries) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

func renderYAML(entries []Entry) ([]byte, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range entries {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Value, Style: yaml.DoubleQuotedStyle},
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
