// File: codec.go
// Title: Order-Preserving Encoding
// Description: Encodes and decodes Dict as JSON, YAML and TOML while keeping
//              key order. JSON goes through go-ordered-map, YAML through
//              yaml.v3 nodes, TOML through BurntSushi/toml metadata.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package mapx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a document encoding
type Format int

const (
	// FormatUnknown is the zero Format
	FormatUnknown Format = iota
	FormatJSON
	FormatYAML
	FormatTOML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name such as "json", "yaml", "yml" or "toml"
func ParseFormat(name string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	case "toml":
		return FormatTOML, true
	default:
		return FormatUnknown, false
	}
}

// FormatFromPath detects the format from a file extension
func FormatFromPath(path string) Format {
	f, _ := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	return f
}

// MarshalJSON implements json.Marshaler. Keys are written in order.
func (d *Dict[K, V]) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}
	if d.om == nil {
		return []byte("{}"), nil
	}
	return d.om.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler. The decoded pairs replace the
// current contents in document order; null leaves d unchanged. For
// Dict[string, any] nested objects become *Dict[string, any] so their order
// survives too.
func (d *Dict[K, V]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	if doc, ok := any(d).(*Dict[string, any]); ok {
		decoded, err := jsonDocument(data)
		if err != nil {
			return err
		}
		doc.om = decoded.om
		return nil
	}

	om := orderedmap.New[K, V]()
	if err := json.Unmarshal(data, om); err != nil {
		return err
	}
	d.om = om
	return nil
}

// MarshalYAML implements yaml.Marshaler by emitting an ordered mapping node
func (d *Dict[K, V]) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range d.All() {
		keyNode, valueNode := new(yaml.Node), new(yaml.Node)
		if err := keyNode.Encode(k); err != nil {
			return nil, err
		}
		if err := valueNode.Encode(v); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. A null document yields an empty
// Dict; anything but a mapping is rejected.
func (d *Dict[K, V]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.DocumentNode && len(value.Content) == 1 {
		value = value.Content[0]
	}
	if value.Kind == yaml.AliasNode && value.Alias != nil {
		value = value.Alias
	}

	d.Clear()
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return errFormat("mapx.Dict.UnmarshalYAML", FormatYAML,
			errors.New("expected a mapping at line "+strconv.Itoa(value.Line)))
	}

	if doc, ok := any(d).(*Dict[string, any]); ok {
		decoded, err := yamlMapping(value)
		if err != nil {
			return err
		}
		doc.om = decoded.om
		return nil
	}

	for i := 0; i+1 < len(value.Content); i += 2 {
		var k K
		var v V
		if err := value.Content[i].Decode(&k); err != nil {
			return err
		}
		if p, ok := any(&v).(*any); ok {
			decoded, err := yamlValue(value.Content[i+1])
			if err != nil {
				return err
			}
			*p = decoded
		} else if err := value.Content[i+1].Decode(&v); err != nil {
			return err
		}
		d.Set(k, v)
	}
	return nil
}

// yamlMapping decodes a mapping node in document order. Merge keys (<<)
// fill in keys the mapping does not set itself.
func yamlMapping(node *yaml.Node) (*Dict[string, any], error) {
	d := New[string, any]()
	var merged []*Dict[string, any]

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping keys must be scalars", keyNode.Line)
		}

		value, err := yamlValue(valueNode)
		if err != nil {
			return nil, err
		}
		if keyNode.Tag == "!!merge" {
			switch m := value.(type) {
			case *Dict[string, any]:
				merged = append(merged, m)
			case []any:
				for _, item := range m {
					if inner, ok := item.(*Dict[string, any]); ok {
						merged = append(merged, inner)
					}
				}
			}
			continue
		}
		d.Set(keyNode.Value, value)
	}

	for _, m := range merged {
		d.SetDefaults(m)
	}
	return d, nil
}

// yamlValue decodes node into plain Go values, except that mappings become
// *Dict[string, any]
func yamlValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return yamlValue(node.Content[0])
	case yaml.AliasNode:
		return yamlValue(node.Alias)
	case yaml.MappingNode:
		return yamlMapping(node)
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := yamlValue(item)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	default:
		var v any
		err := node.Decode(&v)
		return v, err
	}
}

// jsonDocument decodes a JSON object token by token so nested objects keep
// their order as *Dict[string, any]
func jsonDocument(data []byte) (*Dict[string, any], error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok != json.Delim('{') {
		return nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}
	return jsonObject(dec)
}

// jsonObject reads the members of an object whose opening brace has been
// consumed
func jsonObject(dec *json.Decoder) (*Dict[string, any], error) {
	d := New[string, any]()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected an object key, got %v", tok)
		}
		value, err := jsonValue(dec)
		if err != nil {
			return nil, err
		}
		d.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return d, nil
}

func jsonValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch tok {
	case json.Delim('{'):
		return jsonObject(dec)
	case json.Delim('['):
		items := []any{}
		for dec.More() {
			v, err := jsonValue(dec)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return items, nil
	default:
		return tok, nil
	}
}

// Decode parses a document into a Dict with string keys, in document order.
// Nested mappings are decoded as *Dict[string, any] and keep their order as
// well. Empty input and a null document yield an empty Dict.
func Decode(data []byte, format Format) (*Dict[string, any], error) {
	const op = "mapx.Decode"

	switch format {
	case FormatJSON:
		d := New[string, any]()
		if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
			return d, nil
		}
		if err := json.Unmarshal(data, d); err != nil {
			return nil, errFormat(op, format, err)
		}
		return d, nil
	case FormatYAML:
		d := New[string, any]()
		if len(bytes.TrimSpace(data)) == 0 {
			return d, nil
		}
		if err := yaml.Unmarshal(data, d); err != nil {
			return nil, errFormat(op, format, err)
		}
		return d, nil
	case FormatTOML:
		return decodeTOML(data)
	default:
		return nil, errFormat(op, format, errors.New("unsupported format"))
	}
}

// Encode renders a Dict with string keys in the given format, keeping order
func Encode[V any](d *Dict[string, V], format Format) ([]byte, error) {
	const op = "mapx.Encode"

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return nil, errEncode(op, format, err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(d)
		if err != nil {
			return nil, errEncode(op, format, err)
		}
		return data, nil
	case FormatTOML:
		return encodeTOML(d)
	default:
		return nil, errEncode(op, format, errors.New("unsupported format"))
	}
}

// decodeTOML keeps the order of keys as they appear in the document, at
// every level. Keys the metadata does not list on their own (dotted keys)
// follow in sorted order.
func decodeTOML(data []byte) (*Dict[string, any], error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, errFormat("mapx.Decode", FormatTOML, err)
	}

	order := make(map[string][]string)
	for _, key := range md.Keys() {
		parent := strings.Join(key[:len(key)-1], "\x00")
		order[parent] = append(order[parent], key[len(key)-1])
	}
	return tomlTable(raw, "", order), nil
}

// tomlTable turns a decoded table into a Dict ordered by the key paths the
// metadata recorded under path
func tomlTable(table map[string]any, path string, order map[string][]string) *Dict[string, any] {
	d := New[string, any]()
	add := func(k string) {
		v, ok := table[k]
		if !ok || d.Has(k) {
			return
		}
		child := k
		if path != "" {
			child = path + "\x00" + k
		}
		d.Set(k, tomlValue(v, child, order))
	}

	for _, k := range order[path] {
		add(k)
	}
	for _, k := range slices.Sorted(maps.Keys(table)) {
		add(k)
	}
	return d
}

func tomlValue(v any, path string, order map[string][]string) any {
	switch t := v.(type) {
	case map[string]any:
		return tomlTable(t, path, order)
	case []map[string]any:
		items := make([]any, len(t))
		for i, table := range t {
			items[i] = tomlTable(table, path, order)
		}
		return items
	case []any:
		items := make([]any, len(t))
		for i, item := range t {
			items[i] = tomlValue(item, path, order)
		}
		return items
	default:
		return v
	}
}

// encodeTOML writes plain key/value pairs first and tables after them, each
// group in Dict order, because TOML does not allow a bare key after a table
// header.
func encodeTOML[V any](d *Dict[string, V]) ([]byte, error) {
	var values, tables bytes.Buffer
	for k, v := range d.All() {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(map[string]any{k: plain(v)}); err != nil {
			return nil, errEncode("mapx.Encode", FormatTOML, err)
		}
		if strings.HasPrefix(strings.TrimSpace(buf.String()), "[") {
			if tables.Len() > 0 {
				tables.WriteByte('\n')
			}
			tables.Write(bytes.TrimLeft(buf.Bytes(), "\n"))
			continue
		}
		values.Write(buf.Bytes())
	}

	if values.Len() > 0 && tables.Len() > 0 {
		values.WriteByte('\n')
	}
	values.Write(tables.Bytes())
	return values.Bytes(), nil
}

// plain turns nested string-keyed Dicts into native maps so encoders that do
// not know Dict can handle them
func plain(v any) any {
	switch t := v.(type) {
	case *Dict[string, any]:
		m := make(map[string]any, t.Len())
		for k, inner := range t.All() {
			m[k] = plain(inner)
		}
		return m
	case []any:
		out := make([]any, len(t))
		for i, inner := range t {
			out[i] = plain(inner)
		}
		return out
	default:
		return v
	}
}
