// Package document parses declarative UI documents into the canonical
// node tree the inflater walks. JSON is the native format; XML and YAML
// front ends produce the same tree, so the engine only ever sees one
// shape: a type name, an ordered attribute list, and child nodes.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Attr is one attribute in document order. Order is preserved because
// duplicate detection in the dispatcher gives the first occurrence the
// win, and that must follow the document, not map iteration.
type Attr struct {
	Name  string
	Value string
}

// Node is one element of the parsed document tree.
type Node struct {
	// Type is the node-type name, short or fully qualified.
	Type string
	// Attrs lists the attributes in document order.
	Attrs []Attr
	// Children are the nested nodes in document order.
	Children []*Node
}

// Get returns the first value for name.
func (n *Node) Get(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// ParseJSON parses the canonical JSON document shape:
//
//	{"type": "Label", "attributes": {"text": "Hi"}, "children": [...]}
//
// Attribute order inside the "attributes" object is preserved, including
// textual duplicates, which is why this is a token walk rather than a map
// decode.
func ParseJSON(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	node, err := decodeJSONNode(dec)
	if err != nil {
		return nil, fmt.Errorf("document: failed to parse JSON: %w", err)
	}
	return node, nil
}

func decodeJSONNode(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	node := &Node{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyTok)
		}

		switch key {
		case "type":
			tok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			s, ok := tok.(string)
			if !ok {
				return nil, fmt.Errorf("node type must be a string, got %v", tok)
			}
			node.Type = s

		case "attributes":
			attrs, err := decodeJSONAttrs(dec)
			if err != nil {
				return nil, err
			}
			node.Attrs = attrs

		case "children":
			children, err := decodeJSONChildren(dec)
			if err != nil {
				return nil, err
			}
			node.Children = children

		default:
			// Unknown keys are skipped, not rejected; documents may carry
			// tooling metadata.
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, err
			}
		}
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, err
	}
	if node.Type == "" {
		return nil, fmt.Errorf("node missing required \"type\"")
	}
	return node, nil
}

func decodeJSONAttrs(dec *json.Decoder) ([]Attr, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("\"attributes\" must be an object, got %v", tok)
	}

	var attrs []Attr
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected attribute name, got %v", keyTok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, Attr{Name: key, Value: scalarString(valTok)})
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, err
	}
	return attrs, nil
}

func decodeJSONChildren(dec *json.Decoder) ([]*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("\"children\" must be an array, got %v", tok)
	}

	var children []*Node
	for dec.More() {
		child, err := decodeJSONNode(dec)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	if _, err := dec.Token(); err != nil { // closing ']'
		return nil, err
	}
	return children, nil
}

// scalarString renders a scalar JSON token as the attribute string the
// dispatcher's value parser consumes. Numbers keep their literal form.
func scalarString(tok json.Token) string {
	switch v := tok.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		b, _ := json.Marshal(v)
		return string(b)
	case bool:
		if v {
			return "true"
		}
		return "false"
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// MarshalJSON renders the canonical document shape with attributes in
// document order. The "attributes" and "children" keys are omitted when
// empty, matching the converter's output.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.encodeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) encodeJSON(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	buf.WriteString(`"type":`)
	writeJSONString(buf, n.Type)

	if len(n.Attrs) > 0 {
		buf.WriteString(`,"attributes":{`)
		for i, a := range n.Attrs {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONString(buf, a.Name)
			buf.WriteByte(':')
			writeJSONString(buf, a.Value)
		}
		buf.WriteByte('}')
	}

	if len(n.Children) > 0 {
		buf.WriteString(`,"children":[`)
		for i, c := range n.Children {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := c.encodeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	}
	buf.WriteByte('}')
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	b, _ := json.Marshal(s)
	buf.Write(b)
}
