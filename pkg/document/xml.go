package document

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
)

// ParseXML parses an XML layout document. Element names become node
// types, attributes keep document order, and nested elements become
// children. Character data and comments are ignored; a layout document
// carries its text in attributes.
func ParseXML(data []byte) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var root *Node
	var stack []*Node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("document: failed to parse XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := &Node{Type: xmlName(t.Name)}
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || xmlName(a.Name) == "xmlns" {
					continue
				}
				node.Attrs = append(node.Attrs, Attr{Name: xmlName(a.Name), Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("document: multiple root elements")
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("document: empty XML document")
	}
	return root, nil
}

// xmlName flattens a namespaced XML name to the local convention layout
// attributes use ("android:text" parses with Space "android").
func xmlName(n xml.Name) string {
	return n.Local
}

// ConvertXMLToJSON converts an XML layout to the canonical indented JSON
// document, the shape the original runtime persists and re-reads.
func ConvertXMLToJSON(data []byte) ([]byte, error) {
	root, err := ParseXML(data)
	if err != nil {
		return nil, err
	}
	compact, err := root.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "    "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
