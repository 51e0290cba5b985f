package document

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses the YAML rendition of the canonical document shape:
//
//	type: Linear
//	attributes:
//	  orientation: vertical
//	children:
//	  - type: Label
//	    attributes: {text: "Hi"}
//
// The walk works on yaml.Node so attribute order survives; a plain map
// decode would shuffle it.
func ParseYAML(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("document: failed to parse YAML: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("document: empty YAML document")
	}
	node, err := decodeYAMLNode(doc.Content[0])
	if err != nil {
		return nil, fmt.Errorf("document: failed to parse YAML: %w", err)
	}
	return node, nil
}

func decodeYAMLNode(n *yaml.Node) (*Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: node must be a mapping", n.Line)
	}

	node := &Node{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		switch key.Value {
		case "type":
			if val.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: type must be a scalar", val.Line)
			}
			node.Type = val.Value

		case "attributes":
			if val.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("line %d: attributes must be a mapping", val.Line)
			}
			for j := 0; j+1 < len(val.Content); j += 2 {
				ak, av := val.Content[j], val.Content[j+1]
				if av.Kind != yaml.ScalarNode {
					return nil, fmt.Errorf("line %d: attribute %q must be a scalar", av.Line, ak.Value)
				}
				node.Attrs = append(node.Attrs, Attr{Name: ak.Value, Value: av.Value})
			}

		case "children":
			if val.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("line %d: children must be a sequence", val.Line)
			}
			for _, c := range val.Content {
				child, err := decodeYAMLNode(c)
				if err != nil {
					return nil, err
				}
				node.Children = append(node.Children, child)
			}
		}
	}

	if node.Type == "" {
		return nil, fmt.Errorf("line %d: node missing required \"type\"", n.Line)
	}
	return node, nil
}
