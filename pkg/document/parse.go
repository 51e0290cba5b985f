package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Parse sniffs the document format and dispatches to the matching
// parser: '<' means XML, '{' means JSON, anything else is tried as YAML.
func Parse(data []byte) (*Node, error) {
	for _, r := range string(data) {
		if unicode.IsSpace(r) {
			continue
		}
		switch r {
		case '<':
			return ParseXML(data)
		case '{':
			return ParseJSON(data)
		default:
			return ParseYAML(data)
		}
	}
	return nil, fmt.Errorf("document: empty document")
}

// ParseFile reads and parses a document, preferring the file extension
// over content sniffing.
func ParseFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("document: failed to read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return ParseXML(data)
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(data)
	}
}
