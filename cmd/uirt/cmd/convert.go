package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/A0ks9/XmlRuntime-sub001/cmd/uirt/internal/config"
	"github.com/A0ks9/XmlRuntime-sub001/pkg/document"
)

func init() {
	RegisterCommand(&Command{
		Name:  "convert",
		Short: "Convert an XML layout to the JSON document form",
		Long: `Convert an XML layout to the JSON document form used at runtime.

The output preserves attribute order and nesting. With no output path
the JSON is written to stdout.

Indentation is configurable through uirt.yaml:

  convert:
    indent: 2`,
		Usage: "uirt convert <layout.xml> [output.json]",
		Run:   runConvert,
	})
}

func runConvert(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("input file is required\n\nUsage: uirt convert <layout.xml> [output.json]")
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(cwd)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	doc, err := document.ParseXML(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}
	raw, err := doc.MarshalJSON()
	if err != nil {
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", strings.Repeat(" ", cfg.Convert.Indent)); err != nil {
		return err
	}
	out.WriteByte('\n')

	if len(args) > 1 {
		if err := os.WriteFile(args[1], out.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", args[1], err)
		}
		fmt.Printf("Wrote %s\n", args[1])
		return nil
	}
	_, err = os.Stdout.Write(out.Bytes())
	return err
}
