package cmd

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/A0ks9/XmlRuntime-sub001/cmd/uirt/internal/config"
	"github.com/A0ks9/XmlRuntime-sub001/pkg/attr"
	"github.com/A0ks9/XmlRuntime-sub001/pkg/document"
	"github.com/A0ks9/XmlRuntime-sub001/pkg/factory"
	"github.com/A0ks9/XmlRuntime-sub001/pkg/inflater"
	"github.com/A0ks9/XmlRuntime-sub001/pkg/view"
	"github.com/A0ks9/XmlRuntime-sub001/pkg/widgets"
)

func init() {
	RegisterCommand(&Command{
		Name:  "inflate",
		Short: "Inflate a layout document and print the view tree",
		Long: `Inflate a layout document against the stock widget catalog and print
the resulting view tree, one line per view, indented by depth.

Accepts XML, JSON, or YAML input; the format is picked by file
extension, falling back to content sniffing. Diagnostics collected
during inflation are listed after the tree.

Strict mode and the type-name namespace come from uirt.yaml:

  inflate:
    namespace: widget
    strict: false`,
		Usage: "uirt inflate <layout.{xml,json,yaml}> [--strict]",
		Run:   runInflate,
	})
}

func runInflate(args []string) error {
	var path string
	strict := false
	for _, arg := range args {
		if arg == "--strict" {
			strict = true
			continue
		}
		if strings.HasPrefix(arg, "-") {
			return fmt.Errorf("unknown flag %q", arg)
		}
		if path != "" {
			return fmt.Errorf("exactly one input file expected")
		}
		path = arg
	}
	if path == "" {
		return fmt.Errorf("input file is required\n\nUsage: uirt inflate <layout.{xml,json,yaml}> [--strict]")
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(cwd)
	if err != nil {
		return err
	}

	doc, err := document.ParseFile(path)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	attrs := attr.NewRegistry()
	f := factory.NewRegistry()
	f.SetNamespace(cfg.Inflate.Namespace)
	classes := factory.NewClassIndex()
	widgets.Install(attrs, f, classes)

	inf := inflater.New(attrs, f, classes)
	inf.Strict = strict || cfg.Inflate.Strict

	res, err := inf.Inflate(view.NewContext(), doc, nil)
	if err != nil {
		return err
	}

	printTree(res.Root, 0)

	if len(res.Diagnostics) > 0 {
		fmt.Printf("\n%d diagnostic(s):\n", len(res.Diagnostics))
		for _, d := range res.Diagnostics {
			fmt.Printf("  - %v\n", d)
		}
	}
	return nil
}

func printTree(v view.View, depth int) {
	if v == nil {
		return
	}
	fmt.Printf("%s%s%s\n", strings.Repeat("  ", depth), typeName(v), describe(v))
	if group, ok := v.(view.Group); ok {
		for _, child := range group.Children() {
			printTree(child, depth+1)
		}
	}
}

func typeName(v view.View) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// describe renders the details worth a glance per view.
func describe(v view.View) string {
	var parts []string
	if id := v.RuntimeID(); id != 0 {
		parts = append(parts, fmt.Sprintf("id=%d", id))
	}
	switch w := v.(type) {
	case *widgets.Label:
		parts = append(parts, fmt.Sprintf("text=%q", w.Text))
	case *widgets.Button:
		parts = append(parts, fmt.Sprintf("text=%q", w.Text))
	case *widgets.Checkbox:
		parts = append(parts, fmt.Sprintf("text=%q checked=%v", w.Text, w.Checked))
	case *widgets.Image:
		parts = append(parts, fmt.Sprintf("src=%q", w.Source))
	case *widgets.ProgressBar:
		parts = append(parts, fmt.Sprintf("progress=%d/%d", w.Progress, w.Max))
	case *widgets.Linear:
		if w.Orientation == widgets.Horizontal {
			parts = append(parts, "horizontal")
		} else {
			parts = append(parts, "vertical")
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return " [" + strings.Join(parts, " ") + "]"
}
