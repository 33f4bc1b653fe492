package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/scriptkit/bridgegen"
	"github.com/scriptkit/bridgegen/batch"
	"github.com/scriptkit/bridgegen/domains"
	bgerrors "github.com/scriptkit/bridgegen/errors"
	"github.com/scriptkit/bridgegen/guest"
	"github.com/scriptkit/bridgegen/spec"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#90EE90"))
	pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
)

func main() {
	var (
		outDir      = flag.String("out", "bridges", "Output directory for generated modules")
		specFiles   = flag.String("spec", "", "Extra specification files, comma-separated (YAML or JSON)")
		only        = flag.String("only", "", "Generate only these domains, comma-separated")
		list        = flag.Bool("list", false, "List domains and exit")
		schema      = flag.Bool("schema", false, "Print the specification file JSON schema and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintln(os.Stderr, "logger:", err)
			os.Exit(1)
		}
		logger = l
	}
	defer logger.Sync()
	batch.SetLogger(logger.Named("batch"))
	guest.SetLogger(logger.Named("guest"))

	if *schema {
		out, err := spec.FileSchema()
		if err != nil {
			fmt.Fprintln(os.Stderr, "schema:", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	catalog, err := buildCatalog(*specFiles, *only)
	if err != nil {
		fmt.Fprintln(os.Stderr, styled(failStyle, err.Error()))
		os.Exit(1)
	}

	if *list {
		for _, d := range catalog {
			fmt.Printf("%-10s %2d functions  %s\n", d.Name, d.FunctionCount(), d.Description)
		}
		return
	}

	if *interactive {
		if err := runInteractive(catalog, *outDir); err != nil {
			fmt.Fprintln(os.Stderr, styled(failStyle, err.Error()))
			os.Exit(1)
		}
		return
	}

	report, err := bridgegen.Generate(catalog, *outDir)
	for _, w := range report {
		fmt.Printf("%s %s (%d functions)\n",
			styled(okStyle, "wrote"), styled(pathStyle, w.Path), w.Functions)
	}
	if err != nil {
		domain := bgerrors.DomainOf(err)
		if domain == "" {
			domain = "unknown"
		}
		fmt.Fprintf(os.Stderr, "%s domain %s: %v\n",
			styled(failStyle, "generation failed:"), domain, err)
		os.Exit(1)
	}
}

// buildCatalog merges the built-in catalog with any specification files and
// applies the -only filter. Spec-file domains override built-ins with the
// same name; new names append in file order.
func buildCatalog(specFiles, only string) ([]spec.Domain, error) {
	catalog := domains.Catalog()

	if specFiles != "" {
		for _, path := range strings.Split(specFiles, ",") {
			path = strings.TrimSpace(path)
			if path == "" {
				continue
			}
			loaded, err := spec.LoadFile(path)
			if err != nil {
				return nil, err
			}
			for _, d := range loaded {
				catalog = merge(catalog, d)
			}
		}
	}

	if only == "" {
		return catalog, nil
	}

	byName := make(map[string]spec.Domain, len(catalog))
	for _, d := range catalog {
		byName[d.Name] = d
	}
	var selected []spec.Domain
	for _, name := range strings.Split(only, ",") {
		name = strings.TrimSpace(name)
		d, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown domain %q", name)
		}
		selected = append(selected, d)
	}
	return selected, nil
}

func merge(catalog []spec.Domain, d spec.Domain) []spec.Domain {
	for i := range catalog {
		if catalog[i].Name == d.Name {
			catalog[i] = d
			return catalog
		}
	}
	return append(catalog, d)
}

// styled applies a style only when stdout is a terminal.
func styled(style lipgloss.Style, s string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return s
	}
	return style.Render(s)
}
