package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/trellis-fw/trellis/runtime/reflection"
)

// IntrospectOptions carries the shared flags of the introspect command
// family, pre-populated from trellis.yml.
type IntrospectOptions struct {
	Format  string
	NoColor bool
}

// NewIntrospectCommand creates the introspect command group, reading from
// the given registry and writing to out.
func NewIntrospectCommand(registry *reflection.Registry, out io.Writer, defaults IntrospectOptions) *cobra.Command {
	opts := defaults

	cmd := &cobra.Command{
		Use:   "introspect",
		Short: "Introspect the class registry",
		Long: `Introspect the Trellis class registry.

Shows every class the framework has discovered, where it was registered
from, and the configuration the registration functions attached to it.
Useful for debugging middleware ordering, route bindings, and injected
dependencies without starting the application.`,
		Example: `  # List all registered classes
  trellis introspect classes

  # Show the metadata attached to one class
  trellis introspect class /app/controllers/posts.go

  # Output in JSON format for tooling
  trellis introspect classes --format json`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.NoColor {
				color.NoColor = true
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", opts.Format, "Output format: json or table")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", opts.NoColor, "Disable colored output")

	cmd.AddCommand(newIntrospectClassesCommand(registry, out, &opts))
	cmd.AddCommand(newIntrospectClassCommand(registry, out, &opts))

	return cmd
}

// classSummary is the serializable row for 'introspect classes'.
type classSummary struct {
	Path         string    `json:"path"`
	Class        string    `json:"class"`
	RegisteredAt time.Time `json:"registered_at"`
	Methods      []string  `json:"methods,omitempty"`
}

// classDetail is the serializable output of 'introspect class <path>'.
type classDetail struct {
	classSummary
	Metadata       reflection.Meta            `json:"metadata"`
	MethodMetadata map[string]reflection.Meta `json:"method_metadata,omitempty"`
}

func newIntrospectClassesCommand(registry *reflection.Registry, out io.Writer, opts *IntrospectOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List all registered classes",
		Long: `List all registered classes in registration order.

Shows each class's source path, type, registration time, and the methods
carrying metadata. Use 'introspect class <path>' for the full metadata of a
single class.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries := make([]classSummary, 0)
			for _, path := range registry.KnownClasses() {
				rec, err := registry.Reflect(path)
				if err != nil {
					return err
				}
				summaries = append(summaries, summarize(rec))
			}

			if opts.Format == "json" {
				return writeJSON(out, summaries)
			}
			return writeClassesTable(out, summaries)
		},
	}
}

func newIntrospectClassCommand(registry *reflection.Registry, out io.Writer, opts *IntrospectOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "class <path>",
		Short: "Show the metadata attached to one class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := registry.Reflect(args[0])
			if err != nil {
				return err
			}

			detail := classDetail{
				classSummary: summarize(rec),
				Metadata:     rec.Metadata(),
			}
			if methods := rec.Methods(); len(methods) > 0 {
				detail.MethodMetadata = make(map[string]reflection.Meta, len(methods))
				for _, m := range methods {
					detail.MethodMetadata[m] = rec.MethodMetadata(m)
				}
			}

			if opts.Format == "json" {
				return writeJSON(out, detail)
			}
			return writeClassTable(out, detail)
		},
	}
}

func summarize(rec *reflection.ClassRecord) classSummary {
	return classSummary{
		Path:         rec.Path(),
		Class:        rec.Class().String(),
		RegisteredAt: rec.RegisteredAt(),
		Methods:      rec.Methods(),
	}
}

func writeJSON(out io.Writer, data any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func writeClassesTable(out io.Writer, summaries []classSummary) error {
	if len(summaries) == 0 {
		fmt.Fprintln(out, "No classes registered.")
		return nil
	}

	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)

	bold.Fprintf(out, "CLASSES (%d total)\n\n", len(summaries))
	for _, s := range summaries {
		cyan.Fprintf(out, "%s\n", s.Path)
		fmt.Fprintf(out, "  class: %s\n", s.Class)
		fmt.Fprintf(out, "  registered: %s\n", s.RegisteredAt.Format(time.RFC3339))
		if len(s.Methods) > 0 {
			fmt.Fprintf(out, "  methods with metadata: %d\n", len(s.Methods))
		}
		fmt.Fprintln(out)
	}
	return nil
}

func writeClassTable(out io.Writer, detail classDetail) error {
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)

	bold.Fprintf(out, "%s\n", detail.Path)
	fmt.Fprintf(out, "  class: %s\n", detail.Class)
	fmt.Fprintf(out, "  registered: %s\n\n", detail.RegisteredAt.Format(time.RFC3339))

	cyan.Fprintln(out, "Class metadata:")
	writeMeta(out, detail.Metadata, "  ")

	for _, method := range detail.Methods {
		fmt.Fprintln(out)
		cyan.Fprintf(out, "Method %s:\n", method)
		writeMeta(out, detail.MethodMetadata[method], "  ")
	}
	return nil
}

func writeMeta(out io.Writer, meta reflection.Meta, indent string) {
	if len(meta) == 0 {
		fmt.Fprintf(out, "%s(none)\n", indent)
		return
	}
	for namespace, entries := range meta {
		for key, value := range entries {
			fmt.Fprintf(out, "%s%s.%s = %v\n", indent, namespace, key, value)
		}
	}
}
