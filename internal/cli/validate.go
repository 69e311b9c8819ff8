package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/rerun/internal/manifest"
)

// ValidationResult holds manifest validation results.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	App    string   `json:"app,omitempty"`
	Pages  []string `json:"pages,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <manifest.cue>",
		Short: "Validate an app manifest",
		Long: `Validate a CUE app manifest: syntax, required fields, and page
table consistency. Reports the compiled page list on success.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	formatter.VerboseLog("Compiling manifest %s", path)

	app, err := manifest.CompileFile(path)
	if err != nil {
		var ce *manifest.CompileError
		if errors.As(err, &ce) {
			if outErr := formatter.Error("MANIFEST_INVALID", ce.Error()); outErr != nil {
				return outErr
			}
			return NewExitError(ExitFailure, ce.Error())
		}
		if outErr := formatter.Error("MANIFEST_UNREADABLE", err.Error()); outErr != nil {
			return outErr
		}
		return NewExitError(ExitCommandError, err.Error())
	}

	if formatter.Format == "json" {
		titles := make([]string, len(app.Pages))
		for i, p := range app.Pages {
			titles[i] = p.Title
		}
		return formatter.Success(ValidationResult{Valid: true, App: app.Name, Pages: titles})
	}

	fmt.Fprintf(formatter.Writer, "✓ %s: %d page(s)\n", app.Name, len(app.Pages))
	for _, p := range app.Pages {
		marker := " "
		if p.Default {
			marker = "*"
		}
		fmt.Fprintf(formatter.Writer, "  %s %s\n", marker, p.Title)
	}
	return nil
}
