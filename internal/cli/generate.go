package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ananya54321/handwritten/pkg/handwriting"
)

// generateCommand creates the generate command, the main entry point.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		output      string
		format      string
		ink         string
		ruled       bool
		seed        uint64
		noCache     bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "generate [file]",
		Short: "Render text as simulated handwriting",
		Long: `Render text as simulated handwriting.

Reads the input text from a file, or from standard input when the
argument is "-". The default output is a PDF document; the png/buf and
jpeg/buf formats write one image file per page, and the b64 variants
write a JSON file with base64-encoded pages.

Seeded runs (--seed) are reproducible and their results are cached
locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args[0])
			if err != nil {
				return err
			}

			opts := handwriting.Options{
				Text:       text,
				OutputType: handwriting.OutputType(format),
				InkColor:   ink,
				Ruled:      ruled,
				Seed:       seed,
				NoCache:    noCache,
				Logger:     c.Logger,
			}
			if interactive {
				if err := pickOptions(&opts); err != nil {
					return err
				}
			}
			return c.runGenerate(withLogger(cmd.Context(), c.Logger), args[0], opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (pdf) or base path (page images)")
	cmd.Flags().StringVarP(&format, "format", "f", string(handwriting.DefaultOutputType),
		"output type: "+strings.Join(handwriting.SupportedOutputTypes, ", "))
	cmd.Flags().StringVar(&ink, "ink", "", "ink color: red, blue (default black)")
	cmd.Flags().BoolVar(&ruled, "ruled", false, "draw ruled-paper lines and margin")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for reproducible output (0 = random)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick options interactively")

	return cmd
}

// runGenerate executes the pipeline and writes the resulting artifact.
func (c *CLI) runGenerate(ctx context.Context, input string, opts handwriting.Options, output string) error {
	logger := loggerFromContext(ctx)
	runner := c.newRunner(opts.NoCache)
	defer runner.Close()

	track := newProgress(logger)
	spinner := newSpinner(ctx, "Writing pages...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return err
	}
	spinner.Stop()
	track.done(fmt.Sprintf("Rendered %d pages", result.Stats.PageCount))

	paths, err := writeResult(result, basePath(output, input))
	if err != nil {
		return err
	}

	printSuccess("Rendered %s", StyleValue.Render(string(result.OutputType)))
	printStats(result.Stats.PageCount, result.Stats.Width, result.CacheInfo.Hit)
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// readInput reads the text to render from a file, or stdin for "-".
func readInput(arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("read input %s: %w", arg, err)
	}
	return string(data), nil
}

// artifactExts is the set of extensions stripped from --output so it can
// serve as a base path for multi-file outputs.
var artifactExts = map[string]bool{"pdf": true, "png": true, "jpeg": true, "jpg": true, "json": true}

// basePath derives the base output path from the output flag and input
// file name. Stdin input falls back to the application name.
func basePath(output, input string) string {
	if output == "" {
		if input == "-" {
			return appName
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if artifactExts[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeResult writes the artifact files for a pipeline result and
// returns their paths. PDFs become a single file, buf pages one image
// file each, and b64 pages a single JSON document.
func writeResult(result *handwriting.Result, base string) ([]string, error) {
	switch {
	case result.OutputType.IsPDF():
		path := base + ".pdf"
		if err := os.WriteFile(path, result.PDF, 0o644); err != nil {
			return nil, err
		}
		return []string{path}, nil

	case result.OutputType.IsBase64():
		path := base + ".json"
		data, err := json.MarshalIndent(map[string][]string{"pages": result.PagesBase64}, "", "  ")
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, err
		}
		return []string{path}, nil

	default:
		paths := make([]string, 0, len(result.Pages))
		for i, page := range result.Pages {
			path := fmt.Sprintf("%s_page%d.%s", base, i+1, result.OutputType.Ext())
			if err := os.WriteFile(path, page, 0o644); err != nil {
				return nil, err
			}
			paths = append(paths, path)
		}
		return paths, nil
	}
}
