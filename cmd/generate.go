package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"oboro/internal/formatting"
	"oboro/internal/generator"
	"oboro/internal/resolver"
	"oboro/internal/watch"
	"oboro/pkg/logging"
)

var (
	generateClean       bool
	generateWatch       bool
	generateQuiet       bool
	generateForce       bool
	generateConcurrency int
	generateExclude     []string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate INPUT OUTPUT_DIR",
	Short: "Resolve a plugin document and write the Lua loader files",
	Long: `Resolve the plugin document at INPUT (a file or a directory of fragments)
and write the generated Lua files below OUTPUT_DIR.

Generation is skipped when OUTPUT_DIR already holds the output of an
identical configuration and its startup file and subdirectories are
present. Use --force to rewrite after editing or deleting single
generated files, or --clean to start from an empty directory.

Examples:
  oboro generate plugins.yaml ~/.cache/nvim/oboro
  oboro generate plugins/ out --clean
  oboro generate plugins/ out --watch --exclude 'drafts/**'`,
	Args: cobra.ExactArgs(2),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	input, outDir := args[0], args[1]

	r, loader, err := newResolver(generateExclude)
	if err != nil {
		return err
	}

	concurrency := settings.Generate.Concurrency
	if cmd.Flags().Changed("concurrency") {
		concurrency = generateConcurrency
	}
	gen, err := generator.New(generator.Options{
		Clean:       generateClean || settings.Generate.Clean,
		Force:       generateForce,
		Concurrency: concurrency,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	run := func(ctx context.Context) error {
		return generateOnce(ctx, out, r, gen, input, outDir)
	}

	ctx := cmd.Context()
	if !generateWatch {
		return run(ctx)
	}

	if err := run(ctx); err != nil {
		logging.Error("Generate", err, "Initial generation failed, waiting for changes")
	}
	w := watch.New(input, settings.Watch.Debounce, func(path string) bool {
		return loader.Includes(input, path)
	})
	return w.Run(ctx, func(ctx context.Context, event watch.ChangeEvent) error {
		logging.Info("Generate", "%d file(s) changed, regenerating", len(event.Paths))
		return run(ctx)
	})
}

// generateOnce resolves input and writes it to outDir, reporting the result
// on out.
func generateOnce(ctx context.Context, out io.Writer, r *resolver.Resolver, gen *generator.Generator, input, outDir string) error {
	var s *spinner.Spinner
	if !generateQuiet {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
		s.Suffix = " Generating " + outDir + "..."
		s.Start()
	}

	cfg, err := r.ResolvePath(ctx, input)
	var result *generator.Result
	if err == nil {
		result, err = gen.Generate(ctx, cfg, outDir)
	}

	if s != nil {
		s.Stop()
	}
	if err != nil {
		if !generateQuiet {
			fmt.Fprintf(out, "%s\n", text.FgRed.Sprint("❌ Generation failed"))
		}
		return err
	}

	if logging.Enabled(logging.LevelDebug) {
		logging.Debug("Generate", "Result: %s", formatting.PrettyJSON(result))
	}
	if generateQuiet {
		return nil
	}
	if result.Skipped {
		fmt.Fprintf(out, "%s %s is up to date (%s)\n", text.FgYellow.Sprint("•"), result.Dir, result.Digest)
		return nil
	}
	fmt.Fprintf(out, "%s Wrote %d files to %s\n", text.FgGreen.Sprint("✓"), result.Files, result.Dir)
	return nil
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().BoolVar(&generateClean, "clean", false, "Remove OUTPUT_DIR before writing")
	generateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "Regenerate whenever INPUT changes")
	generateCmd.Flags().BoolVarP(&generateQuiet, "quiet", "q", false, "Suppress non-essential output")
	generateCmd.Flags().BoolVarP(&generateForce, "force", "f", false, "Write even when OUTPUT_DIR is up to date")
	generateCmd.Flags().IntVar(&generateConcurrency, "concurrency", 0, "Parallel file writes (default from settings)")
	generateCmd.Flags().StringSliceVar(&generateExclude, "exclude", nil, "Glob pattern of input files to skip (repeatable)")
}
