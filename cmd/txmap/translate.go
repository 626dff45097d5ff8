package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/txmap/internal/align"
	"github.com/inodb/txmap/internal/output"
	"github.com/inodb/txmap/internal/query"
	"github.com/inodb/txmap/internal/transcript"
	"github.com/inodb/txmap/internal/translate"
)

func newTranslateCmd() *cobra.Command {
	var (
		genomicToTranscript bool
		strict              bool
		workers             int
		verbose             bool
	)

	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate query positions between coordinate spaces",
		Long: `Translate each query row (transcript name, position) to the opposite
coordinate space. Output repeats the query columns followed by the chromosome
and the converted position. The direction applies to the whole run and
defaults to transcript-to-genomic.

The first malformed row or unknown transcript aborts the run.`,
		Example: `  txmap translate -t transcripts.tsv -q queries.tsv -o output.tsv
  txmap translate -t transcripts.duckdb -q queries.tsv --genomic-to-transcript
  cat queries.tsv | txmap translate -t transcripts.tsv -q -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := align.TranscriptToGenomic
			if genomicToTranscript {
				dir = align.GenomicToTranscript
			}
			return runTranslate(
				viper.GetString("translate.transcripts"),
				viper.GetString("translate.queries"),
				viper.GetString("translate.output"),
				dir, strict, workers, verbose,
			)
		},
	}

	cmd.Flags().StringP("transcripts", "t", "inputs/transcripts_inputs.tsv", "Transcripts input file (TSV or DuckDB store)")
	cmd.Flags().StringP("queries", "q", "inputs/queries_inputs.tsv", "Queries input file ('-' for stdin)")
	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&genomicToTranscript, "genomic-to-transcript", false, "Resolve genomic positions to transcript positions")
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject alignment strings with unrecognized characters")
	cmd.Flags().IntVar(&workers, "workers", 1, "Number of translation workers (0 = all CPUs)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable per-query debug logging")

	_ = viper.BindPFlag("translate.transcripts", cmd.Flags().Lookup("transcripts"))
	_ = viper.BindPFlag("translate.queries", cmd.Flags().Lookup("queries"))
	_ = viper.BindPFlag("translate.output", cmd.Flags().Lookup("output"))

	return cmd
}

func runTranslate(transcriptsPath, queriesPath, outputPath string, dir align.Direction, strict bool, workers int, verbose bool) error {
	logger := zap.NewNop()
	if verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer logger.Sync()
	}

	registry, err := loadRegistry(transcriptsPath, strict)
	if err != nil {
		return err
	}
	logger.Info("registry loaded",
		zap.String("path", transcriptsPath),
		zap.Int("transcripts", registry.Len()))

	parser, err := query.NewParser(queriesPath)
	if err != nil {
		return err
	}
	defer parser.Close()

	out := os.Stdout
	if outputPath != "" {
		out, err = os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer out.Close()
	}

	translator := translate.NewTranslator(registry, dir)
	translator.SetLogger(logger)
	writer := output.NewTabWriter(out)

	if workers != 1 {
		return translator.TranslateAllParallel(parser, writer, workers)
	}
	return translator.TranslateAll(parser, writer)
}

// loadRegistry loads transcripts from a TSV file, or from a DuckDB store
// when the path carries a database extension.
func loadRegistry(path string, strict bool) (*transcript.Registry, error) {
	registry := transcript.NewRegistry()

	switch filepath.Ext(path) {
	case ".duckdb", ".db":
		store, err := transcript.OpenDuckDB(path)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		if err := store.Load(registry); err != nil {
			return nil, err
		}
	default:
		loader := transcript.NewTSVLoader(path)
		loader.SetStrict(strict)
		if err := loader.Load(registry); err != nil {
			return nil, err
		}
	}

	return registry, nil
}
