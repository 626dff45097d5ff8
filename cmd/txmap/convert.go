package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/inodb/txmap/internal/transcript"
)

func newConvertCmd() *cobra.Command {
	var (
		inputPath  string
		outputPath string
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a transcripts TSV file to a DuckDB store",
		Long: `Convert a tab-separated transcripts file to a DuckDB database so large
transcript sets can be reloaded by 'txmap translate' without re-parsing.`,
		Example: `  txmap convert -i transcripts.tsv -o transcripts.duckdb
  txmap convert -i transcripts.tsv.gz -o transcripts.duckdb --strict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(inputPath, outputPath, strict)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Transcripts TSV input file")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output DuckDB file path")
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject alignment strings with unrecognized characters")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runConvert(inputPath, outputPath string, strict bool) error {
	// Ensure output has a database extension
	if filepath.Ext(outputPath) != ".duckdb" && filepath.Ext(outputPath) != ".db" {
		outputPath = outputPath + ".duckdb"
	}

	// Remove existing output file if it exists
	if _, err := os.Stat(outputPath); err == nil {
		if err := os.Remove(outputPath); err != nil {
			return fmt.Errorf("remove existing file: %w", err)
		}
	}

	fmt.Fprintf(os.Stderr, "Converting transcripts to DuckDB...\n")
	fmt.Fprintf(os.Stderr, "  Input:  %s\n", inputPath)
	fmt.Fprintf(os.Stderr, "  Output: %s\n", outputPath)

	registry := transcript.NewRegistry()
	loader := transcript.NewTSVLoader(inputPath)
	loader.SetStrict(strict)
	if err := loader.Load(registry); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Loaded %d transcripts\n", registry.Len())

	store, err := transcript.OpenDuckDB(outputPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.CreateSchema(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Writing transcripts to DuckDB...\n")
	var insertCount int
	for _, name := range registry.Names() {
		t, err := registry.Get(name)
		if err != nil {
			return err
		}
		if err := store.Insert(t); err != nil {
			return err
		}
		insertCount++
		if insertCount%1000 == 0 {
			fmt.Fprintf(os.Stderr, "  Inserted %d transcripts...\n", insertCount)
		}
	}

	// Verify count
	finalCount, err := store.Count()
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "\nConversion complete!\n")
	fmt.Fprintf(os.Stderr, "  Transcripts: %d\n", finalCount)
	fmt.Fprintf(os.Stderr, "  Output file: %s\n", outputPath)

	return nil
}
