package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"trecsearch/internal/adapter/cache"
	"trecsearch/internal/adapter/queryfile"
	"trecsearch/internal/adapter/retriever"
	"trecsearch/internal/adapter/runfile"
	"trecsearch/internal/logging"
	"trecsearch/internal/usecase"
)

var (
	corpusPath  string
	queriesPath string
	outputPath  string
	runTag      string
	workers     int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Evaluate a query batch and write a TREC run file",
	Long: `Build an index over the corpus, evaluate every query in the batch, and
write the ranked results as a TREC run file.

Each query line is tab-separated: model tag (and/or/ql/bm25), query name,
then one field per term. The output path defaults to the query file with
its extension swapped for .trecrun.

Examples:
  trecsearch run                                   # sciam.json.gz + P3train.tsv
  trecsearch run -c 'data/*.json.gz' -q dev.tsv    # Glob corpus, dev queries
  trecsearch run -q dev.tsv -o runs/dev.trecrun    # Explicit output path`,
	RunE: runQueries,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&corpusPath, "corpus", "c", "sciam.json.gz", "corpus file or glob pattern")
	runCmd.Flags().StringVarP(&queriesPath, "queries", "q", "P3train.tsv", "tab-separated query file")
	runCmd.Flags().StringVarP(&outputPath, "output", "o", "", "run file path (default derived from the query file)")
	runCmd.Flags().StringVar(&runTag, "tag", "", "run tag prefix for output lines (default from config)")
	runCmd.Flags().IntVar(&workers, "workers", 0, "concurrent query evaluations (default from config, 0 = one per CPU)")
}

func runQueries(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	output := outputPath
	if output == "" {
		output = deriveOutputPath(queriesPath)
	}
	tag := runTag
	if tag == "" {
		tag = cfg.Output.RunTag
	}
	workerCount := workers
	if workerCount == 0 {
		workerCount = cfg.Search.Workers
	}

	// Parse queries before the expensive index build so a bad batch fails
	// fast.
	queries, err := queryfile.ParseFile(queriesPath)
	if err != nil {
		return fmt.Errorf("failed to parse queries: %w", err)
	}

	buildResult, err := buildIndex(corpusPath)
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	searchUC := usecase.NewSearchUseCase(
		buildResult.Index,
		retriever.Params{
			Mu: cfg.Search.Mu,
			K1: cfg.Search.K1,
			K2: cfg.Search.K2,
			B:  cfg.Search.B,
		},
		workerCount,
		cache.NewScoreCache(len(queries)),
		logging.WithComponent("search"),
	)
	results, err := searchUC.Run(cmd.Context(), queries)
	if err != nil {
		return fmt.Errorf("query evaluation failed: %w", err)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create run file: %w", err)
	}
	defer f.Close()

	buf := bufio.NewWriter(f)
	writer := runfile.NewWriter(buf, tag)
	linesWritten := 0
	for _, r := range results {
		if err := writer.WriteQuery(r.Query, r.Results); err != nil {
			return err
		}
		linesWritten += len(r.Results)
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush run file: %w", err)
	}

	fmt.Printf("\nRun complete:\n")
	fmt.Printf("  Documents indexed: %d\n", buildResult.Stats.Documents)
	fmt.Printf("  Queries evaluated: %d\n", len(results))
	fmt.Printf("  Lines written:     %d\n", linesWritten)
	fmt.Printf("\nRun file stored at: %s\n", output)
	return nil
}

// deriveOutputPath swaps the query file's extension for .trecrun, so
// P3train.tsv writes P3train.trecrun next to it.
func deriveOutputPath(queriesPath string) string {
	return strings.TrimSuffix(queriesPath, filepath.Ext(queriesPath)) + ".trecrun"
}
