package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"trecsearch/config"
	"trecsearch/internal/logging"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "trecsearch",
	Short: "Batch retrieval over a story corpus with boolean and ranked models",
	Long: `trecsearch builds an in-memory inverted index over a JSON story corpus and
evaluates tab-separated query batches against it with four retrieval models:
boolean AND and OR, query likelihood with Dirichlet smoothing, and BM25.
Results are written as a TREC run file, one ranked line per match.

Example usage:
  trecsearch run -c sciam.json.gz -q P3train.tsv   # Evaluate a query batch
  trecsearch stats -c sciam.json.gz                # Inspect the index`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			wd, wdErr := os.Getwd()
			if wdErr != nil {
				return fmt.Errorf("failed to get working directory: %w", wdErr)
			}
			cfg, err = config.LoadFromDir(wd)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./trecsearch.yaml)")
}

func GetConfig() *config.Config {
	return cfg
}
