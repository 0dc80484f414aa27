package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	statsCorpus string
	statsTop    int
	statsToken  string
	statsDoc    string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Build the index and print collection statistics",
	Long: `Build an index over the corpus and print its collection statistics
without evaluating any queries. Useful for sanity-checking a corpus and for
inspecting individual tokens and documents.

Examples:
  trecsearch stats -c sciam.json.gz                 # Collection aggregates
  trecsearch stats -c sciam.json.gz --top 20        # Most frequent tokens
  trecsearch stats -c sciam.json.gz --token united  # One token's statistics
  trecsearch stats -c sciam.json.gz --token united --doc 24323-art19`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVarP(&statsCorpus, "corpus", "c", "sciam.json.gz", "corpus file or glob pattern")
	statsCmd.Flags().IntVar(&statsTop, "top", 0, "print the N most frequent tokens")
	statsCmd.Flags().StringVar(&statsToken, "token", "", "print statistics for one token")
	statsCmd.Flags().StringVar(&statsDoc, "doc", "", "print statistics for one document")
}

func runStats(cmd *cobra.Command, args []string) error {
	buildResult, err := buildIndex(statsCorpus)
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}
	idx := buildResult.Index
	stats := buildResult.Stats

	fmt.Printf("\nCollection statistics:\n")
	fmt.Printf("  Documents:      %d\n", stats.Documents)
	fmt.Printf("  Unique tokens:  %d\n", stats.UniqueTokens)
	fmt.Printf("  Total tokens:   %d\n", stats.TotalTokens)
	fmt.Printf("  Avg doc length: %.2f\n", stats.AvgDocLen)

	if statsToken != "" {
		fmt.Printf("\nToken %q:\n", statsToken)
		fmt.Printf("  Document frequency:   %d\n", idx.DocumentFrequency(statsToken))
		fmt.Printf("  Collection frequency: %d\n", idx.CollectionTermFrequency(statsToken))
	}

	if statsDoc != "" {
		fmt.Printf("\nDocument %q:\n", statsDoc)
		fmt.Printf("  Length: %d\n", idx.DocumentLength(statsDoc))
		if statsToken != "" {
			fmt.Printf("  Occurrences of %q: %d\n", statsToken, idx.TermFrequency(statsToken, statsDoc))
		}
	}

	if statsTop > 0 {
		fmt.Printf("\nTop %d tokens:\n", statsTop)
		for i, tc := range idx.TopTokens(statsTop) {
			fmt.Printf("  %4d  %-20s %d\n", i+1, tc.Token, tc.Count)
		}
	}

	return nil
}
