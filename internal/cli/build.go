package cli

import (
	"fmt"

	"github.com/schollz/progressbar/v3"

	"trecsearch/internal/adapter/analyzer"
	"trecsearch/internal/adapter/corpus"
	"trecsearch/internal/logging"
	"trecsearch/internal/usecase"
)

// buildIndex loads the corpus at path and freezes it into an in-memory
// index, rendering a progress bar while documents are added.
func buildIndex(path string) (*usecase.BuildResult, error) {
	buildUC := usecase.NewBuildUseCase(
		corpus.NewLoader(path),
		analyzer.NewTokenizer(),
		logging.WithComponent("index"),
	)

	fmt.Printf("Indexing %s...\n", path)
	var bar *progressbar.ProgressBar
	return buildUC.Build(func(processed, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Indexing[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		bar.Set(processed)
	})
}
