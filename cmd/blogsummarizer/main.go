package main

import (
	"os"

	"github.com/spf13/cobra"

	"blogsummarizer/internal/interfaces/cli/migrate"
	"blogsummarizer/internal/interfaces/cli/server"
	"blogsummarizer/internal/interfaces/cli/summarize"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "blogsummarizer",
		Short: "Blog summarizer - extractive summaries with lexical translation",
		Long:  `blogsummarizer fetches blog posts, produces a short extractive summary, translates it word by word and stores both in a row store and a document archive.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		summarize.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
