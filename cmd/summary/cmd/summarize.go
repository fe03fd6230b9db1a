package cmd

import (
	"fmt"

	"github.com/jihooni6250/summary/internal/ocr"
	"github.com/jihooni6250/summary/internal/pipeline"
	"github.com/jihooni6250/summary/internal/summarize"
	"github.com/spf13/cobra"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <file.pdf>",
	Short: "Produce an LLM summary of a PDF",
	Long: `Run the full pipeline: extract text, title and images, OCR the images,
rank keywords and request a summary from the configured chat-completion
service.

Examples:
  summary summarize paper.pdf
  summary summarize paper.pdf --save-images ./out --keywords attention
  summary summarize paper.pdf --emphasis "evaluation" --exclude "related work"`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runSummarize,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)

	summarizeCmd.Flags().String("save-images", "", "directory to save extracted images to")
	summarizeCmd.Flags().StringSlice("keywords", nil, "only keep text blocks containing one of these keywords")
	summarizeCmd.Flags().StringSlice("emphasis", nil, "topics the summary should emphasize")
	summarizeCmd.Flags().StringSlice("exclude", nil, "topics the summary should leave out")
	summarizeCmd.Flags().Int("max-tokens", 0, "override configured completion token budget")
	summarizeCmd.Flags().Float64("temperature", -1, "override configured sampling temperature")
	summarizeCmd.Flags().Int("workers", 0, "max worker goroutines for page image extraction (0=NumCPU)")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg := *globalConfig

	if n, _ := cmd.Flags().GetInt("max-tokens"); n > 0 {
		cfg.LLM.MaxTokens = n
	}
	if t, _ := cmd.Flags().GetFloat64("temperature"); t >= 0 {
		cfg.LLM.Temperature = t
	}
	if w, _ := cmd.Flags().GetInt("workers"); w > 0 {
		cfg.Extract.Workers = w
	}

	saveDir, _ := cmd.Flags().GetString("save-images")
	keywords, _ := cmd.Flags().GetStringSlice("keywords")
	emphasis, _ := cmd.Flags().GetStringSlice("emphasis")
	exclude, _ := cmd.Flags().GetStringSlice("exclude")

	provider := summarize.NewOpenAI(summarize.OpenAIConfig{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
	})
	pl := pipeline.New(&cfg, ocr.NewTesseract(cfg.OCR.Languages...), provider)

	result, err := pl.Run(cmd.Context(), pipeline.RunRequest{
		Path:     args[0],
		SaveDir:  saveDir,
		Keywords: keywords,
		Emphasis: emphasis,
		Exclude:  exclude,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Title: %s\n\n", result.Title)
	_, _ = fmt.Fprintln(out, result.Summary)
	return nil
}
