package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jihooni6250/summary/internal/ocr"
	"github.com/jihooni6250/summary/internal/pipeline"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file.pdf>",
	Short: "Extract text, title, keywords and OCR output without summarizing",
	Long: `Run every pipeline stage short of the remote summarization call and
print the intermediate artifacts. Useful for inspecting what the summary
would be based on.

Examples:
  summary extract paper.pdf
  summary extract paper.pdf --keywords transformer --format json`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("format", "f", "text", "output format (text, json)")
	extractCmd.Flags().StringSlice("keywords", nil, "only keep text blocks containing one of these keywords")
	extractCmd.Flags().Bool("skip-ocr", false, "skip OCR over extracted images")
	extractCmd.Flags().Int("workers", 0, "max worker goroutines for page image extraction (0=NumCPU)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := *globalConfig
	if w, _ := cmd.Flags().GetInt("workers"); w > 0 {
		cfg.Extract.Workers = w
	}

	keywords, _ := cmd.Flags().GetStringSlice("keywords")
	skipOCR, _ := cmd.Flags().GetBool("skip-ocr")

	pl := pipeline.New(&cfg, ocr.NewTesseract(cfg.OCR.Languages...), nil)
	result, err := pl.Extract(cmd.Context(), pipeline.RunRequest{
		Path:     args[0],
		Keywords: keywords,
		SkipOCR:  skipOCR,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format, _ := cmd.Flags().GetString("format"); format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"title":        result.Title,
			"text":         result.Text,
			"ocr_text":     result.OCRText,
			"cleaned_text": result.CleanedText,
			"keywords":     result.Keywords,
			"image_count":  result.ImageCount,
		})
	}

	_, _ = fmt.Fprintf(out, "Title: %s\n", result.Title)
	_, _ = fmt.Fprintf(out, "Images: %d\n", result.ImageCount)
	_, _ = fmt.Fprintf(out, "Keywords: %s\n\n", strings.Join(result.Keywords, ", "))
	_, _ = fmt.Fprintln(out, result.Text)
	if result.OCRText != "" {
		_, _ = fmt.Fprintf(out, "\n--- OCR ---\n%s\n", result.OCRText)
	}
	return nil
}
