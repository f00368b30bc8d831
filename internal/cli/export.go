package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/at-ishikawa/monglot/internal/history"
	"github.com/at-ishikawa/monglot/internal/pdf"
	"github.com/at-ishikawa/monglot/internal/vocabulary"
)

// VocabularyMarkdown renders entries as a Markdown table.
func VocabularyMarkdown(entries []vocabulary.Entry) []byte {
	var sb strings.Builder
	sb.WriteString("# Vocabulary\n\n")
	sb.WriteString("| Word | Translation |\n")
	sb.WriteString("| --- | --- |\n")
	for _, entry := range entries {
		fmt.Fprintf(&sb, "| %s | %s |\n", escapeCell(entry.Word), escapeCell(entry.Translation))
	}
	return []byte(sb.String())
}

// HistoryMarkdown renders records as a Markdown table, keeping their order.
func HistoryMarkdown(records []history.Record) []byte {
	var sb strings.Builder
	sb.WriteString("# Translation history\n\n")
	sb.WriteString("| ID | Created | English | Mon |\n")
	sb.WriteString("| --- | --- | --- | --- |\n")
	for _, record := range records {
		fmt.Fprintf(&sb, "| %d | %s | %s | %s |\n",
			record.ID,
			formatTime(record.CreatedAt),
			escapeCell(record.EN),
			escapeCell(record.MNW),
		)
	}
	return []byte(sb.String())
}

// Export writes markdown to outputPath. A .pdf path is rendered as PDF, anything else is written as Markdown.
func Export(markdown []byte, outputPath string) (string, error) {
	if strings.EqualFold(filepath.Ext(outputPath), ".pdf") {
		path, err := pdf.Render(markdown, outputPath)
		if err != nil {
			return "", fmt.Errorf("pdf.Render() > %w", err)
		}
		return path, nil
	}

	if err := os.WriteFile(outputPath, markdown, 0o644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", outputPath, err)
	}
	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return outputPath, nil
	}
	return absPath, nil
}

func escapeCell(value string) string {
	value = strings.ReplaceAll(value, "|", `\|`)
	return strings.ReplaceAll(value, "\n", " ")
}
