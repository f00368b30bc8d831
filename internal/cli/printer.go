// Package cli renders vocabulary, history and translation results for the terminal.
package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/at-ishikawa/monglot/internal/history"
	"github.com/at-ishikawa/monglot/internal/vocabulary"
)

const timeLayout = "2006-01-02 15:04:05"

// Printer writes command output to a single writer.
type Printer struct {
	writer io.Writer
	bold   *color.Color
	green  *color.Color
	yellow *color.Color
	faint  *color.Color
}

func NewPrinter(writer io.Writer) *Printer {
	return &Printer{
		writer: writer,
		bold:   color.New(color.Bold),
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		faint:  color.New(color.Faint),
	}
}

// PrintVocabulary writes one aligned row per word.
func (p *Printer) PrintVocabulary(entries []vocabulary.Entry) error {
	if len(entries) == 0 {
		return p.println(p.faint.Sprint("no words yet"))
	}

	tw := tabwriter.NewWriter(p.writer, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n",
		p.bold.Sprint("WORD"), p.bold.Sprint("TRANSLATION"), p.bold.Sprint("UPDATED"),
	); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	for _, entry := range entries {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n",
			entry.Word, entry.Translation, formatTime(entry.UpdatedAt),
		); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("tw.Flush() > %w", err)
	}
	return nil
}

// PrintHistory writes records in the order given, which is newest first when read from the log.
func (p *Printer) PrintHistory(records []history.Record) error {
	if len(records) == 0 {
		return p.println(p.faint.Sprint("no history yet"))
	}

	for _, record := range records {
		if _, err := fmt.Fprintf(p.writer, "%s %s\n  en:  %s\n  mnw: %s\n",
			p.bold.Sprintf("#%d", record.ID),
			p.faint.Sprint(formatTime(record.CreatedAt)),
			record.EN,
			record.MNW,
		); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
	}
	return nil
}

func (p *Printer) PrintLookupResult(result vocabulary.LookupResult) error {
	if result.Learned {
		return p.println(p.green.Sprintf(`Learned %s as "%s"`, p.bold.Sprint(result.Word), result.Translation))
	}
	return p.println(p.yellow.Sprintf(`%s is already known as "%s"`, p.bold.Sprint(result.Word), result.Translation))
}

func (p *Printer) PrintUpdated(word, translation string) error {
	return p.println(p.green.Sprintf(`Updated %s to "%s"`, p.bold.Sprint(word), translation))
}

func (p *Printer) PrintDeleted(word string) error {
	return p.println(p.green.Sprintf("Deleted %s", p.bold.Sprint(word)))
}

func (p *Printer) PrintAppended(record history.Record) error {
	return p.println(p.green.Sprintf("Saved history #%d", record.ID))
}

// PrintJSON writes raw indented. Invalid JSON is written unchanged.
func (p *Printer) PrintJSON(raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		buf.Reset()
		buf.Write(raw)
	}
	return p.println(buf.String())
}

func (p *Printer) Println(format string, args ...any) error {
	return p.println(fmt.Sprintf(format, args...))
}

func (p *Printer) println(line string) error {
	if _, err := fmt.Fprintln(p.writer, line); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}
