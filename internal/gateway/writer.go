package gateway

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"ark-import/internal/domain"
	"ark-import/internal/normalize"
)

// AmountColumns are totalled in the processing report.
var AmountColumns = []string{"月額賃料", "管理費", "駐車場代", "その他費用1", "その他費用2", "管理前滞納額"}

const (
	ruleWidth   = 60
	timeLayout  = "2006/01/02 15:04:05"
	stampLayout = "20060102_150405"
)

// FileReportWriter implements the ReportWriter interface on the local file system.
type FileReportWriter struct {
	encoding string
	now      func() time.Time
	printer  *message.Printer
}

// NewFileReportWriter creates a writer that encodes the output CSV in enc.
// A nil clock uses time.Now.
func NewFileReportWriter(enc string, now func() time.Time) *FileReportWriter {
	if now == nil {
		now = time.Now
	}
	return &FileReportWriter{
		encoding: enc,
		now:      now,
		printer:  message.NewPrinter(language.Japanese),
	}
}

// WriteOutput writes the header and every row of table to path,
// creating parent directories as needed.
func (w *FileReportWriter) WriteOutput(ctx context.Context, path string, table *domain.OutputTable) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	defer f.Close()

	buf := bufio.NewWriter(f)
	enc, err := encodeWriter(buf, w.encoding)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(enc)
	cw.UseCRLF = true
	if err := cw.Write(table.Columns); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, row := range table.Rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	if c, ok := enc.(interface{ Close() error }); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("failed to encode %s: %w", path, err)
		}
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return f.Close()
}

// WriteErrorLog writes entries to a timestamped UTF-8 text file in dir and
// returns its path. Nothing is written for an empty log.
func (w *FileReportWriter) WriteErrorLog(ctx context.Context, dir string, entries []domain.ErrorEntry) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}
	now := w.now()

	var sb strings.Builder
	sb.WriteString("データ変換エラーログ\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&sb, "生成日時: %s\n", now.Format(timeLayout))
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	for i, e := range entries {
		fmt.Fprintf(&sb, "エラー %d:\n", i+1)
		writeField(&sb, "stage", string(e.Stage))
		writeField(&sb, "row", fmt.Sprint(e.Row))
		writeField(&sb, "contract_number", e.ContractNumber)
		writeField(&sb, "field", e.Field)
		writeField(&sb, "value", e.Value)
		writeField(&sb, "reason", e.Reason)
		sb.WriteString("\n")
	}

	path := filepath.Join(dir, "error_log_"+now.Format(stampLayout)+".txt")
	return path, writeText(path, sb.String())
}

func writeField(sb *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(sb, "  %s: %s\n", key, value)
}

// WriteSummary writes the processing report for s to a timestamped UTF-8
// text file in dir and returns its path.
func (w *FileReportWriter) WriteSummary(ctx context.Context, dir string, s *domain.ProcessingSummary) (string, error) {
	now := w.now()
	v := s.Validation

	var sb strings.Builder
	sb.WriteString("アーク新規登録データ変換 処理レポート\n")
	sb.WriteString(strings.Repeat("=", ruleWidth) + "\n")
	fmt.Fprintf(&sb, "処理日時: %s\n", now.Format(timeLayout))
	if s.RunID != "" {
		fmt.Fprintf(&sb, "実行ID: %s\n", s.RunID)
	}
	sb.WriteString(strings.Repeat("=", ruleWidth) + "\n\n")

	sb.WriteString("【処理結果サマリー】\n")
	writeAligned(&sb, [][2]string{
		{"元データレコード数", w.printer.Sprintf("%d件", v.OriginalCount)},
		{"除外レコード数", w.printer.Sprintf("%d件", v.ExcludedCount)},
		{"  - 重複による除外", w.printer.Sprintf("%d件", v.DuplicateCount)},
		{"  - 検証エラーによる除外", w.printer.Sprintf("%d件", v.ExcludedCount-v.DuplicateCount)},
		{"変換エラー", w.printer.Sprintf("%d件", len(s.TransformErrors))},
		{"出力レコード数", w.printer.Sprintf("%d件", s.OutputRowCount)},
	})
	sb.WriteString("\n")

	sb.WriteString("【出力ファイル情報】\n")
	writeAligned(&sb, [][2]string{
		{"ファイル名", s.OutputFileName},
		{"カラム数", fmt.Sprintf("%d列", s.OutputColumnSize)},
		{"エンコーディング", s.Encoding},
	})

	if s.Output != nil {
		if _, ok := s.Output.Column(AmountColumns[0]); ok {
			sb.WriteString("\n【金額情報サマリー】\n")
			var lines [][2]string
			for _, col := range AmountColumns {
				values, ok := s.Output.Column(col)
				if !ok {
					continue
				}
				total, avg := sumAndMean(values)
				lines = append(lines, [2]string{col, w.printer.Sprintf("合計 %d円, 平均 %.0f円", total, avg)})
			}
			writeAligned(&sb, lines)
		}
	}

	path := filepath.Join(dir, "processing_report_"+now.Format(stampLayout)+".txt")
	return path, writeText(path, sb.String())
}

// writeAligned pads labels to a common display width so the values line
// up even when labels mix full-width and ASCII text.
func writeAligned(sb *strings.Builder, lines [][2]string) {
	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l[0]))
	}
	for _, l := range lines {
		fmt.Fprintf(sb, "%s: %s\n", runewidth.FillRight(l[0], width), l[1])
	}
}

func sumAndMean(values []string) (int, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	total := 0
	for _, v := range values {
		total += normalize.SafeInt(v)
	}
	return total, float64(total) / float64(len(values))
}

func writeText(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
