// Package gateway holds the file-system adapters: input discovery, CSV
// reading with encoding detection, and the output and report writers.
package gateway

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"ark-import/internal/domain"
)

// ErrNoMatchingFile is returned when discovery finds no candidate file.
var ErrNoMatchingFile = errors.New("no matching file")

// Blank header cells are named "Unnamed: N" on read; the template writer
// treats any such label as a positional placeholder.
const (
	unnamedPrefix = "Unnamed: "
	unnamedMarker = "Unnamed:"
)

// CSVDatasetRepository implements the DatasetRepository interface for CSV files.
type CSVDatasetRepository struct{}

// NewCSVDatasetRepository creates a new repository instance.
func NewCSVDatasetRepository() *CSVDatasetRepository {
	return &CSVDatasetRepository{}
}

// FindLatest returns the most recently modified file in dir matching pattern.
func (r *CSVDatasetRepository) FindLatest(ctx context.Context, dir, pattern string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return "", fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	type candidate struct {
		path  string
		mtime int64
	}
	candidates := make([]candidate, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		candidates = append(candidates, candidate{path: m, mtime: info.ModTime().UnixNano()})
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: %s in %s", ErrNoMatchingFile, pattern, dir)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].mtime < candidates[j].mtime
	})
	return candidates[len(candidates)-1].path, nil
}

// LoadDataset reads a whole CSV file. Every record carries every header
// column; short rows are padded with "".
func (r *CSVDatasetRepository) LoadDataset(ctx context.Context, path string) (*domain.Dataset, error) {
	reader, encoding, err := openCSV(path)
	if err != nil {
		return nil, err
	}

	raw, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}
	columns := headerLabels(raw)

	ds := &domain.Dataset{Source: filepath.Base(path), Encoding: encoding, Columns: columns}
	for row := 1; ; row++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}

		fields := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(record) {
				fields[col] = record[i]
			} else {
				fields[col] = ""
			}
		}
		ds.Records = append(ds.Records, domain.NewInputRecord(row, fields))
	}
	return ds, nil
}

// LoadTemplateHeader reads the header row of the registration template.
// Unlabelled columns come back as "".
func (r *CSVDatasetRepository) LoadTemplateHeader(ctx context.Context, path string) ([]string, error) {
	reader, _, err := openCSV(path)
	if err != nil {
		return nil, err
	}
	raw, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	header := make([]string, len(raw))
	for i, label := range raw {
		label = strings.TrimSpace(label)
		if strings.HasPrefix(label, unnamedMarker) {
			label = ""
		}
		header[i] = label
	}
	return header, nil
}

// openCSV returns a reader over the decoded file and the detected encoding.
func openCSV(path string) (*csv.Reader, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file %s: %w", path, err)
	}
	body, encoding := decode(data)

	reader := csv.NewReader(body)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader, encoding, nil
}

// headerLabels names blank header cells "Unnamed: N" and suffixes repeated
// labels with ".1", ".2", ... so every column key is unique.
func headerLabels(raw []string) []string {
	labels := make([]string, len(raw))
	seen := make(map[string]int, len(raw))
	for i, label := range raw {
		label = strings.TrimSpace(label)
		if label == "" {
			label = unnamedPrefix + strconv.Itoa(i)
		}
		if n, dup := seen[label]; dup {
			seen[label] = n + 1
			label = label + "." + strconv.Itoa(n+1)
		} else {
			seen[label] = 0
		}
		labels[i] = label
	}
	return labels
}
