package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ark-import/internal/address"
	"ark-import/internal/domain"
	"ark-import/internal/mapping"
	"ark-import/internal/normalize"
	"ark-import/internal/transform"
	"ark-import/internal/validation"
)

var (
	// ErrReportNotFound means no new contract report could be located.
	ErrReportNotFound = errors.New("contract report not found")
	// ErrContractListNotFound means no contract list could be located.
	ErrContractListNotFound = errors.New("contract list not found")
	// ErrNoValidRecords means validation left nothing to convert.
	ErrNoValidRecords = errors.New("no records left after validation")
)

// ConvertRequest describes one conversion run. Empty input paths are
// resolved by discovery in DownloadsDir.
type ConvertRequest struct {
	ReportPath       string
	ContractListPath string
	DownloadsDir     string
	ReportPattern    string
	ContractPattern  string
	TemplatePath     string
	OutputPath       string
	OutputDir        string
	Encoding         string
	SkipReport       bool
}

// ConversionUseCase orchestrates loading, validation, conversion and output.
type ConversionUseCase struct {
	repo       DatasetRepository
	writer     ReportWriter
	validator  *validation.Validator
	parser     *address.Parser
	minExitFee int
	now        func() time.Time
	logger     *zap.Logger
}

// Option configures a ConversionUseCase.
type Option func(*ConversionUseCase)

// WithLogger sets the base logger; every run adds its own run_id.
func WithLogger(l *zap.Logger) Option {
	return func(uc *ConversionUseCase) { uc.logger = l }
}

// WithClock sets the clock used for date stamps and file names.
func WithClock(now func() time.Time) Option {
	return func(uc *ConversionUseCase) { uc.now = now }
}

// WithMinExitFee sets the exit-fee floor.
func WithMinExitFee(floor int) Option {
	return func(uc *ConversionUseCase) { uc.minExitFee = floor }
}

// NewConversionUseCase creates a new instance of the usecase.
func NewConversionUseCase(repo DatasetRepository, writer ReportWriter, validator *validation.Validator, opts ...Option) *ConversionUseCase {
	uc := &ConversionUseCase{
		repo:       repo,
		writer:     writer,
		validator:  validator,
		parser:     address.NewParser(),
		minExitFee: normalize.DefaultMinExitFee,
		now:        time.Now,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// OutputFileName is the registration file name for the given day.
func OutputFileName(now time.Time) string {
	return now.Format("0102") + "アーク新規登録.csv"
}

// Convert performs one run. Batch-level failures are returned before any
// file is written; per-row problems end up in the summary's error log.
func (uc *ConversionUseCase) Convert(ctx context.Context, req ConvertRequest) (*domain.ProcessingSummary, error) {
	runID := uuid.NewString()
	logger := uc.logger.With(zap.String("run_id", runID))

	// Step 1: Data Ingestion
	reportPath, err := uc.resolve(ctx, req.ReportPath, req.DownloadsDir, req.ReportPattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReportNotFound, err)
	}
	contractPath, err := uc.resolve(ctx, req.ContractListPath, req.DownloadsDir, req.ContractPattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContractListNotFound, err)
	}

	report, err := uc.repo.LoadDataset(ctx, reportPath)
	if err != nil {
		return nil, fmt.Errorf("could not load contract report: %w", err)
	}
	contracts, err := uc.repo.LoadDataset(ctx, contractPath)
	if err != nil {
		return nil, fmt.Errorf("could not load contract list: %w", err)
	}
	logger.Info("inputs loaded",
		zap.String("report", reportPath),
		zap.String("report_encoding", report.Encoding),
		zap.Int("report_rows", len(report.Records)),
		zap.String("contract_list", contractPath),
		zap.String("contract_encoding", contracts.Encoding),
		zap.Int("contract_rows", len(contracts.Records)),
	)

	table := mapping.WithColumns(uc.templateColumns(ctx, req.TemplatePath, logger))

	// Step 2: Validation
	result, err := uc.validator.ValidateAll(report, contracts)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if len(result.Records) == 0 {
		// No output is produced, but the rejections must stay enumerable.
		path, err := uc.writer.WriteErrorLog(ctx, reportDir(req), result.Summary.ErrorLog)
		if err != nil {
			return nil, fmt.Errorf("could not write error log: %w", err)
		}
		if path != "" {
			logger.Warn("no records left after validation, rejections logged", zap.String("path", path))
		}
		return nil, ErrNoValidRecords
	}

	// Step 3: Conversion
	transformer := transform.New(table, uc.parser,
		transform.WithClock(uc.now),
		transform.WithMinExitFee(uc.minExitFee),
		transform.WithLogger(logger),
	)
	output, transformErrs := transformer.TransformAll(result.Records)

	// Step 4: Output
	now := uc.now()
	outputPath := req.OutputPath
	if outputPath == "" {
		outputPath = filepath.Join(req.OutputDir, OutputFileName(now))
	}
	if err := uc.writer.WriteOutput(ctx, outputPath, output); err != nil {
		return nil, fmt.Errorf("could not write output: %w", err)
	}
	logger.Info("output written", zap.String("path", outputPath), zap.Int("rows", len(output.Rows)))

	summary := &domain.ProcessingSummary{
		RunID:            runID,
		ProcessedAt:      now,
		ReportSource:     report.Source,
		ContractSource:   contracts.Source,
		ReportEncoding:   report.Encoding,
		OutputPath:       outputPath,
		OutputFileName:   filepath.Base(outputPath),
		Encoding:         req.Encoding,
		Validation:       result.Summary,
		TransformErrors:  transformErrs,
		OutputRowCount:   len(output.Rows),
		OutputColumnSize: len(output.Columns),
		Output:           output,
	}

	dir := reportDir(req)
	if summary.ErrorLogPath, err = uc.writer.WriteErrorLog(ctx, dir, summary.AllErrors()); err != nil {
		return nil, fmt.Errorf("could not write error log: %w", err)
	}
	if summary.ErrorLogPath != "" {
		logger.Info("error log written", zap.String("path", summary.ErrorLogPath))
	}
	if !req.SkipReport {
		if summary.ReportPath, err = uc.writer.WriteSummary(ctx, dir, summary); err != nil {
			return nil, fmt.Errorf("could not write processing report: %w", err)
		}
		logger.Info("processing report written", zap.String("path", summary.ReportPath))
	}

	return summary, nil
}

// reportDir is where the error log and processing report are written.
func reportDir(req ConvertRequest) string {
	if req.OutputPath != "" {
		return filepath.Dir(req.OutputPath)
	}
	return req.OutputDir
}

func (uc *ConversionUseCase) resolve(ctx context.Context, path, dir, pattern string) (string, error) {
	if path != "" {
		return path, nil
	}
	return uc.repo.FindLatest(ctx, dir, pattern)
}

// templateColumns reads the template header, falling back to the built-in
// schema when the template is unset, unreadable or empty.
func (uc *ConversionUseCase) templateColumns(ctx context.Context, path string, logger *zap.Logger) []string {
	if path == "" {
		return mapping.OutputColumns()
	}
	header, err := uc.repo.LoadTemplateHeader(ctx, path)
	if err != nil || len(header) == 0 {
		logger.Warn("template header unavailable, using built-in columns",
			zap.String("template", path),
			zap.Error(err),
		)
		return mapping.OutputColumns()
	}
	if len(header) != mapping.ColumnCount {
		logger.Warn("template header width differs from built-in schema",
			zap.Int("template_columns", len(header)),
			zap.Int("builtin_columns", mapping.ColumnCount),
		)
	}
	return header
}
