package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"ark-import/internal/domain"
	"ark-import/internal/gateway"
	"ark-import/internal/logging"
	"ark-import/internal/usecase"
	"ark-import/internal/validation"
)

var (
	reportPath   string
	contractPath string
	outputPath   string
	printJSON    bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert the latest contract report into the registration CSV",
	Long: `Convert loads the new-contract report and the ContractList (the most recent
files matching the configured patterns unless given explicitly), validates and
de-duplicates the rows, and writes MMDDアーク新規登録.csv plus its reports.`,
	RunE: runConvert,
}

func init() {
	flags := convertCmd.Flags()
	flags.StringVar(&reportPath, "report", "", "new-contract report CSV (default: latest match in downloads dir)")
	flags.StringVar(&contractPath, "contract-list", "", "ContractList CSV (default: latest match in downloads dir)")
	flags.StringVarP(&outputPath, "output", "o", "", "output CSV path (default: <output-dir>/MMDDアーク新規登録.csv)")
	flags.String("downloads-dir", "", "directory searched for input files")
	flags.String("template", "", "registration template CSV supplying the header row")
	flags.String("output-dir", "", "directory for the output CSV and reports")
	flags.String("encoding", "", "output encoding: cp932, shift_jis, utf-8, utf-8-sig")
	flags.Bool("skip-report", false, "do not write the processing report")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.BoolVar(&printJSON, "json", false, "print the run summary as JSON on stdout")

	_ = viper.BindPFlag("input.downloads_dir", flags.Lookup("downloads-dir"))
	_ = viper.BindPFlag("input.template_path", flags.Lookup("template"))
	_ = viper.BindPFlag("output.dir", flags.Lookup("output-dir"))
	_ = viper.BindPFlag("output.encoding", flags.Lookup("encoding"))
	_ = viper.BindPFlag("output.skip_report", flags.Lookup("skip-report"))
	_ = viper.BindPFlag("logging.level", flags.Lookup("log-level"))

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(viper.GetViper())
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	validator := validation.NewValidator(cfg.Validation.RequiredFields, cfg.Validation.MinBirthYear, logger)
	uc := usecase.NewConversionUseCase(
		gateway.NewCSVDatasetRepository(),
		gateway.NewFileReportWriter(cfg.Output.Encoding, nil),
		validator,
		usecase.WithLogger(logger),
		usecase.WithMinExitFee(cfg.Fees.MinExitFee),
	)

	summary, err := uc.Convert(cmd.Context(), usecase.ConvertRequest{
		ReportPath:       reportPath,
		ContractListPath: contractPath,
		DownloadsDir:     cfg.Input.DownloadsDir,
		ReportPattern:    cfg.Input.ReportPattern,
		ContractPattern:  cfg.Input.ContractPattern,
		TemplatePath:     cfg.Input.TemplatePath,
		OutputPath:       outputPath,
		OutputDir:        cfg.Output.Dir,
		Encoding:         cfg.Output.Encoding,
		SkipReport:       cfg.Output.SkipReport,
	})
	if err != nil {
		logger.Error("conversion failed", zap.Error(err))
		return err
	}

	if printJSON {
		return writeJSON(cmd, summary)
	}
	printSummary(cmd, summary)
	return nil
}

func writeJSON(cmd *cobra.Command, summary *domain.ProcessingSummary) error {
	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func printSummary(cmd *cobra.Command, s *domain.ProcessingSummary) {
	w := cmd.OutOrStdout()
	v := s.Validation
	fmt.Fprintf(w, "元データレコード数: %d件\n", v.OriginalCount)
	fmt.Fprintf(w, "除外レコード数: %d件 (重複 %d件)\n", v.ExcludedCount, v.DuplicateCount)
	fmt.Fprintf(w, "出力レコード数: %d件\n", s.OutputRowCount)
	fmt.Fprintf(w, "出力ファイル: %s\n", s.OutputPath)
	if s.ErrorLogPath != "" {
		fmt.Fprintf(w, "エラーログ: %s\n", s.ErrorLogPath)
	}
	if s.ReportPath != "" {
		fmt.Fprintf(w, "処理レポート: %s\n", s.ReportPath)
	}
}
