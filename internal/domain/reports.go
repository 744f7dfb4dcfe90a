package domain

import "time"

// Stage identifies which step of the run produced an ErrorEntry.
type Stage string

const (
	StageRequired  Stage = "required_fields"
	StageBirthdate Stage = "birthdate"
	StageTransform Stage = "transform"
)

// Reasons recorded in the error log.
const (
	ReasonRequiredEmpty    = "必須フィールドが空"
	ReasonBirthdateInvalid = "生年月日が不正なため空欄に補正"
)

// ErrorEntry is one enumerable non-fatal problem found during a run.
type ErrorEntry struct {
	Stage          Stage  `json:"stage"`
	Row            int    `json:"row"`
	ContractNumber string `json:"contract_number,omitempty"`
	Field          string `json:"field,omitempty"`
	Value          string `json:"value,omitempty"`
	Reason         string `json:"reason"`
}

// ValidationSummary provides the counts of the validation gate.
type ValidationSummary struct {
	OriginalCount  int          `json:"original_count"`
	ValidatedCount int          `json:"validated_count"`
	ExcludedCount  int          `json:"excluded_count"`
	DuplicateCount int          `json:"duplicate_count"`
	DuplicateIDs   []string     `json:"duplicate_ids"`
	ErrorLog       []ErrorEntry `json:"error_log"`
}

// ValidationResult is the surviving record set plus its summary.
type ValidationResult struct {
	Records []InputRecord     `json:"-"`
	Summary ValidationSummary `json:"summary"`
}

// ProcessingSummary is the top-level structure handed to the report writer.
type ProcessingSummary struct {
	RunID            string            `json:"run_id"`
	ProcessedAt      time.Time         `json:"processed_at"`
	ReportSource     string            `json:"report_source"`
	ContractSource   string            `json:"contract_list_source"`
	ReportEncoding   string            `json:"report_encoding,omitempty"`
	OutputPath       string            `json:"output_path"`
	OutputFileName   string            `json:"output_file_name"`
	ErrorLogPath     string            `json:"error_log_path,omitempty"`
	ReportPath       string            `json:"report_path,omitempty"`
	Encoding         string            `json:"encoding"`
	Validation       ValidationSummary `json:"validation"`
	TransformErrors  []ErrorEntry      `json:"transform_errors"`
	OutputRowCount   int               `json:"output_row_count"`
	OutputColumnSize int               `json:"output_column_count"`
	Output           *OutputTable      `json:"-"`
}

// AllErrors returns validation and transform errors in the order they occurred.
func (s ProcessingSummary) AllErrors() []ErrorEntry {
	all := make([]ErrorEntry, 0, len(s.Validation.ErrorLog)+len(s.TransformErrors))
	all = append(all, s.Validation.ErrorLog...)
	return append(all, s.TransformErrors...)
}
