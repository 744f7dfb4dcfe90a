// Package validation is the gate between the raw report and the transformer:
// required fields, birthdate correction and duplicate exclusion.
package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"ark-import/internal/domain"
	"ark-import/internal/mapping"
	"ark-import/internal/normalize"
)

// ErrMissingRequiredColumns is returned when a required field is not a
// column of the report at all.
var ErrMissingRequiredColumns = errors.New("required columns missing from report")

// DefaultMinYear is the earliest birth year accepted as plausible.
const DefaultMinYear = 1900

var birthdateLayouts = []string{"2006/1/2", "2006-1-2", "2006年1月2日"}

const (
	birthdateSamples = 3
	duplicateSamples = 5
)

// Validator filters and corrects report records before conversion.
type Validator struct {
	required []string
	minYear  int
	logger   *zap.Logger
}

// NewValidator creates a validator. A nil logger discards output.
func NewValidator(required []string, minYear int, logger *zap.Logger) *Validator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Validator{required: required, minYear: minYear, logger: logger}
}

// ValidateRequiredFields drops every record with an empty required field.
// A required field that is not a column of ds aborts the batch.
func (v *Validator) ValidateRequiredFields(ds *domain.Dataset) ([]domain.InputRecord, []domain.ErrorEntry, error) {
	var missing []string
	for _, f := range v.required {
		if !ds.HasColumn(f) {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("%w: %s", ErrMissingRequiredColumns, strings.Join(missing, ", "))
	}

	kept := make([]domain.InputRecord, 0, len(ds.Records))
	var errs []domain.ErrorEntry
	for _, rec := range ds.Records {
		field, ok := v.firstEmptyRequired(rec)
		if ok {
			kept = append(kept, rec)
			continue
		}
		errs = append(errs, domain.ErrorEntry{
			Stage:          domain.StageRequired,
			Row:            rec.Row,
			ContractNumber: contractNumber(rec),
			Field:          field,
			Reason:         domain.ReasonRequiredEmpty,
		})
	}

	if len(errs) > 0 {
		v.logger.Warn("records rejected for empty required fields", zap.Int("count", len(errs)))
	}
	return kept, errs, nil
}

func (v *Validator) firstEmptyRequired(rec domain.InputRecord) (string, bool) {
	for _, f := range v.required {
		if normalize.SafeString(rec.Value(f)) == "" {
			return f, false
		}
	}
	return "", true
}

// ValidBirthdate reports whether s is empty or a date in one of the accepted
// layouts whose year is at least minYear.
func ValidBirthdate(s string, minYear int) bool {
	s = normalize.SafeString(s)
	if s == "" {
		return true
	}
	for _, layout := range birthdateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Year() >= minYear
		}
	}
	return false
}

// CorrectBirthdates blanks every invalid birthdate among fields and returns
// the corrected copy with one entry per blanked field. rec is not modified.
func (v *Validator) CorrectBirthdates(rec domain.InputRecord, fields []string) (domain.InputRecord, []domain.ErrorEntry) {
	var errs []domain.ErrorEntry
	out := rec
	for _, f := range fields {
		raw, ok := rec.Get(f)
		if !ok || ValidBirthdate(raw, v.minYear) {
			continue
		}
		out = out.With(f, "")
		errs = append(errs, domain.ErrorEntry{
			Stage:          domain.StageBirthdate,
			Row:            rec.Row,
			ContractNumber: contractNumber(rec),
			Field:          f,
			Value:          raw,
			Reason:         domain.ReasonBirthdateInvalid,
		})
	}
	return out, errs
}

// ValidateBirthdates runs CorrectBirthdates over records using the primary
// birthdate field and every column of the report that names a birthdate.
func (v *Validator) ValidateBirthdates(report *domain.Dataset, records []domain.InputRecord) ([]domain.InputRecord, []domain.ErrorEntry) {
	fields := BirthdateFields(report)
	out := make([]domain.InputRecord, 0, len(records))
	var errs []domain.ErrorEntry
	for _, rec := range records {
		fixed, e := v.CorrectBirthdates(rec, fields)
		out = append(out, fixed)
		errs = append(errs, e...)
	}

	if len(errs) > 0 {
		samples := make([]string, 0, birthdateSamples)
		for i := 0; i < len(errs) && i < birthdateSamples; i++ {
			samples = append(samples, errs[i].Field+"="+errs[i].Value+" (row "+strconv.Itoa(errs[i].Row)+")")
		}
		v.logger.Info("birthdates blanked",
			zap.Int("count", len(errs)),
			zap.Strings("samples", samples),
		)
	}
	return out, errs
}

// BirthdateFields returns the primary birthdate field followed by every
// other column of ds containing the birthdate marker.
func BirthdateFields(ds *domain.Dataset) []string {
	fields := []string{mapping.FieldBirthdate}
	for _, c := range ds.ColumnsContaining(mapping.FieldBirthdateMarker) {
		if c != mapping.FieldBirthdate {
			fields = append(fields, c)
		}
	}
	return fields
}

// BuildContractIndex collects the carryover numbers of the contract list.
// A nil list or one without the carryover column yields an empty index.
func BuildContractIndex(contracts *domain.Dataset) domain.ContractIndex {
	index := make(domain.ContractIndex)
	if contracts == nil || !contracts.HasColumn(mapping.FieldCarryoverNumber) {
		return index
	}
	for _, rec := range contracts.Records {
		if id := strings.TrimSpace(rec.Value(mapping.FieldCarryoverNumber)); id != "" {
			index[id] = struct{}{}
		}
	}
	return index
}

// CheckDuplicates excludes records whose zero-prefixed contract number is
// already registered. Records without a contract number are always kept.
func (v *Validator) CheckDuplicates(records []domain.InputRecord, index domain.ContractIndex) ([]domain.InputRecord, []string) {
	kept := make([]domain.InputRecord, 0, len(records))
	var dups []string
	for _, rec := range records {
		id := contractNumber(rec)
		if id != "" && index.Contains("0"+id) {
			dups = append(dups, id)
			continue
		}
		kept = append(kept, rec)
	}

	if len(dups) > 0 {
		v.logger.Info("duplicate contracts excluded",
			zap.Int("count", len(dups)),
			zap.Strings("samples", dups[:min(len(dups), duplicateSamples)]),
		)
	}
	return kept, dups
}

// ValidateAll runs required fields, birthdate correction and duplicate
// exclusion in that order.
func (v *Validator) ValidateAll(report, contracts *domain.Dataset) (*domain.ValidationResult, error) {
	records, errs, err := v.ValidateRequiredFields(report)
	if err != nil {
		return nil, err
	}

	records, birthErrs := v.ValidateBirthdates(report, records)
	errs = append(errs, birthErrs...)

	index := BuildContractIndex(contracts)
	if len(index) == 0 {
		v.logger.Warn("contract index is empty, duplicate check is a no-op")
	}
	records, dups := v.CheckDuplicates(records, index)

	original := len(report.Records)
	summary := domain.ValidationSummary{
		OriginalCount:  original,
		ValidatedCount: len(records),
		ExcludedCount:  original - len(records),
		DuplicateCount: len(dups),
		DuplicateIDs:   dups,
		ErrorLog:       errs,
	}
	v.logger.Info("validation finished",
		zap.Int("original", summary.OriginalCount),
		zap.Int("validated", summary.ValidatedCount),
		zap.Int("duplicates", summary.DuplicateCount),
	)
	return &domain.ValidationResult{Records: records, Summary: summary}, nil
}

func contractNumber(rec domain.InputRecord) string {
	return normalize.SafeString(rec.Value(mapping.FieldContractNumber))
}
