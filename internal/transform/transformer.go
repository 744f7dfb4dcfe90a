// Package transform converts validated report records into rows of the
// registration template.
package transform

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"ark-import/internal/address"
	"ark-import/internal/domain"
	"ark-import/internal/mapping"
	"ark-import/internal/normalize"
)

// ErrRowPanic wraps a panic recovered while converting a single row.
var ErrRowPanic = errors.New("row conversion panicked")

// Transformer applies the conversion table to one record at a time.
// It holds no per-row state and may be reused across runs.
type Transformer struct {
	table      *mapping.Table
	parser     *address.Parser
	now        func() time.Time
	minExitFee int
	logger     *zap.Logger
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithClock sets the source of today's date stamps.
func WithClock(now func() time.Time) Option {
	return func(t *Transformer) { t.now = now }
}

// WithMinExitFee sets the exit-fee floor.
func WithMinExitFee(floor int) Option {
	return func(t *Transformer) { t.minExitFee = floor }
}

// WithLogger sets the logger used for per-row failures.
func WithLogger(l *zap.Logger) Option {
	return func(t *Transformer) { t.logger = l }
}

// New creates a transformer over table and parser.
func New(table *mapping.Table, parser *address.Parser, opts ...Option) *Transformer {
	t := &Transformer{
		table:      table,
		parser:     parser,
		now:        time.Now,
		minExitFee: normalize.DefaultMinExitFee,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// TransformRow converts one record. Later steps may overwrite columns set
// by earlier ones.
func (t *Transformer) TransformRow(rec domain.InputRecord) (domain.OutputRecord, error) {
	out := make(domain.OutputRecord, len(t.table.Columns))

	for _, f := range t.table.Fixed {
		out[f.Column] = f.Value
	}

	for _, m := range t.table.Mappings {
		raw, ok := rec.Get(m.Source)
		if !ok {
			continue
		}
		v, err := normalize.ApplyChain(m.Chain, raw)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", m.Output, err)
		}
		out[m.Output] = normalize.SafeString(v)
	}

	t.routePhones(rec, out)
	t.splitAddresses(rec, out)
	t.dispatchContact(rec, out)

	now := t.now()
	out[mapping.ColExitFee] = normalize.ExitFee(t.minExitFee,
		rec.Value(mapping.FieldRent),
		rec.Value(mapping.FieldManagementFee),
		rec.Value(mapping.FieldParkingFee),
		rec.Value(mapping.FieldOtherFee),
	)
	out[mapping.ColEntrustedDate] = normalize.Today(now)
	out[mapping.ColConfirmedDate] = normalize.Today(now)
	out[mapping.ColTakeoverInfo] = normalize.TakeoverInfo(normalize.SafeString(rec.Value(mapping.FieldMoveInDate)))

	return out, nil
}

// routePhones keeps a single contact number, preferring the mobile column.
func (t *Transformer) routePhones(rec domain.InputRecord, out domain.OutputRecord) {
	home := normalize.Phone(normalize.SafeString(rec.Value(mapping.FieldHomePhone)))
	mobile := normalize.Phone(normalize.SafeString(rec.Value(mapping.FieldMobilePhone)))
	if home != "" && mobile == "" {
		mobile, home = home, ""
	}
	out[mapping.ColHomePhone] = home
	out[mapping.ColMobilePhone] = mobile
}

func (t *Transformer) splitAddresses(rec domain.InputRecord, out domain.OutputRecord) {
	if addr := normalize.SafeString(rec.Value(mapping.FieldPropertyAddress)); addr != "" {
		building := normalize.SafeString(rec.Value(mapping.FieldPropertyName))
		room := normalize.RoomNumber(rec.Value(mapping.FieldRoomNumber))
		writeAddress(out, t.parser.SplitWithBuilding(addr, building, room),
			mapping.ColCurrentPostal, mapping.ColCurrent1, mapping.ColCurrent2, mapping.ColCurrent3)
		writeAddress(out, t.parser.Parse(addr),
			mapping.ColPropertyPostal, mapping.ColProperty1, mapping.ColProperty2, mapping.ColProperty3)
	}
	if addr := normalize.SafeString(rec.Value(mapping.FieldWorkplaceAddress)); addr != "" {
		writeAddress(out, t.parser.Parse(addr),
			mapping.ColWorkplacePostal, mapping.ColWorkplace1, mapping.ColWorkplace2, mapping.ColWorkplace3)
	}
}

// dispatchContact fills the guarantor or the emergency-contact block from
// the secondary person fields. The guarantor marker is checked first.
func (t *Transformer) dispatchContact(rec domain.InputRecord, out domain.OutputRecord) {
	kind := normalize.SafeString(rec.Value(mapping.FieldRelationshipType))
	var block mapping.ContactColumns
	switch {
	case strings.Contains(kind, mapping.MarkerGuarantor):
		block = mapping.Guarantor1
	case strings.Contains(kind, mapping.MarkerEmergencyContact):
		block = mapping.Emergency1
	default:
		return
	}

	name := normalize.SafeString(rec.Value(mapping.FieldContactName))
	if name == "" {
		return
	}

	out[block.Name] = name
	out[block.Kana] = normalize.CanonicalWidth(normalize.SafeString(rec.Value(mapping.FieldContactKana)))
	out[block.Relationship] = mapping.RelationshipOther
	if block.Birthdate != "" {
		out[block.Birthdate] = normalize.FormatDate(normalize.SafeString(rec.Value(mapping.FieldContactBirthdate)))
	}
	if addr := normalize.SafeString(rec.Value(mapping.FieldContactAddress)); addr != "" {
		writeAddress(out, t.parser.Parse(addr), block.Postal, block.Address1, block.Address2, block.Address3)
	}
	out[block.HomePhone] = normalize.Phone(normalize.SafeString(rec.Value(mapping.FieldContactHomePhone)))
	out[block.MobilePhone] = normalize.Phone(normalize.SafeString(rec.Value(mapping.FieldContactMobile)))
}

func writeAddress(out domain.OutputRecord, p domain.AddressParts, postal, pref, city, rest string) {
	out[postal] = p.PostalCode
	out[pref] = p.Prefecture
	out[city] = p.City
	out[rest] = p.Remainder
}

// TransformAll converts records in order and projects every converted row
// onto the schema. Rows that fail are skipped and reported.
func (t *Transformer) TransformAll(records []domain.InputRecord) (*domain.OutputTable, []domain.ErrorEntry) {
	table := &domain.OutputTable{
		Columns: t.table.Columns,
		Rows:    make([][]string, 0, len(records)),
	}
	var errs []domain.ErrorEntry
	for _, rec := range records {
		out, err := t.safeTransform(rec)
		if err != nil {
			t.logger.Error("row conversion failed",
				zap.Int("row", rec.Row),
				zap.Error(err),
			)
			errs = append(errs, domain.ErrorEntry{
				Stage:          domain.StageTransform,
				Row:            rec.Row,
				ContractNumber: normalize.SafeString(rec.Value(mapping.FieldContractNumber)),
				Reason:         err.Error(),
			})
			continue
		}
		table.Rows = append(table.Rows, out.Project(t.table.Columns))
	}
	return table, errs
}

func (t *Transformer) safeTransform(rec domain.InputRecord) (out domain.OutputRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("%w: %v", ErrRowPanic, r)
		}
	}()
	return t.TransformRow(rec)
}
