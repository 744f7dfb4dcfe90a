package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ark-import/internal/domain"
	"ark-import/internal/mapping"
	"ark-import/internal/usecase"
	mock_usecase "ark-import/internal/usecase/mocks"
	"ark-import/internal/validation"
)

var runTime = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newRecord(row int, kv ...string) domain.InputRecord {
	fields := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		fields[kv[i]] = kv[i+1]
	}
	return domain.NewInputRecord(row, fields)
}

func reportDataset() *domain.Dataset {
	return &domain.Dataset{
		Source:   "report.csv",
		Encoding: "cp932",
		Columns:  []string{"契約番号", "名前1", "生年月日1"},
		Records: []domain.InputRecord{
			newRecord(1, "契約番号", "100", "名前1", "山田太郎", "生年月日1", "1980/01/01"),
			newRecord(2, "契約番号", "123456", "名前1", "重複", "生年月日1", "1980/01/01"),
			newRecord(3, "契約番号", "101", "名前1", "", "生年月日1", ""),
			newRecord(4, "契約番号", "102", "名前1", "佐藤花子", "生年月日1", "1800/01/01"),
		},
	}
}

func contractDataset() *domain.Dataset {
	return &domain.Dataset{
		Source:  "contracts.csv",
		Columns: []string{"引継番号"},
		Records: []domain.InputRecord{newRecord(1, "引継番号", "0123456")},
	}
}

func newUseCase(repo usecase.DatasetRepository, writer usecase.ReportWriter) *usecase.ConversionUseCase {
	validator := validation.NewValidator([]string{"契約番号", "名前1"}, validation.DefaultMinYear, zap.NewNop())
	return usecase.NewConversionUseCase(repo, writer, validator,
		usecase.WithClock(func() time.Time { return runTime }),
		usecase.WithLogger(zap.NewNop()),
	)
}

func TestOutputFileName(t *testing.T) {
	assert.Equal(t, "0310アーク新規登録.csv", usecase.OutputFileName(runTime))
}

func TestConversionUseCase_Convert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_usecase.NewMockDatasetRepository(ctrl)
	writer := mock_usecase.NewMockReportWriter(ctrl)
	ctx := context.Background()

	req := usecase.ConvertRequest{
		DownloadsDir:    "/downloads",
		ReportPattern:   "report*.csv",
		ContractPattern: "ContractList_*.csv",
		TemplatePath:    "/downloads/template.csv",
		OutputDir:       "/out",
		Encoding:        "cp932",
	}
	wantOutput := filepath.Join("/out", "0310アーク新規登録.csv")

	repo.EXPECT().FindLatest(ctx, "/downloads", "report*.csv").Return("/downloads/report1.csv", nil)
	repo.EXPECT().FindLatest(ctx, "/downloads", "ContractList_*.csv").Return("/downloads/ContractList_1.csv", nil)
	repo.EXPECT().LoadDataset(ctx, "/downloads/report1.csv").Return(reportDataset(), nil)
	repo.EXPECT().LoadDataset(ctx, "/downloads/ContractList_1.csv").Return(contractDataset(), nil)
	repo.EXPECT().LoadTemplateHeader(ctx, "/downloads/template.csv").Return(nil, errors.New("no such file"))

	var written *domain.OutputTable
	gomock.InOrder(
		writer.EXPECT().WriteOutput(ctx, wantOutput, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, table *domain.OutputTable) error {
				written = table
				return nil
			}),
		writer.EXPECT().WriteErrorLog(ctx, "/out", gomock.Len(2)).Return("/out/error_log.txt", nil),
		writer.EXPECT().WriteSummary(ctx, "/out", gomock.Any()).Return("/out/report.txt", nil),
	)

	summary, err := newUseCase(repo, writer).Convert(ctx, req)
	require.NoError(t, err)

	require.NotNil(t, written)
	assert.Len(t, written.Columns, mapping.ColumnCount)
	require.Len(t, written.Rows, 2)
	ids, _ := written.Column("引継番号")
	assert.Equal(t, []string{"0100", "0102"}, ids)
	births, _ := written.Column("契約者生年月日")
	assert.Equal(t, []string{"1980/01/01", ""}, births)

	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, runTime, summary.ProcessedAt)
	assert.Equal(t, "report.csv", summary.ReportSource)
	assert.Equal(t, "cp932", summary.ReportEncoding)
	assert.Equal(t, "contracts.csv", summary.ContractSource)
	assert.Equal(t, wantOutput, summary.OutputPath)
	assert.Equal(t, "0310アーク新規登録.csv", summary.OutputFileName)
	assert.Equal(t, "/out/error_log.txt", summary.ErrorLogPath)
	assert.Equal(t, "/out/report.txt", summary.ReportPath)
	assert.Equal(t, 2, summary.OutputRowCount)
	assert.Equal(t, mapping.ColumnCount, summary.OutputColumnSize)
	assert.Equal(t, domain.ValidationSummary{
		OriginalCount:  4,
		ValidatedCount: 2,
		ExcludedCount:  2,
		DuplicateCount: 1,
		DuplicateIDs:   []string{"123456"},
		ErrorLog:       summary.Validation.ErrorLog,
	}, summary.Validation)
	assert.Empty(t, summary.TransformErrors)
}

func TestConversionUseCase_Convert_ExplicitPathsAndTemplate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_usecase.NewMockDatasetRepository(ctrl)
	writer := mock_usecase.NewMockReportWriter(ctrl)
	ctx := context.Background()

	header := []string{"引継番号", "", "契約者氏名"}
	repo.EXPECT().LoadDataset(ctx, "report.csv").Return(reportDataset(), nil)
	repo.EXPECT().LoadDataset(ctx, "contracts.csv").Return(contractDataset(), nil)
	repo.EXPECT().LoadTemplateHeader(ctx, "template.csv").Return(header, nil)
	writer.EXPECT().WriteOutput(ctx, "/tmp/out/custom.csv", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, table *domain.OutputTable) error {
			assert.Equal(t, header, table.Columns)
			assert.Equal(t, []string{"0100", "", "山田太郎"}, table.Rows[0])
			return nil
		})
	writer.EXPECT().WriteErrorLog(ctx, "/tmp/out", gomock.Any()).Return("", nil)

	summary, err := newUseCase(repo, writer).Convert(ctx, usecase.ConvertRequest{
		ReportPath:       "report.csv",
		ContractListPath: "contracts.csv",
		TemplatePath:     "template.csv",
		OutputPath:       "/tmp/out/custom.csv",
		SkipReport:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, "custom.csv", summary.OutputFileName)
	assert.Empty(t, summary.ErrorLogPath)
	assert.Empty(t, summary.ReportPath)
}

func TestConversionUseCase_Convert_Errors(t *testing.T) {
	discoveryErr := errors.New("no matching file")

	tests := []struct {
		name    string
		setup   func(repo *mock_usecase.MockDatasetRepository, writer *mock_usecase.MockReportWriter)
		wantErr error
	}{
		{
			name: "report not found",
			setup: func(repo *mock_usecase.MockDatasetRepository, _ *mock_usecase.MockReportWriter) {
				repo.EXPECT().FindLatest(gomock.Any(), "dl", "r*.csv").Return("", discoveryErr)
			},
			wantErr: usecase.ErrReportNotFound,
		},
		{
			name: "contract list not found",
			setup: func(repo *mock_usecase.MockDatasetRepository, _ *mock_usecase.MockReportWriter) {
				repo.EXPECT().FindLatest(gomock.Any(), "dl", "r*.csv").Return("r1.csv", nil)
				repo.EXPECT().FindLatest(gomock.Any(), "dl", "c*.csv").Return("", discoveryErr)
			},
			wantErr: usecase.ErrContractListNotFound,
		},
		{
			name: "missing required column",
			setup: func(repo *mock_usecase.MockDatasetRepository, _ *mock_usecase.MockReportWriter) {
				repo.EXPECT().FindLatest(gomock.Any(), gomock.Any(), gomock.Any()).Return("x.csv", nil).Times(2)
				repo.EXPECT().LoadDataset(gomock.Any(), "x.csv").Return(&domain.Dataset{Columns: []string{"名前1"}}, nil).Times(2)
			},
			wantErr: validation.ErrMissingRequiredColumns,
		},
		{
			name: "every record is a duplicate",
			setup: func(repo *mock_usecase.MockDatasetRepository, writer *mock_usecase.MockReportWriter) {
				report := &domain.Dataset{
					Columns: []string{"契約番号", "名前1"},
					Records: []domain.InputRecord{newRecord(1, "契約番号", "123456", "名前1", "重複")},
				}
				repo.EXPECT().FindLatest(gomock.Any(), "dl", "r*.csv").Return("r.csv", nil)
				repo.EXPECT().FindLatest(gomock.Any(), "dl", "c*.csv").Return("c.csv", nil)
				repo.EXPECT().LoadDataset(gomock.Any(), "r.csv").Return(report, nil)
				repo.EXPECT().LoadDataset(gomock.Any(), "c.csv").Return(contractDataset(), nil)
				writer.EXPECT().WriteErrorLog(gomock.Any(), "", gomock.Len(0)).Return("", nil)
			},
			wantErr: usecase.ErrNoValidRecords,
		},
		{
			name: "every record rejected keeps the rejections",
			setup: func(repo *mock_usecase.MockDatasetRepository, writer *mock_usecase.MockReportWriter) {
				report := &domain.Dataset{
					Columns: []string{"契約番号", "名前1"},
					Records: []domain.InputRecord{
						newRecord(1, "契約番号", "300", "名前1", ""),
						newRecord(2, "契約番号", "", "名前1", "田中"),
					},
				}
				repo.EXPECT().FindLatest(gomock.Any(), "dl", "r*.csv").Return("r.csv", nil)
				repo.EXPECT().FindLatest(gomock.Any(), "dl", "c*.csv").Return("c.csv", nil)
				repo.EXPECT().LoadDataset(gomock.Any(), "r.csv").Return(report, nil)
				repo.EXPECT().LoadDataset(gomock.Any(), "c.csv").Return(contractDataset(), nil)
				writer.EXPECT().WriteErrorLog(gomock.Any(), "", gomock.Len(2)).
					DoAndReturn(func(_ context.Context, _ string, entries []domain.ErrorEntry) (string, error) {
						assert.Equal(t, 1, entries[0].Row)
						assert.Equal(t, "名前1", entries[0].Field)
						assert.Equal(t, 2, entries[1].Row)
						assert.Equal(t, "契約番号", entries[1].Field)
						return "error_log.txt", nil
					})
			},
			wantErr: usecase.ErrNoValidRecords,
		},
		{
			name: "output write fails",
			setup: func(repo *mock_usecase.MockDatasetRepository, writer *mock_usecase.MockReportWriter) {
				repo.EXPECT().FindLatest(gomock.Any(), "dl", "r*.csv").Return("r.csv", nil)
				repo.EXPECT().FindLatest(gomock.Any(), "dl", "c*.csv").Return("c.csv", nil)
				repo.EXPECT().LoadDataset(gomock.Any(), "r.csv").Return(reportDataset(), nil)
				repo.EXPECT().LoadDataset(gomock.Any(), "c.csv").Return(contractDataset(), nil)
				writer.EXPECT().WriteOutput(gomock.Any(), gomock.Any(), gomock.Any()).Return(discoveryErr)
			},
			wantErr: discoveryErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock_usecase.NewMockDatasetRepository(ctrl)
			writer := mock_usecase.NewMockReportWriter(ctrl)
			tt.setup(repo, writer)

			summary, err := newUseCase(repo, writer).Convert(context.Background(), usecase.ConvertRequest{
				DownloadsDir:    "dl",
				ReportPattern:   "r*.csv",
				ContractPattern: "c*.csv",
			})
			assert.Nil(t, summary)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
