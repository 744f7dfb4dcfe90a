package gateway

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func toCP932(t *testing.T, s string) []byte {
	t.Helper()
	b, err := japanese.ShiftJIS.NewEncoder().String(s)
	require.NoError(t, err)
	return []byte(b)
}

func TestCSVDatasetRepository_FindLatest(t *testing.T) {
	dir := t.TempDir()
	old := writeFile(t, dir, "ContractList_20250101.csv", []byte("a\n"))
	latest := writeFile(t, dir, "ContractList_20240101.csv", []byte("a\n"))
	writeFile(t, dir, "other.csv", []byte("a\n"))

	base := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(old, base, base))
	require.NoError(t, os.Chtimes(latest, base.Add(time.Minute), base.Add(time.Minute)))

	repo := NewCSVDatasetRepository()
	got, err := repo.FindLatest(context.Background(), dir, "ContractList_*.csv")
	require.NoError(t, err)
	assert.Equal(t, latest, got)

	_, err = repo.FindLatest(context.Background(), dir, "【東京支店】①案件取込用レポート*.csv")
	assert.True(t, errors.Is(err, ErrNoMatchingFile))
}

func TestCSVDatasetRepository_LoadDataset(t *testing.T) {
	const body = "契約番号,名前1,,名前1\r\n100,山田太郎,x,重複\r\n101,佐藤\r\n"

	tests := []struct {
		name     string
		data     func(t *testing.T) []byte
		encoding string
	}{
		{"utf-8", func(t *testing.T) []byte { return []byte(body) }, EncodingUTF8},
		{"utf-8 with BOM", func(t *testing.T) []byte { return append([]byte{0xEF, 0xBB, 0xBF}, body...) }, EncodingUTF8BOM},
		{"cp932", func(t *testing.T) []byte { return toCP932(t, body) }, EncodingCP932},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "report.csv", tt.data(t))

			ds, err := NewCSVDatasetRepository().LoadDataset(context.Background(), path)
			require.NoError(t, err)

			assert.Equal(t, "report.csv", ds.Source)
			assert.Equal(t, tt.encoding, ds.Encoding)
			assert.Equal(t, []string{"契約番号", "名前1", "Unnamed: 2", "名前1.1"}, ds.Columns)
			require.Len(t, ds.Records, 2)

			first := ds.Records[0]
			assert.Equal(t, 1, first.Row)
			assert.Equal(t, "山田太郎", first.Value("名前1"))
			assert.Equal(t, "重複", first.Value("名前1.1"))

			second := ds.Records[1]
			assert.Equal(t, 2, second.Row)
			v, ok := second.Get("名前1.1")
			assert.True(t, ok, "short rows are padded")
			assert.Equal(t, "", v)
		})
	}
}

func TestCSVDatasetRepository_LoadDataset_FileErrors(t *testing.T) {
	repo := NewCSVDatasetRepository()

	_, err := repo.LoadDataset(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	empty := writeFile(t, t.TempDir(), "empty.csv", nil)
	_, err = repo.LoadDataset(context.Background(), empty)
	assert.Error(t, err)
}

func TestCSVDatasetRepository_LoadTemplateHeader(t *testing.T) {
	path := writeFile(t, t.TempDir(), "template.csv",
		toCP932(t, "引継番号,契約者氏名,Unnamed: 2,,登録日\r\n"))

	header, err := NewCSVDatasetRepository().LoadTemplateHeader(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"引継番号", "契約者氏名", "", "", "登録日"}, header)
}
