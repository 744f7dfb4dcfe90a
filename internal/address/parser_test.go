package address

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ark-import/internal/domain"
)

func TestPostalCode(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantCode  string
		wantToken string
	}{
		{name: "hyphenated with mark", in: "〒150-0013 東京都渋谷区恵比寿1-2-3", wantCode: "150-0013", wantToken: "150-0013"},
		{name: "full-width hyphen", in: "〒150－0013東京都", wantCode: "150-0013", wantToken: "150－0013"},
		{name: "prolonged sound mark", in: "150ー0013 東京都", wantCode: "150-0013", wantToken: "150ー0013"},
		{name: "contiguous digits", in: "1500013 東京都渋谷区", wantCode: "150-0013", wantToken: "1500013"},
		{name: "full-width digits", in: "〒１５０－００１３ 東京都", wantCode: "150-0013", wantToken: "１５０－００１３"},
		{name: "text before mark ignored", in: "1234567 〒150-0013 東京都", wantCode: "150-0013", wantToken: "150-0013"},
		{name: "none", in: "東京都渋谷区恵比寿1-2-3", wantCode: "", wantToken: ""},
		{name: "empty", in: "", wantCode: "", wantToken: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, token := PostalCode(tt.in)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestParser_Parse(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name string
		in   string
		want domain.AddressParts
	}{
		{
			name: "tokyo special ward wins over generic patterns",
			in:   "東京都渋谷区恵比寿1-2-3",
			want: domain.AddressParts{Prefecture: "東京都", City: "渋谷区", Remainder: "恵比寿1-2-3"},
		},
		{
			name: "postal code with mark",
			in:   "〒150-0013 東京都渋谷区恵比寿1-2-3",
			want: domain.AddressParts{PostalCode: "150-0013", Prefecture: "東京都", City: "渋谷区", Remainder: "恵比寿1-2-3"},
		},
		{
			name: "contiguous postal code",
			in:   "〒5300001大阪府大阪市北区梅田1-1-1",
			want: domain.AddressParts{PostalCode: "530-0001", Prefecture: "大阪府", City: "大阪市", Remainder: "北区梅田1-1-1"},
		},
		{
			name: "tokyo city outside the wards",
			in:   "東京都八王子市元本郷町3-24-1",
			want: domain.AddressParts{Prefecture: "東京都", City: "八王子市", Remainder: "元本郷町3-24-1"},
		},
		{
			name: "county town",
			in:   "北海道虻田郡倶知安町北1条東2丁目",
			want: domain.AddressParts{Prefecture: "北海道", City: "虻田郡倶知安町", Remainder: "北1条東2丁目"},
		},
		{
			name: "ward pattern when no city suffix precedes it",
			in:   "神奈川県横浜区テスト1-1",
			want: domain.AddressParts{Prefecture: "神奈川県", City: "横浜区", Remainder: "テスト1-1"},
		},
		{
			name: "no prefecture",
			in:   "横浜市中区山下町1",
			want: domain.AddressParts{City: "横浜市", Remainder: "中区山下町1"},
		},
		{
			name: "no city",
			in:   "沖縄県　番地不明",
			want: domain.AddressParts{Prefecture: "沖縄県", Remainder: "番地不明"},
		},
		{
			name: "empty",
			in:   "",
			want: domain.AddressParts{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Parse(tt.in))
		})
	}
}

func TestParser_Parse_AllPrefectures(t *testing.T) {
	p := NewParser()
	assert.Len(t, Prefectures, 47)

	for _, pref := range Prefectures {
		t.Run(pref, func(t *testing.T) {
			got := p.Parse(pref + "見本市本町1-2-3")
			assert.Equal(t, pref, got.Prefecture)
			assert.Equal(t, "見本市", got.City)
			assert.Equal(t, "本町1-2-3", got.Remainder)
		})
	}
}

func TestParser_Parse_PostalMarkNotInRemainder(t *testing.T) {
	p := NewParser()
	codes := []string{"100-0001", "060-0808", "900-8570", "812-0011"}

	for _, code := range codes {
		got := p.Parse("〒" + code + " 番地のみ5-6")
		assert.Equal(t, code, got.PostalCode)
		assert.NotContains(t, got.Remainder, "〒")
		assert.NotContains(t, got.Remainder, code)
		assert.Equal(t, "番地のみ5-6", got.Remainder)
	}
}

func TestParser_SpecialWards(t *testing.T) {
	p := NewParser()
	assert.Len(t, SpecialWards, 23)

	for _, ward := range SpecialWards {
		got := p.Parse("東京都" + ward + "一丁目1")
		assert.Equal(t, ward, got.City)
		assert.Equal(t, "一丁目1", got.Remainder)
	}
}

func TestParser_SplitWithBuilding(t *testing.T) {
	p := NewParser()

	got := p.SplitWithBuilding("東京都港区芝公園4-2-8", "タワーハイツ", "1203")
	assert.Equal(t, "港区", got.City)
	assert.Equal(t, "芝公園4-2-8　タワーハイツ　1203", got.Remainder)

	got = p.SplitWithBuilding("東京都港区芝公園4-2-8", "", "")
	assert.Equal(t, "芝公園4-2-8", got.Remainder)

	got = p.SplitWithBuilding("東京都港区", "タワーハイツ", "")
	assert.Equal(t, "タワーハイツ", got.Remainder)

	got = p.SplitWithBuilding("", "", "101")
	assert.Equal(t, domain.AddressParts{Remainder: "101"}, got)
}

func TestParser_Parse_ReconstructsCleanedInput(t *testing.T) {
	p := NewParser()
	in := "〒150-0013 東京都渋谷区恵比寿1-2-3"

	got := p.Parse(in)
	rebuilt := got.Prefecture + got.City + got.Remainder
	assert.True(t, strings.HasSuffix(in, rebuilt))
}
