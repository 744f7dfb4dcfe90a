// Package mapping holds the immutable conversion tables: the output
// schema, literal defaults and the source-to-output column mappings.
package mapping

import "ark-import/internal/normalize"

// FixedValue is a literal written to an output column for every row.
type FixedValue struct {
	Column string
	Value  string
}

// ColumnMapping copies one source field into one output column, passing it
// through Chain left to right.
type ColumnMapping struct {
	Output string
	Source string
	Chain  []normalize.Kind
}

// Table bundles the read-only configuration of one conversion run.
// It is built once and shared; callers must not modify its slices.
type Table struct {
	Columns  []string
	Fixed    []FixedValue
	Mappings []ColumnMapping
}

var fixedValues = []FixedValue{
	{Column: "回収口座金融機関CD", Value: "310"},
	{Column: "回収口座金融機関名", Value: "GMOあおぞらネット銀行"},
	{Column: "回収口座支店CD", Value: "101"},
	{Column: "回収口座支店名", Value: "法人第一営業部"},
	{Column: "回収口座種類", Value: "普通"},
	{Column: "回収口座名義", Value: "アーク株式会社"},
	{Column: "契約確認日", Value: ""},
	{Column: "退去済手数料", Value: "25"},
	{Column: "入居中滞納手数料", Value: "0"},
	{Column: "更新契約手数料", Value: "1"},
	{Column: "初回振替月", Value: ""},
	{Column: "クライアントCD", Value: "10"},
	{Column: "パートナーCD", Value: ""},
	{Column: "勤務先業種", Value: ""},
	{Column: "管理会社", Value: "アーク株式会社"},
	{Column: "入居者数", Value: "1"},
	{Column: "督促手数料", Value: "2750"},
	{Column: "登録担当者", Value: "東京支店"},
}

var mappings = []ColumnMapping{
	{Output: "引継番号", Source: FieldContractNumber, Chain: []normalize.Kind{normalize.KindLeadingZero}},
	{Output: "契約者氏名", Source: FieldApplicantName, Chain: []normalize.Kind{normalize.KindRemoveHalfwidthSpace}},
	{Output: "契約者カナ", Source: FieldApplicantKana, Chain: []normalize.Kind{normalize.KindRemoveFullwidthSpace, normalize.KindCanonicalWidth}},
	{Output: "契約者生年月日", Source: FieldBirthdate, Chain: []normalize.Kind{normalize.KindDate}},
	{Output: "物件名", Source: FieldPropertyName},
	{Output: "部屋番号", Source: FieldRoomNumber, Chain: []normalize.Kind{normalize.KindRoomNumber}},
	{Output: "入居日", Source: FieldMoveInDate, Chain: []normalize.Kind{normalize.KindDate}},
	{Output: "月額賃料", Source: FieldRent, Chain: []normalize.Kind{normalize.KindAmount}},
	{Output: "管理費", Source: FieldManagementFee, Chain: []normalize.Kind{normalize.KindAmount}},
	{Output: "駐車場代", Source: FieldParkingFee, Chain: []normalize.Kind{normalize.KindAmount}},
	{Output: "その他費用1", Source: FieldOtherFee, Chain: []normalize.Kind{normalize.KindAmount}},
	{Output: "敷金", Source: FieldDeposit, Chain: []normalize.Kind{normalize.KindAmount}},
	{Output: "礼金", Source: FieldKeyMoney, Chain: []normalize.Kind{normalize.KindAmount}},
	{Output: "契約開始", Source: FieldContractStart, Chain: []normalize.Kind{normalize.KindDate}},
	{Output: "契約終了", Source: FieldContractEnd, Chain: []normalize.Kind{normalize.KindDate}},
	{Output: "契約者勤務先名", Source: FieldWorkplaceName},
	{Output: "契約者勤務先カナ", Source: FieldWorkplaceKana, Chain: []normalize.Kind{normalize.KindRemoveFullwidthSpace, normalize.KindCanonicalWidth}},
	{Output: "契約者勤務先TEL", Source: FieldWorkplacePhone, Chain: []normalize.Kind{normalize.KindPhone}},
	{Output: "管理前滞納額", Source: FieldArrears, Chain: []normalize.Kind{normalize.KindAmount}},
	{Output: "備考", Source: FieldNote},
}

// Default returns the built-in conversion table.
func Default() *Table {
	return WithColumns(OutputColumns())
}

// WithColumns returns the built-in table laid out along columns, typically
// the header of the registration template.
func WithColumns(columns []string) *Table {
	return &Table{
		Columns:  columns,
		Fixed:    fixedValues,
		Mappings: mappings,
	}
}
