package mapping

// Source report field labels.
const (
	FieldContractNumber    = "契約番号"
	FieldApplicantName     = "名前1"
	FieldApplicantKana     = "名前1（カナ）"
	FieldBirthdate         = "生年月日1"
	FieldHomePhone         = "自宅TEL1"
	FieldMobilePhone       = "携帯TEL1"
	FieldPropertyName      = "物件名"
	FieldRoomNumber        = "部屋番号"
	FieldPropertyAddress   = "物件住所"
	FieldWorkplaceName     = "勤務先名1"
	FieldWorkplaceKana     = "勤務先名1（カナ）"
	FieldWorkplacePhone    = "勤務先TEL1"
	FieldWorkplaceAddress  = "勤務先住所1"
	FieldRelationshipType  = "種別／続柄２"
	FieldContactName       = "名前2"
	FieldContactKana       = "名前2（カナ）"
	FieldContactBirthdate  = "生年月日2"
	FieldContactHomePhone  = "自宅TEL2"
	FieldContactMobile     = "携帯TEL2"
	FieldContactAddress    = "自宅住所2"
	FieldRent              = "賃料"
	FieldManagementFee     = "管理共益費"
	FieldParkingFee        = "駐車場料金"
	FieldOtherFee          = "その他料金"
	FieldDeposit           = "敷金"
	FieldKeyMoney          = "礼金"
	FieldMoveInDate        = "入居日"
	FieldContractStart     = "契約開始日"
	FieldContractEnd       = "契約終了日"
	FieldArrears           = "滞納額"
	FieldNote              = "備考"
	FieldBirthdateMarker   = "生年月日"
	FieldCarryoverNumber   = "引継番号"
	MarkerGuarantor        = "保証人"
	MarkerEmergencyContact = "緊急連絡"
)

// Output columns written by the transformer itself rather than by the
// declarative mapping table.
const (
	ColHomePhone   = "契約者TEL自宅"
	ColMobilePhone = "契約者TEL携帯"

	ColCurrentPostal = "契約者現住所郵便番号"
	ColCurrent1      = "契約者現住所1"
	ColCurrent2      = "契約者現住所2"
	ColCurrent3      = "契約者現住所3"

	ColPropertyPostal = "物件住所郵便番号"
	ColProperty1      = "物件住所1"
	ColProperty2      = "物件住所2"
	ColProperty3      = "物件住所3"

	ColWorkplacePostal = "契約者勤務先郵便番号"
	ColWorkplace1      = "契約者勤務先住所1"
	ColWorkplace2      = "契約者勤務先住所2"
	ColWorkplace3      = "契約者勤務先住所3"

	ColExitFee        = "退去手続き（実費）"
	ColEntrustedDate  = "管理受託日"
	ColConfirmedDate  = "申請者確認日"
	ColTakeoverInfo   = "引継情報"
	RelationshipOther = "他"
)

// ContactColumns names the output block of a guarantor or emergency contact.
// Birthdate is "" for blocks that carry none.
type ContactColumns struct {
	Name         string
	Kana         string
	Relationship string
	Birthdate    string
	Postal       string
	Address1     string
	Address2     string
	Address3     string
	HomePhone    string
	MobilePhone  string
}

// Guarantor1 is the first guarantor block.
var Guarantor1 = ContactColumns{
	Name:         "保証人１氏名",
	Kana:         "保証人１カナ",
	Relationship: "保証人１契約者との関係",
	Birthdate:    "保証人１生年月日",
	Postal:       "保証人１郵便番号",
	Address1:     "保証人１住所1",
	Address2:     "保証人１住所2",
	Address3:     "保証人１住所3",
	HomePhone:    "保証人１TEL自宅",
	MobilePhone:  "保証人１TEL携帯",
}

// Emergency1 is the first emergency-contact block.
var Emergency1 = ContactColumns{
	Name:         "緊急連絡人１氏名",
	Kana:         "緊急連絡人１カナ",
	Relationship: "緊急連絡人１契約者との関係",
	Postal:       "緊急連絡人１郵便番号",
	Address1:     "緊急連絡人１住所1",
	Address2:     "緊急連絡人１住所2",
	Address3:     "緊急連絡人１住所3",
	HomePhone:    "緊急連絡人１TEL自宅",
	MobilePhone:  "緊急連絡人１TEL携帯",
}
