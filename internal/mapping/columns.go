package mapping

// ColumnCount is the width of the registration template.
const ColumnCount = 111

// outputColumns is the registration template header. Blank labels are
// positional placeholders the downstream importer expects to stay empty.
var outputColumns = [ColumnCount]string{
	"引継番号",
	"契約者氏名",
	"契約者カナ",
	"契約者生年月日",
	"契約者TEL自宅",
	"契約者TEL携帯",
	"契約者現住所郵便番号",
	"契約者現住所1",
	"契約者現住所2",
	"契約者現住所3",
	"引継情報",
	"物件名",
	"部屋番号",
	"物件住所郵便番号",
	"物件住所1",
	"物件住所2",
	"物件住所3",
	"入居日",
	"月額賃料",
	"管理費",
	"駐車場代",
	"その他費用1",
	"その他費用2",
	"敷金",
	"礼金",
	"回収口座金融機関CD",
	"回収口座金融機関名",
	"回収口座支店CD",
	"回収口座支店名",
	"回収口座種類",
	"回収口座番号",
	"回収口座名義",
	"契約開始",
	"契約終了",
	"管理受託日",
	"契約確認日",
	"退去済手数料",
	"入居中滞納手数料",
	"更新契約手数料",
	"退去手続き（実費）",
	"初回振替月",
	"保証開始日",
	"クライアントCD",
	"パートナーCD",
	"契約者勤務先名",
	"契約者勤務先カナ",
	"契約者勤務先TEL",
	"勤務先業種",
	"契約者勤務先郵便番号",
	"契約者勤務先住所1",
	"契約者勤務先住所2",
	"契約者勤務先住所3",
	"保証人１氏名",
	"保証人１カナ",
	"保証人１契約者との関係",
	"保証人１生年月日",
	"保証人１郵便番号",
	"保証人１住所1",
	"保証人１住所2",
	"保証人１住所3",
	"保証人１TEL自宅",
	"保証人１TEL携帯",
	"保証人２氏名",
	"保証人２カナ",
	"保証人２契約者との関係",
	"保証人２生年月日",
	"保証人２郵便番号",
	"保証人２住所1",
	"保証人２住所2",
	"保証人２住所3",
	"保証人２TEL自宅",
	"保証人２TEL携帯",
	"緊急連絡人１氏名",
	"緊急連絡人１カナ",
	"緊急連絡人１契約者との関係",
	"緊急連絡人１郵便番号",
	"緊急連絡人１住所1",
	"緊急連絡人１住所2",
	"緊急連絡人１住所3",
	"緊急連絡人１TEL自宅",
	"緊急連絡人１TEL携帯",
	"緊急連絡人２氏名",
	"緊急連絡人２カナ",
	"緊急連絡人２契約者との関係",
	"緊急連絡人２郵便番号",
	"緊急連絡人２住所1",
	"緊急連絡人２住所2",
	"緊急連絡人２住所3",
	"緊急連絡人２TEL自宅",
	"緊急連絡人２TEL携帯",
	"申請者確認日",
	"管理前滞納額",
	"管理会社",
	"入居者数",
	"契約者性別",
	"契約者国籍",
	"保証料",
	"更新料",
	"更新保証料",
	"口座振替開始",
	"督促手数料",
	"備考",
	"",
	"",
	"",
	"",
	"",
	"",
	"登録日",
	"登録担当者",
	"",
}

// OutputColumns returns a fresh copy of the built-in template header.
func OutputColumns() []string {
	cols := make([]string, ColumnCount)
	copy(cols, outputColumns[:])
	return cols
}
