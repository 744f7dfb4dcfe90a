package address

// Prefectures lists the 47 prefectures in JIS order.
var Prefectures = []string{
	"北海道", "青森県", "岩手県", "宮城県", "秋田県", "山形県", "福島県",
	"茨城県", "栃木県", "群馬県", "埼玉県", "千葉県", "東京都", "神奈川県",
	"新潟県", "富山県", "石川県", "福井県", "山梨県", "長野県", "岐阜県",
	"静岡県", "愛知県", "三重県", "滋賀県", "京都府", "大阪府", "兵庫県",
	"奈良県", "和歌山県", "鳥取県", "島根県", "岡山県", "広島県", "山口県",
	"徳島県", "香川県", "愛媛県", "高知県", "福岡県", "佐賀県", "長崎県",
	"熊本県", "大分県", "宮崎県", "鹿児島県", "沖縄県",
}

// Tokyo is the prefecture whose special wards are matched before the
// generic city patterns.
const Tokyo = "東京都"

// SpecialWards lists Tokyo's 23 special wards.
var SpecialWards = []string{
	"千代田区", "中央区", "港区", "新宿区", "文京区", "台東区",
	"墨田区", "江東区", "品川区", "目黒区", "大田区", "世田谷区",
	"渋谷区", "中野区", "杉並区", "豊島区", "北区", "荒川区",
	"板橋区", "練馬区", "足立区", "葛飾区", "江戸川区",
}
