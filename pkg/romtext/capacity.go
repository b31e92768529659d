package romtext

// CapacityIssue は割り当てを超えるレコード1件の情報です
type CapacityIssue struct {
	Offset int
	Length int // 予約されたバイト数
	Need   int // 必要なバイト数（終端を含む）
	Text   string
}

// CheckCapacity は Text が Length に収まらないレコードをすべて返します。
// レコードは変更しません。
func CheckCapacity(records []Record, enc Encoder) []CapacityIssue {
	var issues []CapacityIssue
	for _, r := range records {
		need := len(enc.Encode(r.Text)) + 1
		if need > r.Length {
			issues = append(issues, CapacityIssue{
				Offset: r.Offset,
				Length: r.Length,
				Need:   need,
				Text:   r.Text,
			})
		}
	}
	return issues
}
