// internal/storage/model.go
//
// 定義交易紀錄「匯出檔 (transcript)」的結構模型。
// 匯出檔只寫不讀：程式從不由匯出檔還原帳戶狀態，每次啟動皆為全新帳戶。

package storage

import "time"

// Meta 為匯出檔的中繼資料。
type Meta struct {
	Format    string    `json:"format"`         // 匯出格式，例如 "json_transcript"
	Version   int       `json:"version"`        // 結構版本號
	Timestamp time.Time `json:"timestamp"`      // 匯出時間
	Currency  string    `json:"currency"`       // 幣別標籤
	Note      string    `json:"note,omitempty"` // 備註
}

// Transcript 為一次 session 的完整紀錄：
// 紀錄行（含表頭）依追加順序排列，外加結束時的帳戶摘要。
type Transcript struct {
	Meta    Meta     `json:"_meta"`
	Holder  string   `json:"holder"`
	Balance string   `json:"balance"`
	Lines   []string `json:"lines"`
}
