// Package ledger 定義單一帳戶的核心領域模型與交易規則。
// 本檔定義 Account 結構，不含任何輸入解析、畫面或儲存細節。

package ledger

import "github.com/shopspring/decimal"

// Account represents the one account held by a Ledger.
// Holder 為空字串代表「尚未建立帳戶」。
type Account struct {
	Holder  string          `json:"holder"`
	Balance decimal.Decimal `json:"balance"`
}

// Active 回報是否已建立帳戶（Holder 非空）。
// 僅供呼叫端參考；Ledger 本身的存提款不檢查此狀態。
func (a Account) Active() bool {
	return a.Holder != ""
}
