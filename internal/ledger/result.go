// internal/ledger/result.go
//
// Result 為每一次操作的統一輸出：結果標籤 + 已格式化的訊息文字。
// 操作本身從不 panic，也不以 error 回傳；失敗原因放在 Err 欄位。

package ledger

import "fmt"

// Kind 區分成功與失敗兩種結果標籤。
type Kind int

const (
	Success Kind = iota
	Error
)

func (k Kind) String() string {
	if k == Success {
		return "success"
	}
	return "error"
}

// 紀錄行的標籤文字。
const (
	LabelCreated  = "Account Created"
	LabelDeposit  = "Deposit"
	LabelWithdraw = "Withdraw"
	LabelBalance  = "Balance"
	LabelError    = "Error"
)

// 使用者可見的錯誤訊息。
// 提款的「餘額不足」與「金額非正數」共用同一句訊息（沿用既有行為），
// 兩種原因仍可透過 Result.Err 區分。
const (
	MsgEmptyName       = "Please enter an account holder name."
	MsgInvalidDeposit  = "Invalid deposit amount."
	MsgDepositPositive = "Deposit amount must be positive."
	MsgInvalidWithdraw = "Invalid withdrawal amount."
	MsgWithdrawFailed  = "Insufficient funds or invalid amount."
)

// labelWidth 為紀錄行標籤欄的固定寬度（靠左對齊）。
const labelWidth = 20

// Result 為 Ledger 四個操作的回傳值。
//   - Kind：Success 或 Error
//   - Label：紀錄行左欄；錯誤時固定為 "Error"
//   - Value：紀錄行右欄（名稱、"FRW:100.00" 或錯誤訊息）
//   - Err：失敗原因（領域錯誤），成功時為 nil
type Result struct {
	Kind  Kind
	Label string
	Value string
	Err   error
}

// OK 回報是否為成功結果。
func (r Result) OK() bool {
	return r.Kind == Success
}

// Line 將結果渲染為一行紀錄文字："{label:<20} | {value}"。
func (r Result) Line() string {
	return FormatLine(r.Label, r.Value)
}

// FormatLine 依紀錄行格式組合標籤與值；journal 的表頭也使用同一格式。
func FormatLine(label, value string) string {
	return fmt.Sprintf("%-*s | %s", labelWidth, label, value)
}

func success(label, value string) Result {
	return Result{Kind: Success, Label: label, Value: value}
}

func failure(msg string, err error) Result {
	return Result{Kind: Error, Label: LabelError, Value: msg, Err: err}
}
