// internal/ledger/errors.go
//
// 本檔集中定義「領域錯誤（domain errors）」。
// 這些錯誤不會被回傳給呼叫端造成中斷，而是放在 Result.Err 中，
// 讓上層（teller / server）能以 errors.Is 判斷原因，並自行決定如何呈現。

package ledger

import "errors"

var (
	// ErrEmptyName 代表帳戶持有人名稱為空（或僅含空白）。
	ErrEmptyName = errors.New("account holder name is empty")

	// ErrInvalidNumber 代表金額文字無法解析為十進位數字。
	ErrInvalidNumber = errors.New("amount is not a valid number")

	// ErrNonPositiveAmount 代表金額 <= 0。
	ErrNonPositiveAmount = errors.New("amount must be > 0")

	// ErrInsufficientFunds 代表提款金額超過目前餘額。
	ErrInsufficientFunds = errors.New("insufficient balance")
)
