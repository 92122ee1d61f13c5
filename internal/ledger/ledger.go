// internal/ledger/ledger.go

// Package ledger 定義核心商業邏輯：建立帳戶、存款、提款、查詢餘額。
// Ledger 持有唯一一個帳戶的狀態，並以值物件 Result 回報每次操作的結果。
// 所有操作皆為同步、循序執行；Ledger 不加鎖，由呼叫端保證一次只處理一個事件。
// 金額以 decimal.Decimal 儲存，避免浮點誤差。
package ledger

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency 為顯示用的幣別標籤（盧安達法郎），不做任何匯率換算。
const DefaultCurrency = "FRW"

// Ledger 為聚合根：管理單一帳戶。
// - acct：目前帳戶狀態；Holder 為空代表尚未建立帳戶。
// - currency：金額前綴標籤，例如 "FRW"。
type Ledger struct {
	acct     Account
	currency string
}

// Option 用於調整 Ledger 的顯示設定。
type Option func(*Ledger)

// WithCurrency 指定金額顯示的幣別標籤；空字串時沿用 DefaultCurrency。
func WithCurrency(label string) Option {
	return func(l *Ledger) {
		if label = strings.TrimSpace(label); label != "" {
			l.currency = label
		}
	}
}

// New 建立尚未開戶的 Ledger（餘額為 0）。
// 每個實例互相獨立，方便同時存在多個測試或前端 session。
func New(opts ...Option) *Ledger {
	l := &Ledger{
		acct:     Account{Balance: decimal.Zero},
		currency: DefaultCurrency,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Currency 回傳目前使用的幣別標籤。
func (l *Ledger) Currency() string {
	return l.currency
}

// Account 回傳目前帳戶狀態的值拷貝，避免外部直接改寫內部狀態。
func (l *Ledger) Account() Account {
	return l.acct
}

// CreateAccount 以名稱建立帳戶：名稱先去除前後空白，不得為空。
// 建立成功會覆蓋原持有人並將餘額歸零（不提示、不保留舊狀態）。
func (l *Ledger) CreateAccount(name string) Result {
	name = strings.TrimSpace(name)
	if name == "" {
		return failure(MsgEmptyName, ErrEmptyName)
	}
	l.acct = Account{Holder: name, Balance: decimal.Zero}
	return success(LabelCreated, name)
}

// Deposit 存款：金額文字需可解析且 > 0。
// 不檢查帳戶是否已建立（沿用既有的寬鬆行為）。
func (l *Ledger) Deposit(amountText string) Result {
	amt, err := parseAmount(amountText)
	if err != nil {
		return failure(MsgInvalidDeposit, err)
	}
	if !amt.IsPositive() {
		return failure(MsgDepositPositive, ErrNonPositiveAmount)
	}
	l.acct.Balance = l.acct.Balance.Add(amt)
	return success(LabelDeposit, l.money(amt))
}

// Withdraw 提款：金額需 > 0 且不得超過餘額（維持非負）。
// 非正數與餘額不足共用同一句錯誤訊息，Err 則保留實際原因。
func (l *Ledger) Withdraw(amountText string) Result {
	amt, err := parseAmount(amountText)
	if err != nil {
		return failure(MsgInvalidWithdraw, err)
	}
	if !amt.IsPositive() {
		return failure(MsgWithdrawFailed, ErrNonPositiveAmount)
	}
	if amt.GreaterThan(l.acct.Balance) {
		return failure(MsgWithdrawFailed, ErrInsufficientFunds)
	}
	l.acct.Balance = l.acct.Balance.Sub(amt)
	return success(LabelWithdraw, l.money(amt))
}

// CheckBalance 回報目前餘額；不會改變任何狀態，也沒有失敗情境。
func (l *Ledger) CheckBalance() Result {
	return success(LabelBalance, l.money(l.acct.Balance))
}

// money 將金額格式化為 "FRW:123.45"（固定兩位小數）。
func (l *Ledger) money(d decimal.Decimal) string {
	return l.currency + ":" + d.StringFixed(2)
}

// 金額文字的解析範圍。
// 量級（有效位數 + 指數）超過 maxMagnitude 視為無法表示（等同浮點溢位）；
// 低於 minMagnitude 的極小值視為 0（等同浮點下溢），之後會被「金額須為正數」擋下。
// 小數位數超過 maxScale 時四捨五入到 maxScale 位。
// 這些界限讓後續的加減、比較與格式化只處理有限長度的整數。
const (
	maxAmountLen = 1024
	maxMagnitude = 308
	minMagnitude = -323
	maxScale     = 340
)

// parseAmount 去除前後空白與數字間的底線（1_000）後解析十進位數字。
// 無法解析（含 inf / nan 等非有限值、超出範圍）一律視為 ErrInvalidNumber。
func parseAmount(text string) (decimal.Decimal, error) {
	text = strings.TrimSpace(text)
	clean, ok := stripDigitSeparators(text)
	if !ok || len(clean) > maxAmountLen {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidNumber, text)
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidNumber, text)
	}
	if d.IsZero() {
		return decimal.Zero, nil
	}

	digits := len(new(big.Int).Abs(d.Coefficient()).String())
	magnitude := int64(d.Exponent()) + int64(digits)
	switch {
	case magnitude > maxMagnitude:
		return decimal.Zero, fmt.Errorf("%w: %q out of range", ErrInvalidNumber, text)
	case magnitude < minMagnitude:
		return decimal.Zero, nil
	case d.Exponent() < -maxScale:
		d = d.Round(maxScale)
	}
	return d, nil
}

// stripDigitSeparators 移除夾在兩個數字之間的底線；
// 其他位置的底線（開頭、結尾、連續、緊鄰小數點）視為格式錯誤。
func stripDigitSeparators(s string) (string, bool) {
	if !strings.Contains(s, "_") {
		return s, true
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			b.WriteByte(s[i])
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}
	return b.String(), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
