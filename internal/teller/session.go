// internal/teller/session.go

// Package teller 為「輸入收集層」：把離散事件（按下建立帳戶、存款、提款、查詢餘額）
// 轉換為 ledger 操作，並將結果追加到 journal。
// 一個 Session 對應一個帳戶與一份紀錄；事件一次處理一個，處理完才接受下一個。
package teller

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"banksim/internal/journal"
	"banksim/internal/ledger"
)

// Action 為事件種類，對應前端的四個按鈕。
type Action string

const (
	ActionCreate   Action = "create"
	ActionDeposit  Action = "deposit"
	ActionWithdraw Action = "withdraw"
	ActionBalance  Action = "balance"
)

// ParseAction 將使用者輸入的動作名稱（不分大小寫）轉為 Action。
func ParseAction(s string) (Action, error) {
	switch a := Action(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionCreate, ActionDeposit, ActionWithdraw, ActionBalance:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
}

// Event 為一次按鈕事件：Action + 對應輸入欄位的原始文字。
// balance 事件不讀取 Input。
type Event struct {
	Action Action `yaml:"action" json:"action"`
	Input  string `yaml:"input,omitempty" json:"input,omitempty"`
}

// Session 持有 Ledger 與 Journal，不加鎖；並行前端需自行序列化事件。
type Session struct {
	Ledger  *ledger.Ledger
	Journal *journal.Journal
	log     *zap.Logger
}

// NewSession 建立新的 session，並將紀錄表頭寫入 out。
// logger 可為 nil（使用 zap.NewNop）。
func NewSession(out io.Writer, logger *zap.Logger, opts ...ledger.Option) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := ledger.New(opts...)
	j, err := journal.New(out, l.Currency())
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return &Session{Ledger: l, Journal: j, log: logger}, nil
}

// Handle 執行一個事件並把結果追加到紀錄。
// ledger 的失敗（例如金額錯誤）屬正常結果，以 Result 回傳且寫入紀錄；
// 只有無法辨識的動作或紀錄寫出失敗才回傳 error。
func (s *Session) Handle(ev Event) (ledger.Result, error) {
	var r ledger.Result
	switch ev.Action {
	case ActionCreate:
		r = s.Ledger.CreateAccount(ev.Input)
	case ActionDeposit:
		r = s.Ledger.Deposit(ev.Input)
	case ActionWithdraw:
		r = s.Ledger.Withdraw(ev.Input)
	case ActionBalance:
		r = s.Ledger.CheckBalance()
	default:
		return ledger.Result{}, fmt.Errorf("%w: %q", ErrUnknownAction, ev.Action)
	}

	fields := []zap.Field{
		zap.String("action", string(ev.Action)),
		zap.Stringer("result", r.Kind),
		zap.String("balance", s.Ledger.Account().Balance.StringFixed(2)),
	}
	if r.Err != nil {
		fields = append(fields, zap.Error(r.Err))
	}
	s.log.Debug("teller event", fields...)

	if err := s.Journal.Record(r); err != nil {
		return r, err
	}
	return r, nil
}

// Replay 依序執行多個事件；遇到無法辨識的動作即停止並回傳錯誤。
func (s *Session) Replay(events []Event) ([]ledger.Result, error) {
	out := make([]ledger.Result, 0, len(events))
	for i, ev := range events {
		r, err := s.Handle(ev)
		if err != nil {
			return out, fmt.Errorf("event %d: %w", i+1, err)
		}
		out = append(out, r)
	}
	return out, nil
}
