// internal/server/handler.go
//
// Package server
// ─────────────────────────────────────────────
// 提供網頁表單 / JSON 介面，作為 teller session 的另一種前端。
// 每個 handler 僅負責：
//  1. 解析請求中的輸入欄位
//  2. 將其轉為一個 teller.Event 並交給 session 執行
//  3. 回傳標準化 JSON 回應
//  4. 事件處理完成後呼叫 afterEvent（例如更新匯出檔）
//
// HTTP 伺服器會並行處理請求，但 ledger 本身不加鎖；
// 因此 Server 以單一互斥鎖把每個請求序列化為「一次一個事件」。
package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"banksim/internal/teller"
)

// Server 為 HTTP 層核心結構：
// - mu：序列化所有事件，確保 session 一次只處理一個。
// - session：注入的 teller session（帳戶 + 紀錄）。
// - afterEvent：每次事件後的鉤子，可為 nil。
type Server struct {
	mu         sync.Mutex
	session    *teller.Session
	afterEvent func() error
	log        *zap.Logger
}

// NewServer 建立新的 HTTP 伺服器。
// afterEvent 可為 nil；logger 為 nil 時使用 zap.NewNop。
func NewServer(s *teller.Session, afterEvent func() error, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{session: s, afterEvent: afterEvent, log: logger}
}

// createAccount 處理 POST /account  {"name": "..."}
func (s *Server) createAccount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, err, http.StatusBadRequest)
		return
	}
	s.dispatch(w, teller.Event{Action: teller.ActionCreate, Input: req.Name})
}

// amountHandler 產生 POST /deposit 與 POST /withdraw 的 handler：
// 金額可為 JSON 數字或字串，原樣交給 ledger 解析與驗證，
// 因此 {"amount": "abc"} 會得到與終端機相同的錯誤訊息。
func (s *Server) amountHandler(action teller.Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Amount json.RawMessage `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErr(w, err, http.StatusBadRequest)
			return
		}
		s.dispatch(w, teller.Event{Action: action, Input: amountText(req.Amount)})
	}
}

// amountText 取出金額欄位的文字：字串去引號，數字保留原始字面值，缺少欄位視為空字串。
func amountText(raw json.RawMessage) string {
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	if string(raw) == "null" {
		return ""
	}
	return string(raw)
}

// balance 處理 GET /balance
func (s *Server) balance(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, teller.Event{Action: teller.ActionBalance})
}

// journal 處理 GET /log：回傳完整紀錄（含表頭）。
func (s *Server) journal(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	lines := s.session.Journal.Lines()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"lines": lines})
}

// health 提供健康檢查端點：GET /health。
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// dispatch 在臨界區內執行事件並觸發 afterEvent，然後輸出結果。
func (s *Server) dispatch(w http.ResponseWriter, ev teller.Event) {
	s.mu.Lock()
	res, err := s.session.Handle(ev)
	if err == nil && s.afterEvent != nil {
		if herr := s.afterEvent(); herr != nil {
			s.log.Warn("after-event hook failed", zap.String("action", string(ev.Action)), zap.Error(herr))
		}
	}
	s.mu.Unlock()

	if err != nil {
		writeErr(w, err, http.StatusInternalServerError)
		return
	}
	writeResult(w, res)
}
