// internal/server/response.go
//
// 本檔負責統一 HTTP 回應格式。
//   - 「操作結果」一律以 resultBody 輸出，ledger 的失敗也是一種結果，
//     依原因對應到 400 或 409，回應內容仍包含與紀錄相同的訊息。
//   - 「請求本身錯誤」（壞 JSON 等）由 writeErr 以純文字輸出。
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"banksim/internal/ledger"
)

// resultBody 為操作結果的 JSON 格式。
type resultBody struct {
	OK    bool   `json:"ok"`
	Label string `json:"label"`
	Value string `json:"value"`
	Line  string `json:"line"`
}

// writeResult 依 ledger.Result 決定狀態碼並輸出。
func writeResult(w http.ResponseWriter, r ledger.Result) {
	writeJSON(w, statusFor(r), resultBody{
		OK:    r.OK(),
		Label: r.Label,
		Value: r.Value,
		Line:  r.Line(),
	})
}

// statusFor 將領域錯誤映射為 HTTP 狀態碼。
func statusFor(r ledger.Result) int {
	switch {
	case r.OK():
		return http.StatusOK
	case errors.Is(r.Err, ledger.ErrInsufficientFunds):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// writeJSON 統一輸出 JSON 回應。
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr 統一輸出錯誤回應（純文字）。
func writeErr(w http.ResponseWriter, err error, code int) {
	http.Error(w, err.Error(), code)
}
