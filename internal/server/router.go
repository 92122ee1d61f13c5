// internal/server/router.go
//
// 本檔負責 HTTP 路由註冊（chi）。
//   - handler.go 定義「如何處理請求」
//   - router.go 定義「請求如何被導向」
//   - cmd/bank 組裝整體應用（注入 session、匯出鉤子、logger）
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"banksim/internal/teller"
)

// Router 建立並回傳整個 HTTP 處理鏈。
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	routes := func(r chi.Router) {
		r.Get("/health", s.health)

		// 對應表單上的四個按鈕
		r.Post("/account", s.createAccount)
		r.Post("/deposit", s.amountHandler(teller.ActionDeposit))
		r.Post("/withdraw", s.amountHandler(teller.ActionWithdraw))
		r.Get("/balance", s.balance)

		// 交易紀錄（唯讀）
		r.Get("/log", s.journal)
	}

	// 同時掛在 /api/v1 與根路徑，方便本地測試。
	r.Route("/api/v1", routes)
	r.Group(routes)

	return r
}
