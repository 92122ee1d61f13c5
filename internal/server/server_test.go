// internal/server/server_test.go
//
// 本檔為 server 層的整合測試。
// 以 httptest.Server 模擬完整 HTTP 請求流程，驗證：
//  1. 四個操作與紀錄查詢的行為與終端機前端一致。
//  2. 領域錯誤的狀態碼映射（400 / 409）。
//  3. afterEvent 鉤子在每次事件後觸發。
//  4. 並行請求被序列化，餘額不會出錯。
package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"banksim/internal/teller"
)

// doJSON 為測試輔助函式：送出 JSON 請求、驗證狀態碼，若 out 非 nil 則解析回應。
func doJSON(t *testing.T, c *http.Client, method, url string, body any, wantCode int, out any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, wantCode, resp.StatusCode, "%s %s", method, url)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
}

func newTestServer(t *testing.T, hook func() error) (*teller.Session, *httptest.Server) {
	t.Helper()
	sess, err := teller.NewSession(io.Discard, zaptest.NewLogger(t))
	require.NoError(t, err)
	ts := httptest.NewServer(NewServer(sess, hook, zaptest.NewLogger(t)).Router())
	t.Cleanup(ts.Close)
	return sess, ts
}

// TestHTTPFlowAndHook 以 HTTP 跑完整情境，並確認每次事件都觸發鉤子。
func TestHTTPFlowAndHook(t *testing.T) {
	var calls int32
	_, ts := newTestServer(t, func() error {
		atomic.AddInt32(&calls, 1)
		return nil
	})
	cli := ts.Client()

	var res resultBody
	doJSON(t, cli, "POST", ts.URL+"/account", map[string]any{"name": "Alice"}, 200, &res)
	assert.True(t, res.OK)
	assert.Equal(t, "Account Created      | Alice", res.Line)

	doJSON(t, cli, "POST", ts.URL+"/deposit", map[string]any{"amount": 100}, 200, &res)
	assert.Equal(t, "FRW:100.00", res.Value)

	doJSON(t, cli, "POST", ts.URL+"/api/v1/withdraw", map[string]any{"amount": "40"}, 200, &res)
	assert.Equal(t, "FRW:40.00", res.Value)

	doJSON(t, cli, "GET", ts.URL+"/balance", nil, 200, &res)
	assert.Equal(t, "Balance              | FRW:60.00", res.Line)

	// 餘額不足 → 409，訊息與紀錄相同
	doJSON(t, cli, "POST", ts.URL+"/withdraw", map[string]any{"amount": "1000"}, 409, &res)
	assert.False(t, res.OK)
	assert.Equal(t, "Error", res.Label)
	assert.Equal(t, "Insufficient funds or invalid amount.", res.Value)

	var log struct {
		Lines []string `json:"lines"`
	}
	doJSON(t, cli, "GET", ts.URL+"/log", nil, 200, &log)
	require.Len(t, log.Lines, 7)
	assert.Equal(t, "Error                | Insufficient funds or invalid amount.", log.Lines[6])

	assert.Equal(t, int32(5), atomic.LoadInt32(&calls))
}

func TestHTTPValidationErrors(t *testing.T) {
	sess, ts := newTestServer(t, nil)
	cli := ts.Client()

	var res resultBody
	doJSON(t, cli, "POST", ts.URL+"/account", map[string]any{"name": "   "}, 400, &res)
	assert.Equal(t, "Please enter an account holder name.", res.Value)

	doJSON(t, cli, "POST", ts.URL+"/deposit", map[string]any{"amount": "abc"}, 400, &res)
	assert.Equal(t, "Invalid deposit amount.", res.Value)

	doJSON(t, cli, "POST", ts.URL+"/deposit", map[string]any{}, 400, &res)
	assert.Equal(t, "Invalid deposit amount.", res.Value)

	doJSON(t, cli, "POST", ts.URL+"/deposit", map[string]any{"amount": -5}, 400, &res)
	assert.Equal(t, "Deposit amount must be positive.", res.Value)

	doJSON(t, cli, "POST", ts.URL+"/withdraw", map[string]any{"amount": 0}, 400, &res)
	assert.Equal(t, "Insufficient funds or invalid amount.", res.Value)

	// 壞 JSON → 400，且不寫入紀錄
	before := sess.Journal.Len()
	resp, err := cli.Post(ts.URL+"/deposit", "application/json", bytes.NewBufferString("{bad json}"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, before, sess.Journal.Len())
}

func TestMethodNotAllowed(t *testing.T) {
	_, ts := newTestServer(t, nil)
	cli := ts.Client()

	doJSON(t, cli, "GET", ts.URL+"/deposit", nil, 405, nil)
	doJSON(t, cli, "POST", ts.URL+"/balance", nil, 405, nil)
	doJSON(t, cli, "GET", ts.URL+"/nope", nil, 404, nil)
	doJSON(t, cli, "GET", ts.URL+"/health", nil, 200, nil)
}

// TestConcurrentDepositsAreSerialised 驗證並行請求被序列化為一次一個事件。
func TestConcurrentDepositsAreSerialised(t *testing.T) {
	sess, ts := newTestServer(t, nil)
	cli := ts.Client()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			resp, err := cli.Post(ts.URL+"/deposit", "application/json", bytes.NewBufferString(`{"amount":"1"}`))
			if err != nil {
				t.Errorf("deposit: %v", err)
				return
			}
			resp.Body.Close()
		}()
	}
	wg.Wait()

	assert.Equal(t, "50.00", sess.Ledger.Account().Balance.StringFixed(2))
	assert.Equal(t, 2+workers, sess.Journal.Len())
}
