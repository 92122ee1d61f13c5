// internal/journal/journal.go

// Package journal 提供使用者可見的「交易紀錄」：
// 一串只能追加、不能修改或清除的文字行。
// 每次追加同時寫入 in-memory 副本與外部 io.Writer（例如終端機）。
package journal

import (
	"fmt"
	"io"
	"strings"

	"banksim/internal/ledger"
)

// separatorWidth 為表頭分隔線長度。
const separatorWidth = 40

// Journal 為 append-only 的紀錄行序列。
// 不加鎖；由 teller.Session 保證循序追加。
type Journal struct {
	w     io.Writer
	lines []string
}

// New 建立紀錄並立即寫出表頭：
//
//	Transactions:        | Amounts (in FRW):
//	----------------------------------------
//
// w 可為 nil，此時僅保留 in-memory 副本。
func New(w io.Writer, currency string) (*Journal, error) {
	j := &Journal{w: w}
	header := ledger.FormatLine("Transactions:", fmt.Sprintf("Amounts (in %s):", currency))
	if err := j.Append(header); err != nil {
		return nil, err
	}
	if err := j.Append(strings.Repeat("-", separatorWidth)); err != nil {
		return nil, err
	}
	return j, nil
}

// Append 追加一行紀錄；行內換行字元會被替換為空白，確保「一個事件一行」。
// 寫出失敗時 in-memory 副本仍保留該行，錯誤回傳給呼叫端。
func (j *Journal) Append(line string) error {
	line = strings.ReplaceAll(line, "\n", " ")
	j.lines = append(j.lines, line)
	if j.w == nil {
		return nil
	}
	if _, err := io.WriteString(j.w, line+"\n"); err != nil {
		return fmt.Errorf("write journal line: %w", err)
	}
	return nil
}

// Record 將 ledger.Result 渲染後追加。
func (j *Journal) Record(r ledger.Result) error {
	return j.Append(r.Line())
}

// Lines 回傳所有紀錄行（含表頭）的拷貝，避免外部修改內部切片。
func (j *Journal) Lines() []string {
	out := make([]string, len(j.lines))
	copy(out, j.lines)
	return out
}

// Len 回傳目前紀錄行數（含表頭兩行）。
func (j *Journal) Len() int {
	return len(j.lines)
}

// WriteTo 將所有紀錄行重新輸出到 w，用於「重印紀錄」。
func (j *Journal) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, line := range j.lines {
		m, err := io.WriteString(w, line+"\n")
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
