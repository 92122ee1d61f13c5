// internal/storage/transcript.go
//
// 提供交易紀錄匯出檔的寫出實作。
// 採「原子寫入」：先寫入 .tmp 檔，再以 rename() 取代原檔，
// 寫入中途失敗時原檔不會損壞。
//
// 副檔名決定格式：
//   - .json：Transcript 結構（縮排 JSON）
//   - 其他：純文字，每行一筆紀錄，與畫面輸出相同

package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	formatJSON = "json_transcript"
	formatText = "text_transcript"
)

// SaveTranscript 將 Transcript 以原子方式寫入 path。
// 流程：
//  1. 設定 Meta.Format、Version 與當前時間戳。
//  2. 寫入 path+".tmp" 暫存檔。
//  3. 寫入完成後使用 os.Rename() 取代正式檔案。
func SaveTranscript(path string, t Transcript) error {
	t.Meta.Version = 1
	t.Meta.Timestamp = time.Now()
	isJSON := strings.EqualFold(filepath.Ext(path), ".json")
	if isJSON {
		t.Meta.Format = formatJSON
	} else {
		t.Meta.Format = formatText
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create transcript: %w", err)
	}

	if isJSON {
		err = writeJSON(f, t)
	} else {
		err = writeText(f, t)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write transcript: %w", err)
	}

	// 原子替換
	return os.Rename(tmp, path)
}

func writeJSON(f *os.File, t Transcript) error {
	// 縮排輸出，方便人工檢視
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

func writeText(f *os.File, t Transcript) error {
	w := bufio.NewWriter(f)
	for _, line := range t.Lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}
