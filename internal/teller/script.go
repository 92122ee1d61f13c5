// internal/teller/script.go
//
// 腳本檔：以 YAML 描述一串按鈕事件，供非互動方式重播。
//
//	- action: create
//	  input: Alice
//	- action: deposit
//	  input: "100"
//	- action: balance

package teller

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadScript 解析 YAML 事件清單並檢查每個動作名稱。
// 空檔案視為零個事件。
func LoadScript(r io.Reader) ([]Event, error) {
	var events []Event
	if err := yaml.NewDecoder(r).Decode(&events); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrBadScript, err)
	}
	for i := range events {
		a, err := ParseAction(string(events[i].Action))
		if err != nil {
			return nil, fmt.Errorf("%w: event %d: %v", ErrBadScript, i+1, err)
		}
		events[i].Action = a
	}
	return events, nil
}

// LoadScriptFile 讀取指定路徑的腳本檔。
func LoadScriptFile(path string) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadScript(f)
}
