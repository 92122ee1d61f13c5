// internal/teller/errors.go
//
// teller 層的錯誤：屬於「輸入事件本身無法辨識」，
// 與 ledger 的領域錯誤不同，這些不會寫入使用者可見的紀錄。

package teller

import "errors"

var (
	// ErrUnknownAction 代表事件的動作名稱無法辨識。
	ErrUnknownAction = errors.New("unknown action")

	// ErrBadScript 代表腳本檔格式錯誤。
	ErrBadScript = errors.New("invalid script")
)
