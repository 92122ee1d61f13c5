// cmd/bank/main.go

// 單一帳戶櫃員程式：建立帳戶、存款、提款、查詢餘額，
// 每個動作都在交易紀錄追加一行。
// 提供終端機互動（預設）、YAML 腳本重播與網頁表單（HTTP）三種前端。
package main

import (
	"os"

	"banksim/cmd/bank/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
