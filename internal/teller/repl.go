// internal/teller/repl.go
//
// 終端機互動迴圈：每行一個指令，對應一次按鈕事件。
// 輸入錯誤只會顯示提示，不會結束迴圈；使用者修正後重新輸入即可。

package teller

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

const prompt = "> "

const helpText = `Commands:
  create <name>       create (or replace) the account holder
  deposit <amount>    deposit an amount
  withdraw <amount>   withdraw an amount
  balance             show the current balance
  log                 print the whole transaction log again
  help                show this help
  quit | exit         leave
`

// Run 從 in 逐行讀取指令並執行，直到 EOF、quit/exit 或 ctx 取消。
// 讀取在背景 goroutine 進行，因此等待輸入時取消 ctx 也能立即返回；
// 指令本身仍在呼叫端 goroutine 上一次執行一個。
// 僅當 in 為終端機時顯示提示字元。
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interactive := isTerminal(in)
	lines, readErr := readLines(ctx, in)
	for {
		if interactive {
			fmt.Fprint(out, prompt)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return <-readErr
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			done, err := s.exec(line, out)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}

// readLines 在背景逐行讀取 in；讀到 EOF 或發生錯誤時關閉 lines，
// 並在 errc 送出 Scanner 的錯誤（EOF 為 nil）。
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- sc.Err()
	}()
	return lines, errc
}

// exec 執行一行指令；回傳 done=true 代表使用者要求離開。
func (s *Session) exec(line string, out io.Writer) (bool, error) {
	cmd, arg := splitCommand(line)
	switch cmd {
	case "":
		return false, nil
	case "quit", "exit":
		return true, nil
	case "help", "?":
		fmt.Fprint(out, helpText)
		return false, nil
	case "log":
		_, err := s.Journal.WriteTo(out)
		return false, err
	}

	action, err := ParseAction(cmd)
	if err != nil {
		s.log.Debug("unknown command", zap.String("command", cmd))
		fmt.Fprintf(out, "unknown command %q (type \"help\")\n", cmd)
		return false, nil
	}
	_, err = s.Handle(Event{Action: action, Input: arg})
	return false, err
}

// splitCommand 將一行拆成「指令」與「其餘文字」；
// 其餘文字保留內部空白，讓名稱可以包含空格（例如 "create Jean Bosco"）。
func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	cmd, rest, _ := strings.Cut(line, " ")
	return strings.ToLower(cmd), strings.TrimSpace(rest)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
