package journal

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banksim/internal/ledger"
)

func TestNewWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	j, err := New(&buf, "FRW")
	require.NoError(t, err)

	want := "Transactions:        | Amounts (in FRW):\n" + strings.Repeat("-", 40) + "\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 2, j.Len())
}

func TestRecordAppendsInOrder(t *testing.T) {
	var buf bytes.Buffer
	j, err := New(&buf, "FRW")
	require.NoError(t, err)

	l := ledger.New()
	require.NoError(t, j.Record(l.CreateAccount("Alice")))
	require.NoError(t, j.Record(l.Deposit("abc")))
	require.NoError(t, j.Record(l.CheckBalance()))

	lines := j.Lines()
	require.Len(t, lines, 5)
	assert.Equal(t, "Account Created      | Alice", lines[2])
	assert.Equal(t, "Error                | Invalid deposit amount.", lines[3])
	assert.Equal(t, "Balance              | FRW:0.00", lines[4])
	assert.True(t, strings.HasSuffix(buf.String(), "Balance              | FRW:0.00\n"))
}

func TestLinesReturnsCopy(t *testing.T) {
	j, err := New(nil, "FRW")
	require.NoError(t, err)
	lines := j.Lines()
	lines[0] = "tampered"
	assert.NotEqual(t, "tampered", j.Lines()[0])
}

func TestAppendFlattensNewlines(t *testing.T) {
	j, err := New(nil, "FRW")
	require.NoError(t, err)
	require.NoError(t, j.Append("a\nb"))
	assert.Equal(t, "a b", j.Lines()[2])
}

type failWriter struct{ n int }

func (f *failWriter) Write(p []byte) (int, error) {
	if f.n == 0 {
		return 0, errors.New("closed")
	}
	f.n--
	return len(p), nil
}

// TestAppendKeepsLineOnWriteError 驗證寫出失敗時紀錄仍保留於記憶體中。
func TestAppendKeepsLineOnWriteError(t *testing.T) {
	w := &failWriter{n: 2}
	j, err := New(w, "FRW")
	require.NoError(t, err)

	err = j.Append("Balance              | FRW:0.00")
	require.Error(t, err)
	assert.Equal(t, 3, j.Len())
}

func TestWriteToReprintsEverything(t *testing.T) {
	var live bytes.Buffer
	j, err := New(&live, "FRW")
	require.NoError(t, err)
	require.NoError(t, j.Append("Deposit              | FRW:1.00"))

	var again bytes.Buffer
	n, err := j.WriteTo(&again)
	require.NoError(t, err)
	assert.Equal(t, int64(again.Len()), n)
	assert.Equal(t, live.String(), again.String())
}
