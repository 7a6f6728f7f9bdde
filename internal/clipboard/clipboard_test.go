package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCopyWritesText(t *testing.T) {
	var got string
	restore := Swap(func(s string) error { got = s; return nil })
	defer restore()

	msg := Copy("SELECT count(*) FROM Transaction", zap.NewNop())()
	assert.Nil(t, msg)
	assert.Equal(t, "SELECT count(*) FROM Transaction", got)
}

func TestCopyFallsBackOnError(t *testing.T) {
	restore := Swap(func(string) error { return errors.New("no xclip") })
	defer restore()

	msg := Copy("SELECT 1", nil)()
	assert.NotNil(t, msg, "falls back to the terminal clipboard")
}

func TestSwapRestores(t *testing.T) {
	calls := 0
	restore := Swap(func(string) error { calls++; return nil })
	_ = Write("a")
	restore()

	inner := Swap(func(string) error { return nil })
	defer inner()
	_ = Write("b")
	assert.Equal(t, 1, calls)
}
