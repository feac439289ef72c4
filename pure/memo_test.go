package pure_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/on-the-ground/evaluat_ive_go/pure"
)

func TestMemo1(t *testing.T) {
	count := 0
	fn := pure.Memo1(func(i int) int {
		count++
		return i * 2
	}, 4)

	assert.Equal(t, 4, fn(2))
	assert.Equal(t, 4, fn(2)) // cached
	assert.Equal(t, 6, fn(3))
	assert.Equal(t, 2, count)
}

func TestMemo2(t *testing.T) {
	count := 0
	fn := pure.Memo2(func(a, b int) int {
		count++
		return a + b
	}, 4)

	assert.Equal(t, 5, fn(2, 3))
	assert.Equal(t, 5, fn(2, 3))
	assert.Equal(t, 1, count)

	// same values, different positions miss the cache
	assert.Equal(t, 5, fn(3, 2))
	assert.Equal(t, 2, count)
}

func TestMemo3(t *testing.T) {
	count := 0
	fn := pure.Memo3(func(a, b, c int) int {
		count++
		return a * b * c
	}, 4)

	assert.Equal(t, 24, fn(2, 3, 4))
	assert.Equal(t, 24, fn(2, 3, 4))
	assert.Equal(t, 1, count)
}

func TestMemo4(t *testing.T) {
	count := 0
	fn := pure.Memo4(func(a, b, c, d int) int {
		count++
		return a + b + c + d
	}, 4)

	assert.Equal(t, 10, fn(1, 2, 3, 4))
	assert.Equal(t, 10, fn(1, 2, 3, 4))
	assert.Equal(t, 1, count)
}

func TestMemo1E_CachesValueAndError(t *testing.T) {
	errOdd := errors.New("odd")
	count := 0
	fn := pure.Memo1E(func(i int) (int, error) {
		count++
		if i%2 == 1 {
			return 0, errOdd
		}
		return i / 2, nil
	}, 4)

	v, err := fn(4)
	assert.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = fn(3)
	assert.ErrorIs(t, err, errOdd)

	// both outcomes cached, including the failure
	_, _ = fn(4)
	_, err = fn(3)
	assert.ErrorIs(t, err, errOdd)
	assert.Equal(t, 2, count)
}

func TestMemo2E(t *testing.T) {
	count := 0
	fn := pure.Memo2E(func(a, b string) (string, error) {
		count++
		return a + b, nil
	}, 4)

	v, err := fn("foo", "bar")
	assert.NoError(t, err)
	assert.Equal(t, "foobar", v)
	_, _ = fn("foo", "bar")
	assert.Equal(t, 1, count)
}

// stringerKey exercises the Stringer-to-digest key path.
type stringerKey struct {
	id string
}

func (s stringerKey) String() string { return fmt.Sprintf("key-%s", s.id) }

func TestMemo1_StringerArgs(t *testing.T) {
	count := 0
	fn := pure.Memo1(func(k stringerKey) string {
		count++
		return "v:" + k.id
	}, 4)

	assert.Equal(t, "v:a", fn(stringerKey{id: "a"}))
	assert.Equal(t, "v:a", fn(stringerKey{id: "a"}))
	assert.Equal(t, "v:b", fn(stringerKey{id: "b"}))
	assert.Equal(t, 2, count)
}

func TestMemo1_BoundedTableRecomputesAfterEviction(t *testing.T) {
	count := 0
	fn := pure.Memo1(func(i int) int {
		count++
		return i
	}, 1)

	_ = fn(1) // gen 0
	_ = fn(2) // rotate, gen 1
	_ = fn(3) // rotate, entry for 1 dropped
	assert.Equal(t, 3, count)

	_ = fn(1) // recomputed
	assert.Equal(t, 4, count)
}
