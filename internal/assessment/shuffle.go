// internal/assessment/shuffle.go
package assessment

import (
	"math/rand"
	"time"
)

// NewRand はシャッフル用の乱数源を生成します
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Shuffle は Fisher–Yates で一様ランダムな順列を返します。
// 入力スライスは変更しません。
func Shuffle[T any](r *rand.Rand, in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	for i := len(out) - 1; i >= 1; i-- {
		j := r.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
