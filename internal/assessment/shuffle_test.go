// internal/assessment/shuffle_test.go
package assessment

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffle(t *testing.T) {
	tests := []struct {
		name string
		in   []int
	}{
		{name: "正常系: 複数要素のシャッフル", in: []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{name: "正常系: 要素1つ", in: []int{42}},
		{name: "正常系: 空スライス", in: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rand.New(rand.NewSource(1))

			original := make([]int, len(tt.in))
			copy(original, tt.in)

			out := Shuffle(r, tt.in)

			// 入力は変更されない
			assert.Equal(t, original, tt.in)
			// 長さが同じで、同じ要素の多重集合 (順列である)
			require.Len(t, out, len(tt.in))
			assert.ElementsMatch(t, tt.in, out)
		})
	}
}

func TestShuffle_ProducesDifferentOrders(t *testing.T) {
	// 一様性の厳密な検証はしないが、順列として偏って同一の並びしか
	// 出ないような実装の取り違えは検出する
	r := rand.New(rand.NewSource(7))
	in := []int{1, 2, 3, 4, 5}

	seen := make(map[[5]int]bool)
	for i := 0; i < 200; i++ {
		out := Shuffle(r, in)
		var key [5]int
		copy(key[:], out)
		seen[key] = true
	}

	// 5! = 120 通りのうち、200回で相当数の異なる並びが出るはず
	assert.Greater(t, len(seen), 50)
}
