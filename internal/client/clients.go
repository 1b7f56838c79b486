//go:generate mockery --name DictionaryClient --output ./mocks --outpkg mocks --case=underscore
package client

import (
	"context"

	"vocab_explorer/internal/model"
)

// DictionaryClient は外部AIによる単語の語義取得・詳細解説を抽象化します
type DictionaryClient interface {
	Lookup(ctx context.Context, text string) ([]model.Meaning, error)
	Explore(ctx context.Context, text string, meanings []model.Meaning) (*model.TermDetails, error)
}
