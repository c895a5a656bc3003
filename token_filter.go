package gomamayo

import (
	"unicode"

	"github.com/kotaroooo0/gojaconv/jaconv"
)

type TokenFilter interface {
	Filter(*TokenStream) *TokenStream
}

// SymbolFilter は句読点などの記号トークンを取り除く
type SymbolFilter struct{}

func NewSymbolFilter() SymbolFilter {
	return SymbolFilter{}
}

func (f SymbolFilter) Filter(tokenStream *TokenStream) *TokenStream {
	r := make([]Token, 0, tokenStream.Size())
	for _, token := range tokenStream.Tokens {
		if hasLetter(token.Reading) {
			r = append(r, token)
		}
	}
	return NewTokenStream(r)
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

type ReadingForm int

const (
	Katakana ReadingForm = iota
	Hiragana
	Romaji
)

// ReadingformFilter は読みを指定の表記に変換する
type ReadingformFilter struct {
	form ReadingForm
}

func NewReadingformFilter(form ReadingForm) ReadingformFilter {
	return ReadingformFilter{
		form: form,
	}
}

func (f ReadingformFilter) Filter(tokenStream *TokenStream) *TokenStream {
	switch f.form {
	case Hiragana:
		for i, token := range tokenStream.Tokens {
			tokenStream.Tokens[i].Reading = jaconv.KatakanaToHiragana(token.Reading)
		}
	case Romaji:
		for i, token := range tokenStream.Tokens {
			tokenStream.Tokens[i].Reading = jaconv.ToHebon(jaconv.KatakanaToHiragana(token.Reading))
		}
	}
	// カタカナはTokenizerが読みとして付与する表記なのでそのまま
	return tokenStream
}
