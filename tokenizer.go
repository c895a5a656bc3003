package gomamayo

import (
	"github.com/kotaroooo0/gomamayo/morphology"
)

type Tokenizer interface {
	Tokenize(string) *TokenStream
}

// RuneTokenizer は1文字を1トークンとする
type RuneTokenizer struct{}

func NewRuneTokenizer() RuneTokenizer {
	return RuneTokenizer{}
}

func (t RuneTokenizer) Tokenize(s string) *TokenStream {
	runes := []rune(s)
	tokens := make([]Token, len(runes))
	for i, r := range runes {
		tokens[i] = NewToken(string(r))
	}
	return NewTokenStream(tokens)
}

// MoraTokenizer は1拍を1トークンとする(キャット → キャ, ッ, ト)
type MoraTokenizer struct{}

func NewMoraTokenizer() MoraTokenizer {
	return MoraTokenizer{}
}

func (t MoraTokenizer) Tokenize(s string) *TokenStream {
	morae := SplitMorae(s)
	tokens := make([]Token, len(morae))
	for i, m := range morae {
		tokens[i] = NewToken(m)
	}
	return NewTokenStream(tokens)
}

// MorphologicalTokenizer は形態素解析で単語に分割し、読みを付与する
type MorphologicalTokenizer struct {
	morphology morphology.Morphology
}

func NewMorphologicalTokenizer(morphology morphology.Morphology) MorphologicalTokenizer {
	return MorphologicalTokenizer{
		morphology: morphology,
	}
}

func (t MorphologicalTokenizer) Tokenize(s string) *TokenStream {
	mTokens := t.morphology.Analyze(s)
	tokens := make([]Token, len(mTokens))
	for i, mt := range mTokens {
		tokens[i] = NewToken(mt.Surface, SetReading(mt.Reading))
	}
	return NewTokenStream(tokens)
}
