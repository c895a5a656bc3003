package morphology

import (
	ipaneologd "github.com/ikawaha/kagome-dict-ipa-neologd"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// 読みが入るIPA辞書の素性位置
const ipaReadingIndex = 7

// github.com/ikawaha/kagomeに直接依存しないようにラップする
type Kagome struct {
	kagome *tokenizer.Tokenizer
}

func NewKagome() (*Kagome, error) {
	tokenizer, err := tokenizer.New(ipaneologd.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Kagome{
		kagome: tokenizer,
	}, nil
}

// Analyze は入力を形態素に分割し、表層形と読み(カタカナ)を返す。
// 読みのない語は重なり判定で比較できるように表層形を読みとする。
func (k *Kagome) Analyze(text string) []MorphologyToken {
	tokens := k.kagome.Analyze(text, tokenizer.Search)
	morphologyTokens := make([]MorphologyToken, 0, len(tokens))
	for _, token := range tokens {
		features := token.Features()
		if len(features) > 1 && features[1] == "空白" {
			continue
		}
		morphologyTokens = append(morphologyTokens, NewMorphologyToken(token.Surface, reading(token.Surface, features)))
	}
	return morphologyTokens
}

// reading は素性から読みを取り出す。未知語は素性が短く、辞書によっては
// 読みが*で埋められていることがあるので、どちらも表層形で代用する。
func reading(surface string, features []string) string {
	if len(features) <= ipaReadingIndex {
		return surface
	}
	r := features[ipaReadingIndex]
	if r == "" || r == "*" {
		return surface
	}
	return r
}
