package gomamayo

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSymbolFilter_Filter(t *testing.T) {
	cases := []struct {
		tokenStream *TokenStream
		expected    *TokenStream
	}{
		{
			tokenStream: NewTokenStream([]Token{
				NewToken("ゴマ"),
				NewToken("、"),
				NewToken("マヨ"),
				NewToken("。"),
			}),
			expected: NewTokenStream([]Token{
				NewToken("ゴマ"),
				NewToken("マヨ"),
			}),
		},
		{
			tokenStream: NewTokenStream([]Token{
				NewToken("白馬", SetReading("ハクバ")),
				NewToken("47"),
				NewToken("!"),
			}),
			expected: NewTokenStream([]Token{
				NewToken("白馬", SetReading("ハクバ")),
				NewToken("47"),
			}),
		},
		{
			// 長音記号は読みの一部として残す
			tokenStream: NewTokenStream([]Token{
				NewToken("ー"),
			}),
			expected: NewTokenStream([]Token{
				NewToken("ー"),
			}),
		},
	}

	for _, tt := range cases {
		t.Run(fmt.Sprintf("tokenStream = %v, expected = %v", tt.tokenStream, tt.expected), func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, NewSymbolFilter().Filter(tt.tokenStream)); diff != "" {
				t.Errorf("Diff: (-want +got)\n%s", diff)
			}
		})
	}
}

func TestReadingformFilter_Filter(t *testing.T) {
	cases := []struct {
		form        ReadingForm
		tokenStream *TokenStream
		expected    *TokenStream
	}{
		{
			form: Hiragana,
			tokenStream: NewTokenStream([]Token{
				NewToken("今日", SetReading("キョウ")),
				NewToken("天気", SetReading("テンキ")),
			}),
			expected: NewTokenStream([]Token{
				NewToken("今日", SetReading("きょう")),
				NewToken("天気", SetReading("てんき")),
			}),
		},
		{
			form: Romaji,
			tokenStream: NewTokenStream([]Token{
				NewToken("今日", SetReading("キョウ")),
				NewToken("天気", SetReading("テンキ")),
				NewToken("良い", SetReading("ヨイ")),
			}),
			expected: NewTokenStream([]Token{
				NewToken("今日", SetReading("kyo")),
				NewToken("天気", SetReading("tenki")),
				NewToken("良い", SetReading("yoi")),
			}),
		},
		{
			form: Katakana,
			tokenStream: NewTokenStream([]Token{
				NewToken("今日", SetReading("キョウ")),
			}),
			expected: NewTokenStream([]Token{
				NewToken("今日", SetReading("キョウ")),
			}),
		},
	}

	for _, tt := range cases {
		t.Run(fmt.Sprintf("form = %v, expected = %v", tt.form, tt.expected), func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, NewReadingformFilter(tt.form).Filter(tt.tokenStream)); diff != "" {
				t.Errorf("Diff: (-want +got)\n%s", diff)
			}
		})
	}
}
