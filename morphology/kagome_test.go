package morphology

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKagomeAnalyze(t *testing.T) {
	cases := []struct {
		text     string
		expected []MorphologyToken
	}{
		{
			text: "今日は天気が良い",
			expected: []MorphologyToken{
				NewMorphologyToken("今日", "キョウ"),
				NewMorphologyToken("は", "ハ"),
				NewMorphologyToken("天気", "テンキ"),
				NewMorphologyToken("が", "ガ"),
				NewMorphologyToken("良い", "ヨイ"),
			},
		},
		{
			text: "白馬",
			expected: []MorphologyToken{
				NewMorphologyToken("白馬", "ハクバ"),
			},
		},
		{
			// 辞書に読みがない語は表層形がそのまま読みになる
			text: "イシウチ",
			expected: []MorphologyToken{
				NewMorphologyToken("イシウチ", "イシウチ"),
			},
		},
		{
			text: "琵琶湖バレイ",
			expected: []MorphologyToken{
				NewMorphologyToken("琵琶湖", "ビワコ"),
				NewMorphologyToken("バレイ", "バレイ"),
			},
		},
	}

	kagome, err := NewKagome()
	if err != nil {
		t.Fatalf("fail to initialize kagome tokenizer: %v", err)
	}

	for _, tt := range cases {
		t.Run(fmt.Sprintf("text = %v, expected = %v", tt.text, tt.expected), func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, kagome.Analyze(tt.text)); diff != "" {
				t.Errorf("Diff: (-want +got)\n%s", diff)
			}
		})
	}
}

func TestReading(t *testing.T) {
	cases := []struct {
		surface  string
		features []string
		expected string
	}{
		{
			surface:  "今日",
			features: []string{"名詞", "副詞可能", "*", "*", "*", "*", "今日", "キョウ", "キョー"},
			expected: "キョウ",
		},
		{
			// 未知語は素性が短い
			surface:  "イシウチ",
			features: []string{"名詞", "一般", "*", "*", "*", "*", "*"},
			expected: "イシウチ",
		},
		{
			// 読みが*で埋められている語
			surface:  "ゴママヨ",
			features: []string{"名詞", "一般", "*", "*", "*", "*", "ゴママヨ", "*", "*"},
			expected: "ゴママヨ",
		},
		{
			surface:  "マヨ",
			features: []string{"名詞", "一般", "*", "*", "*", "*", "マヨ", "", ""},
			expected: "マヨ",
		},
	}

	for _, tt := range cases {
		t.Run(fmt.Sprintf("surface = %v, features = %v, expected = %v", tt.surface, tt.features, tt.expected), func(t *testing.T) {
			if got := reading(tt.surface, tt.features); got != tt.expected {
				t.Errorf("reading() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
