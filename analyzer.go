package gomamayo

import "fmt"

// Analyzer は入力をチャーフィルタ、トークナイザ、トークンフィルタの順に
// 通した後、隣り合うトークンの読みの重なりからゴママヨを判定する
type Analyzer struct {
	charFilters  []CharFilter
	tokenizer    Tokenizer
	tokenFilters []TokenFilter
}

func NewAnalyzer(charFilters []CharFilter, tokenizer Tokenizer, tokenFilters []TokenFilter) Analyzer {
	return Analyzer{
		charFilters:  charFilters,
		tokenizer:    tokenizer,
		tokenFilters: tokenFilters,
	}
}

// Result は1語分の解析結果
type Result struct {
	Input          string
	Readings       []string
	Classification Classification
}

func (r Result) Sentence() string {
	return fmt.Sprintf("%s: %s", r.Input, r.Classification.Describe())
}

func (a Analyzer) Analyze(input string) Result {
	s := input
	for _, c := range a.charFilters {
		s = c.Filter(s)
	}
	tokenStream := a.tokenizer.Tokenize(s)
	for _, f := range a.tokenFilters {
		tokenStream = f.Filter(tokenStream)
	}
	readings := tokenStream.Readings()
	return Result{
		Input:          input,
		Readings:       readings,
		Classification: classifyOverlaps(readings),
	}
}

// classifyOverlaps は隣接する読みの境界で、前の語末と次の語頭が同じ拍で
// 重なっている箇所を数える。Termsは重なった境界の数、Degreeは重なりの
// 最大拍数(シュー = シュ + ー で2拍)。
func classifyOverlaps(readings []string) Classification {
	var terms, degree int
	for i := 0; i+1 < len(readings); i++ {
		d := overlap(SplitMorae(readings[i]), SplitMorae(readings[i+1]))
		if d == 0 {
			continue
		}
		terms++
		if d > degree {
			degree = d
		}
	}
	if terms == 0 {
		return Classification{}
	}
	return NewClassification(terms, degree)
}

// overlap はleftの末尾d拍とrightの先頭d拍が一致する最大のdを返す。なければ0。
func overlap(left, right []string) int {
	max := len(left)
	if len(right) < max {
		max = len(right)
	}
	for d := max; d >= 1; d-- {
		if moraeEqual(left[len(left)-d:], right[:d]) {
			return d
		}
	}
	return 0
}

func moraeEqual(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
