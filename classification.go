package gomamayo

import "fmt"

// Classification はゴママヨ判定の結果。Termsは最小単位の繰り返し数(項)、
// Degreeは繰り返しの深さ(次)。ゼロ値はゴママヨでないことを表す。
type Classification struct {
	Terms  int
	Degree int
}

func NewClassification(terms, degree int) Classification {
	return Classification{
		Terms:  terms,
		Degree: degree,
	}
}

func (c Classification) IsGomamayo() bool {
	return c.Degree > 0
}

// Describe returns the Japanese description of the classification.
func (c Classification) Describe() string {
	if !c.IsGomamayo() {
		return "ゴママヨではありません。"
	}
	return fmt.Sprintf("%d項%d次のゴママヨです。", c.Terms, c.Degree)
}
