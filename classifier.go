package gomamayo

// Sequence は等価比較できる単位(文字やモーラ)の列
type Sequence []string

// Classify reports whether seq is an exact repetition of a shorter unit.
// The smallest valid period is reduced first so the classification is
// canonical: the same sequence always reduces to the same unit.
// Terms is the repetition count of the innermost unit, Degree counts how many
// reduction levels were found. The empty and single-unit sequences are never
// gomamayo.
func Classify(seq Sequence) Classification {
	p := minimalPeriod(seq)
	if p == 0 {
		return Classification{}
	}
	inner := Classify(seq[:p])
	if !inner.IsGomamayo() {
		return NewClassification(len(seq)/p, 1)
	}
	return NewClassification(inner.Terms, inner.Degree+1)
}

// minimalPeriod は長さを割り切る最小の周期pを返す。繰り返しのない列は0。
func minimalPeriod(seq Sequence) int {
	for p := 1; p <= len(seq)/2; p++ {
		if len(seq)%p != 0 {
			continue
		}
		if isRepetitionOf(seq, p) {
			return p
		}
	}
	return 0
}

func isRepetitionOf(seq Sequence, p int) bool {
	for i := p; i < len(seq); i++ {
		if seq[i] != seq[i-p] {
			return false
		}
	}
	return true
}
