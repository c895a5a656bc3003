package gomamayo

import "sort"

type Sorter interface {
	Sort([]Result) []Result
}

// DegreeSorter は次数の高い順、同じ次数なら項数の多い順に並べる
type DegreeSorter struct{}

func NewDegreeSorter() *DegreeSorter {
	return &DegreeSorter{}
}

func (s *DegreeSorter) Sort(results []Result) []Result {
	ranked := make(resultRanking, len(results))
	copy(ranked, results)
	sort.Sort(ranked)
	return ranked
}

type resultRanking []Result

func (r resultRanking) Len() int { return len(r) }
func (r resultRanking) Less(i, j int) bool {
	if r[i].Classification.Degree != r[j].Classification.Degree {
		return r[i].Classification.Degree > r[j].Classification.Degree
	}
	if r[i].Classification.Terms != r[j].Classification.Terms {
		return r[i].Classification.Terms > r[j].Classification.Terms
	}
	return r[i].Input < r[j].Input
}
func (r resultRanking) Swap(i, j int) { r[i], r[j] = r[j], r[i] }
