package gomamayo

// 拗音などの小書き仮名は直前の仮名と合わせて一拍と数える。
// 促音(っ/ッ)と長音(ー)はそれぞれ一拍。
var smallKana = map[rune]struct{}{
	'ぁ': {}, 'ぃ': {}, 'ぅ': {}, 'ぇ': {}, 'ぉ': {},
	'ゃ': {}, 'ゅ': {}, 'ょ': {}, 'ゎ': {}, 'ゕ': {}, 'ゖ': {},
	'ァ': {}, 'ィ': {}, 'ゥ': {}, 'ェ': {}, 'ォ': {},
	'ャ': {}, 'ュ': {}, 'ョ': {}, 'ヮ': {}, 'ヵ': {}, 'ヶ': {},
}

// SplitMorae splits s into morae: each rune is one mora, except small kana,
// which attach to the preceding rune (シューリョー → シュ, ー, リョ, ー).
// Runes that are not kana count as one mora each.
func SplitMorae(s string) []string {
	morae := []string{}
	for _, r := range s {
		if _, ok := smallKana[r]; ok && len(morae) > 0 {
			morae[len(morae)-1] += string(r)
			continue
		}
		morae = append(morae, string(r))
	}
	return morae
}
