package morphology

type Morphology interface {
	Analyze(string) []MorphologyToken
}

type MorphologyToken struct {
	Surface string
	Reading string
}

func NewMorphologyToken(surface, reading string) MorphologyToken {
	return MorphologyToken{
		Surface: surface,
		Reading: reading,
	}
}
