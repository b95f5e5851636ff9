package morphology

//go:generate mockgen -source=morphology.go -destination=../mock_morphology_test.go -package=imser

type Morphology interface {
	Analyze(string) []MorphologyToken
}

type MorphologyToken struct {
	Surface      string
	Kana         string
	PartOfSpeech string // 品詞
	SubPOS       string // 品詞細分類1
}

func NewMorphologyToken(surface, kana, pos, subPOS string) MorphologyToken {
	return MorphologyToken{
		Surface:      surface,
		Kana:         kana,
		PartOfSpeech: pos,
		SubPOS:       subPOS,
	}
}
