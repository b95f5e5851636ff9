package morphology

import (
	ipaneologd "github.com/ikawaha/kagome-dict-ipa-neologd"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// UnknownPOS is reported for tokens the dictionary could not classify.
const UnknownPOS = "UNK"

// github.com/ikawaha/kagomeに直接依存しないようにラップする
type Kagome struct {
	kagome *tokenizer.Tokenizer
	mode   tokenizer.TokenizeMode
}

func NewKagome() (*Kagome, error) {
	return NewKagomeWithMode(tokenizer.Search)
}

func NewKagomeWithMode(mode tokenizer.TokenizeMode) (*Kagome, error) {
	t, err := tokenizer.New(ipaneologd.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Kagome{
		kagome: t,
		mode:   mode,
	}, nil
}

// Analyze returns every morpheme of text in order, whitespace included, so
// callers can keep positions aligned with the input.
func (k *Kagome) Analyze(text string) []MorphologyToken {
	tokens := k.kagome.Analyze(text, k.mode)
	kagomeTokens := make([]MorphologyToken, 0, len(tokens))
	for _, token := range tokens {
		features := token.Features()
		pos, subPOS := UnknownPOS, ""
		if token.Class != tokenizer.UNKNOWN && len(features) > 0 {
			pos = features[0]
		}
		if len(features) > 1 {
			subPOS = features[1]
		}
		kana := token.Surface
		if len(features) >= 8 && features[7] != "*" {
			kana = features[7]
		}
		kagomeTokens = append(kagomeTokens, NewMorphologyToken(token.Surface, kana, pos, subPOS))
	}
	return kagomeTokens
}
