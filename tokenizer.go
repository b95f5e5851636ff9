package imser

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/imser/imser/morphology"
)

var ErrUnknownTokenizer = errors.New("unknown tokenizer type")

type Tokenizer interface {
	Tokenize(string) TokenStream
}

type TokenizeType int

const (
	Whitespace TokenizeType = iota
	LanguageAware
)

func (t TokenizeType) String() string {
	switch t {
	case Whitespace:
		return "whitespace"
	case LanguageAware:
		return "language-aware"
	default:
		return fmt.Sprintf("TokenizeType(%d)", int(t))
	}
}

func ParseTokenizeType(s string) (TokenizeType, error) {
	switch strings.ToLower(s) {
	case "", "whitespace":
		return Whitespace, nil
	case "language-aware", "language_aware", "japanese", "morphological":
		return LanguageAware, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTokenizer, s)
	}
}

// NewTokenizer returns the tokenizer for the given strategy. LanguageAware
// loads the kagome dictionary, which is slow, so callers should build it once.
func NewTokenizer(t TokenizeType) (Tokenizer, error) {
	switch t {
	case Whitespace:
		return NewWhitespaceTokenizer(), nil
	case LanguageAware:
		kagome, err := morphology.NewKagome()
		if err != nil {
			return nil, err
		}
		return NewMorphologicalTokenizer(kagome), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownTokenizer, t)
	}
}

// WhitespaceTokenizer splits on Unicode whitespace and emits every ASCII
// punctuation character as its own Punct token.
type WhitespaceTokenizer struct{}

func NewWhitespaceTokenizer() *WhitespaceTokenizer {
	return &WhitespaceTokenizer{}
}

func (t *WhitespaceTokenizer) Tokenize(s string) TokenStream {
	tokens := make([]Token, 0)
	position := 0
	start := -1 // 現在の語の開始オフセット

	flush := func(end int) {
		if start < 0 {
			return
		}
		tokens = append(tokens, NewToken(s[start:end], At(start, position)))
		position++
		start = -1
	}

	for offset, r := range s {
		switch {
		case unicode.IsSpace(r):
			flush(offset)
		case isASCIIPunct(r):
			flush(offset)
			tokens = append(tokens, NewPunctToken(s[offset:offset+utf8.RuneLen(r)], At(offset, position)))
			position++
		default:
			if start < 0 {
				start = offset
			}
		}
	}
	flush(len(s))
	return NewTokenStream(tokens)
}

func isASCIIPunct(r rune) bool {
	return r < utf8.RuneSelf && strings.ContainsRune("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~", r)
}

var termPartsOfSpeech = map[string]struct{}{
	"名詞": {}, "動詞": {}, "形容詞": {}, "形容動詞": {}, "助詞": {}, "助動詞": {},
	"副詞": {}, "連体詞": {}, "接続詞": {}, "感動詞": {}, morphology.UnknownPOS: {},
}

const (
	symbolPOS     = "記号"
	whitespacePOS = "空白"
)

// MorphologicalTokenizer classifies morphemes by part of speech. Whitespace
// and unsupported classes are dropped but still consume a position.
type MorphologicalTokenizer struct {
	morphology morphology.Morphology
}

func NewMorphologicalTokenizer(morphology morphology.Morphology) *MorphologicalTokenizer {
	return &MorphologicalTokenizer{
		morphology: morphology,
	}
}

func (t *MorphologicalTokenizer) Tokenize(s string) TokenStream {
	mTokens := t.morphology.Analyze(s)
	tokens := make([]Token, 0, len(mTokens))
	offset := 0
	for position, m := range mTokens {
		// 形態素は入力順に並ぶので、前回の位置から表層形を探せばオフセットが求まる
		if offset > len(s) {
			offset = len(s)
		}
		if i := strings.Index(s[offset:], m.Surface); i >= 0 {
			offset += i
		}
		at := At(offset, position)
		offset += len(m.Surface)

		if m.SubPOS == whitespacePOS {
			continue
		}
		if m.PartOfSpeech == symbolPOS {
			tokens = append(tokens, NewPunctToken(m.Surface, at, SetKana(m.Kana)))
			continue
		}
		if _, ok := termPartsOfSpeech[m.PartOfSpeech]; !ok {
			continue
		}
		tokens = append(tokens, NewToken(m.Surface, at, SetKana(m.Kana)))
	}
	return NewTokenStream(tokens)
}
