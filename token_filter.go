package imser

import (
	"strings"

	"github.com/kljensen/snowball/english"
	"github.com/kotaroooo0/gojaconv/jaconv"
)

// TokenFilter rewrites a token stream after tokenization. Filters keep each
// token's offset and position so positional queries stay aligned.
type TokenFilter interface {
	Filter(TokenStream) TokenStream
}

// rewriteTerms returns a new stream where every Term token is passed through
// f. Tokens for which f reports false are dropped. Punct tokens pass as is.
func rewriteTerms(tokenStream TokenStream, f func(Token) (Token, bool)) TokenStream {
	r := make([]Token, 0, tokenStream.Size())
	for _, token := range tokenStream.Tokens {
		if token.Kind == Term {
			var keep bool
			if token, keep = f(token); !keep {
				continue
			}
		}
		r = append(r, token)
	}
	return NewTokenStream(r)
}

type LowercaseFilter struct{}

func NewLowercaseFilter() LowercaseFilter {
	return LowercaseFilter{}
}

func (f LowercaseFilter) Filter(tokenStream TokenStream) TokenStream {
	return rewriteTerms(tokenStream, func(token Token) (Token, bool) {
		token.Term = strings.ToLower(token.Term)
		return token, true
	})
}

// StopWordFilter drops Term tokens found in its list. Punctuation is never
// dropped so later positions are unaffected.
type StopWordFilter struct {
	stopWords map[string]struct{}
}

func NewStopWordFilter(stopWords []string) StopWordFilter {
	set := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		set[w] = struct{}{}
	}
	return StopWordFilter{
		stopWords: set,
	}
}

func (f StopWordFilter) Filter(tokenStream TokenStream) TokenStream {
	return rewriteTerms(tokenStream, func(token Token) (Token, bool) {
		_, stop := f.stopWords[token.Term]
		return token, !stop
	})
}

// StemmerFilter applies the English snowball stemmer.
type StemmerFilter struct{}

func NewStemmerFilter() StemmerFilter {
	return StemmerFilter{}
}

func (f StemmerFilter) Filter(tokenStream TokenStream) TokenStream {
	return rewriteTerms(tokenStream, func(token Token) (Token, bool) {
		token.Term = english.Stem(token.Term, false)
		return token, true
	})
}

// 読みを持たないトークン(空白区切りトークナイザ由来など)はそのまま残す
type RomajiReadingformFilter struct{}

func NewRomajiReadingformFilter() RomajiReadingformFilter {
	return RomajiReadingformFilter{}
}

func (f RomajiReadingformFilter) Filter(tokenStream TokenStream) TokenStream {
	return rewriteTerms(tokenStream, func(token Token) (Token, bool) {
		if token.Kana != "" {
			token.Term = jaconv.ToHebon(jaconv.KatakanaToHiragana(token.Kana))
		}
		return token, true
	})
}

// KanaReadingformFilter replaces each term with the katakana reading set by
// the language-aware tokenizer.
type KanaReadingformFilter struct{}

func NewKanaReadingformFilter() KanaReadingformFilter {
	return KanaReadingformFilter{}
}

func (f KanaReadingformFilter) Filter(tokenStream TokenStream) TokenStream {
	return rewriteTerms(tokenStream, func(token Token) (Token, bool) {
		if token.Kana != "" {
			token.Term = token.Kana
		}
		return token, true
	})
}
