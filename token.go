package imser

type TokenKind int

const (
	Term TokenKind = iota
	Punct
)

func (k TokenKind) String() string {
	switch k {
	case Term:
		return "Term"
	case Punct:
		return "Punct"
	default:
		return "Unknown"
	}
}

type Token struct {
	Kind     TokenKind
	Term     string
	Kana     string // 読み(言語解析トークナイザのみ)
	Offset   int    // 解析対象文字列先頭からのバイトオフセット
	Length   int    // バイト長
	Position int    // 単語位置
}

type TokenOption func(*Token)

func NewToken(term string, options ...TokenOption) Token {
	token := Token{Kind: Term, Term: term, Length: len(term)}
	for _, option := range options {
		option(&token)
	}
	return token
}

func NewPunctToken(punct string, options ...TokenOption) Token {
	token := NewToken(punct, options...)
	token.Kind = Punct
	return token
}

func SetKana(kana string) TokenOption {
	return func(t *Token) {
		t.Kana = kana
	}
}

func SetOffset(offset int) TokenOption {
	return func(t *Token) {
		t.Offset = offset
	}
}

func SetPosition(position int) TokenOption {
	return func(t *Token) {
		t.Position = position
	}
}

// At sets both offset and position.
func At(offset, position int) TokenOption {
	return func(t *Token) {
		t.Offset = offset
		t.Position = position
	}
}

type TokenStream struct {
	Tokens []Token
}

func NewTokenStream(tokens []Token) TokenStream {
	return TokenStream{
		Tokens: tokens,
	}
}

func (ts TokenStream) Size() int {
	return len(ts.Tokens)
}

// Terms returns the strings of Term tokens only, in scan order.
func (ts TokenStream) Terms() []string {
	terms := make([]string, 0, ts.Size())
	for _, t := range ts.Tokens {
		if t.Kind == Term {
			terms = append(terms, t.Term)
		}
	}
	return terms
}
