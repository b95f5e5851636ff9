package imser

type Searcher interface {
	Search() []DocumentID
}

type MatchAllSearcher struct {
	index *Index
}

func NewMatchAllSearcher(index *Index) MatchAllSearcher {
	return MatchAllSearcher{index: index}
}

func (s MatchAllSearcher) Search() []DocumentID {
	docs := s.index.Documents()
	ids := make([]DocumentID, len(docs))
	for i, doc := range docs {
		ids[i] = doc.ID
	}
	return ids
}

type Logic int

const (
	AND Logic = iota
	OR
)

type MatchSearcher struct {
	tokenStream TokenStream
	logic       Logic
	index       *Index
}

func NewMatchSearcher(tokenStream TokenStream, logic Logic, index *Index) MatchSearcher {
	return MatchSearcher{
		tokenStream: tokenStream,
		logic:       logic,
		index:       index,
	}
}

func (ms MatchSearcher) Search() []DocumentID {
	terms := ms.tokenStream.Terms()
	if ms.logic == OR {
		return union(ms.index, terms)
	}
	return NewIntersection(ms.index, terms).Collect()
}

func union(idx *Index, terms []string) []DocumentID {
	ids := make([]DocumentID, 0)
	if len(terms) == 0 {
		return ids
	}
	bitmap := idx.DocBitmap(terms[0])
	for _, term := range terms[1:] {
		bitmap.Or(idx.DocBitmap(term))
	}
	it := bitmap.Iterator()
	for it.HasNext() {
		ids = append(ids, DocumentID(it.Next()))
	}
	return ids
}

// フレーズ検索
// 1, 全てのトークンを含む文書を積集合イテレータで列挙する
// 2, クエリ内の相対位置だけずらした出現位置が全トークンで揃えば結果に追加する
type PhraseSearcher struct {
	tokenStream TokenStream
	index       *Index
}

func NewPhraseSearcher(tokenStream TokenStream, index *Index) PhraseSearcher {
	return PhraseSearcher{
		tokenStream: tokenStream,
		index:       index,
	}
}

func (ps PhraseSearcher) Search() []DocumentID {
	// 書き込み時と同じ規則で位置を振り直す
	tokens := termTokens(ps.tokenStream, ps.index.PunctuationPositions())
	matched := make([]DocumentID, 0)
	if len(tokens) == 0 {
		return matched
	}

	terms := make([]string, len(tokens))
	for i, t := range tokens {
		terms[i] = t.Term
	}
	it := NewIntersection(ps.index, terms)
	for {
		docID, ok := it.Next()
		if !ok {
			break
		}
		if ps.isPhraseMatch(docID, tokens) {
			matched = append(matched, docID)
		}
	}
	return matched
}

func (ps PhraseSearcher) isPhraseMatch(docID DocumentID, tokens []Token) bool {
	base := tokens[0].Position
	sets := make([]map[int]struct{}, len(tokens))
	for i, t := range tokens {
		positions := ps.index.Positions(docID, t.Term)
		sets[i] = make(map[int]struct{}, len(positions))
		for _, p := range positions {
			sets[i][p] = struct{}{}
		}
	}

	for _, start := range ps.index.Positions(docID, tokens[0].Term) {
		found := true
		for i, t := range tokens[1:] {
			if _, ok := sets[i+1][start+t.Position-base]; !ok {
				found = false
				break
			}
		}
		if found {
			return true
		}
	}
	return false
}

// TermSearcher ranks the documents containing a single term by tf-idf.
type TermSearcher struct {
	term  string
	index *Index
}

func NewTermSearcher(term string, index *Index) TermSearcher {
	return TermSearcher{
		term:  term,
		index: index,
	}
}

func (ts TermSearcher) Search() []DocumentID {
	return SearchTerm(ts.index, ts.term)
}
