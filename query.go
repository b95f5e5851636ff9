package imser

type Query interface {
	Searcher(*Index) Searcher
}

type MatchAllQuery struct{}

func NewMatchAllQuery() *MatchAllQuery {
	return &MatchAllQuery{}
}

func (q *MatchAllQuery) Searcher(index *Index) Searcher {
	return NewMatchAllSearcher(index)
}

type MatchQuery struct {
	text     string
	logic    Logic
	analyzer Analyzer
}

func NewMatchQuery(text string, logic Logic, analyzer Analyzer) *MatchQuery {
	return &MatchQuery{
		text:     text,
		logic:    logic,
		analyzer: analyzer,
	}
}

func (q *MatchQuery) Searcher(index *Index) Searcher {
	tokenStream := q.analyzer.Analyze(q.text)
	return NewMatchSearcher(tokenStream, q.logic, index)
}

type PhraseQuery struct {
	phrase   string
	analyzer Analyzer
}

func NewPhraseQuery(phrase string, analyzer Analyzer) *PhraseQuery {
	return &PhraseQuery{
		phrase:   phrase,
		analyzer: analyzer,
	}
}

func (q *PhraseQuery) Searcher(index *Index) Searcher {
	tokenStream := q.analyzer.Analyze(q.phrase)
	return NewPhraseSearcher(tokenStream, index)
}

// TermQuery ranks by tf-idf using the first term the analyzer yields.
type TermQuery struct {
	term     string
	analyzer Analyzer
}

func NewTermQuery(term string, analyzer Analyzer) *TermQuery {
	return &TermQuery{
		term:     term,
		analyzer: analyzer,
	}
}

func (q *TermQuery) Searcher(index *Index) Searcher {
	terms := q.analyzer.Analyze(q.term).Terms()
	if len(terms) == 0 {
		return NewMatchSearcher(TokenStream{}, AND, index)
	}
	return NewTermSearcher(terms[0], index)
}

func (q *MatchQuery) Terms() []string {
	return q.analyzer.Analyze(q.text).Terms()
}

func (q *PhraseQuery) Terms() []string {
	return q.analyzer.Analyze(q.phrase).Terms()
}

func (q *TermQuery) Terms() []string {
	terms := q.analyzer.Analyze(q.term).Terms()
	if len(terms) > 1 {
		return terms[:1]
	}
	return terms
}
