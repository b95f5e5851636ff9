package imser

import (
	"fmt"
	"io"
	"log/slog"
)

// Engine indexes a fixed set of documents and answers queries against it,
// resolving matched ids back to documents.
type Engine struct {
	analyzer Analyzer
	index    *Index
	logger   *slog.Logger
}

type engineOptions struct {
	logger        *slog.Logger
	writerOptions []WriterOption
}

type EngineOption func(*engineOptions)

func WithLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

func WithWriterOptions(opts ...WriterOption) EngineOption {
	return func(o *engineOptions) {
		o.writerOptions = append(o.writerOptions, opts...)
	}
}

func NewEngine(analyzer Analyzer, docs []Document, opts ...EngineOption) *Engine {
	o := engineOptions{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}

	index := BuildIndex(analyzer, docs, o.writerOptions...)
	o.logger.Debug("index built",
		"documents", index.DocCount(),
		"terms", len(index.postings),
	)
	return &Engine{
		analyzer: analyzer,
		index:    index,
		logger:   o.logger,
	}
}

func NewEngineFromStorage(analyzer Analyzer, storage Storage, opts ...EngineOption) (*Engine, error) {
	docs, err := storage.GetAllDocuments()
	if err != nil {
		return nil, err
	}
	return NewEngine(analyzer, docs, opts...), nil
}

func (e *Engine) Index() *Index {
	return e.index
}

func (e *Engine) Analyzer() Analyzer {
	return e.analyzer
}

// SearchTerm ranks documents for a single term by tf-idf. The term goes
// through the same analyzer used at index time.
func (e *Engine) SearchTerm(term string) []Document {
	return e.Search(NewTermQuery(term, e.analyzer), nil)
}

// SearchTerms returns, in ascending id order, the documents containing every
// term of query.
func (e *Engine) SearchTerms(query string) []Document {
	return e.Search(NewMatchQuery(query, AND, e.analyzer), nil)
}

// Search runs q. When sorter is non-nil and q exposes its terms, the result
// is reordered by sorter.
func (e *Engine) Search(q Query, sorter Sorter) []Document {
	ids := q.Searcher(e.index).Search()
	if sorter != nil {
		if tq, ok := q.(interface{ Terms() []string }); ok {
			ids = sorter.Sort(e.index, ids, tq.Terms())
		}
	}
	e.logger.Debug("query executed", "query", fmt.Sprintf("%T", q), "hits", len(ids))
	return e.Documents(ids)
}

// Positions returns the word positions of the analyzed term per document.
func (e *Engine) Positions(term string) map[DocumentID][]int {
	positions := make(map[DocumentID][]int)
	terms := e.analyzer.Analyze(term).Terms()
	if len(terms) == 0 {
		return positions
	}
	postingList, ok := e.index.PostingList(terms[0])
	if !ok {
		return positions
	}
	for _, posting := range postingList.Postings {
		positions[posting.DocumentID] = posting.Positions
	}
	return positions
}

// Documents resolves ids in order, skipping unknown ones.
func (e *Engine) Documents(ids []DocumentID) []Document {
	docs := make([]Document, 0, len(ids))
	for _, id := range ids {
		if doc, ok := e.index.Doc(id); ok {
			docs = append(docs, doc)
		}
	}
	return docs
}
