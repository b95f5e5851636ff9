package imser

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"
)

// IndexWriter accumulates documents and is consumed by Build. A consumed
// writer panics on further use.
type IndexWriter struct {
	analyzer             Analyzer
	dictionary           *TermDictionary
	documents            []Document
	entries              []documentTerms
	punctuationPositions bool
}

// 文書ごとの語ID→出現位置
type documentTerms struct {
	docID     DocumentID
	order     []TermID // 初出順
	positions map[TermID][]int
}

type WriterOption func(*IndexWriter)

// WithPunctuationPositions controls whether punctuation tokens consume a
// position slot. Enabled by default.
func WithPunctuationPositions(enabled bool) WriterOption {
	return func(w *IndexWriter) {
		w.punctuationPositions = enabled
	}
}

func NewIndexWriter(analyzer Analyzer, opts ...WriterOption) *IndexWriter {
	w := &IndexWriter{
		analyzer:             analyzer,
		dictionary:           NewTermDictionary(),
		documents:            make([]Document, 0),
		entries:              make([]documentTerms, 0),
		punctuationPositions: true,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write assigns the next sequential id to doc, indexes its terms and stores
// it.
func (w *IndexWriter) Write(doc Document) DocumentID {
	w.mustNotBeConsumed()
	if DocumentID(len(w.documents)) > MaxDocumentID {
		panic(fmt.Sprintf("imser: more than %d documents written", uint64(MaxDocumentID)+1))
	}
	doc.ID = DocumentID(len(w.documents))

	entry := documentTerms{
		docID:     doc.ID,
		order:     make([]TermID, 0),
		positions: make(map[TermID][]int),
	}
	for _, token := range termTokens(w.analyzer.Analyze(doc.Body), w.punctuationPositions) {
		termID := w.dictionary.AddTerm(token.Term)
		if _, ok := entry.positions[termID]; !ok {
			entry.order = append(entry.order, termID)
		}
		entry.positions[termID] = append(entry.positions[termID], token.Position)
	}

	w.entries = append(w.entries, entry)
	w.documents = append(w.documents, doc)
	return doc.ID
}

// Build materializes the index and consumes the writer.
func (w *IndexWriter) Build() *Index {
	w.mustNotBeConsumed()
	idx := &Index{
		docCount:             len(w.documents),
		punctuationPositions: w.punctuationPositions,
		postings: make(map[string]*PostingList),
		bitmaps:  make(map[string]*roaring.Bitmap),
		stored:   make(map[DocumentID]Document, len(w.documents)),
		termFreq: make(map[DocumentID]TermFrequency, len(w.documents)),
	}

	// 文書IDの昇順に処理するのでポスティングリストも昇順になる
	for _, entry := range w.entries {
		tf := newTermFrequency()
		for _, termID := range entry.order {
			term, ok := w.dictionary.Term(termID)
			if !ok {
				panic(fmt.Sprintf("imser: term id %d was never assigned", termID))
			}
			positions := entry.positions[termID]
			tf.Counts[term] += len(positions)
			tf.Total += len(positions)

			postingList, ok := idx.postings[term]
			if !ok {
				postingList = NewPostingList()
				idx.postings[term] = postingList
				idx.bitmaps[term] = roaring.New()
			}
			postingList.push(NewPosting(entry.docID, positions))
			idx.bitmaps[term].Add(bitmapID(entry.docID))
		}
		idx.termFreq[entry.docID] = tf
	}
	for _, doc := range w.documents {
		idx.stored[doc.ID] = doc
	}

	*w = IndexWriter{}
	return idx
}

// termTokens returns the Term tokens of ts. Unless punctuationPositions is
// set, each position is shifted back by the punctuation seen before it. Both
// the writer and phrase queries number positions through here.
func termTokens(ts TokenStream, punctuationPositions bool) []Token {
	tokens := make([]Token, 0, ts.Size())
	var punctuations int
	for _, token := range ts.Tokens {
		if token.Kind == Punct {
			punctuations++
			continue
		}
		if !punctuationPositions {
			token.Position -= punctuations
		}
		tokens = append(tokens, token)
	}
	return tokens
}

func (w *IndexWriter) mustNotBeConsumed() {
	if w.dictionary == nil {
		panic("imser: IndexWriter used after Build")
	}
}

// BuildIndex writes every document with a fresh writer and builds the index.
func BuildIndex(analyzer Analyzer, docs []Document, opts ...WriterOption) *Index {
	w := NewIndexWriter(analyzer, opts...)
	for _, doc := range docs {
		w.Write(doc)
	}
	return w.Build()
}
