package imser

import (
	"fmt"
	"math"
	"sort"

	"github.com/RoaringBitmap/roaring"
)

// TermFrequency holds per-document occurrence counts.
type TermFrequency struct {
	Counts map[string]int
	Total  int // 文書中の総語数
}

func newTermFrequency() TermFrequency {
	return TermFrequency{Counts: make(map[string]int)}
}

// Index is the read-only positional inverted index produced by
// IndexWriter.Build. It has no mutating methods and may be shared by
// reference.
type Index struct {
	docCount             int
	punctuationPositions bool // 書き込み時に句読点が位置を消費したか
	postings             map[string]*PostingList
	bitmaps              map[string]*roaring.Bitmap
	stored               map[DocumentID]Document
	termFreq             map[DocumentID]TermFrequency
}

// MaxDocumentID is the largest id the per-term roaring bitmaps can hold.
const MaxDocumentID = DocumentID(math.MaxUint32)

// bitmapID narrows id for roaring. Ids beyond MaxDocumentID are never
// assigned by IndexWriter, so reaching one is a broken invariant.
func bitmapID(id DocumentID) uint32 {
	if id > MaxDocumentID {
		panic(fmt.Sprintf("imser: document id %d exceeds %d", id, MaxDocumentID))
	}
	return uint32(id)
}

func (idx *Index) DocCount() int {
	return idx.docCount
}

func (idx *Index) Doc(id DocumentID) (Document, bool) {
	doc, ok := idx.stored[id]
	return doc, ok
}

// Documents returns every stored document in ascending id order.
func (idx *Index) Documents() []Document {
	docs := make([]Document, 0, len(idx.stored))
	for _, doc := range idx.stored {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs
}

// PunctuationPositions reports whether punctuation consumed a position when
// the index was written.
func (idx *Index) PunctuationPositions() bool {
	return idx.punctuationPositions
}

func (idx *Index) PostingList(term string) (*PostingList, bool) {
	p, ok := idx.postings[term]
	return p, ok
}

// Terms returns the indexed terms in lexical order.
func (idx *Index) Terms() []string {
	terms := make([]string, 0, len(idx.postings))
	for term := range idx.postings {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

func (idx *Index) TermFrequency(id DocumentID) (TermFrequency, bool) {
	tf, ok := idx.termFreq[id]
	return tf, ok
}

// Positions returns the word positions of term in document id, or nil.
func (idx *Index) Positions(id DocumentID, term string) []int {
	p, ok := idx.postings[term]
	if !ok {
		return nil
	}
	posting, ok := p.Find(id)
	if !ok {
		return nil
	}
	return posting.Positions
}

// DocBitmap returns a copy of the set of documents containing term. The
// bitmap is empty for unknown terms.
func (idx *Index) DocBitmap(term string) *roaring.Bitmap {
	b, ok := idx.bitmaps[term]
	if !ok {
		return roaring.New()
	}
	return b.Clone()
}

func (idx *Index) Contains(term string, id DocumentID) bool {
	b, ok := idx.bitmaps[term]
	return ok && id <= MaxDocumentID && b.Contains(bitmapID(id))
}

// IDF is log2(N / (df + 1)) floored at zero.
func (idx *Index) IDF(term string) float64 {
	if idx.docCount == 0 {
		return 0
	}
	var matched int
	if p, ok := idx.postings[term]; ok {
		matched = p.Size()
	}
	idf := math.Log2(float64(idx.docCount) / float64(matched+1))
	if idf < 0 {
		return 0
	}
	return idf
}

// TF is the share of the document's terms that are term.
func (idx *Index) TF(id DocumentID, term string) float64 {
	tf, ok := idx.termFreq[id]
	if !ok || tf.Total == 0 {
		return 0
	}
	return float64(tf.Counts[term]) / float64(tf.Total)
}

func (idx *Index) TfIdf(id DocumentID, term string) float64 {
	return idx.TF(id, term) * idx.IDF(term)
}
