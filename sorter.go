package imser

import (
	"math"
	"sort"
)

// ScoreEpsilon is the tolerance under which two scores are considered equal.
const ScoreEpsilon = 2.220446049250313e-16 // float64 machine epsilon

type Sorter interface {
	Sort(idx *Index, docIDs []DocumentID, terms []string) []DocumentID
}

// TfIdfSorter orders documents by the sum of tf-idf over the query terms,
// highest first, ties by ascending document id.
type TfIdfSorter struct{}

func NewTfIdfSorter() *TfIdfSorter {
	return &TfIdfSorter{}
}

func (s *TfIdfSorter) Sort(idx *Index, docIDs []DocumentID, terms []string) []DocumentID {
	scores := make(documentScores, len(docIDs))
	for i, docID := range docIDs {
		var sum float64
		for _, term := range terms {
			sum += idx.TfIdf(docID, term)
		}
		scores[i] = newDocumentScore(docID, sum)
	}
	sort.Sort(scores)
	return scores.documentIDs()
}

// SearchTerm ranks every document containing term by tf-idf.
func SearchTerm(idx *Index, term string) []DocumentID {
	postingList, ok := idx.PostingList(term)
	if !ok {
		return []DocumentID{}
	}
	return NewTfIdfSorter().Sort(idx, postingList.DocumentIDs(), []string{term})
}

type documentScore struct {
	docID DocumentID
	score float64
}

func newDocumentScore(docID DocumentID, score float64) documentScore {
	return documentScore{
		docID: docID,
		score: score,
	}
}

func scoreEqual(a, b float64) bool {
	return math.Abs(a-b) <= ScoreEpsilon
}

type documentScores []documentScore

func (ds documentScores) Len() int { return len(ds) }
func (ds documentScores) Less(i, j int) bool {
	if !scoreEqual(ds[i].score, ds[j].score) {
		return ds[i].score > ds[j].score
	}
	return ds[i].docID < ds[j].docID
}
func (ds documentScores) Swap(i, j int) { ds[i], ds[j] = ds[j], ds[i] }

func (ds documentScores) documentIDs() []DocumentID {
	ids := make([]DocumentID, len(ds))
	for i, d := range ds {
		ids[i] = d.docID
	}
	return ids
}
