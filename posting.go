package imser

import "sort"

type Posting struct {
	DocumentID DocumentID
	Positions  []int // 文書内での出現位置(昇順)
}

func NewPosting(docID DocumentID, positions []int) Posting {
	return Posting{
		DocumentID: docID,
		Positions:  positions,
	}
}

// PostingList is ordered by ascending DocumentID with at most one posting per
// document.
type PostingList struct {
	Postings []Posting
}

func NewPostingList(postings ...Posting) *PostingList {
	return &PostingList{Postings: postings}
}

func (p *PostingList) Size() int {
	return len(p.Postings)
}

func (p *PostingList) DocumentIDs() []DocumentID {
	ids := make([]DocumentID, len(p.Postings))
	for i, posting := range p.Postings {
		ids[i] = posting.DocumentID
	}
	return ids
}

// Find returns the posting for docID using binary search.
func (p *PostingList) Find(docID DocumentID) (Posting, bool) {
	i := sort.Search(len(p.Postings), func(i int) bool {
		return p.Postings[i].DocumentID >= docID
	})
	if i < len(p.Postings) && p.Postings[i].DocumentID == docID {
		return p.Postings[i], true
	}
	return Posting{}, false
}

func (p *PostingList) AppearanceCountInDocument(docID DocumentID) int {
	posting, ok := p.Find(docID)
	if !ok {
		return 0
	}
	return len(posting.Positions)
}

func (p *PostingList) push(posting Posting) {
	if n := len(p.Postings); n > 0 && p.Postings[n-1].DocumentID >= posting.DocumentID {
		panic("imser: posting list must be appended in ascending document order")
	}
	p.Postings = append(p.Postings, posting)
}
