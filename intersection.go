package imser

// cursor walks one posting list. pos never decreases.
type cursor struct {
	postings []Posting
	pos      int
}

func (c *cursor) exhausted() bool {
	return c.pos >= len(c.postings)
}

func (c *cursor) head() DocumentID {
	return c.postings[c.pos].DocumentID
}

// skipTo advances past every posting below target.
func (c *cursor) skipTo(target DocumentID) {
	for c.pos < len(c.postings) && c.postings[c.pos].DocumentID < target {
		c.pos++
	}
}

// Intersection lazily yields, in ascending order, the documents that contain
// every one of its terms. It leapfrogs the cursors to the largest head seen
// instead of stepping them one posting at a time.
type Intersection struct {
	cursors   []cursor
	candidate DocumentID
	done      bool
}

// NewIntersection opens one cursor per term occurrence. A term missing from
// the index, or an empty term list, yields an exhausted iterator.
func NewIntersection(idx *Index, terms []string) *Intersection {
	it := &Intersection{
		cursors: make([]cursor, 0, len(terms)),
	}
	if len(terms) == 0 {
		it.done = true
		return it
	}
	for _, term := range terms {
		postingList, ok := idx.PostingList(term)
		if !ok || postingList.Size() == 0 {
			it.cursors = nil
			it.done = true
			return it
		}
		it.cursors = append(it.cursors, cursor{postings: postingList.Postings})
	}
	it.candidate = it.cursors[0].head()
	return it
}

// Next returns the next matching document id, or false once exhausted.
func (it *Intersection) Next() (DocumentID, bool) {
	if it.done {
		return 0, false
	}
scan:
	for {
		for i := range it.cursors {
			it.cursors[i].skipTo(it.candidate)
		}
		for i := range it.cursors {
			c := &it.cursors[i]
			if c.exhausted() {
				it.done = true
				return 0, false
			}
			if head := c.head(); head != it.candidate {
				// skipTo済みなのでhead > candidate
				it.candidate = head
				continue scan
			}
		}
		matched := it.candidate
		it.candidate++
		return matched, true
	}
}

// Collect drains the iterator.
func (it *Intersection) Collect() []DocumentID {
	ids := make([]DocumentID, 0)
	for {
		id, ok := it.Next()
		if !ok {
			return ids
		}
		ids = append(ids, id)
	}
}
