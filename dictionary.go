package imser

type TermID uint64

// TermDictionary assigns sequential ids to terms on first sight. Ids are
// never reused.
type TermDictionary struct {
	ids   map[string]TermID
	terms []string
}

func NewTermDictionary() *TermDictionary {
	return &TermDictionary{
		ids:   make(map[string]TermID),
		terms: make([]string, 0),
	}
}

func (d *TermDictionary) AddTerm(term string) TermID {
	if id, ok := d.ids[term]; ok {
		return id
	}
	id := TermID(len(d.terms))
	d.ids[term] = id
	d.terms = append(d.terms, term)
	return id
}

func (d *TermDictionary) Term(id TermID) (string, bool) {
	if id >= TermID(len(d.terms)) {
		return "", false
	}
	return d.terms[id], true
}

func (d *TermDictionary) Index(term string) (TermID, bool) {
	id, ok := d.ids[term]
	return id, ok
}

func (d *TermDictionary) Len() int {
	return len(d.terms)
}
