package imser

type DocumentID uint64

type Document struct {
	ID   DocumentID `db:"id"`
	Body string     `db:"body"`
}

func NewDocument(body string) Document {
	return Document{
		Body: body,
	}
}

func NewDocuments(bodies ...string) []Document {
	docs := make([]Document, len(bodies))
	for i, body := range bodies {
		docs[i] = NewDocument(body)
	}
	return docs
}
