package imser

//go:generate mockgen -source=storage.go -destination=mock_storage_test.go -package=imser

// Storage is a source of documents to index. The index itself is never
// persisted; it is rebuilt from a Storage on every run.
type Storage interface {
	GetAllDocuments() ([]Document, error)     // 全てのドキュメントを返す
	CountDocuments() (int, error)             // ドキュメント数を返す
	AddDocument(Document) (DocumentID, error) // ドキュメントを挿入する。挿入したドキュメントのIDを返す。
}

// MemoryStorage keeps documents in insertion order.
type MemoryStorage struct {
	docs []Document
}

func NewMemoryStorage(docs ...Document) *MemoryStorage {
	s := &MemoryStorage{docs: make([]Document, 0, len(docs))}
	for _, doc := range docs {
		s.AddDocument(doc)
	}
	return s
}

func (s *MemoryStorage) GetAllDocuments() ([]Document, error) {
	docs := make([]Document, len(s.docs))
	copy(docs, s.docs)
	return docs, nil
}

func (s *MemoryStorage) CountDocuments() (int, error) {
	return len(s.docs), nil
}

func (s *MemoryStorage) AddDocument(doc Document) (DocumentID, error) {
	doc.ID = DocumentID(len(s.docs))
	s.docs = append(s.docs, doc)
	return doc.ID, nil
}
