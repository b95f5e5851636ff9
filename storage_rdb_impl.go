package imser

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

type DBConfig struct {
	User     string
	Password string
	Addr     string
	Port     string
	DB       string
}

func NewDBConfig(user, password, addr, port, db string) *DBConfig {
	return &DBConfig{
		User:     user,
		Password: password,
		Addr:     addr,
		Port:     port,
		DB:       db,
	}
}

func (c *DBConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", c.User, c.Password, c.Addr, c.Port, c.DB)
}

func NewDBClient(dbConfig *DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", dbConfig.DSN())
	if err != nil {
		return nil, err
	}
	return db, nil
}

// StorageRdbImpl reads documents from a MySQL table
// `documents (id bigint auto_increment, body text)`.
type StorageRdbImpl struct {
	DB *sqlx.DB
}

func NewStorageRdbImpl(db *sqlx.DB) *StorageRdbImpl {
	return &StorageRdbImpl{
		DB: db,
	}
}

func (s *StorageRdbImpl) CountDocuments() (int, error) {
	var count int
	if err := s.DB.Get(&count, `select count(*) from documents`); err != nil {
		return -1, err
	}
	return count, nil
}

// GetAllDocuments returns documents ordered by their table id. The writer
// assigns fresh sequential ids, so table ids only fix the order.
func (s *StorageRdbImpl) GetAllDocuments() ([]Document, error) {
	docs := make([]Document, 0)
	if err := s.DB.Select(&docs, `select id, body from documents order by id`); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *StorageRdbImpl) AddDocument(doc Document) (DocumentID, error) {
	res, err := s.DB.NamedExec(`insert into documents (body) values (:body)`,
		map[string]interface{}{
			"body": doc.Body,
		})
	if err != nil {
		return 0, err
	}

	insertedID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return DocumentID(insertedID), nil
}
