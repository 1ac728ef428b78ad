package database

import (
	"time"

	"github.com/upper/db/v4"
	"vincit.fi/image-culler/api"
	"vincit.fi/image-culler/api/apitype"
	"vincit.fi/image-culler/common/logger"
)

type Operation struct {
	Id          int64     `db:"id,omitempty"`
	Kind        string    `db:"kind"`
	Directory   string    `db:"directory"`
	FileName    string    `db:"file_name"`
	Error       string    `db:"error"`
	CreatedTime time.Time `db:"created_timestamp"`
}

func (s *Operation) Succeeded() bool {
	return s.Error == ""
}

// OperationStore is an append only journal of the operations applied to
// files on disk
type OperationStore struct {
	database   *Database
	collection db.Collection
	now        func() time.Time

	api.OperationJournal
}

func NewOperationStore(database *Database) *OperationStore {
	return &OperationStore{
		database: database,
		now:      time.Now,
	}
}

func (s *OperationStore) getCollection() db.Collection {
	if s.collection == nil {
		s.collection = s.database.Session().Collection("operation")
	}
	return s.collection
}

// Record never fails the operation it records. Journal errors are only logged.
func (s *OperationStore) Record(kind apitype.OperationKind, imageFile *apitype.ImageFile, operationErr error) {
	if _, err := s.AddOperation(kind, imageFile, operationErr); err != nil {
		logger.Warn.Printf("Could not journal %s of %s: %s", kind, imageFile, err)
	}
}

func (s *OperationStore) AddOperation(kind apitype.OperationKind, imageFile *apitype.ImageFile, operationErr error) (*Operation, error) {
	operation := &Operation{
		Kind:        string(kind),
		Directory:   imageFile.Directory(),
		FileName:    imageFile.FileName(),
		CreatedTime: s.now(),
	}
	if operationErr != nil {
		operation.Error = operationErr.Error()
	}

	result, err := s.getCollection().Insert(operation)
	if err != nil {
		return nil, err
	}
	operation.Id = result.ID().(int64)
	logger.Debug.Printf("Journaled %s of %s", kind, imageFile)
	return operation, nil
}

func (s *OperationStore) GetOperations() ([]Operation, error) {
	var operations []Operation
	err := s.getCollection().Find().OrderBy("id").All(&operations)
	return operations, err
}

func (s *OperationStore) GetOperationsByKind(kind apitype.OperationKind) ([]Operation, error) {
	var operations []Operation
	err := s.getCollection().Find(db.Cond{"kind": string(kind)}).OrderBy("id").All(&operations)
	return operations, err
}

func (s *OperationStore) Close() {
	s.database.Close()
}
