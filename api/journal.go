package api

import "vincit.fi/image-culler/api/apitype"

// OperationJournal keeps an audit trail of destructive file operations
type OperationJournal interface {
	Record(kind apitype.OperationKind, imageFile *apitype.ImageFile, operationErr error)
	Close()
}

type NoopJournal struct{}

func (s NoopJournal) Record(apitype.OperationKind, *apitype.ImageFile, error) {}

func (s NoopJournal) Close() {}
