package services

import (
	"context"
	"cpay/entity"
)

type Payments interface {
	// CreateForm merges merchant fields into the request, validates and checksums
	// the merged map and describes the form to submit to CPay.
	CreateForm(ctx context.Context, request *entity.FieldMap) (*entity.Form, error)
	// GenerateChecksum validates and checksums an already merged map.
	GenerateChecksum(ctx context.Context, fields *entity.FieldMap) (*entity.ChecksumResult, error)
}
