package model

import (
	"time"

	"linka/shared/constant"
)

// Metadata is the audit block embedded in every persisted aggregate.
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	ModifiedAt time.Time `db:"modified_at" json:"modified_at"`
	CreatedBy  string    `db:"created_by"  json:"created_by"`
	ModifiedBy string    `db:"modified_by" json:"modified_by"`
}

func NewMetadata(at time.Time, actor string) Metadata {
	return Metadata{CreatedAt: at, ModifiedAt: at, CreatedBy: actor, ModifiedBy: actor}
}

// Touched returns the update columns recording actor as the last modifier.
func Touched(at time.Time, actor string) map[string]any {
	return map[string]any{constant.FieldModifiedAt: at, constant.FieldModifiedBy: actor}
}
