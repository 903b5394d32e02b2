package model

import "petcare/shared/model"

const (
	TableName  = "pet"
	EntityName = "pet"

	FieldID     = "petid"
	FieldUserID = "userid"
	FieldName   = "name"
	FieldBreed  = "breed"
)

type Pet struct {
	ID     string `db:"petid"`
	UserID string `db:"userid"`
	Name   string `db:"name"`
	Breed  string `db:"breed"`
	model.Metadata
}
