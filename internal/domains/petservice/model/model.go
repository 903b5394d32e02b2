package model

import "petcare/shared/model"

const (
	TableName  = "service"
	EntityName = "service"

	FieldID          = "serviceid"
	FieldProviderID  = "providerid"
	FieldTypeID      = "typeid"
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldDuration    = "duration"
	FieldStatus      = "status"
)

// Status is the moderation state of a service listing.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsBookable reports whether pet owners may book or browse the service.
func (s Status) IsBookable() bool {
	return s == StatusApproved
}

type Service struct {
	ID          string `db:"serviceid"`
	ProviderID  string `db:"providerid"`
	TypeID      string `db:"typeid"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Price       int    `db:"price"`
	Duration    string `db:"duration"`
	Status      Status `db:"status"`
	model.Metadata
}
