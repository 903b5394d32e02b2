package dto

import (
	"petcare/internal/domains/petservice/model"
	"petcare/shared"
	gDto "petcare/shared/dto"
	gModel "petcare/shared/model"
	"petcare/shared/timezone"

	"github.com/google/uuid"
)

type CreateServiceRequest struct {
	Name        string   `json:"name"        validate:"required,max=100"`
	Description string   `json:"description" validate:"omitempty"`
	Price       int      `json:"price"       validate:"gte=0"`
	Duration    string   `json:"duration"    validate:"omitempty,max=50"`
	TypeID      string   `json:"typeid"      validate:"omitempty,max=50"`
	Timeslots   []string `json:"timeslots"   validate:"omitempty,max=100,dive,slot"`
}

func (c *CreateServiceRequest) ToModel(user string) model.Service {
	return model.Service{
		ID:          uuid.NewString(),
		ProviderID:  user,
		TypeID:      c.TypeID,
		Name:        c.Name,
		Description: c.Description,
		Price:       c.Price,
		Duration:    c.Duration,
		Status:      model.StatusPending,
		Metadata:    gModel.NewMetadata(user, timezone.Now()),
	}
}

// UpdateServiceRequest changes descriptive fields and, when Timeslots is present, replaces the slot set.
// An empty timeslots array removes every slot.
type UpdateServiceRequest struct {
	Name        string    `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string    `db:"description" json:"description" validate:"omitempty"`
	Price       *int      `db:"price"       json:"price"       validate:"omitempty,gte=0"`
	Duration    string    `db:"duration"    json:"duration"    validate:"omitempty,max=50"`
	TypeID      string    `db:"typeid"      json:"typeid"      validate:"omitempty,max=50"`
	Timeslots   *[]string `json:"timeslots"   validate:"omitempty,max=100,dive,slot"`
}

// HasFieldChanges reports whether any descriptive column is being updated.
func (u *UpdateServiceRequest) HasFieldChanges() bool {
	return u.Name != "" || u.Description != "" || u.Price != nil || u.Duration != "" || u.TypeID != ""
}

func (u *UpdateServiceRequest) IsEmpty() bool {
	return !u.HasFieldChanges() && u.Timeslots == nil
}

type ModerateServiceRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

type ServiceResponse struct {
	ID          string   `json:"serviceid"`
	ProviderID  string   `json:"providerid"`
	TypeID      string   `json:"typeid"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Duration    string   `json:"duration"`
	Status      string   `json:"status"`
	Timeslots   []string `json:"timeslots"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(model model.Service, slots []string) {
	r.ID = model.ID
	r.ProviderID = model.ProviderID
	r.TypeID = model.TypeID
	r.Name = model.Name
	r.Description = model.Description
	r.Price = model.Price
	r.Duration = model.Duration
	r.Status = string(model.Status)
	r.Timeslots = slots

	if r.Timeslots == nil {
		r.Timeslots = []string{}
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod, nil)
	}
}
