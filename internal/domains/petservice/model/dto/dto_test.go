package dto_test

import (
	"testing"

	"petcare/internal/domains/petservice/model"
	"petcare/internal/domains/petservice/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestCreateServiceRequest_ToModel(t *testing.T) {
	req := dto.CreateServiceRequest{
		Name:     "Grooming",
		Price:    150,
		Duration: "1h",
		TypeID:   "grooming",
	}

	got := req.ToModel("provider-1")

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "provider-1", got.ProviderID)
	assert.Equal(t, model.StatusPending, got.Status)
	assert.Equal(t, "provider-1", got.CreatedBy)
	assert.Equal(t, 150, got.Price)
}

func TestUpdateServiceRequest_IsEmpty(t *testing.T) {
	price := 0
	none := []string{}

	tests := []struct {
		name       string
		req        dto.UpdateServiceRequest
		wantEmpty  bool
		wantFields bool
	}{
		{name: "nothing set", req: dto.UpdateServiceRequest{}, wantEmpty: true},
		{name: "zero price is a change", req: dto.UpdateServiceRequest{Price: &price}, wantFields: true},
		{name: "empty timeslots is a change", req: dto.UpdateServiceRequest{Timeslots: &none}},
		{name: "name only", req: dto.UpdateServiceRequest{Name: "Walk"}, wantFields: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantEmpty, tt.req.IsEmpty())
			assert.Equal(t, tt.wantFields, tt.req.HasFieldChanges())
		})
	}
}

func TestServiceResponse_FromModel(t *testing.T) {
	res := dto.ServiceResponse{}
	res.FromModel(model.Service{ID: "svc-1", Status: model.StatusApproved}, nil)

	assert.Equal(t, "svc-1", res.ID)
	assert.Equal(t, "approved", res.Status)
	assert.Equal(t, []string{}, res.Timeslots)
}
