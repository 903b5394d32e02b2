package permissions_test

import (
	"net/http"
	"petcare/permissions"
	"petcare/shared/constant"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_LoadsEmbeddedPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)
	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)
}

func TestPermissionData_FindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name      string
		path      string
		method    string
		wantSkip  bool
		wantRoles []string
	}{
		{"public listing", "/v1/services", http.MethodGet, true, nil},
		{"mounted root keeps trailing slash", "/v1/bookings/", http.MethodPost, false, []string{constant.RolePetOwner}},
		{"provider slot update", "/v1/services/{id}/timeslots", http.MethodPut, false, []string{constant.RoleServiceProvider}},
		{"manager moderation", "/v1/services/{id}/status", http.MethodPatch, false, []string{constant.RoleManager}},
		{"provider booking status", "/v1/provider/bookings/{id}/status", http.MethodPatch, false, []string{constant.RoleServiceProvider}},
		{"unknown route", "/v1/unknown", http.MethodGet, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, got.Skip)

			if tt.wantRoles == nil {
				assert.Empty(t, got.Permissions)
			} else {
				assert.Equal(t, tt.wantRoles, got.Permissions)
			}
		})
	}
}
