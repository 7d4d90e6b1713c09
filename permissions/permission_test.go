package permissions_test

import (
	"net/http"
	"reception/permissions"
	"reception/shared/constant"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)
	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)

	refund := data.FindPermissions("/v1/billing/refunds", http.MethodPost)
	assert.ElementsMatch(t, []string{constant.RoleSuperAdmin, constant.RoleAdmin}, refund.Permissions)

	checkout := data.FindPermissions("/v1/bookings/{id}/checkout", http.MethodPost)
	assert.Contains(t, checkout.Permissions, constant.RoleReception)

	assert.True(t, data.FindPermissions("/v1/clock", http.MethodGet).Skip)
}

func TestFindPermissionsUnknownRoute(t *testing.T) {
	data, err := permissions.Parse([]byte(`{"endpoints":[{"path":"/v1/rooms/","method":"GET","permissions":["admin"]}]}`))
	require.NoError(t, err)

	assert.Empty(t, data.FindPermissions("/v1/rooms/", http.MethodPost).Permissions)
	assert.Equal(t, []string{"admin"}, data.FindPermissions("/v1/rooms/", http.MethodGet).Permissions)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := permissions.Parse([]byte(`{`))
	assert.Error(t, err)
}
