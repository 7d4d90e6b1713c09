package service_test

import (
	"context"
	"reception/infras/otel/mocks"
	"reception/internal/domains/navigation/model/dto"
	"reception/internal/domains/navigation/service"
	"reception/shared/constant"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Resolve(t *testing.T) {
	svc, err := service.New(mocks.NewOtel())
	require.NoError(t, err)

	tests := []struct {
		name       string
		role       string
		path       string
		base       string
		active     string
		activeHref string
	}{
		{name: "admin dashboard", role: constant.RoleAdmin, path: "/admin/billing", base: "/admin/billing", active: "dashboard", activeHref: "/admin/billing"},
		{name: "reception history", role: constant.RoleReception, path: "/reception/billing/payment-history", base: "/reception/billing", active: "payment-history", activeHref: "/reception/billing/payment-history"},
		{name: "missing path", role: constant.RoleReception, path: "", base: "/reception/billing", active: "dashboard", activeHref: "/reception/billing"},
		{name: "superadmin unknown slug", role: constant.RoleSuperAdmin, path: "/admin/billing/nope", base: "/admin/billing", active: "dashboard", activeHref: "/admin/billing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.WithValue(context.Background(), constant.ContextKeyUserRole, tt.role)

			res, err := svc.Resolve(ctx, dto.ResolveRequest{Path: tt.path})
			require.NoError(t, err)

			assert.Equal(t, tt.base, res.Base)
			assert.Equal(t, tt.active, res.Active)

			activeCount := 0
			for _, entry := range res.Sidebar {
				if entry.Active {
					activeCount++
					assert.Equal(t, tt.activeHref, entry.Href)
				}
			}

			assert.Equal(t, 1, activeCount)
		})
	}
}
