package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmateos/procura-be/internal/services"
)

func TestOnboardAndList(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewSupplierService(db)
	ctx := context.Background()

	first, err := svc.Onboard(ctx, "Acme Pipes", "REG-7781", "1 Factory Rd")
	require.NoError(t, err)
	require.Positive(t, first)

	second, err := svc.Onboard(ctx, "Globex Logistics", "REG-9900", "2 Harbor Way")
	require.NoError(t, err)
	require.Greater(t, second, first)

	suppliers, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, suppliers, 2)
	require.Equal(t, "Acme Pipes", suppliers[0].Name)
	require.Equal(t, "REG-9900", suppliers[1].RegistrationNumber)
}

func TestOnboardDuplicateRegistrationNumber(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewSupplierService(db)
	ctx := context.Background()

	_, err := svc.Onboard(ctx, "Acme Pipes", "REG-7781", "1 Factory Rd")
	require.NoError(t, err)

	_, err = svc.Onboard(ctx, "Acme Pipes Ltd", "REG-7781", "3 Factory Rd")
	require.Error(t, err)
	require.Contains(t, err.Error(), "UNIQUE constraint failed")
}
