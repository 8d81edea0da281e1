package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmateos/procura-be/internal/services"
)

func TestCreateAndListRFPs(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewRFPService(db)
	ctx := context.Background()

	id, err := svc.Create(ctx, "Office fit-out", "Desks and chairs")
	require.NoError(t, err)
	require.Positive(t, id)

	rfps, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rfps, 1)
	require.Equal(t, "Office fit-out", rfps[0].Title)
	require.Equal(t, "Desks and chairs", rfps[0].Description)
	require.False(t, rfps[0].CreatedAt.IsZero())
}

func TestListRFPsEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewRFPService(db)

	rfps, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, rfps)
	require.Empty(t, rfps)
}
