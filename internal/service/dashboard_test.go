package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishx06/gitinsights-pro/internal/store"
)

func TestDashboardService_CRUD(t *testing.T) {
	st := newTestStore(t)
	svc := &DashboardService{Store: st}
	ctx := context.Background()
	user := seedUser(t, st, 42, "gho_live")

	created, err := svc.Create(ctx, user.ID, "My Board", json.RawMessage(`[{"type":"stars"}]`))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "My Board", created.Name)
	assert.JSONEq(t, `[{"type":"stars"}]`, string(created.Widgets))

	updated, err := svc.Update(ctx, user.ID, created.ID, "Renamed", nil)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.JSONEq(t, `[{"type":"stars"}]`, string(updated.Widgets), "nil widgets keeps the existing layout")

	list, err := svc.List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, user.ID, created.ID))
	_, err = svc.Get(ctx, user.ID, created.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDashboardService_Validation(t *testing.T) {
	st := newTestStore(t)
	svc := &DashboardService{Store: st}
	ctx := context.Background()
	user := seedUser(t, st, 42, "gho_live")

	_, err := svc.Create(ctx, user.ID, "", nil)
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, user.ID, "Board", json.RawMessage(`{not json`))
	require.ErrorIs(t, err, ErrValidation)

	created, err := svc.Create(ctx, user.ID, "Board", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(created.Widgets), "missing widgets defaults to an empty layout")
}

func TestDashboardService_OwnerScoping(t *testing.T) {
	st := newTestStore(t)
	svc := &DashboardService{Store: st}
	ctx := context.Background()
	owner := seedUser(t, st, 42, "gho_live")
	intruder := seedUser(t, st, 43, "gho_other")

	created, err := svc.Create(ctx, owner.ID, "Private Board", nil)
	require.NoError(t, err)

	_, err = svc.Get(ctx, intruder.ID, created.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.Update(ctx, intruder.ID, created.ID, "Hijacked", nil)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, intruder.ID, created.ID), store.ErrNotFound)

	// Still intact for the owner.
	got, err := svc.Get(ctx, owner.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Private Board", got.Name)
}
