package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"echocast/internal/database"
	"echocast/internal/domain"
	"echocast/internal/repository"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:session_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err, "failed to open sqlite db")
	require.NoError(t, repository.AutoMigrate(db), "failed to migrate db")
	return NewService(repository.NewSessionRepository(db))
}

func TestCreateAndList(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	owner := &domain.User{ID: 1, Email: "a@x.com"}

	first, err := svc.Create(ctx, owner, CreateSessionRequest{Title: "Ep1", Description: "pilot"})
	require.NoError(t, err)
	assert.Equal(t, "Ep1", first.Title)
	assert.Equal(t, owner.ID, first.UserID)

	second, err := svc.Create(ctx, owner, CreateSessionRequest{Title: "Ep2"})
	require.NoError(t, err)

	sessions, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	// newest first
	assert.Equal(t, second.ID, sessions[0].ID)
	assert.Equal(t, first.ID, sessions[1].ID)
}

func TestCreate_EmptyTitle(t *testing.T) {
	svc := setupTestService(t)
	owner := &domain.User{ID: 1}

	_, err := svc.Create(context.Background(), owner, CreateSessionRequest{Title: "   "})
	assert.ErrorIs(t, err, ErrTitleRequired)
}

func TestList_EmptyIsNotAnError(t *testing.T) {
	svc := setupTestService(t)

	sessions, err := svc.List(context.Background(), &domain.User{ID: 99})
	assert.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestGet_OtherOwnerIsNotFound(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	ownerA := &domain.User{ID: 1}
	ownerB := &domain.User{ID: 2}

	created, err := svc.Create(ctx, ownerB, CreateSessionRequest{Title: "B's session"})
	require.NoError(t, err)

	// A row owned by someone else is indistinguishable from a missing row
	_, err = svc.Get(ctx, ownerA, created.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.Get(ctx, ownerA, 424242)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	got, err := svc.Get(ctx, ownerB, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestDelete(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	owner := &domain.User{ID: 1}
	other := &domain.User{ID: 2}

	created, err := svc.Create(ctx, owner, CreateSessionRequest{Title: "Ep1"})
	require.NoError(t, err)

	// a foreign owner cannot delete it and cannot tell it exists
	assert.ErrorIs(t, svc.Delete(ctx, other, created.ID), ErrSessionNotFound)

	require.NoError(t, svc.Delete(ctx, owner, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, owner, created.ID), ErrSessionNotFound)

	sessions, err := svc.List(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}
