package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"stayease-backend/domain"
)

func TestFileSessionStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileSessionStore(path, quietLogger())

	current, err := store.CurrentUser()
	require.NoError(t, err)
	require.Nil(t, current)

	user := &domain.User{ID: "u1", Name: "Jane Doe", Email: "jane@example.com"}
	require.NoError(t, store.SetCurrentUser(user))

	// A fresh store over the same file restores the identity.
	reopened := NewFileSessionStore(path, quietLogger())
	current, err = reopened.CurrentUser()
	require.NoError(t, err)
	require.NotNil(t, current)
	require.Equal(t, "u1", current.ID)

	require.NoError(t, reopened.ClearCurrentUser())
	current, err = reopened.CurrentUser()
	require.NoError(t, err)
	require.Nil(t, current)

	// Clearing an already-absent session is fine.
	require.NoError(t, reopened.ClearCurrentUser())
}

func TestFileSessionStore_CorruptDataClears(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	store := NewFileSessionStore(path, quietLogger())

	current, err := store.CurrentUser()
	require.NoError(t, err)
	require.Nil(t, current)

	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))
}
