package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/stateboard/stateboard/pkg/adapters/sqlite"
	"github.com/stateboard/stateboard/pkg/ports/tests"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "stateboard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_UserContract(t *testing.T) {
	tests.UserStoreContract(t, openStore(t))
}

func TestSQLiteStore_TaskContract(t *testing.T) {
	tests.TaskStoreContract(t, openStore(t))
}

func TestOpen_IsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stateboard.db")

	store, err := sqlite.Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = sqlite.Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Close())
}
