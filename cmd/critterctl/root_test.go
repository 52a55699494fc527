package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	root := newRootCmd()
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func memoryEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("LOG_LEVEL", "error")
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "migrate")
	assert.Contains(t, names, "seed")

	migrate, _, err := root.Find([]string{"migrate"})
	require.NoError(t, err)

	sub := make([]string, 0)
	for _, c := range migrate.Commands() {
		sub = append(sub, c.Name())
	}
	assert.ElementsMatch(t, []string{"up", "down", "status"}, sub)
}

func TestMigrate_RequiresDSN(t *testing.T) {
	memoryEnv(t)

	_, err := execute(t, "migrate", "status")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.dsn is required")
}

func TestSeed_RequiresFile(t *testing.T) {
	memoryEnv(t)
	t.Setenv("SEEDER_FIXTURES", "")

	_, err := execute(t, "seed")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fixtures file is required")
}

func TestSeed_MemoryStore(t *testing.T) {
	memoryEnv(t)

	path := filepath.Join(t.TempDir(), "fixtures.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
	  "customers": [{"name": "Alice", "phoneNumber": "555-0100"}],
	  "pets": [{"type": "CAT", "name": "Kilo", "owner": 0}],
	  "employees": [{"name": "Hannah", "skills": ["FEEDING"], "daysAvailable": ["MONDAY"]}],
	  "schedules": [{"pets": [0], "employees": [0], "date": "2019-12-23", "activities": ["FEEDING"]}]
	}`), 0o600))

	out, err := execute(t, "seed", "--file", path)

	require.NoError(t, err)
	assert.Contains(t, out, "customers  inserted=1 errors=0 ids=[1]")
	assert.Contains(t, out, "pets       inserted=1 errors=0 ids=[1]")
	assert.Contains(t, out, "employees  inserted=1 errors=0 ids=[1]")
	assert.Contains(t, out, "schedules  inserted=1 errors=0 ids=[1]")
}

func TestSeed_RejectedFixturesFail(t *testing.T) {
	memoryEnv(t)

	path := filepath.Join(t.TempDir(), "fixtures.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
	  "customers": [{"name": ""}]
	}`), 0o600))

	out, err := execute(t, "seed", "--file", path)

	require.Error(t, err)
	assert.Contains(t, out, "customers  inserted=0 errors=1")
}
