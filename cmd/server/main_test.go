package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func useTempDatabase(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_DSN", filepath.Join(t.TempDir(), "pier2.db"))
}

func TestCommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"serve", "migrate", "seed"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestMigrateCommand(t *testing.T) {
	useTempDatabase(t)
	execute(t, "migrate")
	_, err := os.Stat(os.Getenv("DATABASE_DSN"))
	assert.NoError(t, err)
}

func TestSeedCommand(t *testing.T) {
	useTempDatabase(t)

	out := execute(t, "seed", "--customers", "3")
	assert.Contains(t, out, "Seeded 3 customers")

	out = execute(t, "seed", "--customers", "3")
	assert.Contains(t, out, "skipping")

	out = execute(t, "seed", "--customers", "2", "--force")
	assert.Contains(t, out, "Seeded 2 customers")
}

func TestSeedCommandFixture(t *testing.T) {
	useTempDatabase(t)
	fixture := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, os.WriteFile(fixture, []byte(`customers:
  - first_name: Dana
    last_name: Lee
    email: dana@example.com
    phone: 555-0199
    orders:
      - timestamp: 2024-05-01T10:00:00Z
        in_store: true
        billing_address: {street: 1 Bay St, city: Oakland, state: CA, zip_code: "94607"}
        items:
          - item_name: Lamp
            shipping_address: {street: 1 Bay St, city: Oakland, state: CA, zip_code: "94607"}
`), 0o600))

	out := execute(t, "seed", "--fixture", fixture)
	assert.Contains(t, out, "Seeded 1 customers, 1 orders, 1 items")
}
