package file

import (
	"context"
	"os"
	"path/filepath"
	"route-planner-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestFileInputProviderYAML(t *testing.T) {
	p := writeTemp(t, "req.yaml", `
drivers:
  - {x: 0, y: 0}
  - {x: 20, y: 20}
locations:
  - {x: 1, y: 1}
  - {x: 2, y: 0}
profits: [10, 50]
`)

	req, err := NewFileInputProvider(p).ReadRequest(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.Coordinates{{X: 0, Y: 0}, {X: 20, Y: 20}}, req.Drivers)
	assert.Equal(t, []domain.Coordinates{{X: 1, Y: 1}, {X: 2, Y: 0}}, req.Locations)
	assert.Equal(t, []int{10, 50}, req.Profits)
}

func TestFileInputProviderJSON(t *testing.T) {
	p := writeTemp(t, "req.json", `{"drivers":[{"x":1.5,"y":2}],"locations":[{"x":3,"y":4}],"profits":[7]}`)

	req, err := NewFileInputProvider(p).ReadRequest(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.Coordinates{X: 1.5, Y: 2}, req.Drivers[0])
	assert.Equal(t, []int{7}, req.Profits)
}

func TestFileInputProviderErrors(t *testing.T) {
	_, err := NewFileInputProvider(filepath.Join(t.TempDir(), "missing.yaml")).ReadRequest(context.Background())
	assert.Error(t, err)

	p := writeTemp(t, "bad.yaml", "drivers: []\ntrucks: 3\n")
	_, err = NewFileInputProvider(p).ReadRequest(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	p = writeTemp(t, "empty.yaml", "")
	_, err = NewFileInputProvider(p).ReadRequest(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
