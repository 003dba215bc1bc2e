//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package preset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/X-Win42/MBES-Line-Spacing-Calculator/internal/sweep"
)

func TestStore_SaveAndReload(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "presets.json")

	s, err := NewOrExistingStore(path)
	require.NoError(t, err)

	cfg := sweep.Config{Depth: 12, CellSize: 0.5, OverlapPercent: 10, MinHitCount: 2, BeamCount: 512, SpeedKnots: 5}
	require.NoError(t, s.Set("harbour", cfg))

	// Read raw file to ensure the preset is stored with an ID.
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	presets := raw["presets"].(map[string]any)
	require.Contains(t, presets, "harbour")
	entry := presets["harbour"].(map[string]any)
	assert.NotEmpty(t, entry["id"])

	// Re-open and ensure persistence.
	s2, err := NewStore(path)
	require.NoError(t, err)
	p, ok := s2.Get("harbour")
	require.True(t, ok)
	assert.Equal(t, cfg, p.Config)
}

func TestStore_HealsMissingID(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "presets.json")

	raw := `{"presets":{"legacy":{"name":"legacy","config":{"depth":20,"cell_size":1,"overlap_percent":20,"min_hit_count":3,"beam_count":1024,"speed_knots":4}}}}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	s, err := NewStore(path)
	require.NoError(t, err)
	p, ok := s.Get("legacy")
	require.True(t, ok)
	assert.NotEmpty(t, p.ID, "missing ID should be regenerated on load")
}

func TestStore_DropsInvalidPreset(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "presets.json")

	// beam_count 600 is not a supported head configuration.
	raw := `{"presets":{"broken":{"name":"broken","config":{"depth":20,"cell_size":1,"overlap_percent":20,"min_hit_count":3,"beam_count":600,"speed_knots":4}}}}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	s, err := NewStore(path)
	require.NoError(t, err)
	_, ok := s.Data.Presets["broken"]
	assert.False(t, ok, "invalid preset should be dropped on load")
}

func TestStore_Builtins(t *testing.T) {
	tmp := t.TempDir()
	s, err := NewStore(filepath.Join(tmp, "presets.json"))
	require.NoError(t, err)

	for _, name := range []string{"shallow", "standard", "deep-fine"} {
		p, ok := s.Get(name)
		require.True(t, ok, "built-in %q should resolve", name)
		assert.Equal(t, name, p.Name)
	}

	// Built-ins are protected.
	require.Error(t, s.Set("standard", sweep.DefaultConfig()))
	require.Error(t, s.Delete("standard"))

	names := s.Names()
	assert.Contains(t, names, "deep-fine")
	assert.Contains(t, names, "shallow")
	assert.Contains(t, names, "standard")
}

func TestStore_DeleteUnknown(t *testing.T) {
	tmp := t.TempDir()
	s, err := NewStore(filepath.Join(tmp, "presets.json"))
	require.NoError(t, err)
	require.Error(t, s.Delete("nope"))
}

func TestStore_ExportImportRoundtrip(t *testing.T) {
	tmp := t.TempDir()

	src, err := NewOrExistingStore(filepath.Join(tmp, "src.json"))
	require.NoError(t, err)
	cfg := sweep.Config{Depth: 45, CellSize: 0.25, OverlapPercent: 30, MinHitCount: 5, BeamCount: 1024, SpeedKnots: 4}
	require.NoError(t, src.Set("bank-survey", cfg))

	var sb strings.Builder
	require.NoError(t, src.Export(&sb))
	yamlPath := filepath.Join(tmp, "export.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(sb.String()), 0o600))

	dst, err := NewOrExistingStore(filepath.Join(tmp, "dst.json"))
	require.NoError(t, err)
	n, err := dst.Import(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	p, ok := dst.Get("bank-survey")
	require.True(t, ok)
	assert.Equal(t, cfg, p.Config)
}

func TestStore_ImportSkipsInvalid(t *testing.T) {
	tmp := t.TempDir()

	yamlPath := filepath.Join(tmp, "import.yaml")
	content := `
- name: good
  config:
    depth: 20
    cell_size: 1
    overlap_percent: 20
    min_hit_count: 3
    beam_count: 1024
    speed_knots: 4
- name: bad-beams
  config:
    depth: 20
    cell_size: 1
    overlap_percent: 20
    min_hit_count: 3
    beam_count: 777
    speed_knots: 4
- config:
    depth: 20
    cell_size: 1
    overlap_percent: 20
    min_hit_count: 3
    beam_count: 512
    speed_knots: 4
`
	require.NoError(t, os.WriteFile(yamlPath, []byte(content), 0o600))

	s, err := NewOrExistingStore(filepath.Join(tmp, "presets.json"))
	require.NoError(t, err)
	n, err := s.Import(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, ok := s.Get("good")
	assert.True(t, ok)
	_, ok = s.Data.Presets["bad-beams"]
	assert.False(t, ok)
}

func TestStore_ImportUnknownExtension(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "presets.txt")
	require.NoError(t, os.WriteFile(path, []byte("nope"), 0o600))

	s, err := NewOrExistingStore(filepath.Join(tmp, "presets.json"))
	require.NoError(t, err)
	_, err = s.Import(path)
	require.Error(t, err)
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandTilde("~/x/presets.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x", "presets.json"), got)

	got, err = expandTilde("/abs/path.json")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path.json", got)
}
