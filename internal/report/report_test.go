package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/X-Win42/MBES-Line-Spacing-Calculator/internal/sweep"
)

func TestPrintSweep_Table(t *testing.T) {
	t.Parallel()

	res := sweep.Evaluate(sweep.DefaultConfig())
	var buf bytes.Buffer
	require.NoError(t, PrintSweep(&buf, res, false))

	out := buf.String()
	assert.Contains(t, out, "RESULTS PER SWATH ANGLE")
	assert.Contains(t, out, "Opening angle")
	assert.Contains(t, out, "Line spacing")
	assert.Contains(t, out, "Total coverage")
	assert.Contains(t, out, "Hits/cell")
	assert.Contains(t, out, "Maximum valid opening angle: 120°")
	assert.Contains(t, out, "Maximum line spacing (with 20% overlap): 55.43 m")
	// One line per candidate angle.
	assert.Equal(t, len(res.Results), strings.Count(out, "✅")+strings.Count(out, "❌"))
}

func TestPrintSweep_NoSolution(t *testing.T) {
	t.Parallel()

	cfg := sweep.DefaultConfig()
	cfg.MinHitCount = 10000
	res := sweep.Evaluate(cfg)

	var buf bytes.Buffer
	require.NoError(t, PrintSweep(&buf, res, false))
	assert.Contains(t, buf.String(), "No swath angle meets the minimum hit count requirement.")
	assert.NotContains(t, buf.String(), "Maximum valid opening angle")
}

func TestPrintSweep_JSON(t *testing.T) {
	t.Parallel()

	res := sweep.Evaluate(sweep.DefaultConfig())
	var buf bytes.Buffer
	require.NoError(t, PrintSweep(&buf, res, true))

	var decoded sweep.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, res.Config, decoded.Config)
	assert.Len(t, decoded.Results, len(res.Results))
	require.NotNil(t, decoded.Optimal)
	assert.Equal(t, res.Optimal.OpeningAngleDeg, decoded.Optimal.OpeningAngleDeg)
}

func TestRenderChart(t *testing.T) {
	t.Parallel()

	res := sweep.Evaluate(sweep.DefaultConfig())
	var buf bytes.Buffer
	require.NoError(t, RenderChart(&buf, res))

	out := buf.String()
	assert.Contains(t, out, "hits per cell")
	assert.Contains(t, out, "line spacing (m)")
	assert.Contains(t, out, "total coverage (m)")
	assert.Contains(t, out, "echarts")
}

func TestWriteChartFile(t *testing.T) {
	t.Parallel()

	res := sweep.Evaluate(sweep.DefaultConfig())
	path := t.TempDir() + "/sweep.html"
	require.NoError(t, WriteChartFile(path, res))

	assert.FileExists(t, path)
}
