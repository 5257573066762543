package monitor

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/sysmon/internal/model"
)

func TestRunJSONPrintsOneSnapshot(t *testing.T) {
	var buf bytes.Buffer
	src := &fakeSource{sample: testSample()}

	require.NoError(t, RunJSON(context.Background(), src, &buf))
	assert.Equal(t, 1, src.calls)

	var got model.Sample
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.InDelta(t, 12.3, got.CPU.Percent, 0.001)
	assert.Equal(t, uint64(1253656678), got.Memory.UsedBytes)
	assert.Equal(t, uint64(1<<34), got.Memory.TotalBytes)
}

func TestRunJSONStreamEmitsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var buf bytes.Buffer
	src := &fakeSource{sample: testSample(), cancelOn: 4, cancel: cancel}

	require.NoError(t, RunJSONStream(ctx, src, &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		var got model.Sample
		require.NoError(t, json.Unmarshal([]byte(line), &got))
		assert.InDelta(t, 45.6, got.Memory.Percent, 0.001)
	}
	assert.NotContains(t, buf.String(), "Monitor stopped.")
}
