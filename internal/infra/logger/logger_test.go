package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWriterLevels(t *testing.T) {
	var buf bytes.Buffer
	NewWriter("prod", &buf).Debug("hidden")
	assert.Empty(t, buf.String())

	NewWriter("dev", &buf).Debug("shown", "material_id", 4)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "concretrack", rec["service"])
	assert.Equal(t, float64(4), rec["material_id"])
}
