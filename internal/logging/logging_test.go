package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "info", FormatText)
	require.NoError(t, err)

	Module(log, "sort").Debug("hidden")
	Module(log, "sort").WithField("count", 3).Info("sorted")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=sorted")
	assert.Contains(t, out, "module=sort")
	assert.Contains(t, out, "count=3")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "debug", FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	Module(log, "name").Debug("formatted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "formatted", entry["msg"])
	assert.Equal(t, "name", entry["module"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNewErrors(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", FormatText)
	assert.Error(t, err)

	_, err = New(&bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)
}
