package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Cleanup(func() { output = os.Stdout })
	var buf bytes.Buffer
	output = &buf

	log, err := New("debug", "json")
	require.NoError(t, err)
	require.Equal(t, logrus.DebugLevel, log.GetLevel())
	log.WithField("k", "v").Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "hello", entry["msg"])
	require.Equal(t, "v", entry["k"])

	log, err = New("warn", "text")
	require.NoError(t, err)
	require.IsType(t, &logrus.TextFormatter{}, log.Formatter)

	_, err = New("loud", "text")
	require.Error(t, err)

	_, err = New("info", "xml")
	require.Error(t, err)
}
