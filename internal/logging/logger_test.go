package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Init mutates the global logrus state, so these tests restore the
// default level and cannot run in parallel.

func TestInit_SetsLevel(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, Init(DefaultLevel)) })

	require.NoError(t, Init("debug"))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}

func TestInit_EmptyMeansDefault(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, Init(DefaultLevel)) })

	require.NoError(t, Init(""))
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
}

func TestInit_InvalidLevel(t *testing.T) {
	err := Init("chatty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "chatty"`)
}

func TestWithComponent(t *testing.T) {
	entry := WithComponent("oracle")
	assert.Equal(t, "oracle", entry.Data["component"])
}
