package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestSetLevel(t *testing.T) {
	defer L.SetLevel(L.GetLevel())

	require.NoError(t, SetLevel("debug"))
	require.Equal(t, logrus.DebugLevel, L.GetLevel())

	err := SetLevel("loud")
	require.Error(t, err)
	require.Contains(t, err.Error(), `invalid log level "loud"`)
	require.Equal(t, logrus.DebugLevel, L.GetLevel())
}
