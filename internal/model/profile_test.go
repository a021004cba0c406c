package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pradeepaul/devConnector/internal/model"
)

func TestStringList_ValueNeverNull(t *testing.T) {
	var skills model.StringList

	v, err := skills.Value()
	require.NoError(t, err)
	require.Equal(t, []byte("[]"), v)
}

func TestStringList_ScanPreservesOrder(t *testing.T) {
	var skills model.StringList
	require.NoError(t, skills.Scan([]byte(`["Go","SQL","JS"]`)))
	require.Equal(t, model.StringList{"Go", "SQL", "JS"}, skills)
}

func TestStringList_ScanNil(t *testing.T) {
	var skills model.StringList
	require.NoError(t, skills.Scan(nil))
	require.Empty(t, skills)
	require.NotNil(t, skills)
}
