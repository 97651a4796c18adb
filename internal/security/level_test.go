package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelOrdering(t *testing.T) {
	ordered := []Level{Unknown, Guest, User, Admin, Owner}
	for i := 1; i < len(ordered); i++ {
		assert.True(t, ordered[i-1] < ordered[i], "%s should rank below %s", ordered[i-1], ordered[i])
	}
	assert.True(t, Owner >= Admin)
	assert.True(t, Guest <= Guest)
}

func TestLevelNames(t *testing.T) {
	assert.Equal(t, "OWNER", Owner.String())
	assert.Equal(t, "ADMIN", Admin.String())
	assert.Equal(t, "USER", User.String())
	assert.Equal(t, "GUEST", Guest.String())
	assert.Equal(t, "UNKNOWN", Unknown.String())
}

func TestFromValue(t *testing.T) {
	for _, l := range []Level{Unknown, Guest, User, Admin, Owner} {
		got, err := FromValue(l.Value())
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}

	_, err := FromValue(4)
	assert.Error(t, err)
}
