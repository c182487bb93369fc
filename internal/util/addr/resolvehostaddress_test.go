package addr

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_ResolveHostAddress(t *testing.T) {
	a, err := ResolveHostAddress(":8080")
	require.NoError(t, err)
	require.Equal(t, 8080, a.Port)

	a, err = ResolveHostAddress("127.0.0.1:0")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", a.IP.String())

	_, err = ResolveHostAddress("127.0.0.1:99999")
	require.Error(t, err)
}
