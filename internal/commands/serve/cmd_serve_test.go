package serve

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"os"
	"testing"
)

func Test_StartupShutdown(t *testing.T) {
	cmd := &Command{Address: "127.0.0.1:0", CacheSize: 2}
	require.NoError(t, cmd.Startup())
	require.NoError(t, cmd.Shutdown())
}

func Test_StartupInvalidAddress(t *testing.T) {
	cmd := &Command{Address: "127.0.0.1:99999"}
	require.Error(t, cmd.Startup())
	require.NoError(t, cmd.Shutdown())
}

func Test_WaitInterrupted(t *testing.T) {
	cmd := &Command{Address: "127.0.0.1:0"}
	require.NoError(t, cmd.Startup())

	interrupted := make(chan os.Signal, 1)
	interrupted <- os.Interrupt
	require.NoError(t, cmd.wait(interrupted, cmd.srv.Errors()))
}

func Test_WaitServerFailure(t *testing.T) {
	cmd := &Command{Address: "127.0.0.1:0"}
	require.NoError(t, cmd.Startup())

	failure := errors.New("accept failed")
	failed := make(chan error, 1)
	failed <- failure
	err := cmd.wait(make(chan os.Signal), failed)
	require.ErrorIs(t, err, failure)
}
