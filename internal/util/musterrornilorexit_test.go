package util

import (
	"bou.ke/monkey"
	"github.com/jessevdk/go-flags"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"os"
	"sync"
	"testing"
)

// seqMutex serializes the tests, as os.Exit is monkey-patched in memory
var seqMutex sync.Mutex

func Test_MustErrorNilOrExit_NilError(t *testing.T) {
	seqMutex.Lock()
	defer seqMutex.Unlock()

	var exited bool
	fakeExit := func(int) {
		exited = true
	}
	patch := monkey.Patch(os.Exit, fakeExit)
	defer patch.Unpatch()

	MustErrorNilOrExit(nil)

	require.False(t, exited, "MustErrorNilOrExit existed the program and it shouldn't have done so.")
}

func Test_MustErrorNilOrExit_FlagsError(t *testing.T) {
	seqMutex.Lock()
	defer seqMutex.Unlock()

	var exitCode int
	fakeExit := func(i int) {
		exitCode = i
	}
	patch := monkey.Patch(os.Exit, fakeExit)
	defer patch.Unpatch()

	err := &flags.Error{
		Type:    flags.ErrShortNameTooLong,
		Message: "Short name too long",
	}

	MustErrorNilOrExit(err)

	require.Equal(t, int(flags.ErrShortNameTooLong), exitCode, "MustErrorNilOrExit did not return a proper exit code")
}

func Test_MustErrorNilOrExit_GenericError(t *testing.T) {
	seqMutex.Lock()
	defer seqMutex.Unlock()

	var exitCode int
	fakeExit := func(i int) {
		exitCode = i
	}
	patch := monkey.Patch(os.Exit, fakeExit)
	defer patch.Unpatch()

	err := pkgerrors.New("demo")

	MustErrorNilOrExit(err)

	require.Equal(t, int(ErrGeneric), exitCode, "MustErrorNilOrExit did not return a proper exit code")
}

func Test_MustErrorNilOrExit_WrappedFlagsError(t *testing.T) {
	seqMutex.Lock()
	defer seqMutex.Unlock()

	var exitCode int
	fakeExit := func(i int) {
		exitCode = i
	}
	patch := monkey.Patch(os.Exit, fakeExit)
	defer patch.Unpatch()

	err := pkgerrors.WithStack(&flags.Error{
		Type:    flags.ErrUnknownGroup,
		Message: "could not find option command 'tunnel'",
	})

	MustErrorNilOrExit(err)

	require.Equal(t, int(flags.ErrUnknownGroup), exitCode, "MustErrorNilOrExit did not unwrap the flags error")
}

func Test_MustErrorNilOrExit_Help(t *testing.T) {
	seqMutex.Lock()
	defer seqMutex.Unlock()

	exitCode := -1
	fakeExit := func(i int) {
		exitCode = i
	}
	patch := monkey.Patch(os.Exit, fakeExit)
	defer patch.Unpatch()

	MustErrorNilOrExit(&flags.Error{Type: flags.ErrHelp, Message: "Usage"})

	require.Equal(t, 0, exitCode)
}
