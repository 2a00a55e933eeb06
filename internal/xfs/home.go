package xfs

import (
	"os"
	"sync"

	"github.com/ekisa-team/singalong/internal/envvar"
)

// HomeDir returns the user's home directory as read from $HOME on first use.
// The value is cached for the lifetime of the process; later changes to the
// environment are not observed. An unset $HOME yields an empty string.
var HomeDir = newHomeDir(os.LookupEnv)

func newHomeDir(lookup func(string) (string, bool)) func() string {
	return sync.OnceValue(func() string {
		home, _ := lookup(envvar.Home)
		return home
	})
}
