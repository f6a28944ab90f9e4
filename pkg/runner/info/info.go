package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"tableflip.dev/gratitude/pkg/journal"
	"tableflip.dev/gratitude/pkg/store"
)

type Info struct {
	Config  store.Config
	Backend store.Backend
	Journal *journal.Journal
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	if override := os.Getenv(store.ConfigPathEnv); override != "" {
		_, _ = fmt.Fprintln(n.Out, store.ConfigPathEnv, "found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(n.Out, store.ConfigPathEnv, "env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	if file := store.ConfigFile(n.Config); file != "" {
		_, _ = fmt.Fprintln(n.Out, "Config.file:  ", file)
	}
	_, _ = fmt.Fprintln(n.Out, "Config.path:  ", n.Config.BasePath())
	_, _ = fmt.Fprintln(n.Out, "Config.store: ", n.Config.Driver())
	_, _ = fmt.Fprintln(n.Out, "Config.locale:", n.Config.Locale())
	_, _ = fmt.Fprintln(n.Out, "Config.remind:", n.Config.Reminder())

	if n.Backend == nil {
		return fmt.Errorf("failed to open the %s store", n.Config.Driver())
	}

	_, _ = fmt.Fprintf(n.Out, "Keys:\n")
	found := 0
	for _, k := range n.Backend.Keys(ctx) {
		_, _ = fmt.Fprintf(n.Out, "  %s\n", k)
		found++
	}
	if found == 0 {
		_, _ = fmt.Fprintf(n.Out, "  %s\n", "no keys")
	}

	if n.Journal != nil {
		_, _ = fmt.Fprintf(n.Out, "Entries: %d\n", n.Journal.Len())
	}
	return nil
}
