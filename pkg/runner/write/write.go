package write

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/language"

	"tableflip.dev/gratitude/pkg/app"
	"tableflip.dev/gratitude/pkg/entry"
	"tableflip.dev/gratitude/pkg/mood"
	"tableflip.dev/gratitude/pkg/printers"
)

var questions = [3]string{
	"What are you grateful for today?",
	"What would make today great?",
	"What amazing things happened today?",
}

type Write struct {
	On            time.Time
	Mood          *mood.Mood
	GratefulFor   string
	MakeGreat     string
	AmazingThings string

	// In supplies the answers, one per line, when no prompt was given as a flag.
	In io.Reader
	// Ask prints each question before reading its answer.
	Ask bool

	Service *app.Service
	Out     io.Writer
	Locale  language.Tag
}

func (n *Write) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not write, no journal")
	}
	if n.GratefulFor == "" && n.MakeGreat == "" && n.AmazingThings == "" && n.In != nil {
		if err := n.readPrompts(); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{Out: n.Out, Locale: n.Locale}
	e, created, err := n.Service.Write(ctx, n.On, n.Mood, n.GratefulFor, n.MakeGreat, n.AmazingThings)
	if errors.Is(err, app.ErrEmptyEntry) {
		pp.Empty("Nothing to save, every prompt was empty.")
		return nil
	}
	if err != nil {
		return err
	}

	if created {
		pp.Title("Saved")
	} else {
		pp.Title("Updated")
	}
	pp.Entry(e)
	return nil
}

func (n *Write) readPrompts() error {
	answers := [3]*string{&n.GratefulFor, &n.MakeGreat, &n.AmazingThings}
	scanner := bufio.NewScanner(n.In)
	for i, q := range questions {
		if n.Ask {
			label := strings.TrimSpace([]string{entry.GratefulForLabel, entry.MakeGreatLabel, entry.AmazingThingsLabel}[i])
			_, _ = fmt.Fprintf(n.Out, "%s\n%s ", q, label)
		}
		if !scanner.Scan() {
			break
		}
		*answers[i] = scanner.Text()
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read prompts: %w", err)
	}
	return nil
}
