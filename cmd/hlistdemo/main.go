// Command hlistdemo shows a long horizontal list of labels that can be
// dragged, flung, scrolled with the wheel and navigated with the keyboard.
package main

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"io"
	"os"

	"github.com/fulldump/goconfig"
	"github.com/rs/zerolog"

	"github.com/ayn2op/hlist"
)

var words = []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel", "india", "juliett"}

func main() {
	c := Default()
	goconfig.Read(&c)

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
		return
	}

	logger, closeLog, err := newLogger(c)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err.Error())
		os.Exit(1)
	}

	err = run(c, logger)
	if err != nil {
		logger.Error().Err(err).Msg("demo stopped")
	}
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err.Error())
		os.Exit(1)
	}
}

func run(c Configuration, logger zerolog.Logger) error {
	app := hlist.NewApplication().SetLogger(logger)

	adapter := hlist.NewSliceAdapter(labels(c.Items), bindLabel)
	if c.StableIDs {
		adapter.SetItemIDFunc(labelID)
	}

	view := newDemoView(adapter)
	view.list.
		SetScheduler(app).
		SetLogger(logger).
		SetWheelStep(c.WheelStep).
		SetFlingFriction(c.Friction).
		SetAdapter(adapter)
	if c.Border {
		view.list.SetBorders(hlist.BordersAll).SetBorderSet(hlist.BorderSetRound())
		view.list.SetTitle(fmt.Sprintf(" %d items ", c.Items))
	}

	logger.Info().Int("items", c.Items).Bool("stable_ids", c.StableIDs).Msg("starting demo")
	if err := app.SetRoot(view).Run(); err != nil {
		return fmt.Errorf("run application: %w", err)
	}
	return nil
}

// newLogger writes to the configured log file; the terminal belongs to the
// application while it runs.
func newLogger(c Configuration) (zerolog.Logger, func(), error) {
	if c.LogFile == "" {
		return zerolog.Nop(), func() {}, nil
	}

	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("parse log level %q: %w", c.LogLevel, err)
	}

	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	var output io.Writer = zerolog.ConsoleWriter{
		Out:        f,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}
	logger := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	return logger, func() { f.Close() }, nil
}

func labels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s %d", words[i%len(words)], i)
	}
	return out
}

// bindLabel reuses recycled text items and creates new ones otherwise.
func bindLabel(position int, label string, recycled hlist.Element) hlist.Element {
	item, ok := recycled.(*hlist.TextItem)
	if !ok {
		item = hlist.NewTextItem(label)
		item.SetBorders(hlist.BordersLeft)
	}
	item.SetLabel(label)
	item.SetHighlighted(position%2 == 0)
	return item
}

// labelID derives a stable id from a label. Labels are unique.
func labelID(label string) int64 {
	h := fnv.New64a()
	h.Write([]byte(label))
	return int64(h.Sum64())
}
