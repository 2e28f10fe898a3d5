// internal/play/controller.go
//
// The game controller: the one place that glues the session state machine to
// the word repository, the calendar and persistence.
//
// Responsibilities:
//   - Start daily or practice games with the right answer.
//   - Reject short and unknown guesses before they reach the session.
//   - On a terminal state, update statistics once and mark the daily done.
//   - Track the first-run help marker.
//   - Publish events for presentation layers.
//
// Persistence failures are logged and never surfaced; the in-memory copy of
// every record stays authoritative for the rest of the process.

package play

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/robalobadob/devwordle/internal/daily"
	"github.com/robalobadob/devwordle/internal/game"
	"github.com/robalobadob/devwordle/internal/stats"
	"github.com/robalobadob/devwordle/internal/store"
	"github.com/robalobadob/devwordle/internal/words"
)

// Mode selects how answers are chosen.
type Mode string

const (
	ModeDaily    Mode = "daily"
	ModePractice Mode = "practice"
)

// ParseMode accepts "daily" or "practice".
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDaily, ModePractice:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// HelpSeenKey marks that the how-to-play text was shown once.
const HelpSeenKey = "devWordle_hasSeenHelp"

var ErrDailyAlreadyPlayed = errors.New("daily challenge already completed today")

// Deps are the collaborators a Controller needs.
type Deps struct {
	Words    *words.Repository
	Calendar *daily.Calendar
	Store    store.Store
	Log      zerolog.Logger
}

// Controller owns the current session. It is not safe for concurrent use;
// a single front end drives it.
type Controller struct {
	words   *words.Repository
	cal     *daily.Calendar
	kv      store.Store
	tracker *daily.Tracker
	stats   *stats.Store
	log     zerolog.Logger
	events  *Broadcaster

	title    string
	mode     Mode
	day      int // day index the current daily session was started on
	session  *game.Session
	record   stats.GameStats
	showHelp bool
}

// New loads persisted state and starts the first game in mode. When mode is
// daily and today's daily is already done, the first game is a practice game.
func New(ctx context.Context, d Deps, title string, mode Mode) (*Controller, error) {
	if d.Words == nil || d.Calendar == nil || d.Store == nil {
		return nil, errors.New("play: words, calendar and store are required")
	}
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}
	log := d.Log.With().Str("component", "play").Logger()

	c := &Controller{
		words:   d.Words,
		cal:     d.Calendar,
		kv:      d.Store,
		tracker: daily.NewTracker(d.Store, d.Log),
		stats:   stats.NewStore(d.Store, d.Log),
		log:     log,
		events:  NewBroadcaster(),
		title:   title,
	}
	c.record = c.stats.Load(ctx)
	c.showHelp = c.firstRun(ctx)

	if mode == ModeDaily && c.DailyPlayed(ctx) {
		log.Info().Int("day", c.cal.DaysSinceEpoch()).Msg("daily already done; starting practice")
		mode = ModePractice
	}
	c.start(mode)
	return c, nil
}

// firstRun reports whether the help marker was missing, and sets it.
func (c *Controller) firstRun(ctx context.Context) bool {
	_, err := c.kv.Get(ctx, HelpSeenKey)
	if err == nil {
		return false
	}
	if !errors.Is(err, store.ErrNotFound) {
		c.log.Warn().Err(err).Msg("read help marker")
	}
	if err := c.kv.Put(ctx, HelpSeenKey, []byte("true")); err != nil {
		c.log.Error().Err(err).Msg("save help marker")
	}
	return true
}

func (c *Controller) start(mode Mode) {
	c.mode = mode
	var answer string
	if mode == ModeDaily {
		c.day = c.cal.DaysSinceEpoch()
		answer = c.words.DailyWord(c.day)
	} else {
		answer = c.words.RandomWord()
	}
	c.session = game.New(answer)
	c.log.Debug().Str("session", c.session.ID).Str("mode", string(mode)).Msg("new game")
	c.events.Publish(Event{Kind: EventNewGame, Session: c.session.ID, Mode: mode})
}

// Events exposes the event feed.
func (c *Controller) Events() *Broadcaster { return c.events }

// Session is the current game. Callers must not mutate it directly.
func (c *Controller) Session() *game.Session { return c.session }

func (c *Controller) Mode() Mode { return c.mode }

func (c *Controller) Title() string { return c.title }

// Stats is the in-memory statistics record, updated after every finished game.
func (c *Controller) Stats() stats.GameStats { return c.record }

func (c *Controller) Words() *words.Repository { return c.words }

// ShowHelp is true when this is the first run on this store.
func (c *Controller) ShowHelp() bool { return c.showHelp }

// DailyPlayed reports whether today's daily challenge is already done.
func (c *Controller) DailyPlayed(ctx context.Context) bool {
	return c.tracker.AlreadyPlayed(ctx, c.cal.DaysSinceEpoch())
}

// AddLetter forwards a keystroke to the session.
func (c *Controller) AddLetter(ch rune) bool {
	if !c.session.AddLetter(ch) {
		return false
	}
	c.events.Publish(Event{Kind: EventLetter, Session: c.session.ID, Mode: c.mode, Input: c.session.Input})
	return true
}

// RemoveLetter forwards a backspace to the session.
func (c *Controller) RemoveLetter() bool {
	if !c.session.RemoveLetter() {
		return false
	}
	c.events.Publish(Event{Kind: EventLetter, Session: c.session.ID, Mode: c.mode, Input: c.session.Input})
	return true
}

// Submit validates and submits the input row.
//
// Errors (none of which mutate the session):
//   - game.ErrGameOver:         the session is already won or lost.
//   - game.ErrNotEnoughLetters: fewer than 5 letters typed.
//   - game.ErrNotInWordList:    the word is not an accepted guess.
func (c *Controller) Submit(ctx context.Context) (game.Row, error) {
	s := c.session
	if s.Status.Terminal() {
		return game.Row{}, game.ErrGameOver
	}
	if len(s.Input) != game.WordLength {
		return game.Row{}, c.reject(game.ErrNotEnoughLetters)
	}
	if !c.words.IsValidGuess(s.Input) {
		return game.Row{}, c.reject(game.ErrNotInWordList)
	}

	guess := s.Input
	row, err := s.SubmitGuess()
	if err != nil {
		return game.Row{}, err
	}
	ev := Event{Kind: EventGuess, Session: s.ID, Mode: c.mode, Guess: guess, Row: row}
	c.events.Publish(ev)

	if s.Status.Terminal() {
		c.finish(ctx, ev)
	}
	return row, nil
}

func (c *Controller) reject(err error) error {
	c.events.Publish(Event{Kind: EventInvalid, Session: c.session.ID, Mode: c.mode, Err: err})
	return err
}

// finish runs exactly once per session, on its transition to won or lost.
func (c *Controller) finish(ctx context.Context, last Event) {
	s := c.session
	won := s.Status == game.StatusWon

	next, err := c.stats.Record(ctx, c.record, won, len(s.Guesses), c.cal.Today())
	if err != nil {
		c.log.Error().Err(err).Str("session", s.ID).Msg("update stats")
	} else {
		c.record = next
	}

	// Mark the day the daily was started on; a game that runs past
	// midnight must not block the next day's word.
	if c.mode == ModeDaily {
		if err := c.tracker.MarkPlayed(ctx, c.day); err != nil {
			c.log.Error().Err(err).Int("day", c.day).Msg("mark daily played")
		}
	}

	c.log.Info().
		Str("session", s.ID).
		Str("mode", string(c.mode)).
		Str("status", string(s.Status)).
		Int("guesses", len(s.Guesses)).
		Msg("game finished")

	last.Kind = EventLost
	if won {
		last.Kind = EventWon
	} else {
		last.Answer = s.Answer
	}
	c.events.Publish(last)
}

// NewGame replaces the session with a fresh game in the current mode.
// In daily mode it fails with ErrDailyAlreadyPlayed once today's daily is
// done, leaving the session untouched.
func (c *Controller) NewGame(ctx context.Context) error {
	if c.mode == ModeDaily && c.DailyPlayed(ctx) {
		return ErrDailyAlreadyPlayed
	}
	c.start(c.mode)
	return nil
}

// SetMode switches mode and starts a new game with that mode's answer.
// Switching to daily after today's daily is done fails like NewGame.
func (c *Controller) SetMode(ctx context.Context, m Mode) error {
	if _, err := ParseMode(string(m)); err != nil {
		return err
	}
	if m == ModeDaily && c.DailyPlayed(ctx) {
		return ErrDailyAlreadyPlayed
	}
	c.start(m)
	return nil
}

// Share renders the result grid of a finished game.
func (c *Controller) Share() (string, bool) { return c.session.Share(c.title) }
