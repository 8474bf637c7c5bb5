// Package session owns the game currently being played and fans its events
// out to the front end.
package session

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/mines"
)

type Listener func(mines.Event)

type Options struct {
	Log *logrus.Logger
	// Placer builds the mine placer for every new game. Defaults to a
	// [mines.RandomPlacer] with a randomly seeded source.
	Placer func(mines.Difficulty) mines.Placer
	Clock  func() time.Time
}

func (o *Options) setDefaults() {
	if o.Log == nil {
		o.Log = logrus.StandardLogger()
	}
	if o.Placer == nil {
		r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		o.Placer = func(mines.Difficulty) mines.Placer {
			return mines.RandomPlacer{Rand: r}
		}
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
}

type subscription struct {
	id int
	fn Listener
}

// Session serializes commands against the current game. Listeners run
// synchronously on the goroutine issuing the command, in subscription order.
// They may read the session but must not issue commands.
type Session struct {
	opts Options

	// cmu orders commands together with the delivery of their events, mu
	// guards game.
	cmu  sync.Mutex
	mu   sync.Mutex
	game *mines.Game

	lmu       sync.Mutex
	listeners []subscription
	nextID    int
}

func New(d mines.Difficulty, opts Options) (*Session, error) {
	opts.setDefaults()
	s := &Session{opts: opts}
	game, err := s.newGame(d)
	if err != nil {
		return nil, err
	}
	s.game = game
	return s, nil
}

func (s *Session) newGame(d mines.Difficulty) (*mines.Game, error) {
	game, err := mines.NewGame(d, s.opts.Placer(d))
	if err != nil {
		return nil, fmt.Errorf("unable to create %s game: %w", d, err)
	}
	game.SetClock(s.opts.Clock)
	return game, nil
}

func (s *Session) fields() logrus.Fields {
	return logrus.Fields{
		"game":       s.game.ID.String(),
		"difficulty": s.game.Difficulty.Name,
		"params":     s.game.Params().Seed(),
	}
}

// Subscribe registers fn for every event published from now on. The
// returned function removes it again.
func (s *Session) Subscribe(fn Listener) (unsubscribe func()) {
	s.lmu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id, fn})
	s.lmu.Unlock()

	return func() {
		s.lmu.Lock()
		defer s.lmu.Unlock()
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Session) publish(events ...mines.Event) {
	s.lmu.Lock()
	listeners := make([]Listener, len(s.listeners))
	for i, sub := range s.listeners {
		listeners[i] = sub.fn
	}
	s.lmu.Unlock()

	for _, e := range events {
		for _, fn := range listeners {
			fn(e)
		}
	}
}

// NewGame discards the current game, finished or not, and starts over.
func (s *Session) NewGame(d mines.Difficulty) error {
	s.cmu.Lock()
	defer s.cmu.Unlock()

	game, err := s.newGame(d)
	if err != nil {
		s.opts.Log.WithError(err).WithField("params", d.Seed()).Error("new game rejected")
		return err
	}
	s.mu.Lock()
	s.game = game
	s.opts.Log.WithFields(s.fields()).Info("new game")
	s.mu.Unlock()

	s.publish(
		mines.GameReset{Difficulty: d},
		mines.MineCounterChanged{Remaining: game.MinesRemaining()},
	)
	return nil
}

func (s *Session) NewGameByName(name string) error {
	d, err := mines.ParseDifficulty(name)
	if err != nil {
		return err
	}
	return s.NewGame(d)
}

func (s *Session) Reveal(p mines.Point) error {
	return s.command("reveal", p, (*mines.Game).Reveal)
}

func (s *Session) ToggleFlag(p mines.Point) error {
	return s.command("flag", p, (*mines.Game).ToggleFlag)
}

func (s *Session) command(
	name string, p mines.Point, apply func(*mines.Game, mines.Point) ([]mines.Event, error),
) error {
	s.cmu.Lock()
	defer s.cmu.Unlock()

	s.mu.Lock()
	log := s.opts.Log.WithFields(s.fields()).WithField("point", p.String())
	events, err := apply(s.game, p)
	status := s.game.Status()
	s.mu.Unlock()

	if err != nil {
		log.WithError(err).Errorf("%s failed", name)
		return err
	}
	log.WithFields(logrus.Fields{
		"events": len(events),
		"status": status.String(),
	}).Debug(name)

	s.publish(events...)
	return nil
}

func (s *Session) Difficulty() mines.Difficulty {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Difficulty
}

func (s *Session) Params() mines.GameParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Params()
}

func (s *Session) Status() mines.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Status()
}

func (s *Session) MinesRemaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.MinesRemaining()
}

// Elapsed is the play time of the current game as of the session clock.
func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Elapsed(s.opts.Clock())
}

func (s *Session) Grid() mines.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Grid()
}

func (s *Session) VisualAt(p mines.Point) (mines.Visual, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.VisualAt(p)
}
