package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/guessinggame/internal/gamedata"
	"github.com/samdwyer/guessinggame/internal/guess"
	"github.com/samdwyer/guessinggame/internal/telemetry"
	"github.com/samdwyer/guessinggame/internal/ui"
)

// quitCommand ends the game. Matched case-sensitively after trimming.
const quitCommand = "quit"

// Input kinds recorded on turn spans and logs.
const (
	inputQuit       = "quit"
	inputInvalid    = "invalid"
	inputOutOfRange = "out_of_range"
	inputGuess      = "guess"
)

// Result summarizes a finished game.
type Result struct {
	State    State
	Attempts int // Guesses that passed validation
}

// Game holds the entire game state.
type Game struct {
	console   *ui.Console
	messages  *gamedata.Messages
	logger    zerolog.Logger
	tracer    trace.Tracer
	sessionID string
	secret    int
	state     State
	attempts  int
}

// New creates a game reading guesses from in and writing feedback to out.
// The secret is chosen here and never changes.
func New(cfg Config, in io.Reader, out io.Writer, logger zerolog.Logger) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	sessionID := uuid.NewString()

	return &Game{
		console:   ui.NewConsole(in, out),
		messages:  gamedata.MustLoadMessages(),
		logger:    logger.With().Str("session", sessionID).Logger(),
		tracer:    telemetry.Tracer("game"),
		sessionID: sessionID,
		secret:    newSecret(rng),
		state:     StatePrompting,
	}
}

// newSecret picks a value uniformly from [guess.Min, guess.Max].
func newSecret(rng *rand.Rand) int {
	return guess.Min + rng.Intn(guess.Max-guess.Min+1)
}

// State returns the current game state.
func (g *Game) State() State {
	return g.state
}

// Run executes the main game loop until the secret is guessed, the player
// quits, or reading input fails. Only read and write failures are returned.
func (g *Game) Run(ctx context.Context) (Result, error) {
	_, initSpan := g.tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(attribute.String("session.id", g.sessionID))
	initSpan.End()

	g.logger.Debug().Msg("game started")

	if err := g.console.Println(g.messages.Welcome); err != nil {
		return g.result(), fmt.Errorf("write welcome: %w", err)
	}

	for !g.state.Terminal() {
		if err := ctx.Err(); err != nil {
			return g.result(), err
		}
		if err := g.turn(ctx); err != nil {
			return g.result(), err
		}
	}

	_, endSpan := g.tracer.Start(ctx, "game.end")
	endSpan.SetAttributes(
		attribute.String("session.id", g.sessionID),
		attribute.String("state", g.state.String()),
		attribute.Int("attempts", g.attempts),
	)
	endSpan.End()

	g.logger.Debug().
		Str("state", g.state.String()).
		Int("attempts", g.attempts).
		Msg("game finished")

	return g.result(), nil
}

func (g *Game) result() Result {
	return Result{State: g.state, Attempts: g.attempts}
}

// turn prompts for one line and handles it.
func (g *Game) turn(ctx context.Context) error {
	if err := g.console.Println(g.messages.Prompt); err != nil {
		return fmt.Errorf("write prompt: %w", err)
	}

	line, err := g.console.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return ErrInputClosed
		}
		return fmt.Errorf("read guess: %w", err)
	}

	_, span := g.tracer.Start(ctx, "game.turn")
	defer span.End()

	kind, err := g.handleLine(line)
	span.SetAttributes(
		attribute.String("input.kind", kind),
		attribute.String("state", g.state.String()),
		attribute.Int("attempt", g.attempts),
	)

	g.logger.Debug().
		Str("input", kind).
		Str("state", g.state.String()).
		Int("attempt", g.attempts).
		Msg("turn")

	return err
}

// handleLine moves through the states for one line of input and reports the
// kind of input it was. Parse and range failures print a message and leave
// the game prompting.
func (g *Game) handleLine(line string) (string, error) {
	if line == quitCommand {
		g.state = StateQuit
		return inputQuit, g.say(g.messages.Quitting)
	}

	// Guesses are 32-bit; anything wider is not a number to the game.
	parsed, err := strconv.ParseInt(line, 10, 32)
	if err != nil {
		g.state = StatePrompting
		return inputInvalid, g.say(g.messages.InvalidNumber)
	}

	g.state = StateValidating
	gs, err := guess.New(int(parsed))
	if err != nil {
		g.state = StatePrompting
		return inputOutOfRange, g.say(err.Error())
	}

	g.attempts++
	if err := g.console.Printf(g.messages.YouGuessed, gs.Value()); err != nil {
		return inputGuess, fmt.Errorf("write feedback: %w", err)
	}

	g.state = StateComparing
	switch gs.Compare(g.secret) {
	case guess.Less:
		g.state = StatePrompting
		return inputGuess, g.say(g.messages.TooSmall)
	case guess.Greater:
		g.state = StatePrompting
		return inputGuess, g.say(g.messages.TooBig)
	default:
		g.state = StateWon
		return inputGuess, g.say(g.messages.YouWin)
	}
}

// say prints one feedback line.
func (g *Game) say(msg string) error {
	if err := g.console.Println(msg); err != nil {
		return fmt.Errorf("write feedback: %w", err)
	}
	return nil
}
