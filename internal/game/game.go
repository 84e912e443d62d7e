// Package game implements the Catan board, player, and turn/phase state
// machine: pure predicates and transitions with no network or locking
// concerns of their own (§4.C/§4.D). Callers hold the per-game lock.
package game

import (
	"math/rand"
	"sync"

	"github.com/catanserver/server/internal/wire"
)

// Options is the resolved, typed subset of the option catalog (§4.H)
// that the game model itself needs to enforce rules. The lobby-facing
// declarative catalog (key, type, default, minVersion, ...) lives in
// internal/catalog; by the time a Game is constructed its options have
// already been validated and resolved to these concrete fields.
type Options struct {
	MaxPlayers             int
	Use6Player             bool
	SpecialBuildOnly5or6   bool
	SeaBoard               bool
	RobberCantReturnDesert bool
	NoSevensFirstRounds    int
	NoSevensUntilCity      bool
	BreakClumps            int
	NoTrading              bool
	VictoryPoints          int
	ScenarioKey            string
	FogHexes               bool
	ClothTradeVillages     bool
	PirateIslandsFortresses bool
	FullyObservable        bool
	VPFullyObservable      bool
}

func DefaultOptions() Options {
	return Options{
		MaxPlayers:    4,
		VictoryPoints: 10,
	}
}

// ActionLogEntry records the last committed action, for the undo support
// named in Design Note 9.1 ("Undo").
type ActionLogEntry struct {
	Type     int
	P1, P2, P3 int
	RS1, RS2 wire.ResourceSet
}

// Game is one in-progress (or lobby-phase) match. All fields are
// protected by mu (via Lock/Unlock); the caller (the handler layer, §4.E)
// acquires it before touching anything below and releases it after
// emitting outbound messages, per §5's ordering guarantee.
type Game struct {
	mu sync.Mutex

	Name    string
	Options Options
	Rng     *rand.Rand

	Players       [6]*Player // nil where the seat is empty
	Board         *Board
	State         GameState
	CurrentPlayer int
	FirstPlayer   int
	RoundCount    int
	DiceA, DiceB  int

	DevCardDeck []wire.DevCardType

	LargestArmyPlayer int // -1 if none
	LongestRoadPlayer int // -1 if none

	IsPractice bool
	IsBotsOnly bool

	ClientVersionLowest  int
	ClientVersionHighest int

	LastAction *ActionLogEntry

	SeatLocked [6]bool

	// SpecialBuildQueue holds the seats still owed a special-build turn
	// (5-6 player rule) after the current one finishes, in seat order.
	// postSpecialBuildSeat is the seat whose regular turn resumes once
	// the queue drains.
	SpecialBuildQueue    []int
	postSpecialBuildSeat int
}

func NewGame(name string, opts Options, seed int64) *Game {
	g := &Game{
		Name:              name,
		Options:           opts,
		Rng:               rand.New(rand.NewSource(seed)),
		State:             NewGameState,
		FirstPlayer:       -1,
		CurrentPlayer:     -1,
		LargestArmyPlayer: -1,
		LongestRoadPlayer: -1,
		ClientVersionLowest: wire.VersionBase,
	}
	g.DevCardDeck = devCardDeck()
	g.Rng.Shuffle(len(g.DevCardDeck), func(i, j int) {
		g.DevCardDeck[i], g.DevCardDeck[j] = g.DevCardDeck[j], g.DevCardDeck[i]
	})
	return g
}

func (g *Game) Lock()   { g.mu.Lock() }
func (g *Game) Unlock() { g.mu.Unlock() }

// SeatOf returns the seat index for nickname, or -1 if not seated.
func (g *Game) SeatOf(nickname string) int {
	for i, p := range g.Players {
		if p != nil && p.Nickname == nickname {
			return i
		}
	}
	return -1
}

func (g *Game) NumSeated() int {
	n := 0
	for i := 0; i < g.Options.MaxPlayers; i++ {
		if g.Players[i] != nil {
			n++
		}
	}
	return n
}

func (g *Game) SitDown(seat int, nickname string, isRobot bool) {
	p := NewPlayer(seat)
	p.Nickname = nickname
	p.IsRobot = isRobot
	g.Players[seat] = p
}

// StartGame lays out the board and chooses a starting player uniformly
// at random (§4.G's STARTGAME administration).
func (g *Game) StartGame() {
	if g.Options.SeaBoard {
		g.Board = NewSeaBoard(g.Rng, SeaBoardOptions{
			FogHexes:                g.Options.FogHexes,
			ClothTradeVillages:      g.Options.ClothTradeVillages,
			PirateIslandsFortresses: g.Options.PirateIslandsFortresses,
			BreakClumps:             g.Options.BreakClumps,
		})
	} else {
		g.Board = NewClassicBoard(g.Rng, g.Options.BreakClumps)
	}
	seated := make([]int, 0, 6)
	for i := 0; i < g.Options.MaxPlayers; i++ {
		if g.Players[i] != nil {
			seated = append(seated, i)
		}
	}
	g.FirstPlayer = seated[g.Rng.Intn(len(seated))]
	g.CurrentPlayer = g.FirstPlayer
	g.RoundCount = 0
	g.State = Start1A
}

// ActivePlayer returns the current player, or nil in pre-game states.
func (g *Game) ActivePlayer() *Player {
	if g.CurrentPlayer < 0 {
		return nil
	}
	return g.Players[g.CurrentPlayer]
}

func (g *Game) recordAction(e ActionLogEntry) {
	g.LastAction = &e
}
