package engine

import (
	"errors"
	"fmt"
)

// ErrEmptyTitle rejects task completions without a title.
var ErrEmptyTitle = errors.New("title is required")

// GameOverError blocks every mutation on a dead save except respawn.
type GameOverError struct{}

func (GameOverError) Error() string {
	return "game over: more than 7 days of inactivity; respawn to start over"
}

// InsufficientMinutesError is returned when a play session asks for more
// minutes than the bank holds. The bank is left untouched.
type InsufficientMinutesError struct {
	Bank      int
	Requested int
}

func (e InsufficientMinutesError) Error() string {
	return fmt.Sprintf("not enough play minutes: have %d, need %d", e.Bank, e.Requested)
}

// UnknownQuestError is returned for claim attempts on quest names that are
// not in the catalog.
type UnknownQuestError struct {
	Name string
}

func (e UnknownQuestError) Error() string {
	return fmt.Sprintf("unknown quest: %q", e.Name)
}
