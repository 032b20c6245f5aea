package entity

import (
	"errors"
	"fmt"
)

var ErrUnknownRole = errors.New("unknown player role")

// Role tells who controls a mark.
type Role string

const (
	Human Role = "human"
	Bot   Role = "bot"
)

func ParseRole(value string) (Role, error) {
	switch role := Role(value); role {
	case Human, Bot:
		return role, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, value)
	}
}

// Seating assigns marks to the two players.
type Seating struct {
	HumanMark Mark `json:"human_mark"`
	First     Role `json:"first"`
}

func (that Seating) BotMark() Mark {
	return that.HumanMark.Opponent()
}

func (that Seating) MarkOf(role Role) Mark {
	if role == Human {
		return that.HumanMark
	}
	return that.BotMark()
}

// RoleOf returns the role playing mark, or an empty role for Empty.
func (that Seating) RoleOf(mark Mark) Role {
	switch mark {
	case that.HumanMark:
		return Human
	case that.BotMark():
		return Bot
	default:
		return ""
	}
}

func ParseMark(value string) (Mark, error) {
	switch value {
	case "X", "x":
		return X, nil
	case "O", "o":
		return O, nil
	default:
		return Empty, fmt.Errorf("invalid mark %q: must be X or O", value)
	}
}
