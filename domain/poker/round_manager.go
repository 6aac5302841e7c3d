package poker

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

type ActionType string

const (
	ActionPlay    ActionType = "play"
	ActionDiscard ActionType = "discard"
)

// Action is a player request against a specific round.
type Action struct {
	RoundID string     `json:"round_id"`
	Type    ActionType `json:"type"`
	Indices []int      `json:"indices"`
}

// Outcome is what applying an Action produced. Play is set for plays,
// Discarded for discards.
type Outcome struct {
	Action    Action
	Play      *PlayResult
	Discarded []Card
}

// RoundManager validates and applies actions against a Round and logs them.
type RoundManager struct {
	Round  *Round
	logger *slog.Logger
}

// NewRoundManager wraps r. A nil logger uses slog.Default().
func NewRoundManager(r *Round, logger *slog.Logger) *RoundManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &RoundManager{Round: r, logger: logger}
}

// Validate checks whether a is acceptable in the current round state without
// changing anything.
func (m *RoundManager) Validate(a Action) error {
	if a.RoundID != m.Round.ID() {
		return fmt.Errorf("wrong round: expected %s, got %s", m.Round.ID(), a.RoundID)
	}
	return CheckRoundLogic(a.Type, a.Indices, m.Round)
}

// Apply validates a and applies it to the round.
func (m *RoundManager) Apply(a Action) (Outcome, error) {
	if err := m.Validate(a); err != nil {
		m.logger.Warn("action rejected", "round", a.RoundID, "type", string(a.Type), "indices", a.Indices, "error", err.Error())
		return Outcome{}, err
	}

	out := Outcome{Action: a}
	switch a.Type {
	case ActionPlay:
		res, err := m.Round.PlayCards(a.Indices)
		if err != nil {
			return Outcome{}, err
		}
		out.Play = &res
		m.logger.Info("hand played",
			"round", a.RoundID,
			"hand", res.Hand.Name,
			"score", res.Score,
			"total", res.Total,
			"target", m.Round.Target(),
			"plays_left", m.Round.PlaysLeft())
		if res.State.Terminal() {
			m.logger.Info("round finished", "round", a.RoundID, "state", string(res.State), "total", res.Total)
		}
	case ActionDiscard:
		cards, err := m.Round.DiscardCards(a.Indices)
		if err != nil {
			return Outcome{}, err
		}
		out.Discarded = cards
		m.logger.Info("cards discarded", "round", a.RoundID, "count", len(cards), "discards_left", m.Round.DiscardsLeft())
	}
	return out, nil
}

// ActionPlay builds a play action for the managed round.
func (m *RoundManager) ActionPlay(indices ...int) Action {
	return Action{RoundID: m.Round.ID(), Type: ActionPlay, Indices: indices}
}

// ActionDiscard builds a discard action for the managed round.
func (m *RoundManager) ActionDiscard(indices ...int) Action {
	return Action{RoundID: m.Round.ID(), Type: ActionDiscard, Indices: indices}
}

// ToPayload serializes the action as JSON.
func (a Action) ToPayload() ([]byte, error) {
	return json.Marshal(a)
}

// FromPayload parses an action produced by ToPayload.
func FromPayload(data []byte) (Action, error) {
	var a Action
	err := json.Unmarshal(data, &a)
	return a, err
}
