// internal/game/events.go
package game

import "github.com/google/uuid"

// TurnEventType is an enum-like type for broadcasting turn progress.
type TurnEventType string

const (
	EventCardDrawn    TurnEventType = "card_drawn"
	EventTurnSkipped  TurnEventType = "turn_skipped"
	EventDiceRolled   TurnEventType = "dice_rolled"
	EventDiceKept     TurnEventType = "dice_kept"
	EventTurnFilled   TurnEventType = "turn_filled"
	EventBonusApplied TurnEventType = "bonus_applied"
	EventPlayerBusted TurnEventType = "player_busted"
	EventPlayerBanked TurnEventType = "player_banked"
	EventMatchEnd     TurnEventType = "match_end"
)

// TurnEvent carries what the I/O collaborator needs to display progress.
// Only the fields relevant to the event type are set.
type TurnEvent struct {
	Type       TurnEventType `json:"type"`
	PlayerID   uuid.UUID     `json:"playerId"`
	PlayerName string        `json:"playerName,omitempty"`
	Card       *Card         `json:"card,omitempty"`
	Roll       []int         `json:"roll,omitempty"`
	Points     int           `json:"points,omitempty"`     // points in this roll or pick
	TurnPoints int           `json:"turnPoints,omitempty"` // running turn total
	Fills      int           `json:"fills,omitempty"`
	Total      int           `json:"total,omitempty"` // cumulative score after banking
}

// BroadcastFn delivers turn events to the I/O collaborator. A nil fn
// disables broadcasting; the engine itself never renders anything.
type BroadcastFn func(ev TurnEvent)
