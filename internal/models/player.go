// internal/models/player.go
package models

import "github.com/google/uuid"

// Player is a participant in a match. Points is the permanent cumulative
// score; only the match controller mutates it.
type Player struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	IsAI   bool      `json:"isAI"`
	Points int       `json:"points"`
}

// NewPlayer creates a player with a fresh ID and zero score.
func NewPlayer(name string, isAI bool) *Player {
	id, _ := uuid.NewRandom()
	return &Player{ID: id, Name: name, IsAI: isAI}
}
