package models

// Player is a person assigned to one team inside a group.
// The owning group is not stored on the player, it is implied by where the player is kept.
type Player struct {
	// Name is the display name of the player
	Name string

	// Team is the side the player is on
	Team Team
}
