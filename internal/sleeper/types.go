package sleeper

// Roster is one league roster entry as returned by the Sleeper API.
type Roster struct {
	RosterID int            `json:"roster_id"`
	OwnerID  string         `json:"owner_id"`
	Settings RosterSettings `json:"settings"`
}

// RosterSettings carries the optional custom team name.
type RosterSettings struct {
	TeamName string `json:"team_name"`
}

// User is one league member as returned by the Sleeper API.
type User struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}
