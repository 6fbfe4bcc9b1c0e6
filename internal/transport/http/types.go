package http

// MoveRequest submits a move as two coordinate tokens, e.g. {"from":"e2","to":"e4"}
type MoveRequest struct {
	From string `json:"from" validate:"required,len=2"`
	To   string `json:"to" validate:"required,len=2"`
}

// GameResponse describes the current state of a game
type GameResponse struct {
	GameID  string `json:"gameId"`
	Turn    string `json:"turn"`
	Outcome string `json:"outcome"`
}

// BoardResponse carries the rendered board text
type BoardResponse struct {
	GameID  string `json:"gameId"`
	Board   string `json:"board"`
	Turn    string `json:"turn"`
	Outcome string `json:"outcome"`
}

// ErrorResponse is the consistent error envelope
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}
