package entity

// Score tallies finished games from the human player's side.
type Score struct {
	Player   int `json:"player"`
	Computer int `json:"computer"`
	Draws    int `json:"draws"`
}

func (that *Score) Record(game *Game) {
	switch game.Winner {
	case PlayerTie:
		that.Draws++
	case game.PlayerMark:
		that.Player++
	case game.ComputerMark:
		that.Computer++
	}
}
