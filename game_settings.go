package main

type GameSettings struct {
	BoardWidth  int `json:"board_width"`
	BoardHeight int `json:"board_height"`
}

func DefaultGameSettings() GameSettings {
	return GameSettings{
		BoardWidth:  15,
		BoardHeight: 15,
	}
}
