package types

type WordEntry struct {
	Word         string `json:"word"`
	PartOfSpeech string `json:"partOfSpeech"`
	Definition   string `json:"definition"`
}

// Difficulty selects how many wrong guesses a round allows.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	}
	return "unknown"
}

type RoundState string

const (
	RoundActive RoundState = "active"
	RoundWon    RoundState = "won"
	RoundLost   RoundState = "lost"
)

type Outcome int

const (
	Win Outcome = iota
	Loss
)

func (o Outcome) String() string {
	if o == Win {
		return "win"
	}
	return "loss"
}
