package solve

import "fmt"

// DifficultyKind distinguishes a Local deduction (confined to a group of
// connected constraints) from a Global one (required merging the whole
// board's blue-count clue).
type DifficultyKind int

const (
	DifficultyLocal DifficultyKind = iota
	DifficultyGlobal
)

// Difficulty is the cognitive-load level a single solver step required: how
// many constraints (Local) or how many visible constraints existed at the
// time (Global) had to be considered together to find it.
type Difficulty struct {
	Kind  DifficultyKind
	Level int
}

func Local(level int) Difficulty  { return Difficulty{Kind: DifficultyLocal, Level: level} }
func Global(level int) Difficulty { return Difficulty{Kind: DifficultyGlobal, Level: level} }

func (d Difficulty) String() string {
	switch d.Kind {
	case DifficultyGlobal:
		return fmt.Sprintf("Global(%d)", d.Level)
	default:
		return fmt.Sprintf("Local(%d)", d.Level)
	}
}
