package xp

const pointsPerLevelStep = 50

type Progress struct {
	Total          int64
	Level          int64
	CurrentLevelXP int64
	NextLevelXP    int64
	// Ratio is the share of the way from CurrentLevelXP to NextLevelXP, in [0, 1).
	Ratio float64
}

// Threshold returns the total XP at which level is reached: 50*L*(L-1).
func Threshold(level int64) int64 {
	if level <= 1 {
		return 0
	}
	return pointsPerLevelStep * level * (level - 1)
}

// Level derives progress from a ledger total. It is a pure function of total.
func Level(total int64) Progress {
	if total < 0 {
		total = 0
	}
	level := int64(1)
	for Threshold(level+1) <= total {
		level++
	}
	current := Threshold(level)
	next := Threshold(level + 1)
	return Progress{
		Total:          total,
		Level:          level,
		CurrentLevelXP: current,
		NextLevelXP:    next,
		Ratio:          float64(total-current) / float64(next-current),
	}
}
