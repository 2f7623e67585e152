package progression

// Rank is a cosmetic tier derived from level.
type Rank struct {
	Name     string
	MinLevel int
	Icon     string
}

// ranks is ordered ascending by MinLevel and covers level 0.
var ranks = []Rank{
	{Name: "Space Cadet", MinLevel: 0, Icon: "🚀"},
	{Name: "Pilot", MinLevel: 5, Icon: "⭐"},
	{Name: "Captain", MinLevel: 10, Icon: "🏆"},
	{Name: "Star Commander", MinLevel: 15, Icon: "🌍"},
}

// Ranks returns the rank table in ascending MinLevel order.
func Ranks() []Rank {
	out := make([]Rank, len(ranks))
	copy(out, ranks)
	return out
}

// ResolveRank returns the rank with the greatest MinLevel not exceeding
// level. The table covers level 0, so the first entry is the fallback.
func ResolveRank(level int) Rank {
	best := ranks[0]
	for _, r := range ranks {
		if r.MinLevel > level {
			break
		}
		best = r
	}
	return best
}
