package screen

import (
	"github.com/RdoLimaJunior/cosmus/internal/badges"
	"github.com/RdoLimaJunior/cosmus/internal/progression"
)

// BadgeEarnedMsg announces a freshly earned badge. The root model turns
// it into a toast overlay.
type BadgeEarnedMsg struct {
	Badge badges.Badge
}

// RankUpMsg announces a rank promotion.
type RankUpMsg struct {
	Rank progression.Rank
}
