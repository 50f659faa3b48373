package match

import (
	"strings"
	"time"

	"github.com/oyunradar/esports-radar/internal/domain/team"
)

// Status is the lifecycle state of a match.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
	StatusPostponed Status = "postponed"
	StatusCancelled Status = "cancelled"
)

// NormalizeStatus folds loose provider state strings onto the canonical
// enum, defaulting to upcoming.
func NormalizeStatus(value string) Status {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "live", "ongoing", "running", "in_progress":
		return StatusLive
	case "completed", "finished", "final", "ended":
		return StatusCompleted
	case "postponed":
		return StatusPostponed
	case "cancelled", "canceled":
		return StatusCancelled
	default:
		return StatusUpcoming
	}
}

// ListingRank orders statuses for listings: live first, then upcoming,
// then everything already decided.
func (s Status) ListingRank() int {
	switch s {
	case StatusLive:
		return 0
	case StatusUpcoming:
		return 1
	case StatusCompleted:
		return 2
	case StatusPostponed:
		return 3
	case StatusCancelled:
		return 4
	default:
		return 5
	}
}

// Side is one of the two competing teams plus its running score.
type Side struct {
	Team     team.Team `json:"team"`
	Score    int       `json:"score"`
	IsWinner bool      `json:"isWinner,omitempty"`
}

// Tournament is the event a match belongs to.
type Tournament struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Tier      string `json:"tier,omitempty"`
	PrizePool string `json:"prizePool,omitempty"`
}

// StreamInfo points at the broadcast for a live match.
type StreamInfo struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Viewers  int    `json:"viewers,omitempty"`
}

// MapResult is the score line of one map in a series.
type MapResult struct {
	MapName     string `json:"mapName"`
	Team1Score  int    `json:"team1Score"`
	Team2Score  int    `json:"team2Score"`
	IsCompleted bool   `json:"isCompleted"`
	IsCurrent   bool   `json:"isCurrent,omitempty"`
}

// MapSide is one team's in-map score and current side.
type MapSide struct {
	Score int    `json:"score"`
	Side  string `json:"side"`
}

// CurrentMapInfo describes the live round state of the map in play.
type CurrentMapInfo struct {
	MapName     string  `json:"mapName"`
	Team1       MapSide `json:"team1"`
	Team2       MapSide `json:"team2"`
	Half        string  `json:"half"`
	RoundNumber int     `json:"roundNumber"`
}

// Match is one scheduled, running or finished series between two teams.
type Match struct {
	ID         string          `json:"id" validate:"required"`
	Platform   string          `json:"platform" validate:"required"`
	Game       string          `json:"game" validate:"required"`
	Status     Status          `json:"status" validate:"required"`
	StartTime  time.Time       `json:"startTime"`
	EndTime    *time.Time      `json:"endTime,omitempty"`
	Team1      Side            `json:"team1"`
	Team2      Side            `json:"team2"`
	Tournament *Tournament     `json:"tournament,omitempty"`
	Format     string          `json:"format,omitempty"`
	Stream     *StreamInfo     `json:"stream,omitempty"`
	Maps       []MapResult     `json:"maps,omitempty"`
	CurrentMap *CurrentMapInfo `json:"currentMap,omitempty"`
}
