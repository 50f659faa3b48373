package vlr

import (
	"strconv"
	"strings"
)

// flexString tolerates upstream fields that flip between JSON strings
// and numbers across feed revisions.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	value := strings.TrimSpace(string(data))
	value = strings.Trim(value, `"`)
	if value == "null" {
		value = ""
	}
	*f = flexString(value)
	return nil
}

// flexInt swallows quoted numbers and junk, defaulting to zero.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	value := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if value == "" || value == "null" {
		*f = 0
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexInt(parsed)
	return nil
}

// The feed wraps segments either directly or under a data envelope
// depending on the endpoint revision.
type matchesEnvelope struct {
	Data struct {
		Segments []matchSegment `json:"segments"`
	} `json:"data"`
	Segments []matchSegment `json:"segments"`
}

func (e matchesEnvelope) segments() []matchSegment {
	if len(e.Data.Segments) > 0 {
		return e.Data.Segments
	}
	return e.Segments
}

type matchSegment struct {
	Matches []rawMatch `json:"matches"`
}

type rawMatch struct {
	ID         flexString    `json:"id"`
	Date       flexString    `json:"date"`
	State      string        `json:"state"`
	Teams      []rawTeamRef  `json:"teams"`
	Tournament rawTournament `json:"tournament"`
	Event      rawTournament `json:"event"`
}

type rawTeamRef struct {
	ID      flexString `json:"id"`
	Name    string     `json:"name"`
	Code    string     `json:"code"`
	Img     string     `json:"img"`
	Country string     `json:"country"`
	Score   flexInt    `json:"score"`
}

type rawTournament struct {
	ID   flexString `json:"id"`
	Name string     `json:"name"`
}

type teamsEnvelope struct {
	Data []rawTeam `json:"data"`
}

type rawTeam struct {
	ID      flexString `json:"id"`
	Name    string     `json:"name"`
	Img     string     `json:"img"`
	Country string     `json:"country"`
}
