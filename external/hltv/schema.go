package hltv

import (
	"strconv"
	"strings"
)

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

type rawMatch struct {
	ID     flexString   `json:"id"`
	Time   flexString   `json:"time"`
	Live   bool         `json:"live"`
	Format string       `json:"format"`
	Stars  flexInt      `json:"stars"`
	Event  rawEvent     `json:"event"`
	Teams  []rawTeamRef `json:"teams"`
}

type rawEvent struct {
	ID   flexString `json:"id"`
	Name string     `json:"name"`
}

type rawTeamRef struct {
	ID   flexString `json:"id"`
	Name string     `json:"name"`
	Logo string     `json:"logo"`
}
