package team

import "strings"

// Player is one active roster member of a team.
type Player struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	RealName string `json:"realName,omitempty"`
	Country  string `json:"country,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Team is a competitive organization roster for one game on one provider.
// The canonical struct doubles as the public wire shape, so the json tags
// carry the camelCase contract.
type Team struct {
	ID         string   `json:"id" validate:"required"`
	Name       string   `json:"name" validate:"required"`
	ShortName  string   `json:"shortName,omitempty"`
	Logo       string   `json:"logo,omitempty"`
	Country    string   `json:"country,omitempty"`
	Region     string   `json:"region,omitempty"`
	Game       string   `json:"game" validate:"required"`
	Platform   string   `json:"platform" validate:"required"`
	Ranking    int      `json:"ranking,omitempty"`
	BrandColor string   `json:"brandColor,omitempty"`
	Players    []Player `json:"players,omitempty"`
}

// DeriveShortName prefers the provider short code and otherwise takes
// the first three letters of the full name, uppercased.
func DeriveShortName(code, name string) string {
	short := strings.TrimSpace(code)
	if short != "" {
		return strings.ToUpper(short)
	}

	runes := []rune(strings.TrimSpace(name))
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return strings.ToUpper(string(runes))
}
