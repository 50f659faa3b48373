package source

import "strings"

// Canonical identifiers for the upstream data providers.
const (
	VLR        = "vlr"
	HLTV       = "hltv"
	Liquipedia = "liquipedia"
	Faceit     = "faceit"
)

const teamIDPrefix = "team-"
const tournamentIDPrefix = "tournament-"

// Info describes a data provider exposed through the registry.
type Info struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	WebRoot    string   `json:"webRoot"`
	BrandColor string   `json:"brandColor"`
	Games      []string `json:"games"`
	Enabled    bool     `json:"enabled"`
}

// Registry returns the list of providers the service knows about,
// including ones that are registered but not scraped yet.
func Registry() []Info {
	return []Info{
		{
			ID:         VLR,
			Name:       "VLR.gg",
			WebRoot:    "https://www.vlr.gg",
			BrandColor: "#ff4654",
			Games:      []string{"valorant"},
			Enabled:    true,
		},
		{
			ID:         HLTV,
			Name:       "HLTV.org",
			WebRoot:    "https://www.hltv.org",
			BrandColor: "#de9b35",
			Games:      []string{"cs2"},
			Enabled:    true,
		},
		{
			ID:         Liquipedia,
			Name:       "Liquipedia",
			WebRoot:    "https://liquipedia.net",
			BrandColor: "#0f4c81",
			Games:      []string{"valorant", "cs2", "lol", "dota2"},
			Enabled:    false,
		},
		{
			ID:         Faceit,
			Name:       "FACEIT",
			WebRoot:    "https://www.faceit.com",
			BrandColor: "#ff5500",
			Games:      []string{"cs2"},
			Enabled:    false,
		},
	}
}

// Known reports whether id names a registered provider.
func Known(id string) bool {
	switch id {
	case VLR, HLTV, Liquipedia, Faceit:
		return true
	default:
		return false
	}
}

// MatchID builds the service-wide match identifier from a provider id
// and the provider's own record id.
func MatchID(src, upstreamID string) string {
	return src + "-" + upstreamID
}

// TeamID builds the service-wide team identifier.
func TeamID(src, upstreamID string) string {
	return teamIDPrefix + src + "-" + upstreamID
}

// TournamentID builds the service-wide tournament identifier.
func TournamentID(src, upstreamID string) string {
	return tournamentIDPrefix + src + "-" + upstreamID
}

// FromMatchID extracts the provider id embedded in a match identifier.
// It returns false when the prefix does not name a registered provider.
func FromMatchID(id string) (string, bool) {
	prefix, _, ok := strings.Cut(id, "-")
	if !ok || !Known(prefix) {
		return "", false
	}
	return prefix, true
}

// FromTeamID extracts the provider id embedded in a team identifier.
func FromTeamID(id string) (string, bool) {
	rest, ok := strings.CutPrefix(id, teamIDPrefix)
	if !ok {
		return "", false
	}
	return FromMatchID(rest)
}

// NormalizeAssetURL turns provider-relative asset paths into absolute
// URLs under webRoot. Absolute http(s) URLs pass through unchanged and
// protocol-relative URLs are pinned to https.
func NormalizeAssetURL(raw, webRoot string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value
	}
	if strings.HasPrefix(value, "//") {
		return "https:" + value
	}
	root := strings.TrimRight(webRoot, "/")
	if !strings.HasPrefix(value, "/") {
		value = "/" + value
	}
	return root + value
}
