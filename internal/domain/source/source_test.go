package source

import "testing"

func TestMatchIDRoundTrip(t *testing.T) {
	t.Parallel()

	id := MatchID(VLR, "12345")
	if id != "vlr-12345" {
		t.Fatalf("unexpected match id %q", id)
	}

	src, ok := FromMatchID(id)
	if !ok || src != VLR {
		t.Fatalf("expected vlr, got %q ok=%v", src, ok)
	}
}

func TestTeamIDRoundTrip(t *testing.T) {
	t.Parallel()

	id := TeamID(HLTV, "4608")
	if id != "team-hltv-4608" {
		t.Fatalf("unexpected team id %q", id)
	}

	src, ok := FromTeamID(id)
	if !ok || src != HLTV {
		t.Fatalf("expected hltv, got %q ok=%v", src, ok)
	}
}

func TestFromMatchIDUnknownPrefix(t *testing.T) {
	t.Parallel()

	cases := []string{"", "match-1", "unknown-99", "vlr", "team-vlr-9"}
	for _, id := range cases {
		if src, ok := FromMatchID(id); ok && id != "team-vlr-9" {
			t.Fatalf("id %q resolved to %q, expected no provider", id, src)
		}
	}

	if _, ok := FromTeamID("vlr-9"); ok {
		t.Fatal("match id must not resolve as team id")
	}
}

func TestNormalizeAssetURL(t *testing.T) {
	t.Parallel()

	const root = "https://www.vlr.gg"

	cases := map[string]string{
		"":                          "",
		"https://cdn.example/a.png": "https://cdn.example/a.png",
		"http://cdn.example/a.png":  "http://cdn.example/a.png",
		"//owcdn.net/img/team.png":  "https://owcdn.net/img/team.png",
		"/img/vlr/logo.png":         "https://www.vlr.gg/img/vlr/logo.png",
		"img/vlr/logo.png":          "https://www.vlr.gg/img/vlr/logo.png",
	}
	for input, expected := range cases {
		if got := NormalizeAssetURL(input, root); got != expected {
			t.Fatalf("NormalizeAssetURL(%q) = %q, expected %q", input, got, expected)
		}
	}
}

func TestRegistryKnown(t *testing.T) {
	t.Parallel()

	for _, info := range Registry() {
		if !Known(info.ID) {
			t.Fatalf("registry provider %q is not recognized", info.ID)
		}
		if info.WebRoot == "" || info.BrandColor == "" {
			t.Fatalf("registry provider %q is missing branding", info.ID)
		}
	}

	if Known("espn") {
		t.Fatal("unregistered provider must not be known")
	}
}
