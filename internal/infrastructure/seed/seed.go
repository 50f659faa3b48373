// Package seed holds the fixed fallback dataset served when every
// upstream source is unreachable or empty, so the API keeps answering
// with plausible content.
package seed

import (
	"time"

	"github.com/oyunradar/esports-radar/internal/domain/match"
	"github.com/oyunradar/esports-radar/internal/domain/team"
)

func futPlayers() []team.Player {
	return []team.Player{
		{ID: "p1", Nickname: "qRaxs", RealName: "Doğukan Balaban", Country: "TR", Avatar: "https://i.pravatar.cc/150?img=1", Role: "Duelist"},
		{ID: "p2", Nickname: "MrFaliN", RealName: "Furkan Yeğen", Country: "TR", Avatar: "https://i.pravatar.cc/150?img=2", Role: "Controller"},
		{ID: "p3", Nickname: "yetujey", RealName: "Yunus Emre Kaplan", Country: "TR", Avatar: "https://i.pravatar.cc/150?img=3", Role: "Initiator"},
		{ID: "p4", Nickname: "AtaKaptan", RealName: "Ata Tan", Country: "TR", Avatar: "https://i.pravatar.cc/150?img=4", Role: "Sentinel"},
		{ID: "p5", Nickname: "mojj", RealName: "Muhammed Toprak", Country: "TR", Avatar: "https://i.pravatar.cc/150?img=5", Role: "Flex"},
	}
}

func fnaticPlayers() []team.Player {
	return []team.Player{
		{ID: "p6", Nickname: "Derke", RealName: "Nikita Sirmitev", Country: "FI", Avatar: "https://i.pravatar.cc/150?img=6", Role: "Duelist"},
		{ID: "p7", Nickname: "Boaster", RealName: "Jake Howlett", Country: "UK", Avatar: "https://i.pravatar.cc/150?img=7", Role: "Controller"},
		{ID: "p8", Nickname: "Alfajer", RealName: "Emir Ali Beder", Country: "TR", Avatar: "https://i.pravatar.cc/150?img=8", Role: "Sentinel"},
		{ID: "p9", Nickname: "Chronicle", RealName: "Timofey Khromov", Country: "RU", Avatar: "https://i.pravatar.cc/150?img=9", Role: "Initiator"},
		{ID: "p10", Nickname: "Leo", RealName: "Leo Jannesson", Country: "SE", Avatar: "https://i.pravatar.cc/150?img=10", Role: "Flex"},
	}
}

func naviPlayers() []team.Player {
	return []team.Player{
		{ID: "p11", Nickname: "s1mple", RealName: "Oleksandr Kostyliev", Country: "UA", Avatar: "https://i.pravatar.cc/150?img=11", Role: "AWPer"},
		{ID: "p12", Nickname: "electronic", RealName: "Denis Sharipov", Country: "RU", Avatar: "https://i.pravatar.cc/150?img=12", Role: "Rifler"},
		{ID: "p13", Nickname: "Perfecto", RealName: "Ilya Zalutskiy", Country: "RU", Avatar: "https://i.pravatar.cc/150?img=13", Role: "Support"},
		{ID: "p14", Nickname: "b1t", RealName: "Valeriy Vakhovskiy", Country: "UA", Avatar: "https://i.pravatar.cc/150?img=14", Role: "Rifler"},
		{ID: "p15", Nickname: "Aleksib", RealName: "Aleksi Virolainen", Country: "FI", Avatar: "https://i.pravatar.cc/150?img=15", Role: "IGL"},
	}
}

func buildTeam(id, name, game, platform, logo, country, region, color string, ranking int) team.Team {
	return team.Team{
		ID:         id,
		Name:       name,
		ShortName:  team.DeriveShortName("", name),
		Logo:       logo,
		Country:    country,
		Region:     region,
		Game:       game,
		Platform:   platform,
		Ranking:    ranking,
		BrandColor: color,
	}
}

// Teams returns the fixed fallback roster listing.
func Teams() []team.Team {
	fut := buildTeam("team-seed-fut", "FUT Esports", "valorant", "vlr", "https://owcdn.net/img/62bf990f32e06.png", "TR", "EMEA", "#d4af37", 4)
	fut.Players = futPlayers()
	fnatic := buildTeam("team-seed-fnatic", "Fnatic", "valorant", "vlr", "https://owcdn.net/img/5f73ed26ee8c9.png", "UK", "EMEA", "#ff5900", 1)
	fnatic.Players = fnaticPlayers()
	navi := buildTeam("team-seed-navi", "NaVi", "cs2", "hltv", "https://img-cdn.hltv.org/teamlogo/9bgXHC26YCW_plNul8bZY3.png", "UA", "EU", "#ffcc00", 2)
	navi.Players = naviPlayers()

	return []team.Team{
		fut,
		fnatic,
		buildTeam("team-seed-sentinels", "Sentinels", "valorant", "vlr", "https://owcdn.net/img/605e04c5cd2ec.png", "US", "NA", "#000000", 6),
		buildTeam("team-seed-cloud9", "Cloud9", "valorant", "vlr", "https://owcdn.net/img/5f73ecf41b719.png", "US", "NA", "#0f7ac2", 12),
		buildTeam("team-seed-liquid", "Team Liquid", "valorant", "vlr", "https://owcdn.net/img/5f73ee3c1b0f2.png", "US", "NA", "#0d2249", 9),
		navi,
		buildTeam("team-seed-faze", "FaZe Clan", "cs2", "hltv", "https://img-cdn.hltv.org/teamlogo/zLXCVqYUnOjQU6qvghvbYr.svg", "US", "NA", "#d62828", 3),
		buildTeam("team-seed-g2", "G2 Esports", "cs2", "hltv", "https://img-cdn.hltv.org/teamlogo/AtzLZSJCHTP_Jw2iDNYXqn.svg", "DE", "EU", "#003bff", 5),
		buildTeam("team-seed-vitality", "Vitality", "cs2", "hltv", "https://img-cdn.hltv.org/teamlogo/QFAV5m0Ys-tRVeg0Yq4vBJ.svg", "FR", "EU", "#f7b500", 7),
		buildTeam("team-seed-astralis", "Astralis", "cs2", "hltv", "https://img-cdn.hltv.org/teamlogo/9bgXHC26YCW_plNul8bZY3.png", "DK", "EU", "#ed1c24", 15),
		buildTeam("team-seed-t1", "T1", "lol", "liquipedia", "https://static.lolesports.com/teams/1631819606829_t1-2021-worlds.png", "KR", "KR", "#e4002b", 1),
		buildTeam("team-seed-geng", "Gen.G", "lol", "liquipedia", "https://static.lolesports.com/teams/1631819050094_GenGLogo20216.png", "KR", "KR", "#aa8a00", 2),
		buildTeam("team-seed-jdg", "JD Gaming", "lol", "liquipedia", "https://static.lolesports.com/teams/JDG_FullonDark.png", "CN", "CN", "#dc143c", 3),
	}
}

// Matches returns the fixed fallback match listing, scheduled relative
// to now so live and upcoming entries stay believable.
func Matches(now time.Time) []match.Match {
	teams := Teams()
	byID := make(map[string]team.Team, len(teams))
	for _, item := range teams {
		byID[item.ID] = item
	}

	endedAt := func(offset time.Duration) *time.Time {
		v := now.Add(offset)
		return &v
	}

	return []match.Match{
		{
			ID:        "match-1",
			Platform:  "vlr",
			Game:      "valorant",
			Status:    match.StatusLive,
			StartTime: now.Add(-45 * time.Minute),
			Team1:     match.Side{Team: byID["team-seed-fut"], Score: 1},
			Team2:     match.Side{Team: byID["team-seed-fnatic"], Score: 1},
			Tournament: &match.Tournament{
				ID:        "vct-emea-1",
				Name:      "VCT EMEA League",
				Tier:      "S-Tier",
				PrizePool: "$150,000",
			},
			Format: "Bo3",
			Stream: &match.StreamInfo{Platform: "twitch", URL: "https://twitch.tv/valorant", Viewers: 125000},
			Maps: []match.MapResult{
				{MapName: "Bind", Team1Score: 13, Team2Score: 9, IsCompleted: true},
				{MapName: "Haven", Team1Score: 8, Team2Score: 13, IsCompleted: true},
				{MapName: "Ascent", Team1Score: 7, Team2Score: 5, IsCurrent: true},
			},
			CurrentMap: &match.CurrentMapInfo{
				MapName:     "Ascent",
				Team1:       match.MapSide{Score: 7, Side: "attack"},
				Team2:       match.MapSide{Score: 5, Side: "defense"},
				Half:        "second",
				RoundNumber: 13,
			},
		},
		{
			ID:        "match-2",
			Platform:  "hltv",
			Game:      "cs2",
			Status:    match.StatusLive,
			StartTime: now.Add(-30 * time.Minute),
			Team1:     match.Side{Team: byID["team-seed-navi"], Score: 0},
			Team2:     match.Side{Team: byID["team-seed-faze"], Score: 1},
			Tournament: &match.Tournament{
				ID:        "blast-premier",
				Name:      "BLAST Premier World Final",
				Tier:      "S-Tier",
				PrizePool: "$1,000,000",
			},
			Format: "Bo3",
			Stream: &match.StreamInfo{Platform: "twitch", URL: "https://twitch.tv/blastpremier", Viewers: 89000},
			Maps: []match.MapResult{
				{MapName: "Mirage", Team1Score: 11, Team2Score: 16, IsCompleted: true},
				{MapName: "Inferno", Team1Score: 8, Team2Score: 6, IsCurrent: true},
			},
			CurrentMap: &match.CurrentMapInfo{
				MapName:     "Inferno",
				Team1:       match.MapSide{Score: 8, Side: "defense"},
				Team2:       match.MapSide{Score: 6, Side: "attack"},
				Half:        "second",
				RoundNumber: 15,
			},
		},
		{
			ID:        "match-3",
			Platform:  "vlr",
			Game:      "valorant",
			Status:    match.StatusUpcoming,
			StartTime: now.Add(2 * time.Hour),
			Team1:     match.Side{Team: byID["team-seed-sentinels"]},
			Team2:     match.Side{Team: byID["team-seed-cloud9"]},
			Tournament: &match.Tournament{
				ID:   "vct-americas",
				Name: "VCT Americas League",
				Tier: "S-Tier",
			},
			Format: "Bo3",
		},
		{
			ID:        "match-4",
			Platform:  "vlr",
			Game:      "valorant",
			Status:    match.StatusUpcoming,
			StartTime: now.Add(5 * time.Hour),
			Team1:     match.Side{Team: byID["team-seed-fut"]},
			Team2:     match.Side{Team: byID["team-seed-liquid"]},
			Tournament: &match.Tournament{
				ID:   "vct-emea-2",
				Name: "VCT EMEA League",
				Tier: "S-Tier",
			},
			Format: "Bo3",
		},
		{
			ID:        "match-5",
			Platform:  "hltv",
			Game:      "cs2",
			Status:    match.StatusUpcoming,
			StartTime: now.Add(24 * time.Hour),
			Team1:     match.Side{Team: byID["team-seed-g2"]},
			Team2:     match.Side{Team: byID["team-seed-vitality"]},
			Tournament: &match.Tournament{
				ID:   "iem-cologne",
				Name: "IEM Cologne 2026",
				Tier: "S-Tier",
			},
			Format: "Bo5",
		},
		{
			ID:        "match-6",
			Platform:  "vlr",
			Game:      "valorant",
			Status:    match.StatusCompleted,
			StartTime: now.Add(-4 * time.Hour),
			EndTime:   endedAt(-2 * time.Hour),
			Team1:     match.Side{Team: byID["team-seed-fut"], Score: 2, IsWinner: true},
			Team2:     match.Side{Team: byID["team-seed-sentinels"], Score: 1},
			Tournament: &match.Tournament{
				ID:   "vct-emea-3",
				Name: "VCT EMEA League",
				Tier: "S-Tier",
			},
			Format: "Bo3",
			Maps: []match.MapResult{
				{MapName: "Split", Team1Score: 13, Team2Score: 11, IsCompleted: true},
				{MapName: "Icebox", Team1Score: 9, Team2Score: 13, IsCompleted: true},
				{MapName: "Lotus", Team1Score: 13, Team2Score: 7, IsCompleted: true},
			},
		},
		{
			ID:        "match-7",
			Platform:  "hltv",
			Game:      "cs2",
			Status:    match.StatusCompleted,
			StartTime: now.Add(-6 * time.Hour),
			EndTime:   endedAt(-4 * time.Hour),
			Team1:     match.Side{Team: byID["team-seed-astralis"]},
			Team2:     match.Side{Team: byID["team-seed-navi"], Score: 2, IsWinner: true},
			Tournament: &match.Tournament{
				ID:   "blast-premier-2",
				Name: "BLAST Premier World Final",
				Tier: "S-Tier",
			},
			Format: "Bo3",
			Maps: []match.MapResult{
				{MapName: "Nuke", Team1Score: 10, Team2Score: 16, IsCompleted: true},
				{MapName: "Ancient", Team1Score: 14, Team2Score: 16, IsCompleted: true},
			},
		},
	}
}
