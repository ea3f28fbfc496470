package httpapi

import (
	"time"

	"github.com/riskibarqy/courtside/internal/domain/analytics"
	"github.com/riskibarqy/courtside/internal/domain/playerlog"
	"github.com/riskibarqy/courtside/internal/domain/team"
	"github.com/riskibarqy/courtside/internal/domain/teamstats"
	"github.com/riskibarqy/courtside/internal/usecase"
)

type teamDTO struct {
	ID       int64  `json:"id"`
	LeagueID string `json:"leagueId"`
	Name     string `json:"name"`
	Short    string `json:"short"`
	LogoURL  string `json:"logoUrl,omitempty"`
}

type recordDTO struct {
	Wins     int `json:"wins"`
	Losses   int `json:"losses"`
	Unplayed int `json:"unplayed"`
}

type teamAveragesDTO struct {
	Games           int     `json:"games"`
	PointsPerGame   float64 `json:"pointsPerGame"`
	ReboundsPerGame float64 `json:"reboundsPerGame"`
	AssistsPerGame  float64 `json:"assistsPerGame"`
	StealsPerGame   float64 `json:"stealsPerGame"`
	Efficiency      float64 `json:"efficiency"`
}

type teamOverviewDTO struct {
	Team     teamDTO          `json:"team"`
	Record   recordDTO        `json:"record"`
	Streak   string           `json:"streak"`
	Averages *teamAveragesDTO `json:"averages"`
}

type shotPointDTO struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Made bool    `json:"made"`
}

type shotSummaryDTO struct {
	Made   int            `json:"made"`
	Total  int            `json:"total"`
	Pct    string         `json:"pct"`
	Points []shotPointDTO `json:"points,omitempty"`
}

type shotZoneDTO struct {
	Zone  string `json:"zone"`
	Made  int    `json:"made"`
	Total int    `json:"total"`
	Pct   string `json:"pct"`
}

type shotChartDTO struct {
	TeamID  int64          `json:"teamId"`
	Summary shotSummaryDTO `json:"summary"`
	Zones   []shotZoneDTO  `json:"zones"`
}

type scheduleEntryDTO struct {
	GameID       string `json:"gameId"`
	Round        int    `json:"round"`
	Date         string `json:"date"`
	OpponentID   int64  `json:"opponentId"`
	OpponentName string `json:"opponentName"`
	IsHome       bool   `json:"isHome"`
	Played       bool   `json:"played"`
	HomeScore    *int   `json:"homeScore"`
	AwayScore    *int   `json:"awayScore"`
	Result       string `json:"result,omitempty"`
}

type opponentReportDTO struct {
	Team       teamDTO          `json:"team"`
	Record     recordDTO        `json:"record"`
	Streak     string           `json:"streak"`
	HeadToHead recordDTO        `json:"headToHead"`
	Averages   *teamAveragesDTO `json:"averages"`
	Shooting   shotSummaryDTO   `json:"shooting"`
	Zones      []shotZoneDTO    `json:"zones"`
}

type scoutingReportDTO struct {
	TeamID    int64               `json:"teamId"`
	Opponents []opponentReportDTO `json:"opponents"`
}

type playerDTO struct {
	ID       int64  `json:"id"`
	LeagueID string `json:"leagueId"`
	TeamID   int64  `json:"teamId"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Number   int    `json:"number"`
}

type averagesDTO struct {
	Games           int    `json:"games"`
	PointsPerGame   string `json:"pointsPerGame"`
	ReboundsPerGame string `json:"reboundsPerGame"`
	AssistsPerGame  string `json:"assistsPerGame"`
	StealsPerGame   string `json:"stealsPerGame"`
	Efficiency      string `json:"efficiency"`
}

type trendDTO struct {
	Change     string `json:"change"`
	IsPositive bool   `json:"isPositive"`
}

type trendSetDTO struct {
	Points     trendDTO `json:"points"`
	Rebounds   trendDTO `json:"rebounds"`
	Assists    trendDTO `json:"assists"`
	Steals     trendDTO `json:"steals"`
	Efficiency trendDTO `json:"efficiency"`
}

type radarAxisDTO struct {
	Metric string  `json:"metric"`
	Player float64 `json:"player"`
	Team   float64 `json:"team"`
}

type gameLogDTO struct {
	GameID     string `json:"gameId"`
	Date       string `json:"date"`
	Points     int    `json:"points"`
	Rebounds   int    `json:"rebounds"`
	Assists    int    `json:"assists"`
	Steals     int    `json:"steals"`
	Efficiency int    `json:"efficiency"`
}

type playerOverviewDTO struct {
	Player  playerDTO      `json:"player"`
	Window  int            `json:"window"`
	Season  *averagesDTO   `json:"season"`
	Recent  *averagesDTO   `json:"recent"`
	Trends  trendSetDTO    `json:"trends"`
	Radar   []radarAxisDTO `json:"radar"`
	GameLog []gameLogDTO   `json:"gameLog"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:       t.ID,
		LeagueID: t.LeagueID,
		Name:     t.Name,
		Short:    t.Short,
		LogoURL:  t.LogoURL,
	}
}

func recordToDTO(r analytics.Record) recordDTO {
	return recordDTO{Wins: r.Wins, Losses: r.Losses, Unplayed: r.Unplayed}
}

func teamAveragesToDTO(a *teamstats.Averages) *teamAveragesDTO {
	if a == nil {
		return nil
	}
	return &teamAveragesDTO{
		Games:           a.Games,
		PointsPerGame:   a.PointsPerGame,
		ReboundsPerGame: a.ReboundsPerGame,
		AssistsPerGame:  a.AssistsPerGame,
		StealsPerGame:   a.StealsPerGame,
		Efficiency:      a.Efficiency,
	}
}

func teamOverviewToDTO(o usecase.TeamOverview) teamOverviewDTO {
	return teamOverviewDTO{
		Team:     teamToDTO(o.Team),
		Record:   recordToDTO(o.Record),
		Streak:   o.Streak,
		Averages: teamAveragesToDTO(o.Averages),
	}
}

func shotSummaryToDTO(s analytics.ShotSummary) shotSummaryDTO {
	out := shotSummaryDTO{Made: s.Made, Total: s.Total, Pct: s.Pct}
	if len(s.Points) > 0 {
		out.Points = make([]shotPointDTO, 0, len(s.Points))
		for _, p := range s.Points {
			out.Points = append(out.Points, shotPointDTO{X: p.X, Y: p.Y, Made: p.Made})
		}
	}
	return out
}

func shotZonesToDTO(zones []analytics.ZoneSummary) []shotZoneDTO {
	out := make([]shotZoneDTO, 0, len(zones))
	for _, z := range zones {
		out = append(out, shotZoneDTO{Zone: string(z.Zone), Made: z.Made, Total: z.Total, Pct: z.Pct})
	}
	return out
}

func shotChartToDTO(c usecase.ShotChart) shotChartDTO {
	return shotChartDTO{
		TeamID:  c.TeamID,
		Summary: shotSummaryToDTO(c.Summary),
		Zones:   shotZonesToDTO(c.Zones),
	}
}

func scheduleEntryToDTO(e usecase.ScheduleEntry) scheduleEntryDTO {
	return scheduleEntryDTO{
		GameID:       e.Game.ID,
		Round:        e.Game.Round,
		Date:         e.Game.Date.UTC().Format(time.RFC3339),
		OpponentID:   e.OpponentID,
		OpponentName: e.OpponentName,
		IsHome:       e.IsHome,
		Played:       e.Played,
		HomeScore:    e.Game.HomeScore,
		AwayScore:    e.Game.AwayScore,
		Result:       e.Result,
	}
}

func scoutingReportToDTO(r usecase.ScoutingReport) scoutingReportDTO {
	out := scoutingReportDTO{
		TeamID:    r.TeamID,
		Opponents: make([]opponentReportDTO, 0, len(r.Opponents)),
	}
	for _, o := range r.Opponents {
		out.Opponents = append(out.Opponents, opponentReportDTO{
			Team:       teamToDTO(o.Team),
			Record:     recordToDTO(o.Record),
			Streak:     o.Streak,
			HeadToHead: recordToDTO(o.HeadToHead),
			Averages:   teamAveragesToDTO(o.Averages),
			Shooting:   shotSummaryToDTO(o.Shooting),
			Zones:      shotZonesToDTO(o.Zones),
		})
	}
	return out
}

func averagesToDTO(a *analytics.Averages) *averagesDTO {
	if a == nil {
		return nil
	}
	return &averagesDTO{
		Games:           a.Games,
		PointsPerGame:   a.PointsPerGame,
		ReboundsPerGame: a.ReboundsPerGame,
		AssistsPerGame:  a.AssistsPerGame,
		StealsPerGame:   a.StealsPerGame,
		Efficiency:      a.Efficiency,
	}
}

func trendToDTO(t analytics.TrendResult) trendDTO {
	return trendDTO{Change: t.Change, IsPositive: t.IsPositive}
}

func playerOverviewToDTO(o usecase.PlayerOverview) playerOverviewDTO {
	out := playerOverviewDTO{
		Player: playerToDTO(o.Player),
		Window: o.Window,
		Season: averagesToDTO(o.Season),
		Recent: averagesToDTO(o.Recent),
		Trends: trendSetDTO{
			Points:     trendToDTO(o.Trends.Points),
			Rebounds:   trendToDTO(o.Trends.Rebounds),
			Assists:    trendToDTO(o.Trends.Assists),
			Steals:     trendToDTO(o.Trends.Steals),
			Efficiency: trendToDTO(o.Trends.Efficiency),
		},
		Radar:   make([]radarAxisDTO, 0, len(o.Radar)),
		GameLog: make([]gameLogDTO, 0, len(o.GameLog)),
	}
	for _, axis := range o.Radar {
		out.Radar = append(out.Radar, radarAxisDTO{Metric: axis.Metric, Player: axis.Player, Team: axis.Team})
	}
	for _, row := range o.GameLog {
		out.GameLog = append(out.GameLog, gameLogDTO{
			GameID:     row.GameID,
			Date:       row.Date.UTC().Format(time.RFC3339),
			Points:     row.Points,
			Rebounds:   row.Rebounds,
			Assists:    row.Assists,
			Steals:     row.Steals,
			Efficiency: row.Efficiency,
		})
	}
	return out
}

func playerToDTO(p playerlog.Player) playerDTO {
	return playerDTO{
		ID:       p.ID,
		LeagueID: p.LeagueID,
		TeamID:   p.TeamID,
		Name:     p.Name,
		Position: p.Position,
		Number:   p.Number,
	}
}
