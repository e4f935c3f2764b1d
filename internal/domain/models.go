package domain

// CompetitionType discriminates regular-season from playoff statistics.
type CompetitionType string

const (
	CompetitionRegular  CompetitionType = "REGULAR"
	CompetitionPlayoffs CompetitionType = "PLAYOFFS"
)

// SeasonStatRow is one player's per-game statistics for a single season and
// competition type. Rows arrive from the acquisition layer with GamesPlayed > 0;
// the engine appends the computed score fields and, for legacy seasons, may
// overwrite Steals/Blocks with imputed values.
type SeasonStatRow struct {
	PlayerID    string          `json:"playerId"`
	Season      string          `json:"season"`
	Year        int             `json:"year"`
	Competition CompetitionType `json:"competition"`

	GamesPlayed int     `json:"gp"`
	Minutes     float64 `json:"mpg"`
	Points      float64 `json:"ppg"`
	Rebounds    float64 `json:"rpg"`
	OffRebounds float64 `json:"orbPg"`
	DefRebounds float64 `json:"drbPg"`
	Assists     float64 `json:"apg"`
	Steals      float64 `json:"spg"`
	Blocks      float64 `json:"bpg"`
	Turnovers   float64 `json:"tovPg"`
	Fouls       float64 `json:"pfPg"`
	FGAttempts  float64 `json:"fgaPg"`
	FTAttempts  float64 `json:"ftaPg"`
	ThreesMade  float64 `json:"fg3mPg"`

	FieldGoalPct    float64 `json:"fgPct"`
	TrueShootingPct float64 `json:"tsPct"`
	TeamWinPct      float64 `json:"teamWinPct"`

	// Computed by the engine.
	ImputedDefense bool    `json:"imputedDefense"`
	OPMI           float64 `json:"opmi"`
	DPMI           float64 `json:"dpmi"`
	PMI            float64 `json:"pmi"`
	AWC            float64 `json:"awc"`
	PeakPMI        float64 `json:"peakPmi"`
	CPMI           float64 `json:"cpmi"`
	HasClutch      bool    `json:"hasClutch"`
}

// TotalMinutes returns games played times minutes per game, rounded.
func (r SeasonStatRow) TotalMinutes() int {
	return int(r.Minutes*float64(r.GamesPlayed) + 0.5)
}

// ClutchStatRow is one player's late-game, close-score split for a season
// (last five minutes, margin within five points).
type ClutchStatRow struct {
	PlayerID    string          `json:"playerId"`
	Season      string          `json:"season"`
	Year        int             `json:"year"`
	Competition CompetitionType `json:"competition"`

	GamesPlayed  int     `json:"gp"`
	Minutes      float64 `json:"min"`
	Points       float64 `json:"ppg"`
	Assists      float64 `json:"apg"`
	Steals       float64 `json:"spg"`
	Blocks       float64 `json:"bpg"`
	Turnovers    float64 `json:"tovPg"`
	OffRebounds  float64 `json:"orbPg"`
	PlusMinus    float64 `json:"plusMinus"`
	FGAttempts   float64 `json:"fgaPg"`
	FTAttempts   float64 `json:"ftaPg"`
	FreeThrowPct float64 `json:"ftPct"`

	// Derived true shooting for the split; recomputed from volume when zero.
	TrueShooting float64 `json:"ts"`

	CPMI float64 `json:"cpmi"`
}

// MinutesPerGame returns average clutch minutes per game played.
func (r ClutchStatRow) MinutesPerGame() float64 {
	if r.GamesPlayed <= 0 {
		return r.Minutes
	}
	return r.Minutes / float64(r.GamesPlayed)
}

// Player groups one player's identity with the per-season rows the
// acquisition layer collected for them.
type Player struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Position     string  `json:"position"`
	HeightInches float64 `json:"heightInches"`
	Active       bool    `json:"active"`

	Regular        []SeasonStatRow `json:"regular"`
	Playoffs       []SeasonStatRow `json:"playoffs"`
	Clutch         []ClutchStatRow `json:"clutch"`
	ClutchPlayoffs []ClutchStatRow `json:"clutchPlayoffs"`
}

// Seasons returns the rows for the given competition type.
func (p *Player) Seasons(c CompetitionType) []SeasonStatRow {
	if c == CompetitionPlayoffs {
		return p.Playoffs
	}
	return p.Regular
}

// ClutchRows returns the clutch splits for the given competition type.
func (p *Player) ClutchRows(c CompetitionType) []ClutchStatRow {
	if c == CompetitionPlayoffs {
		return p.ClutchPlayoffs
	}
	return p.Clutch
}

// StatMoments is a mean/standard-deviation pair for one tracked category.
type StatMoments struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

// LeagueStats holds per-category distribution moments for one season and
// competition type. Built once from the full row population, then read-only.
type LeagueStats struct {
	Points       StatMoments `json:"points"`
	Assists      StatMoments `json:"assists"`
	Turnovers    StatMoments `json:"turnovers"`
	OffRebounds  StatMoments `json:"offRebounds"`
	DefRebounds  StatMoments `json:"defRebounds"`
	Steals       StatMoments `json:"steals"`
	Blocks       StatMoments `json:"blocks"`
	Fouls        StatMoments `json:"fouls"`
	FTAttempts   StatMoments `json:"ftAttempts"`
	ThreesMade   StatMoments `json:"threesMade"`
	TrueShooting StatMoments `json:"trueShooting"`
}

// ClutchLeagueStats holds distribution moments for the clutch split categories.
type ClutchLeagueStats struct {
	Points       StatMoments `json:"points"`
	Assists      StatMoments `json:"assists"`
	Steals       StatMoments `json:"steals"`
	Blocks       StatMoments `json:"blocks"`
	Turnovers    StatMoments `json:"turnovers"`
	OffRebounds  StatMoments `json:"offRebounds"`
	PlusMinus    StatMoments `json:"plusMinus"`
	TrueShooting StatMoments `json:"trueShooting"`
	FreeThrowPct StatMoments `json:"freeThrowPct"`
}

// CareerSummary is one player's shrinkage-adjusted lifetime record for one
// competition type. Flat, primitive-typed fields only so collaborators can
// persist or transmit it without loss.
type CareerSummary struct {
	PlayerID    string          `json:"playerId"`
	Name        string          `json:"name"`
	Position    string          `json:"position"`
	Active      bool            `json:"active"`
	Competition CompetitionType `json:"competition"`
	Years       string          `json:"years"`
	SeasonCount int             `json:"seasons"`

	GamesPlayed  int `json:"gp"`
	TotalMinutes int `json:"min"`

	Points   float64 `json:"ppg"`
	Rebounds float64 `json:"rpg"`
	Assists  float64 `json:"apg"`
	Steals   float64 `json:"spg"`
	Blocks   float64 `json:"bpg"`

	FieldGoalPct    float64 `json:"fgPct"`
	TrueShootingPct float64 `json:"tsPct"`
	RelativeTSPct   float64 `json:"rtsPct"`

	PMI  float64 `json:"pmi"`
	OPMI float64 `json:"opmi"`
	DPMI float64 `json:"dpmi"`
	CPMI float64 `json:"cpmi"`

	HasClutch     bool    `json:"hasClutch"`
	ClutchGames   int     `json:"clutchGp"`
	ClutchMinutes float64 `json:"clutchMin"`

	PeakPMI    float64 `json:"peakPmi"`
	PeakSeason string  `json:"peakSeason"`

	AWC  float64 `json:"awc"`
	OAWC float64 `json:"oawc"`
	DAWC float64 `json:"dawc"`

	ImputedSeasons int `json:"imputedSeasons"`
}
