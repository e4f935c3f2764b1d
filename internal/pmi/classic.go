package pmi

import "github.com/samir-kerkar/nba-pmi-engine/internal/domain"

// OffensiveWeights are the per-stat contribution coefficients for one
// positional archetype of the classic generation.
type OffensiveWeights struct {
	Points      float64 `yaml:"points"`
	Efficiency  float64 `yaml:"efficiency"`
	Assists     float64 `yaml:"assists"`
	Turnovers   float64 `yaml:"turnovers"`
	OffRebounds float64 `yaml:"off_rebounds"`
	FTAttempts  float64 `yaml:"ft_attempts"`
	ThreesMade  float64 `yaml:"threes_made"`
}

// DefensiveWeights are the defensive coefficients for one archetype.
type DefensiveWeights struct {
	Steals      float64 `yaml:"steals"`
	Blocks      float64 `yaml:"blocks"`
	DefRebounds float64 `yaml:"def_rebounds"`
	Fouls       float64 `yaml:"fouls"`
}

// ClassicClutchWeights weight the clutch split categories of the classic
// generation.
type ClassicClutchWeights struct {
	Points       float64 `yaml:"points"`
	Assists      float64 `yaml:"assists"`
	TrueShooting float64 `yaml:"true_shooting"`
	PlusMinus    float64 `yaml:"plus_minus"`
	Steals       float64 `yaml:"steals"`
	Turnovers    float64 `yaml:"turnovers"`
}

// ClassicTable is the full coefficient/deflator table of the classic
// generation. Swapping the table changes the metric without touching the
// calculators or aggregation logic.
type ClassicTable struct {
	ClampBound          float64 `yaml:"clamp_bound"`
	LeagueMinutesFilter float64 `yaml:"league_minutes_filter"`

	Guard         OffensiveWeights `yaml:"guard"`
	Center        OffensiveWeights `yaml:"center"`
	GuardDefense  DefensiveWeights `yaml:"guard_defense"`
	CenterDefense DefensiveWeights `yaml:"center_defense"`

	// Playoff scoring matters more; efficiency differentiates less.
	PlayoffPointsWeight     float64 `yaml:"playoff_points_weight"`
	PlayoffPointsCenterDrop float64 `yaml:"playoff_points_center_drop"`
	PlayoffEfficiencyMult   float64 `yaml:"playoff_efficiency_mult"`

	DefenseScale    float64 `yaml:"defense_scale"`
	DampenerRegular float64 `yaml:"dampener_regular"`
	DampenerPlayoff float64 `yaml:"dampener_playoff"`

	Clutch ClassicClutchWeights `yaml:"clutch"`

	HalfLifeRegular float64 `yaml:"half_life_regular"`
	HalfLifePlayoff float64 `yaml:"half_life_playoff"`
	CareerBaseline  float64 `yaml:"career_baseline"`
	AWC             float64 `yaml:"awc_constant"`

	EraPenalties []eraPenalty `yaml:"era_penalties"`
}

// DefaultClassicTable returns the v41d coefficient set.
func DefaultClassicTable() ClassicTable {
	return ClassicTable{
		ClampBound:          3.0,
		LeagueMinutesFilter: 10,
		Guard: OffensiveWeights{
			Points: 1.20, Efficiency: 7.0, Assists: 0.75, Turnovers: -0.55,
			OffRebounds: 0.15, FTAttempts: 0.10, ThreesMade: 0.10,
		},
		Center: OffensiveWeights{
			Points: 0.95, Efficiency: 7.0, Assists: 0.35, Turnovers: -0.40,
			OffRebounds: 0.50, FTAttempts: 0.10, ThreesMade: 0.00,
		},
		GuardDefense: DefensiveWeights{
			Steals: 0.70, Blocks: 0.20, DefRebounds: 0.35, Fouls: -0.15,
		},
		CenterDefense: DefensiveWeights{
			Steals: 0.30, Blocks: 0.75, DefRebounds: 0.50, Fouls: -0.10,
		},
		PlayoffPointsWeight:     1.45,
		PlayoffPointsCenterDrop: 0.20,
		PlayoffEfficiencyMult:   0.65,
		DefenseScale:            1.2,
		DampenerRegular:         0.85,
		DampenerPlayoff:         0.55,
		Clutch: ClassicClutchWeights{
			Points: 1.50, Assists: 0.40, TrueShooting: 0.35,
			PlusMinus: 0.50, Steals: 0.15, Turnovers: -0.35,
		},
		HalfLifeRegular: 60,
		HalfLifePlayoff: 12,
		CareerBaseline:  0,
		AWC:             0.0004,
		EraPenalties:    defaultEraPenalties,
	}
}

// Classic is the hand-tuned first methodology generation: position-blended
// coefficient tables, a blanket era penalty on the offensive score, and a
// rank-weighted career average.
type Classic struct {
	tbl ClassicTable
}

// NewClassic constructs the classic generation with its default table.
func NewClassic() *Classic {
	return NewClassicWithTable(DefaultClassicTable())
}

// NewClassicWithTable constructs the classic generation over a custom table.
func NewClassicWithTable(tbl ClassicTable) *Classic {
	return &Classic{tbl: tbl}
}

func (c *Classic) Name() string                 { return GenerationClassic }
func (c *Classic) ClampBound() float64          { return c.tbl.ClampBound }
func (c *Classic) LeagueMinutesFilter() float64 { return c.tbl.LeagueMinutesFilter }
func (c *Classic) AWCConstant() float64         { return c.tbl.AWC }

// ComputeOffensive blends the guard and center coefficient tables by
// position, normalizes the offensive categories, applies the generation's
// edge-case policies, and multiplies by the era penalty for the season.
func (c *Classic) ComputeOffensive(row domain.SeasonStatRow, league domain.LeagueStats, pos float64) float64 {
	bound := c.tbl.ClampBound
	t := InterpFraction(pos)
	playoff := row.Competition == domain.CompetitionPlayoffs

	w := OffensiveWeights{
		Points:      Lerp(c.tbl.Guard.Points, c.tbl.Center.Points, t),
		Efficiency:  Lerp(c.tbl.Guard.Efficiency, c.tbl.Center.Efficiency, t),
		Assists:     Lerp(c.tbl.Guard.Assists, c.tbl.Center.Assists, t),
		Turnovers:   Lerp(c.tbl.Guard.Turnovers, c.tbl.Center.Turnovers, t),
		OffRebounds: Lerp(c.tbl.Guard.OffRebounds, c.tbl.Center.OffRebounds, t),
		FTAttempts:  Lerp(c.tbl.Guard.FTAttempts, c.tbl.Center.FTAttempts, t),
		ThreesMade:  Lerp(c.tbl.Guard.ThreesMade, c.tbl.Center.ThreesMade, t),
	}
	if playoff {
		w.Points = Lerp(c.tbl.PlayoffPointsWeight, c.tbl.PlayoffPointsWeight-c.tbl.PlayoffPointsCenterDrop, t)
		w.Efficiency *= c.tbl.PlayoffEfficiencyMult
	}

	zPts := ZScore(row.Points, league.Points.Mean, league.Points.Std, bound)
	zAst := ZScore(row.Assists, league.Assists.Mean, league.Assists.Std, bound)
	zTov := ZScore(row.Turnovers, league.Turnovers.Mean, league.Turnovers.Std, bound)
	zOrb := ZScore(row.OffRebounds, league.OffRebounds.Mean, league.OffRebounds.Std, bound)
	zFta := ZScore(row.FTAttempts, league.FTAttempts.Mean, league.FTAttempts.Std, bound)
	zFg3 := ZScore(row.ThreesMade, league.ThreesMade.Mean, league.ThreesMade.Std, bound)

	lgTS := league.TrueShooting.Mean
	if lgTS == 0 {
		lgTS = 0.540
	}
	tsDiff := row.TrueShootingPct - lgTS

	// Volume gate: efficiency only counts when the player scores enough.
	gate := clamp((zPts+1)/2, 0.25, 1.0)
	tsGated := tsDiff * gate

	// Center scoring floor: centers are not penalized for lower volume.
	floor := -0.3 * maxf(0, (pos-2)/3)
	zPts = maxf(zPts, floor)

	// Playmaker forgiveness: high-assist players shed part of the
	// turnover penalty.
	if zAst > 1.0 {
		zTov *= 1 - minf(0.30, (zAst-1.0)*0.12)
	}

	raw := w.Points*zPts +
		w.Efficiency*tsGated +
		w.Assists*zAst +
		w.Turnovers*zTov +
		w.OffRebounds*zOrb +
		w.FTAttempts*zFta +
		w.ThreesMade*zFg3

	// Dominance bonus: elite, efficient high-volume playoff scorers get
	// extra credit for carrying the offense.
	if playoff && zPts > 2.0 && tsDiff > 0 {
		raw += minf(1.2, (zPts-2.0)*0.5*minf(1.0, tsDiff/0.02))
	}

	return round4(raw * penaltyFor(c.tbl.EraPenalties, row.Year))
}

// ComputeDefensive returns the sentinel zero when steals, blocks, and
// defensive rebounds are all absent, signalling "no defensive data
// recorded" so the imputer can fill the row instead.
func (c *Classic) ComputeDefensive(row domain.SeasonStatRow, league domain.LeagueStats, pos float64) float64 {
	if row.Steals == 0 && row.Blocks == 0 && row.DefRebounds == 0 {
		return 0
	}

	bound := c.tbl.ClampBound
	t := InterpFraction(pos)
	w := DefensiveWeights{
		Steals:      Lerp(c.tbl.GuardDefense.Steals, c.tbl.CenterDefense.Steals, t),
		Blocks:      Lerp(c.tbl.GuardDefense.Blocks, c.tbl.CenterDefense.Blocks, t),
		DefRebounds: Lerp(c.tbl.GuardDefense.DefRebounds, c.tbl.CenterDefense.DefRebounds, t),
		Fouls:       Lerp(c.tbl.GuardDefense.Fouls, c.tbl.CenterDefense.Fouls, t),
	}

	raw := w.Steals*ZScore(row.Steals, league.Steals.Mean, league.Steals.Std, bound) +
		w.Blocks*ZScore(row.Blocks, league.Blocks.Mean, league.Blocks.Std, bound) +
		w.DefRebounds*ZScore(row.DefRebounds, league.DefRebounds.Mean, league.DefRebounds.Std, bound) +
		w.Fouls*ZScore(row.Fouls, league.Fouls.Mean, league.Fouls.Std, bound)

	dampener := c.tbl.DampenerRegular
	if row.Competition == domain.CompetitionPlayoffs {
		dampener = c.tbl.DampenerPlayoff
	}
	return round4(raw * c.tbl.DefenseScale * dampener)
}

// ComputeClutch scores a late-game split, with a small volume bonus for
// players who accumulate meaningful clutch scoring.
func (c *Classic) ComputeClutch(row domain.ClutchStatRow, league domain.ClutchLeagueStats) float64 {
	bound := c.tbl.ClampBound
	w := c.tbl.Clutch

	raw := w.Points*ZScore(row.Points, league.Points.Mean, league.Points.Std, bound) +
		w.Assists*ZScore(row.Assists, league.Assists.Mean, league.Assists.Std, bound) +
		w.TrueShooting*ZScore(ClutchTrueShooting(row), league.TrueShooting.Mean, league.TrueShooting.Std, bound) +
		w.PlusMinus*ZScore(row.PlusMinus, league.PlusMinus.Mean, league.PlusMinus.Std, bound) +
		w.Steals*ZScore(row.Steals, league.Steals.Mean, league.Steals.Std, bound) +
		w.Turnovers*ZScore(row.Turnovers, league.Turnovers.Mean, league.Turnovers.Std, bound)

	raw += clamp((row.Points-1.5)*0.4, 0, 1.5)
	return round4(raw)
}

// AggregateCareer applies the rank-weighted policy: the i-th best season
// weighs sqrt(N-i), then the average shrinks toward the baseline by
// games-played trust.
func (c *Classic) AggregateCareer(seasons []SeasonScore, playoffs bool) float64 {
	half := c.tbl.HalfLifeRegular
	if playoffs {
		half = c.tbl.HalfLifePlayoff
	}
	return round4(rankWeightedCareer(seasons, half, c.tbl.CareerBaseline))
}
