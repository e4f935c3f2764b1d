package pmi

import "github.com/samir-kerkar/nba-pmi-engine/internal/domain"

// BaseWeights are the calibrated generation's per-stat coefficients,
// normalized so the points weight is 1.0.
type BaseWeights struct {
	Points      float64 `yaml:"points"`
	Assists     float64 `yaml:"assists"`
	Steals      float64 `yaml:"steals"`
	Blocks      float64 `yaml:"blocks"`
	DefRebounds float64 `yaml:"def_rebounds"`
	OffRebounds float64 `yaml:"off_rebounds"`
	Turnovers   float64 `yaml:"turnovers"`
	Fouls       float64 `yaml:"fouls"`
}

// PositionRange is a (guard multiplier, center multiplier) pair resolved by
// position interpolation.
type PositionRange struct {
	Guard  float64 `yaml:"guard"`
	Center float64 `yaml:"center"`
}

// PositionMultipliers reweight stats whose meaning shifts by position.
// Stats not listed carry the same weight at every position.
type PositionMultipliers struct {
	Steals      PositionRange `yaml:"steals"`
	Blocks      PositionRange `yaml:"blocks"`
	Assists     PositionRange `yaml:"assists"`
	OffRebounds PositionRange `yaml:"off_rebounds"`
	DefRebounds PositionRange `yaml:"def_rebounds"`
}

// CalibratedClutchWeights anchor the clutch score on plus/minus with
// efficiency and free-throw shooting weighted heavily.
type CalibratedClutchWeights struct {
	PlusMinus    float64 `yaml:"plus_minus"`
	TrueShooting float64 `yaml:"true_shooting"`
	FreeThrowPct float64 `yaml:"free_throw_pct"`
	Points       float64 `yaml:"points"`
	Assists      float64 `yaml:"assists"`
	Turnovers    float64 `yaml:"turnovers"`
	Steals       float64 `yaml:"steals"`
	Blocks       float64 `yaml:"blocks"`
	OffRebounds  float64 `yaml:"off_rebounds"`
}

// CalibratedTable is the calibrated generation's full coefficient table.
type CalibratedTable struct {
	ClampBound          float64 `yaml:"clamp_bound"`
	LeagueMinutesFilter float64 `yaml:"league_minutes_filter"`

	Base     BaseWeights         `yaml:"base"`
	Position PositionMultipliers `yaml:"position"`

	EfficiencyWeight   float64 `yaml:"efficiency_weight"`
	DefenseReliability float64 `yaml:"defense_reliability"`
	Scale              float64 `yaml:"scale"`

	Clutch CalibratedClutchWeights `yaml:"clutch"`

	HalfLifeRegular float64 `yaml:"half_life_regular"`
	HalfLifePlayoff float64 `yaml:"half_life_playoff"`
	AWC             float64 `yaml:"awc_constant"`
}

// Raw per-100-possession regression coefficients the calibrated base
// weights are synthesized from, with the per-stat adjustments applied
// before normalizing to a points anchor of 1.0.
var regressionWeights = struct {
	pts, ast, stl, blk, drb, orb, tov, pf float64
}{0.7008, 0.3846, 1.3571, 0.6475, 0.3444, 0.1398, -0.9347, -0.5153}

func defaultBaseWeights() BaseWeights {
	// Adjusted targets: steals discounted for unmeasured gambling costs,
	// blocks and defensive rebounds reduced, offensive rebounds boosted,
	// turnovers softened in favor of the assist/turnover ratio bonus.
	adj := BaseWeights{
		Points:      regressionWeights.pts,
		Assists:     regressionWeights.ast,
		Steals:      0.55,
		Blocks:      0.26,
		DefRebounds: 0.17,
		OffRebounds: 0.21,
		Turnovers:   -0.60,
		Fouls:       regressionWeights.pf,
	}
	n := adj.Points
	return BaseWeights{
		Points:      round4(adj.Points / n),
		Assists:     round4(adj.Assists / n),
		Steals:      round4(adj.Steals / n),
		Blocks:      round4(adj.Blocks / n),
		DefRebounds: round4(adj.DefRebounds / n),
		OffRebounds: round4(adj.OffRebounds / n),
		Turnovers:   round4(adj.Turnovers / n),
		Fouls:       round4(adj.Fouls / n),
	}
}

// DefaultCalibratedTable returns the v3 coefficient set.
func DefaultCalibratedTable() CalibratedTable {
	return CalibratedTable{
		ClampBound:          3.5,
		LeagueMinutesFilter: 15,
		Base:                defaultBaseWeights(),
		Position: PositionMultipliers{
			Steals:      PositionRange{Guard: 1.10, Center: 0.90},
			Blocks:      PositionRange{Guard: 1.30, Center: 0.85},
			Assists:     PositionRange{Guard: 1.05, Center: 0.95},
			OffRebounds: PositionRange{Guard: 1.15, Center: 0.90},
			DefRebounds: PositionRange{Guard: 0.95, Center: 1.05},
		},
		EfficiencyWeight:   3.5,
		DefenseReliability: 0.80,
		Scale:              2.3,
		Clutch: CalibratedClutchWeights{
			PlusMinus:    1.00,
			TrueShooting: 0.80,
			FreeThrowPct: 0.45,
			Points:       0.55,
			Assists:      0.40,
			Turnovers:    -0.70,
			Steals:       0.40,
			Blocks:       0.20,
			OffRebounds:  0.35,
		},
		HalfLifeRegular: 82,
		HalfLifePlayoff: 20,
		AWC:             0.000175,
	}
}

// Calibrated is the multi-source second methodology generation:
// regression-derived base weights, surgical era deflators on specific raw
// stats, a defense reliability discount, and a minutes-weighted career
// average.
type Calibrated struct {
	tbl CalibratedTable
}

// NewCalibrated constructs the calibrated generation with its default table.
func NewCalibrated() *Calibrated {
	return NewCalibratedWithTable(DefaultCalibratedTable())
}

// NewCalibratedWithTable constructs the calibrated generation over a custom
// table.
func NewCalibratedWithTable(tbl CalibratedTable) *Calibrated {
	return &Calibrated{tbl: tbl}
}

func (c *Calibrated) Name() string                 { return GenerationCalibrated }
func (c *Calibrated) ClampBound() float64          { return c.tbl.ClampBound }
func (c *Calibrated) LeagueMinutesFilter() float64 { return c.tbl.LeagueMinutesFilter }
func (c *Calibrated) AWCConstant() float64         { return c.tbl.AWC }

func (c *Calibrated) posWeight(base float64, r PositionRange, pos float64) float64 {
	if r.Guard == 0 && r.Center == 0 {
		return base
	}
	return base * Lerp(r.Guard, r.Center, InterpFraction(pos))
}

// minutesFactor mildly scales output by playing time: heavy-minute players
// face starters, light-minute players face bench units.
// 36 mpg = full credit, scaling down linearly to 0.80 at 12 mpg.
func minutesFactor(mpg float64) float64 {
	if mpg <= 0 {
		return 1
	}
	return clamp(0.80+0.20*(mpg-12)/24, 0.80, 1.0)
}

// ComputeOffensive combines regression-weighted offensive z-scores with the
// efficiency differential and the assist/turnover ratio bonus. Offensive
// categories carry no era deflation.
func (c *Calibrated) ComputeOffensive(row domain.SeasonStatRow, league domain.LeagueStats, pos float64) float64 {
	bound := c.tbl.ClampBound

	zPts := ZScore(row.Points, league.Points.Mean, league.Points.Std, bound)
	zAst := ZScore(row.Assists, league.Assists.Mean, league.Assists.Std, bound)
	zTov := ZScore(row.Turnovers, league.Turnovers.Mean, league.Turnovers.Std, bound)
	zOrb := ZScore(row.OffRebounds, league.OffRebounds.Mean, league.OffRebounds.Std, bound)

	lgTS := league.TrueShooting.Mean
	if lgTS == 0 {
		lgTS = 0.540
	}
	tsDiff := row.TrueShootingPct - lgTS

	// Assist/turnover ratio bonus: efficient high-usage playmakers get
	// credit the softened turnover weight would otherwise miss. Kicks in
	// above a 1.5 ratio and scales linearly, saturating at +1.0.
	bonus := 0.0
	if row.Turnovers > 0.5 && row.Assists > 1.0 {
		if ratio := row.Assists / row.Turnovers; ratio > 1.5 {
			bonus = minf(1.0, (ratio-1.5)*0.30)
		}
	}

	raw := c.tbl.Base.Points*zPts +
		c.tbl.EfficiencyWeight*tsDiff +
		c.posWeight(c.tbl.Base.Assists, c.tbl.Position.Assists, pos)*zAst +
		c.posWeight(c.tbl.Base.OffRebounds, c.tbl.Position.OffRebounds, pos)*zOrb +
		c.tbl.Base.Turnovers*zTov +
		bonus

	return round2(raw * minutesFactor(row.Minutes) * c.tbl.Scale)
}

// ComputeDefensive deflates the raw steal/block/rebound values for the
// season's era before normalizing them against that same season's
// distribution, then applies the box-score reliability discount.
func (c *Calibrated) ComputeDefensive(row domain.SeasonStatRow, league domain.LeagueStats, pos float64) float64 {
	if row.Steals == 0 && row.Blocks == 0 && row.DefRebounds == 0 {
		return 0
	}

	bound := c.tbl.ClampBound
	d := EraDeflators(row.Year)

	zStl := ZScore(row.Steals*d.Steals, league.Steals.Mean, league.Steals.Std, bound)
	zBlk := ZScore(row.Blocks*d.Blocks, league.Blocks.Mean, league.Blocks.Std, bound)
	zDrb := ZScore(row.DefRebounds*d.Rebounds, league.DefRebounds.Mean, league.DefRebounds.Std, bound)
	zPf := ZScore(row.Fouls, league.Fouls.Mean, league.Fouls.Std, bound)

	raw := c.tbl.DefenseReliability * (c.posWeight(c.tbl.Base.Steals, c.tbl.Position.Steals, pos)*zStl +
		c.posWeight(c.tbl.Base.Blocks, c.tbl.Position.Blocks, pos)*zBlk +
		c.posWeight(c.tbl.Base.DefRebounds, c.tbl.Position.DefRebounds, pos)*zDrb +
		c.tbl.Base.Fouls*zPf)

	return round2(raw * minutesFactor(row.Minutes) * c.tbl.Scale)
}

// ComputeClutch anchors on plus/minus as the ground truth, with efficiency
// and free-throw shooting weighted heavily because late-game possessions
// are scarce and high-variance. Scaled by the same output constant as the
// season scores for comparability.
func (c *Calibrated) ComputeClutch(row domain.ClutchStatRow, league domain.ClutchLeagueStats) float64 {
	bound := c.tbl.ClampBound
	w := c.tbl.Clutch

	raw := w.PlusMinus*ZScore(row.PlusMinus, league.PlusMinus.Mean, league.PlusMinus.Std, bound) +
		w.TrueShooting*ZScore(ClutchTrueShooting(row), league.TrueShooting.Mean, league.TrueShooting.Std, bound) +
		w.FreeThrowPct*ZScore(row.FreeThrowPct, league.FreeThrowPct.Mean, league.FreeThrowPct.Std, bound) +
		w.Points*ZScore(row.Points, league.Points.Mean, league.Points.Std, bound) +
		w.Assists*ZScore(row.Assists, league.Assists.Mean, league.Assists.Std, bound) +
		w.Turnovers*ZScore(row.Turnovers, league.Turnovers.Mean, league.Turnovers.Std, bound) +
		w.Steals*ZScore(row.Steals, league.Steals.Mean, league.Steals.Std, bound) +
		w.Blocks*ZScore(row.Blocks, league.Blocks.Mean, league.Blocks.Std, bound) +
		w.OffRebounds*ZScore(row.OffRebounds, league.OffRebounds.Mean, league.OffRebounds.Std, bound)

	return round2(raw * c.tbl.Scale)
}

// AggregateCareer applies the participation-weighted policy: each season
// weighs its total minutes, then the average shrinks toward zero by
// games-played trust.
func (c *Calibrated) AggregateCareer(seasons []SeasonScore, playoffs bool) float64 {
	half := c.tbl.HalfLifeRegular
	if playoffs {
		half = c.tbl.HalfLifePlayoff
	}
	return round2(minutesWeightedCareer(seasons, half))
}
