package pipeline

import (
	"fmt"
	"math"

	"github.com/samir-kerkar/nba-pmi-engine/internal/domain"
	"github.com/samir-kerkar/nba-pmi-engine/internal/pmi"
)

// League-average true shooting the relative figure is anchored on.
const referenceTrueShooting = 0.540

// buildSummary folds one player's scored rows for a competition type into a
// flat career record.
func buildSummary(pl domain.Player, comp domain.CompetitionType, method pmi.Methodology) domain.CareerSummary {
	rows := pl.Seasons(comp)

	sum := domain.CareerSummary{
		PlayerID:    pl.ID,
		Name:        pl.Name,
		Position:    pl.Position,
		Active:      pl.Active,
		Competition: comp,
		SeasonCount: len(rows),
	}
	if len(rows) == 0 {
		return sum
	}

	var gp, totalMinutes int
	var pts, trb, ast, stl, blk float64
	var fgWeight, fgSum, tsWeight, tsSum float64
	var pmiScores, opmiSc, dpmiSc []pmi.SeasonScore
	peakPMI := math.Inf(-1)
	var peakSeason string
	minYear, maxYear := rows[0].Year, rows[0].Year

	for _, r := range rows {
		g := float64(r.GamesPlayed)
		gp += r.GamesPlayed
		totalMinutes += r.TotalMinutes()

		pts += r.Points * g
		trb += r.Rebounds * g
		ast += r.Assists * g
		stl += r.Steals * g
		blk += r.Blocks * g

		if r.FieldGoalPct > 0 {
			fgSum += r.FieldGoalPct * g
			fgWeight += g
		}
		if r.TrueShootingPct > 0 {
			tsSum += r.TrueShootingPct * g
			tsWeight += g
		}

		if r.Year < minYear {
			minYear = r.Year
		}
		if r.Year > maxYear {
			maxYear = r.Year
		}

		pmiScores = append(pmiScores, pmi.SeasonScore{Score: r.PMI, Games: r.GamesPlayed, Minutes: r.Minutes})
		opmiSc = append(opmiSc, pmi.SeasonScore{Score: r.OPMI, Games: r.GamesPlayed, Minutes: r.Minutes})
		dpmiSc = append(dpmiSc, pmi.SeasonScore{Score: r.DPMI, Games: r.GamesPlayed, Minutes: r.Minutes})

		if r.PMI > peakPMI {
			peakPMI = r.PMI
			peakSeason = r.Season
		}
		if r.ImputedDefense {
			sum.ImputedSeasons++
		}
	}

	sum.GamesPlayed = gp
	sum.TotalMinutes = totalMinutes
	sum.Years = yearSpan(minYear, maxYear, pl.Active && comp == domain.CompetitionRegular)

	if gp > 0 {
		g := float64(gp)
		sum.Points = round1(pts / g)
		sum.Rebounds = round1(trb / g)
		sum.Assists = round1(ast / g)
		sum.Steals = round1(stl / g)
		sum.Blocks = round1(blk / g)
	}
	if fgWeight > 0 {
		sum.FieldGoalPct = round3(fgSum / fgWeight)
	}
	if tsWeight > 0 {
		sum.TrueShootingPct = round3(tsSum / tsWeight)
		sum.RelativeTSPct = round3(sum.TrueShootingPct - referenceTrueShooting)
	}

	playoffs := comp == domain.CompetitionPlayoffs
	sum.PMI = method.AggregateCareer(pmiScores, playoffs)
	sum.OPMI = method.AggregateCareer(opmiSc, playoffs)
	sum.DPMI = method.AggregateCareer(dpmiSc, playoffs)
	sum.PeakPMI = peakPMI
	sum.PeakSeason = peakSeason

	sum.AWC = pmi.AWC(sum.PMI, totalMinutes, method.AWCConstant())
	sum.OAWC = pmi.AWC(sum.OPMI, totalMinutes, method.AWCConstant())
	sum.DAWC = pmi.AWC(sum.DPMI, totalMinutes, method.AWCConstant())

	attachClutchCareer(&sum, pl.ClutchRows(comp))
	return sum
}

// attachClutchCareer computes the clutch-minutes-weighted career CPMI,
// falling back to a plain mean when no clutch minutes were recorded.
func attachClutchCareer(sum *domain.CareerSummary, rows []domain.ClutchStatRow) {
	if len(rows) == 0 {
		return
	}

	var weighted, minutes, plain float64
	for _, r := range rows {
		sum.ClutchGames += r.GamesPlayed
		sum.ClutchMinutes += r.Minutes
		weighted += r.CPMI * r.Minutes
		minutes += r.Minutes
		plain += r.CPMI
	}

	if minutes > 0 {
		sum.CPMI = round2(weighted / minutes)
	} else {
		sum.CPMI = round2(plain / float64(len(rows)))
	}
	sum.HasClutch = true
	sum.ClutchMinutes = round1(sum.ClutchMinutes)
}

func yearSpan(minYear, maxYear int, active bool) string {
	if active {
		return fmt.Sprintf("%d-pres.", minYear)
	}
	if minYear == maxYear {
		return fmt.Sprintf("%d", minYear)
	}
	return fmt.Sprintf("%d-%d", minYear, maxYear)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
