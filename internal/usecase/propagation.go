package usecase

import (
	"context"
	"fmt"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/fantasy"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/fixture"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/performance"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/player"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/platform/cache"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/platform/logging"
)

// Captaincy roles a performance can resolve to inside one squad.
const (
	roleStarter           = "starter"
	roleCaptain           = "captain"
	roleCaptainBenched    = "captain_did_not_play"
	roleViceCaptain       = "vice_captain"
	roleViceCaptainActive = "vice_captain_active"
)

// propagator fans one performance delta out to every squad that holds the
// player in its finalized lineup for the gameweek. Captain deltas double;
// the vice captain doubles only while the captain has no recorded minutes.
type propagator struct {
	cache  *cache.Store
	logger *logging.Logger
}

func newPropagator(store *cache.Store, logger *logging.Logger) *propagator {
	if logger == nil {
		logger = logging.Default()
	}
	return &propagator{cache: store, logger: logger}
}

func selectionCacheKey(teamID string, gameweek int) string {
	return fmt.Sprintf("selection:%s:%d", teamID, gameweek)
}

// finalizedSelection loads a squad's finalized lineup for the gameweek,
// through the cache when one is configured. The second return is false when
// no finalized selection exists.
func (p *propagator) finalizedSelection(ctx context.Context, repos Repos, teamID string, gameweek int) (fantasy.TeamSelection, bool, error) {
	load := func(ctx context.Context) (fantasy.TeamSelection, bool, error) {
		selection, ok, err := repos.Selections.GetByTeamAndGameweek(ctx, teamID, gameweek)
		if err != nil {
			return fantasy.TeamSelection{}, false, err
		}
		if !ok || !selection.IsFinalized {
			return fantasy.TeamSelection{}, false, nil
		}
		return selection, true, nil
	}

	if p.cache == nil {
		return load(ctx)
	}

	value, err := p.cache.GetOrLoad(ctx, selectionCacheKey(teamID, gameweek), func(ctx context.Context) (any, error) {
		selection, ok, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			// Cache the absence too; unfinalized squads are the common case
			// early in a gameweek.
			return fantasy.TeamSelection{}, nil
		}
		return selection, nil
	})
	if err != nil {
		return fantasy.TeamSelection{}, false, err
	}

	selection, ok := value.(fantasy.TeamSelection)
	if !ok || selection.ID == "" {
		return fantasy.TeamSelection{}, false, nil
	}
	return selection, true, nil
}

// multiplier resolves the scoring multiplier for one player inside one
// selection. minutes is the player's own recorded minutes in the fixture.
func (p *propagator) multiplier(ctx context.Context, repos Repos, selection fantasy.TeamSelection, playerID, fixtureID string, minutes int) (int, string, error) {
	switch playerID {
	case selection.CaptainID:
		if minutes == 0 {
			return 1, roleCaptainBenched, nil
		}
		return 2, roleCaptain, nil
	case selection.ViceCaptainID:
		captainPerf, ok, err := repos.Performances.GetByPlayerAndFixture(ctx, selection.CaptainID, fixtureID)
		if err != nil {
			return 0, "", err
		}
		if !ok || captainPerf.Counters.MinutesPlayed == 0 {
			return 2, roleViceCaptainActive, nil
		}
		return 1, roleViceCaptain, nil
	default:
		return 1, roleStarter, nil
	}
}

// apply adds delta (already position-weighted, not captain-weighted) to every
// squad whose finalized selection starts the player. Returns the number of
// squads credited. A selection whose captain or vice captain is missing from
// its own starters is corrupt; that squad is skipped and logged, the rest of
// the fan-out proceeds.
func (p *propagator) apply(ctx context.Context, repos Repos, pl player.Player, gw fixture.GameweekContext, perf performance.Performance, delta int) (int, error) {
	if delta == 0 {
		return 0, nil
	}

	memberships, err := repos.FantasyPlayers.ListByRealPlayer(ctx, pl.ID)
	if err != nil {
		return 0, fmt.Errorf("list squads holding player %s: %w", pl.ID, err)
	}

	credited := 0
	for _, membership := range memberships {
		selection, ok, err := p.finalizedSelection(ctx, repos, membership.TeamID, gw.Gameweek)
		if err != nil {
			return credited, err
		}
		if !ok {
			continue
		}
		if !selection.IsStarter(pl.ID) {
			continue
		}

		if selection.CaptainID == "" || !selection.IsStarter(selection.CaptainID) ||
			selection.ViceCaptainID == "" || !selection.IsStarter(selection.ViceCaptainID) {
			p.logger.ErrorContext(ctx, "selection captaincy does not match starters, skipping squad",
				"team_id", membership.TeamID,
				"gameweek", gw.Gameweek,
				"captain_id", selection.CaptainID,
				"vice_captain_id", selection.ViceCaptainID,
			)
			continue
		}

		mult, role, err := p.multiplier(ctx, repos, selection, pl.ID, gw.FixtureID, perf.Counters.MinutesPlayed)
		if err != nil {
			return credited, err
		}

		award := delta * mult
		membership.TotalPoints += award
		if err := repos.FantasyPlayers.Upsert(ctx, membership); err != nil {
			return credited, fmt.Errorf("update squad member points: %w", err)
		}

		team, ok, err := repos.Teams.GetByID(ctx, membership.TeamID)
		if err != nil {
			return credited, err
		}
		if ok {
			team.TotalPoints += award
			if err := repos.Teams.Upsert(ctx, team); err != nil {
				return credited, fmt.Errorf("update squad total: %w", err)
			}
		}

		credited++
		p.logger.DebugContext(ctx, "propagated points to squad",
			"team_id", membership.TeamID,
			"player_id", pl.ID,
			"role", role,
			"points", award,
		)
	}

	return credited, nil
}
