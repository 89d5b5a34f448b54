package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/fantasy"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/player"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/transfer"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/platform/cache"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/platform/id"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/platform/locking"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/platform/logging"
)

// SquadService validates and persists squad submissions. Submissions for the
// same squad serialize on a per-team lock, so concurrent edits settle one
// after the other instead of splicing rosters together.
type SquadService struct {
	uow     UnitOfWork
	players player.Repository
	locks   *locking.Keyed
	cache   *cache.Store
	idGen   id.Generator
	logger  *logging.Logger
	now     func() time.Time
}

func NewSquadService(
	uow UnitOfWork,
	players player.Repository,
	store *cache.Store,
	idGen id.Generator,
	logger *logging.Logger,
) *SquadService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SquadService{
		uow:     uow,
		players: players,
		locks:   locking.NewKeyed(),
		cache:   store,
		idGen:   idGen,
		logger:  logger,
		now:     time.Now,
	}
}

// SubmitSquadInput is one full proposed squad state for a gameweek. Draft
// submissions are validated and stored but stay invisible to scoring.
type SubmitSquadInput struct {
	TeamID        string
	Gameweek      int
	Formation     string
	StarterIDs    []string
	BenchIDs      []string
	CaptainID     string
	ViceCaptainID string
	Draft         bool
}

// SubmitSquadResult reports what the submission changed.
type SubmitSquadResult struct {
	PlayersCreated          int
	PlayersUpdated          int
	TransfersMade           int
	TransferCost            int
	RemainingFreeTransfers  int
	RemainingTransferBudget int
	Finalized               bool
}

// SubmitSquad validates the proposed squad as a whole, settles any transfers
// against the team's allowances and persists the roster and lineup in one
// unit of work. Transfer charges are all or nothing: if the point cost
// exceeds the transfer budget, no part of the submission lands.
func (s *SquadService) SubmitSquad(ctx context.Context, input SubmitSquadInput) (SubmitSquadResult, error) {
	ctx, span := startUsecaseSpan(ctx, "SquadService.SubmitSquad")
	defer span.End()

	if err := validateSubmitInput(input); err != nil {
		return SubmitSquadResult{}, err
	}

	unlock := s.locks.Lock("squad:" + input.TeamID)
	defer unlock()

	allIDs := make([]string, 0, len(input.StarterIDs)+len(input.BenchIDs))
	allIDs = append(allIDs, input.StarterIDs...)
	allIDs = append(allIDs, input.BenchIDs...)

	pool, err := s.players.GetByIDs(ctx, allIDs)
	if err != nil {
		return SubmitSquadResult{}, fmt.Errorf("resolve squad players: %w", err)
	}
	byID := make(map[string]player.Player, len(pool))
	for _, pl := range pool {
		byID[pl.ID] = pl
	}

	starters, err := rosterEntries(input.StarterIDs, byID)
	if err != nil {
		return SubmitSquadResult{}, err
	}
	bench, err := rosterEntries(input.BenchIDs, byID)
	if err != nil {
		return SubmitSquadResult{}, err
	}

	var result SubmitSquadResult
	err = s.uow.Within(ctx, func(ctx context.Context, repos Repos) error {
		team, ok, err := repos.Teams.GetByID(ctx, input.TeamID)
		if err != nil {
			return fmt.Errorf("load fantasy team: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: fantasy team %s", ErrNotFound, input.TeamID)
		}

		if err := fantasy.ValidateComposition(input.Formation, starters, bench, team.Budget); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		if input.Draft {
			if err := s.storeSelection(ctx, repos, team, input, false); err != nil {
				return err
			}
			result.RemainingFreeTransfers = team.FreeTransfers
			result.RemainingTransferBudget = team.TransferBudget
			return nil
		}

		current, err := repos.FantasyPlayers.ListByTeam(ctx, input.TeamID)
		if err != nil {
			return fmt.Errorf("load current roster: %w", err)
		}

		removed, added := rosterDiff(current, allIDs)

		// A first submission builds the roster from nothing; transfer
		// charges only apply to edits of an established squad.
		settleTransfers := len(current) == fantasy.SquadSize
		transfersMade, cost := 0, 0
		if settleTransfers {
			transfersMade = len(removed)
			charged := transfersMade - team.FreeTransfers
			if charged < 0 {
				charged = 0
			}
			cost = charged * fantasy.TransferPointCost
			if cost > team.TransferBudget {
				return fmt.Errorf("%w: cost=%d budget=%d transfers=%d free=%d",
					fantasy.ErrInsufficientTransferBudget, cost, team.TransferBudget, transfersMade, team.FreeTransfers)
			}
		}

		created, updated, err := s.writeRoster(ctx, repos, team, input, byID, current, removed)
		if err != nil {
			return err
		}

		if settleTransfers && transfersMade > 0 {
			if err := s.recordTransfers(ctx, repos, team, input.Gameweek, removed, added); err != nil {
				return err
			}
			team.FreeTransfers -= transfersMade
			if team.FreeTransfers < 0 {
				team.FreeTransfers = 0
			}
			team.TransferBudget -= cost
		}

		team.Formation = input.Formation
		team.UpdatedAt = s.now()
		if err := repos.Teams.Upsert(ctx, team); err != nil {
			return fmt.Errorf("store fantasy team: %w", err)
		}

		if err := s.storeSelection(ctx, repos, team, input, true); err != nil {
			return err
		}

		result = SubmitSquadResult{
			PlayersCreated:          created,
			PlayersUpdated:          updated,
			TransfersMade:           transfersMade,
			TransferCost:            cost,
			RemainingFreeTransfers:  team.FreeTransfers,
			RemainingTransferBudget: team.TransferBudget,
			Finalized:               true,
		}
		return nil
	})
	if err != nil {
		return SubmitSquadResult{}, err
	}

	if s.cache != nil {
		s.cache.DeletePrefix(ctx, "selection:"+input.TeamID+":")
	}

	s.logger.InfoContext(ctx, "squad submitted",
		"team_id", input.TeamID,
		"gameweek", input.Gameweek,
		"formation", input.Formation,
		"transfers", result.TransfersMade,
		"transfer_cost", result.TransferCost,
		"draft", input.Draft,
	)
	return result, nil
}

func validateSubmitInput(input SubmitSquadInput) error {
	if input.TeamID == "" {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if input.Gameweek <= 0 {
		return fmt.Errorf("%w: gameweek must be positive", ErrInvalidInput)
	}
	if input.CaptainID == "" || input.ViceCaptainID == "" {
		return fmt.Errorf("%w: captain and vice captain are required", ErrInvalidInput)
	}
	if input.CaptainID == input.ViceCaptainID {
		return fmt.Errorf("%w: captain and vice captain must differ", ErrInvalidInput)
	}

	inStarters := func(id string) bool {
		for _, starterID := range input.StarterIDs {
			if starterID == id {
				return true
			}
		}
		return false
	}
	if !inStarters(input.CaptainID) {
		return fmt.Errorf("%w: captain must be a starter", ErrInvalidInput)
	}
	if !inStarters(input.ViceCaptainID) {
		return fmt.Errorf("%w: vice captain must be a starter", ErrInvalidInput)
	}

	return nil
}

func rosterEntries(ids []string, byID map[string]player.Player) ([]fantasy.RosterEntry, error) {
	entries := make([]fantasy.RosterEntry, 0, len(ids))
	for _, playerID := range ids {
		pl, ok := byID[playerID]
		if !ok {
			return nil, fmt.Errorf("%w: unknown player %s", ErrInvalidInput, playerID)
		}
		entries = append(entries, fantasy.RosterEntry{
			PlayerID:   pl.ID,
			RealTeamID: pl.TeamID,
			Position:   pl.Position,
			Value:      pl.CurrentValue,
		})
	}
	return entries, nil
}

// rosterDiff returns the real player ids leaving and joining the squad, both
// sorted so pairing is deterministic regardless of submission order.
func rosterDiff(current []fantasy.FantasyPlayer, proposed []string) (removed, added []string) {
	currentSet := make(map[string]struct{}, len(current))
	for _, member := range current {
		currentSet[member.PlayerID] = struct{}{}
	}
	proposedSet := make(map[string]struct{}, len(proposed))
	for _, playerID := range proposed {
		proposedSet[playerID] = struct{}{}
	}

	for _, member := range current {
		if _, keep := proposedSet[member.PlayerID]; !keep {
			removed = append(removed, member.PlayerID)
		}
	}
	for _, playerID := range proposed {
		if _, held := currentSet[playerID]; !held {
			added = append(added, playerID)
		}
	}

	sort.Strings(removed)
	sort.Strings(added)
	return removed, added
}

func (s *SquadService) writeRoster(
	ctx context.Context,
	repos Repos,
	team fantasy.FantasyTeam,
	input SubmitSquadInput,
	byID map[string]player.Player,
	current []fantasy.FantasyPlayer,
	removed []string,
) (created, updated int, err error) {
	currentByPlayer := make(map[string]fantasy.FantasyPlayer, len(current))
	for _, member := range current {
		currentByPlayer[member.PlayerID] = member
	}

	removedSet := make(map[string]struct{}, len(removed))
	for _, playerID := range removed {
		removedSet[playerID] = struct{}{}
	}
	for _, member := range current {
		if _, gone := removedSet[member.PlayerID]; gone {
			if err := repos.FantasyPlayers.Delete(ctx, member.ID); err != nil {
				return 0, 0, fmt.Errorf("remove squad member: %w", err)
			}
		}
	}

	write := func(playerID string, isStarter bool) error {
		pl := byID[playerID]
		member, exists := currentByPlayer[playerID]
		if !exists {
			memberID, idErr := s.idGen.NewID()
			if idErr != nil {
				return fmt.Errorf("mint squad member id: %w", idErr)
			}
			member = fantasy.FantasyPlayer{
				ID:            memberID,
				TeamID:        team.ID,
				PlayerID:      playerID,
				PurchasePrice: pl.CurrentValue,
				GameweekAdded: input.Gameweek,
				CreatedAt:     s.now(),
			}
			created++
		} else {
			updated++
		}

		member.IsStarter = isStarter
		member.IsCaptain = playerID == input.CaptainID
		member.IsViceCaptain = playerID == input.ViceCaptainID
		member.CurrentValue = pl.CurrentValue
		member.UpdatedAt = s.now()
		return repos.FantasyPlayers.Upsert(ctx, member)
	}

	for _, playerID := range input.StarterIDs {
		if err := write(playerID, true); err != nil {
			return created, updated, fmt.Errorf("store squad member: %w", err)
		}
	}
	for _, playerID := range input.BenchIDs {
		if err := write(playerID, false); err != nil {
			return created, updated, fmt.Errorf("store squad member: %w", err)
		}
	}

	return created, updated, nil
}

// recordTransfers pairs each removal with an addition in sorted order and
// writes history rows. The first FreeTransfers pairs cost nothing; the rest
// carry the flat point cost already charged against the team.
func (s *SquadService) recordTransfers(
	ctx context.Context,
	repos Repos,
	team fantasy.FantasyTeam,
	gameweek int,
	removed, added []string,
) error {
	pairs := len(removed)
	if len(added) > pairs {
		pairs = len(added)
	}

	entries := make([]transfer.PlayerTransfer, 0, pairs)
	for i := 0; i < pairs; i++ {
		entryID, err := s.idGen.NewID()
		if err != nil {
			return fmt.Errorf("mint transfer id: %w", err)
		}

		entry := transfer.PlayerTransfer{
			ID:        entryID,
			TeamID:    team.ID,
			Gameweek:  gameweek,
			CreatedAt: s.now(),
		}
		if i < len(removed) {
			entry.PlayerOutID = removed[i]
		}
		if i < len(added) {
			entry.PlayerInID = added[i]
		}
		if i >= team.FreeTransfers {
			entry.PointCost = fantasy.TransferPointCost
		}
		entries = append(entries, entry)
	}

	if err := repos.Transfers.Record(ctx, entries); err != nil {
		return fmt.Errorf("record transfers: %w", err)
	}
	return nil
}

func (s *SquadService) storeSelection(
	ctx context.Context,
	repos Repos,
	team fantasy.FantasyTeam,
	input SubmitSquadInput,
	finalize bool,
) error {
	selection, ok, err := repos.Selections.GetByTeamAndGameweek(ctx, input.TeamID, input.Gameweek)
	if err != nil {
		return fmt.Errorf("load selection: %w", err)
	}
	if !ok {
		selectionID, idErr := s.idGen.NewID()
		if idErr != nil {
			return fmt.Errorf("mint selection id: %w", idErr)
		}
		selection = fantasy.TeamSelection{
			ID:        selectionID,
			TeamID:    team.ID,
			Gameweek:  input.Gameweek,
			CreatedAt: s.now(),
		}
	}

	selection.Formation = input.Formation
	selection.CaptainID = input.CaptainID
	selection.ViceCaptainID = input.ViceCaptainID
	selection.StarterIDs = append([]string(nil), input.StarterIDs...)
	selection.BenchIDs = append([]string(nil), input.BenchIDs...)
	selection.IsFinalized = finalize
	selection.UpdatedAt = s.now()

	if err := repos.Selections.Upsert(ctx, selection); err != nil {
		return fmt.Errorf("store selection: %w", err)
	}
	return nil
}
