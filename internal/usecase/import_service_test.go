package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func exampleRoster() Roster {
	return Roster{
		Teams: []InsertTeamInput{
			{ID: 1, Name: "Reds", FoundedOn: date(1892, 6, 3), PrimaryColor: "red", SecondaryColor: "white"},
			{ID: 2, Name: "Blues", FoundedOn: date(1878, 3, 1), PrimaryColor: "blue", SecondaryColor: "white"},
		},
		Players: []InsertPlayerInput{
			{ID: 10, TeamID: 1, Name: "Alan", BirthDate: date(1994, 4, 12), SkillLevel: 5, Salary: decimal.NewFromInt(100)},
			{ID: 11, TeamID: 1, Name: "Bruno", BirthDate: date(1997, 9, 30), SkillLevel: 9, Salary: decimal.NewFromInt(50)},
			{ID: 20, TeamID: 2, Name: "Carl", BirthDate: date(1991, 1, 8), SkillLevel: 7, Salary: decimal.NewFromInt(200)},
		},
	}
}

func TestImportService_Import_InsertsEverything(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	registry := newTestRegistry()
	service := NewImportService(registry, 3, nil)

	result, err := service.Import(ctx, exampleRoster())
	if err != nil {
		t.Fatalf("import roster: %v", err)
	}
	if result.TeamsInserted != 2 || result.PlayersInserted != 3 {
		t.Fatalf("unexpected result: %+v", result)
	}

	best, err := registry.BestPlayerOnTeam(ctx, 1)
	if err != nil || best != 11 {
		t.Fatalf("expected best player 11, got %d err=%v", best, err)
	}
}

func TestImportService_Import_KeepsTextAsGiven(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	registry := newTestRegistry()
	service := NewImportService(registry, 2, nil)

	roster := exampleRoster()
	roster.Teams[0].Name = " Reds "
	roster.Teams[0].PrimaryColor = "blue "
	roster.Players[0].Name = "Alan\t"

	if _, err := service.Import(ctx, roster); err != nil {
		t.Fatalf("import roster: %v", err)
	}
	if name, err := registry.GetTeamName(ctx, 1); err != nil || name != " Reds " {
		t.Fatalf("expected team name %q, got %q err=%v", " Reds ", name, err)
	}
	if name, err := registry.GetPlayerName(ctx, 10); err != nil || name != "Alan\t" {
		t.Fatalf("expected player name kept as given, got %q err=%v", name, err)
	}
	if color, err := registry.AwayUniformColor(ctx, 2, 1); err != nil || color != "blue " {
		t.Fatalf("expected away color %q, got %q err=%v", "blue ", color, err)
	}
}

func TestImportService_Import_InvalidEntryRejectsWholeBatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	registry := newTestRegistry()
	service := NewImportService(registry, 3, nil)

	roster := exampleRoster()
	roster.Players[2].Name = ""

	result, err := service.Import(ctx, roster)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if result != (ImportResult{}) {
		t.Fatalf("expected nothing inserted, got %+v", result)
	}
	teams, _ := registry.ListAllTeams(ctx)
	if len(teams) != 0 {
		t.Fatalf("expected no teams inserted, got %v", teams)
	}
}

func TestImportService_Import_StopsAtFirstRegistryFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	registry := newTestRegistry()
	service := NewImportService(registry, 3, nil)

	roster := exampleRoster()
	roster.Players[1].TeamID = 42

	result, err := service.Import(ctx, roster)
	if !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
	if result.TeamsInserted != 2 || result.PlayersInserted != 1 {
		t.Fatalf("unexpected partial result: %+v", result)
	}

	if _, err := service.Import(ctx, Roster{Teams: roster.Teams[:1]}); !errors.Is(err, ErrDuplicateIdentifier) {
		t.Fatalf("expected ErrDuplicateIdentifier on re-import, got %v", err)
	}
}

func TestImportService_Import_EmptyRoster(t *testing.T) {
	t.Parallel()

	service := NewImportService(newTestRegistry(), 0, nil)
	if _, err := service.Import(context.Background(), Roster{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
