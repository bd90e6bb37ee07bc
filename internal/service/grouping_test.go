package service

import (
	"testing"

	"github.com/iliyamo/festival-manager/internal/model"
)

func TestBuildLineup(t *testing.T) {
	stages := []model.Stage{{ID: 10, Name: "Main"}, {ID: 20, Name: "Tent"}}
	artists := []model.Artist{
		{ID: 1, Name: "Opener", StageID: 10, SetDay: "Friday", SetStart: "14:00"},
		{ID: 2, Name: "Tent Act", StageID: 20, SetDay: "Friday", SetStart: "15:00"},
		{ID: 3, Name: "Headliner", StageID: 10, SetDay: "Friday", SetStart: "22:00"},
		{ID: 4, Name: "Sunday Act", StageID: 20, SetDay: "Sunday", SetStart: "12:00"},
		{ID: 5, Name: "Monday Act", StageID: 10, SetDay: "Monday", SetStart: "12:00"},
		{ID: 6, Name: "Lost Act", StageID: 99, SetDay: "Friday", SetStart: "12:00"},
	}
	songs := []model.Song{
		{ID: 1, Name: "Intro", ArtistID: 3},
		{ID: 2, Name: "Encore", ArtistID: 3},
		{ID: 3, Name: "Orphan", ArtistID: 42},
	}

	lineup := BuildLineup(stages, artists, songs)

	if len(lineup.Days) != len(model.FestivalDays) {
		t.Fatalf("expected %d days, got %d", len(model.FestivalDays), len(lineup.Days))
	}
	friday := lineup.Days[0]
	if friday.Day != "Friday" || len(friday.Stages) != 2 {
		t.Fatalf("unexpected friday %+v", friday)
	}

	mainStage := friday.Stages[0]
	if mainStage.Stage.Name != "Main" || len(mainStage.Sets) != 2 {
		t.Fatalf("expected two sets on Main, got %+v", mainStage)
	}
	if mainStage.Sets[0].Name != "Opener" || mainStage.Sets[1].Name != "Headliner" {
		t.Errorf("sets should keep start order, got %s then %s", mainStage.Sets[0].Name, mainStage.Sets[1].Name)
	}
	if len(mainStage.Sets[1].Songs) != 2 || mainStage.Sets[1].Songs[1].Name != "Encore" {
		t.Errorf("headliner songs not attached: %+v", mainStage.Sets[1].Songs)
	}
	if len(friday.Stages[1].Sets) != 1 {
		t.Errorf("expected one set on Tent friday, got %d", len(friday.Stages[1].Sets))
	}

	if n := len(lineup.Days[1].Stages[0].Sets) + len(lineup.Days[1].Stages[1].Sets); n != 0 {
		t.Errorf("expected empty saturday, got %d sets", n)
	}
	if sunday := lineup.Days[2].Stages[1].Sets; len(sunday) != 1 || sunday[0].ID != 4 {
		t.Errorf("unexpected sunday tent sets %+v", sunday)
	}

	total := 0
	for _, d := range lineup.Days {
		for _, s := range d.Stages {
			total += len(s.Sets)
		}
	}
	if total != 4 {
		t.Errorf("artists on unknown days or stages should be skipped, got %d sets", total)
	}
}

func TestBuildLineupEmpty(t *testing.T) {
	lineup := BuildLineup(nil, nil, nil)
	if len(lineup.Days) != len(model.FestivalDays) {
		t.Fatalf("days should always render, got %d", len(lineup.Days))
	}
	for _, d := range lineup.Days {
		if len(d.Stages) != 0 {
			t.Errorf("expected no stages on %s", d.Day)
		}
	}
}

func TestGroupMerch(t *testing.T) {
	tents := []model.MerchTent{{ID: 1, StageName: "Main"}, {ID: 2, StageName: "Tent"}}
	items := []model.MerchItem{
		{ID: 1, TentID: 1, Name: "Shirt"},
		{ID: 2, TentID: 1, Name: "Hat"},
		{ID: 3, TentID: 7, Name: "Ghost"},
	}

	views := GroupMerch(tents, items)
	if len(views) != 2 {
		t.Fatalf("expected 2 tents, got %d", len(views))
	}
	if len(views[0].Items) != 2 || views[0].Items[1].Name != "Hat" {
		t.Errorf("unexpected items for tent 1: %+v", views[0].Items)
	}
	if len(views[1].Items) != 0 {
		t.Errorf("tent 2 should be empty, got %+v", views[1].Items)
	}
}

func TestGroupFood(t *testing.T) {
	areas := []model.ConcessionArea{{ID: 1, Name: "North"}, {ID: 2, Name: "South"}}
	areaStages := []model.AreaStage{{AreaID: 2, StageName: "Tent"}, {AreaID: 1, StageName: "Main"}}
	stands := []model.Stand{{ID: 5, AreaID: 2, Name: "Tacos"}, {ID: 6, AreaID: 3, Name: "Nowhere"}}

	views := GroupFood(areas, areaStages, stands)
	if views[0].StageName != "Main" || views[1].StageName != "Tent" {
		t.Errorf("stage names not attached: %+v", views)
	}
	if len(views[0].Stands) != 0 || len(views[1].Stands) != 1 {
		t.Fatalf("unexpected stands: %+v", views)
	}
	if views[1].Stands[0].AreaName != "South" {
		t.Errorf("expected stand to carry its area name, got %q", views[1].Stands[0].AreaName)
	}
}
