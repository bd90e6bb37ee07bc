// Package service reshapes repository rows into the views the pages render
// and publishes domain events after writes.
package service

import "github.com/iliyamo/festival-manager/internal/model"

// BuildLineup groups artists by festival day and by stage, keeping the
// order artists arrive in (set start time).  Songs are attached to their
// artist.  Artists on a day outside model.FestivalDays or on an unknown
// stage are left out.
func BuildLineup(stages []model.Stage, artists []model.Artist, songs []model.Song) model.Lineup {
	byArtist := make(map[int64][]model.Song, len(artists))
	for _, s := range songs {
		byArtist[s.ArtistID] = append(byArtist[s.ArtistID], s)
	}

	stageIdx := make(map[int64]int, len(stages))
	for i, s := range stages {
		stageIdx[s.ID] = i
	}

	lineup := model.Lineup{Stages: stages, Days: make([]model.DaySchedule, len(model.FestivalDays))}
	dayIdx := make(map[string]int, len(model.FestivalDays))
	for i, day := range model.FestivalDays {
		dayIdx[day] = i
		schedules := make([]model.StageSchedule, len(stages))
		for j, s := range stages {
			schedules[j] = model.StageSchedule{Stage: s}
		}
		lineup.Days[i] = model.DaySchedule{Day: day, Stages: schedules}
	}

	for _, a := range artists {
		d, ok := dayIdx[a.SetDay]
		if !ok {
			continue
		}
		s, ok := stageIdx[a.StageID]
		if !ok {
			continue
		}
		sched := &lineup.Days[d].Stages[s]
		sched.Sets = append(sched.Sets, model.ArtistSet{Artist: a, Songs: byArtist[a.ID]})
	}
	return lineup
}

// GroupMerch attaches every item to its tent.  Items of unknown tents are
// dropped.
func GroupMerch(tents []model.MerchTent, items []model.MerchItem) []model.TentView {
	out := make([]model.TentView, len(tents))
	idx := make(map[int64]int, len(tents))
	for i, t := range tents {
		out[i] = model.TentView{Tent: t}
		idx[t.ID] = i
	}
	for _, it := range items {
		if i, ok := idx[it.TentID]; ok {
			out[i].Items = append(out[i].Items, it)
		}
	}
	return out
}

// GroupFood attaches the served stage's name and the stands to each area.
func GroupFood(areas []model.ConcessionArea, areaStages []model.AreaStage, stands []model.Stand) []model.AreaView {
	out := make([]model.AreaView, len(areas))
	idx := make(map[int64]int, len(areas))
	for i, a := range areas {
		out[i] = model.AreaView{Area: a}
		idx[a.ID] = i
	}
	for _, as := range areaStages {
		if i, ok := idx[as.AreaID]; ok {
			out[i].StageName = as.StageName
		}
	}
	for _, s := range stands {
		if i, ok := idx[s.AreaID]; ok {
			s.AreaName = out[i].Area.Name
			out[i].Stands = append(out[i].Stands, s)
		}
	}
	return out
}
