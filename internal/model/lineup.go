package model

// Stage is a performance stage.  It corresponds to a row in the `stage` table.
type Stage struct {
	ID   int64  // stage.stage_id
	Name string // stage.stage_name
}

// Artist is one set on the festival schedule.  Times are stored as
// zero-padded "HH:MM" strings so they sort lexically.
type Artist struct {
	ID       int64  // artist.artist_id
	Name     string // artist.artist_name
	SetStart string // artist.set_start_time
	SetEnd   string // artist.set_end_time
	StageID  int64  // artist.stage_id
	SetDay   string // artist.set_day
}

// Song belongs to an artist's setlist.
type Song struct {
	ID       int64  // song.song_id
	Name     string // song.song_name
	ArtistID int64  // song.artist_id
}

// FestivalDays are the days the lineup page renders, in order.
var FestivalDays = []string{"Friday", "Saturday", "Sunday"}

// ArtistSet is an artist together with the songs they play.
type ArtistSet struct {
	Artist
	Songs []Song
}

// StageSchedule is one stage's sets for a single day, ordered by start time.
type StageSchedule struct {
	Stage Stage
	Sets  []ArtistSet
}

// DaySchedule is every stage's schedule for one festival day.
type DaySchedule struct {
	Day    string
	Stages []StageSchedule
}

// Lineup is the grouped schedule shown on the stages page.
type Lineup struct {
	Stages []Stage
	Days   []DaySchedule
}

// ArtistView is the detail page for a single artist.
type ArtistView struct {
	Artist    Artist
	StageName string
	Songs     []Song
}
