package model

// ConcessionArea groups food stands near a stage.
type ConcessionArea struct {
	ID             int64  // concession_area.area_id
	StageID        int64  // concession_area.stage_id
	Name           string // concession_area.area_name
	NumberOfStands int    // concession_area.number_of_stands
}

// AreaStage pairs an area with the name of the stage it serves.
type AreaStage struct {
	AreaID    int64
	StageName string
}

// Stand is a single food stand.
type Stand struct {
	ID       int64  // stand.stand_id
	AreaID   int64  // stand.area_id
	Name     string // stand.stand_name
	AreaName string // concession_area.area_name (joined, not stored)
}

// Dish is something a stand serves.
type Dish struct {
	ID       int64   // dish.dish_id
	StandID  int64   // dish.stand_id
	Name     string  // dish.dish_name
	Price    float64 // dish.price
	ItemType string  // dish.item_type
}

// AreaView is an area with the stage it serves and its stands.
type AreaView struct {
	Area      ConcessionArea
	StageName string
	Stands    []Stand
}

// StandView is the detail page for a stand.
type StandView struct {
	Stand  Stand
	Dishes []Dish
}
