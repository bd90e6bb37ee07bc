package model

// MerchTent sells merchandise next to a stage.
type MerchTent struct {
	ID              int64  // merch_tent.tent_id
	StageID         int64  // merch_tent.stage_id
	StageName       string // stage.stage_name (joined, not stored)
	NumberOfWorkers int    // merch_tent.number_of_workers
}

// MerchItem is a product stocked by a tent.
type MerchItem struct {
	ID              int64   // merch_item.item_id
	TentID          int64   // merch_item.tent_id
	Name            string  // merch_item.item_name
	Type            string  // merch_item.item_type
	NumberRemaining int     // merch_item.number_remaining
	Price           float64 // merch_item.price
}

// TentView is a tent with the items it stocks.
type TentView struct {
	Tent  MerchTent
	Items []MerchItem
}
