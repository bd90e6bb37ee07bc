package view

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/festival-manager/internal/model"
)

func TestRenderPages(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	stand := model.Stand{ID: 3, AreaID: 1, Name: "Tacos", AreaName: "North"}
	artist := model.Artist{ID: 9, Name: "Headliner", SetStart: "22:00", SetEnd: "23:30", StageID: 1, SetDay: "Friday"}
	pages := []struct {
		name string
		data any
		want []string
	}{
		{"index", echo.Map{"Names": []string{"ada lovelace"}}, []string{"ada lovelace", `action="/add"`}},
		{"another", nil, []string{"Another page"}},
		{"tickets", echo.Map{"Tickets": []model.Ticket{{Type: "VIP", PurchaserName: "Sam", PurchaserAge: 30}}}, []string{"VIP", "Sam", "30"}},
		{"stages", echo.Map{"Lineup": model.Lineup{
			Stages: []model.Stage{{ID: 1, Name: "Main"}},
			Days: []model.DaySchedule{{Day: "Friday", Stages: []model.StageSchedule{{
				Stage: model.Stage{ID: 1, Name: "Main"},
				Sets:  []model.ArtistSet{{Artist: artist, Songs: []model.Song{{Name: "Intro"}, {Name: "Encore"}}}},
			}}}},
		}}, []string{"Friday", "/artist/9", "Intro, Encore"}},
		{"artist", echo.Map{"Artist": &model.ArtistView{Artist: artist, StageName: "Main"}}, []string{"Headliner", "Main", "No songs announced"}},
		{"merch", echo.Map{"Tents": []model.TentView{{
			Tent:  model.MerchTent{ID: 1, StageName: "Main", NumberOfWorkers: 4},
			Items: []model.MerchItem{{Name: "Shirt", Type: "clothing", NumberRemaining: 10, Price: 25}},
		}}}, []string{"Shirt", "25.00", "4 workers"}},
		{"food", echo.Map{"Areas": []model.AreaView{{
			Area: model.ConcessionArea{ID: 1, Name: "North"}, StageName: "Main", Stands: []model.Stand{stand},
		}}}, []string{"North", "/stand/3", "Tacos"}},
		{"stand", echo.Map{"Stand": &model.StandView{Stand: stand, Dishes: []model.Dish{{Name: "Al pastor", Price: 4.5, ItemType: "taco"}}}}, []string{"Tacos", "North", "4.50"}},
		{"add_data", nil, []string{"/add_merch", "/add_food", "/add_ticket"}},
		{"add_merch", nil, []string{`action="/add_tent"`, `name="price_entry"`}},
		{"add_food", nil, []string{`action="/add_concession"`, `action="/add_stand"`, `name="dish_item_typeentry"`}},
		{"add_ticket", nil, []string{`name="purchaser_ageentry"`}},
		{"error", NewErrorPage(http.StatusNotFound, "No such stand."), []string{"404 Not Found", "No such stand."}},
	}

	for _, p := range pages {
		t.Run(p.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := r.Render(&buf, p.name, p.data, nil); err != nil {
				t.Fatalf("Render: %v", err)
			}
			body := buf.String()
			if !strings.HasPrefix(body, "<!DOCTYPE html>") || !strings.Contains(body, "</html>") {
				t.Errorf("page is not a complete document:\n%s", body)
			}
			for _, w := range p.want {
				if !strings.Contains(body, w) {
					t.Errorf("expected %q in page:\n%s", w, body)
				}
			}
		})
	}
}

func TestRenderFailureWritesNothing(t *testing.T) {
	r := MustNew()

	var buf bytes.Buffer
	if err := r.Render(&buf, "missing", nil, nil); err == nil {
		t.Error("expected error for unknown page")
	}
	// ranging over a number fails after the layout has started writing
	if err := r.Render(&buf, "tickets", echo.Map{"Tickets": 42}, nil); err == nil {
		t.Error("expected template error")
	}
	if buf.Len() != 0 {
		t.Errorf("failed render leaked %d bytes", buf.Len())
	}
}
