package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/festival-manager/internal/model"
	"github.com/iliyamo/festival-manager/internal/repository"
	"github.com/iliyamo/festival-manager/internal/service"
)

// Index lists the names in the demo table.
func (h *Handler) Index(c echo.Context) error {
	var names []string
	err := h.withStore(c, func(ctx context.Context, s *repository.Store) (err error) {
		names, err = s.Tests.Names(ctx)
		return err
	})
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "index", echo.Map{"Names": names})
}

// Another is a static page.
func (h *Handler) Another(c echo.Context) error {
	return c.Render(http.StatusOK, "another", nil)
}

// Tickets lists every sold ticket grouped by type.
func (h *Handler) Tickets(c echo.Context) error {
	var tickets []model.Ticket
	err := h.withStore(c, func(ctx context.Context, s *repository.Store) (err error) {
		tickets, err = s.Tickets.List(ctx)
		return err
	})
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "tickets", echo.Map{"Tickets": tickets})
}

// Stages renders the lineup: every day, every stage, every set with its songs.
func (h *Handler) Stages(c echo.Context) error {
	var (
		stages  []model.Stage
		artists []model.Artist
		songs   []model.Song
	)
	err := h.withStore(c, func(ctx context.Context, s *repository.Store) (err error) {
		if stages, err = s.Stages.List(ctx); err != nil {
			return err
		}
		if artists, err = s.Artists.ListBySetStart(ctx); err != nil {
			return err
		}
		songs, err = s.Songs.List(ctx)
		return err
	})
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "stages", echo.Map{"Lineup": service.BuildLineup(stages, artists, songs)})
}

// Artist shows one artist's set and setlist.
func (h *Handler) Artist(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var view *model.ArtistView
	err = h.withStore(c, func(ctx context.Context, s *repository.Store) (err error) {
		if view, err = s.Artists.Get(ctx, id); err != nil {
			return err
		}
		view.Songs, err = s.Songs.ListByArtist(ctx, id)
		return err
	})
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "artist", echo.Map{"Artist": view})
}

// Merch lists the tents with the items each one stocks.
func (h *Handler) Merch(c echo.Context) error {
	var (
		tents []model.MerchTent
		items []model.MerchItem
	)
	err := h.withStore(c, func(ctx context.Context, s *repository.Store) (err error) {
		if tents, err = s.Merch.ListTents(ctx); err != nil {
			return err
		}
		items, err = s.Merch.ListItems(ctx)
		return err
	})
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "merch", echo.Map{"Tents": service.GroupMerch(tents, items)})
}

// Food lists the concession areas with their stage and stands.
func (h *Handler) Food(c echo.Context) error {
	var (
		areas      []model.ConcessionArea
		areaStages []model.AreaStage
		stands     []model.Stand
	)
	err := h.withStore(c, func(ctx context.Context, s *repository.Store) (err error) {
		if areas, err = s.Food.ListAreas(ctx); err != nil {
			return err
		}
		if areaStages, err = s.Food.ListAreaStages(ctx); err != nil {
			return err
		}
		stands, err = s.Food.ListStands(ctx)
		return err
	})
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "food", echo.Map{"Areas": service.GroupFood(areas, areaStages, stands)})
}

// Stand shows one stand's menu.
func (h *Handler) Stand(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var view model.StandView
	err = h.withStore(c, func(ctx context.Context, s *repository.Store) error {
		stand, err := s.Food.GetStand(ctx, id)
		if err != nil {
			return err
		}
		view.Stand = *stand
		view.Dishes, err = s.Food.ListDishes(ctx, id)
		return err
	})
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "stand", echo.Map{"Stand": &view})
}

// AddData links to the three data entry pages.
func (h *Handler) AddData(c echo.Context) error {
	return c.Render(http.StatusOK, "add_data", nil)
}

// AddMerchForm renders the tent and item forms.
func (h *Handler) AddMerchForm(c echo.Context) error {
	return c.Render(http.StatusOK, "add_merch", nil)
}

// AddFoodForm renders the area, stand and dish forms.
func (h *Handler) AddFoodForm(c echo.Context) error {
	return c.Render(http.StatusOK, "add_food", nil)
}

// AddTicketForm renders the ticket form.
func (h *Handler) AddTicketForm(c echo.Context) error {
	return c.Render(http.StatusOK, "add_ticket", nil)
}
