package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/festival-manager/internal/model"
	"github.com/iliyamo/festival-manager/internal/repository"
	"github.com/iliyamo/festival-manager/internal/service"
)

// Submitted *_identry fields are ignored on every form: keys are generated
// by the database so concurrent submissions cannot collide.

// AddName inserts a name into the demo table.
func (h *Handler) AddName(c echo.Context) error {
	f := newForm(c)
	name := f.str("name")
	if err := f.check(); err != nil {
		return err
	}
	var id int64
	err := h.withStore(c, func(ctx context.Context, s *repository.Store) (err error) {
		id, err = s.Tests.Add(ctx, name)
		return err
	})
	return h.created(c, err, "test", id, f)
}

// AddTent inserts a merch tent.
func (h *Handler) AddTent(c echo.Context) error {
	f := newForm(c)
	tent := model.MerchTent{
		StageID:         f.id("stage_identry"),
		NumberOfWorkers: f.count("num_workersentry"),
	}
	if err := f.check(); err != nil {
		return err
	}
	err := h.withStore(c, func(ctx context.Context, s *repository.Store) error {
		return s.Merch.CreateTent(ctx, &tent)
	})
	return h.created(c, err, "merch_tent", tent.ID, f)
}

// AddItem inserts a merch item.
func (h *Handler) AddItem(c echo.Context) error {
	f := newForm(c)
	item := model.MerchItem{
		TentID:          f.id("item_tentidentry"),
		Name:            f.str("item_nameentry"),
		Type:            f.str("merchitemtype"),
		NumberRemaining: f.count("num_remainingentry"),
		Price:           f.price("price_entry"),
	}
	if err := f.check(); err != nil {
		return err
	}
	err := h.withStore(c, func(ctx context.Context, s *repository.Store) error {
		return s.Merch.CreateItem(ctx, &item)
	})
	return h.created(c, err, "merch_item", item.ID, f)
}

// AddTicket records a ticket sale.
func (h *Handler) AddTicket(c echo.Context) error {
	f := newForm(c)
	ticket := model.Ticket{
		Type:          f.str("ticket_typeentry"),
		PurchaserName: f.str("purchaser_nameentry"),
		PurchaserAge:  f.count("purchaser_ageentry"),
	}
	if err := f.check(); err != nil {
		return err
	}
	err := h.withStore(c, func(ctx context.Context, s *repository.Store) error {
		return s.Tickets.Create(ctx, &ticket)
	})
	return h.created(c, err, "ticket", ticket.ID, f)
}

// AddConcession inserts a concession area.
func (h *Handler) AddConcession(c echo.Context) error {
	f := newForm(c)
	area := model.ConcessionArea{
		StageID:        f.id("con_stage_identry"),
		Name:           f.str("area_nameentry"),
		NumberOfStands: f.count("num_standsentry"),
	}
	if err := f.check(); err != nil {
		return err
	}
	err := h.withStore(c, func(ctx context.Context, s *repository.Store) error {
		return s.Food.CreateArea(ctx, &area)
	})
	return h.created(c, err, "concession_area", area.ID, f)
}

// AddStand inserts a food stand.
func (h *Handler) AddStand(c echo.Context) error {
	f := newForm(c)
	stand := model.Stand{
		AreaID: f.id("stand_areaidentry"),
		Name:   f.str("stand_nameentry"),
	}
	if err := f.check(); err != nil {
		return err
	}
	err := h.withStore(c, func(ctx context.Context, s *repository.Store) error {
		return s.Food.CreateStand(ctx, &stand)
	})
	return h.created(c, err, "stand", stand.ID, f)
}

// AddDish inserts a dish on a stand's menu.
func (h *Handler) AddDish(c echo.Context) error {
	f := newForm(c)
	dish := model.Dish{
		StandID:  f.id("dish_stand_identry"),
		Name:     f.str("dish_nameentry"),
		Price:    f.price("dish_priceentry"),
		ItemType: f.str("dish_item_typeentry"),
	}
	if err := f.check(); err != nil {
		return err
	}
	err := h.withStore(c, func(ctx context.Context, s *repository.Store) error {
		return s.Food.CreateDish(ctx, &dish)
	})
	return h.created(c, err, "dish", dish.ID, f)
}

// created finishes a write route: on success it announces the new row and
// redirects home.  Publish failures are logged and never fail the request.
func (h *Handler) created(c echo.Context, err error, table string, id int64, f *form) error {
	if err != nil {
		return err
	}
	h.Logger.Info("record created", "table", table, "id", id)

	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request().Context()), dbTimeout)
	defer cancel()
	if err := h.Publisher.PublishRecordCreated(ctx, service.NewRecordCreated(table, id, f.values)); err != nil {
		h.Logger.Warn("publish record_created failed", "table", table, "id", id, "err", err)
	}
	return c.Redirect(http.StatusFound, "/")
}
