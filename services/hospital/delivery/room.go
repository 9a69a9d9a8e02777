package delivery

import (
	"errors"
	"fmt"

	"hospital/domain"
	"hospital/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type roomHandler struct {
	ruc   domain.RoomUseCase
	flash *middleware.Flash
}

func NewRoomDelivery(app *fiber.App, uc domain.RoomUseCase, flash *middleware.Flash) {
	handler := &roomHandler{
		ruc:   uc,
		flash: flash,
	}

	route := app.Group("/rooms")
	route.Get("/", handler.GetAllRoom)
	route.Get("/new", handler.NewRoomForm)
	route.Post("/", handler.CreateRoom)
	route.Get("/:id", handler.ViewRoom)
	route.Get("/:id/edit", handler.EditRoomForm)
	route.Put("/:id", handler.UpdateRoom)
	route.Delete("/:id", handler.DeleteRoom)
}

// Unexpected failures in room handlers propagate to the app error handler,
// which logs them and renders the generic error page.

func (rh *roomHandler) GetAllRoom(c *fiber.Ctx) error {
	rooms, err := rh.ruc.GetAllRoom(c.Context())
	if err != nil {
		return err
	}

	return render(c, rh.flash, "rooms/all_rooms", fiber.Map{"Rooms": *rooms})
}

func (rh *roomHandler) NewRoomForm(c *fiber.Ctx) error {
	return render(c, rh.flash, "rooms/new_room", nil)
}

func (rh *roomHandler) CreateRoom(c *fiber.Ctx) error {
	roomNumber := c.FormValue("roomNumber")
	roomType := c.FormValue("type")

	if roomNumber == "" || roomType == "" {
		rh.flash.Error(c, "Room number and type are required.")
		return c.Redirect("/rooms/new")
	}

	payload := &domain.Room{
		RoomNumber: roomNumber,
		Type:       roomType,
		IsOccupied: c.FormValue("isOccupied") == "on",
	}

	if err := rh.ruc.CreateRoom(c.Context(), payload); err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrDuplicateRoomNumber):
			rh.flash.Error(c, "Room number already exists. Please use a unique number.")
			return c.Redirect("/rooms/new")
		case errors.As(err, &verr):
			rh.flash.Error(c, verr.Error())
			return c.Redirect("/rooms/new")
		default:
			return err
		}
	}

	rh.flash.Success(c, fmt.Sprintf("Room %s added successfully.", payload.RoomNumber))
	return c.Redirect("/rooms")
}

func (rh *roomHandler) ViewRoom(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		rh.flash.Error(c, "Room not found.")
		return c.Redirect("/rooms")
	}

	room, err := rh.ruc.GetRoomByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			rh.flash.Error(c, "Room not found.")
			return c.Redirect("/rooms")
		}
		return err
	}

	return render(c, rh.flash, "rooms/view_room", fiber.Map{"Room": room})
}

func (rh *roomHandler) EditRoomForm(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		rh.flash.Error(c, "Room not found.")
		return c.Redirect("/rooms")
	}

	room, err := rh.ruc.GetRoomByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			rh.flash.Error(c, "Room not found.")
			return c.Redirect("/rooms")
		}
		return err
	}

	return render(c, rh.flash, "rooms/edit_room", fiber.Map{"Room": room})
}

func (rh *roomHandler) UpdateRoom(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		rh.flash.Error(c, "Room not found.")
		return c.Redirect("/rooms")
	}

	payload := &domain.Room{
		RoomNumber: c.FormValue("roomNumber"),
		Type:       c.FormValue("type"),
		IsOccupied: c.FormValue("isOccupied") == "on",
	}

	room, err := rh.ruc.UpdateRoom(c.Context(), id, payload)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrRoomNotFound):
			rh.flash.Error(c, "Room not found.")
			return c.Redirect("/rooms")
		case errors.Is(err, domain.ErrDuplicateRoomNumber):
			rh.flash.Error(c, "Another room with that number already exists.")
			return c.Redirect(fmt.Sprintf("/rooms/%s/edit", id))
		case errors.As(err, &verr):
			rh.flash.Error(c, verr.Error())
			return c.Redirect(fmt.Sprintf("/rooms/%s/edit", id))
		default:
			return err
		}
	}

	rh.flash.Success(c, fmt.Sprintf("Room %s updated successfully.", room.RoomNumber))
	return c.Redirect("/rooms")
}

func (rh *roomHandler) DeleteRoom(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		rh.flash.Error(c, "Room not found.")
		return c.Redirect("/rooms")
	}

	room, err := rh.ruc.DeleteRoom(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			rh.flash.Error(c, "Room not found.")
			return c.Redirect("/rooms")
		}
		return err
	}

	rh.flash.Success(c, fmt.Sprintf("Room %s deleted successfully.", room.RoomNumber))
	return c.Redirect("/rooms")
}
