// Package v1alpha1 exposes the facility core's query and mutation entry
// points over HTTP.
package v1alpha1

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/facilitydesk/facility-api/internal/access"
	"github.com/facilitydesk/facility-api/internal/entities"
	"github.com/facilitydesk/facility-api/internal/errors"
	"github.com/facilitydesk/facility-api/internal/facility"
	"github.com/facilitydesk/facility-api/internal/orchestrators/movement"
	"github.com/facilitydesk/facility-api/internal/orchestrators/routing"
	"github.com/facilitydesk/facility-api/internal/orchestrators/tracing"
)

// HandlerConfig holds the dependencies for the API handler
type HandlerConfig struct {
	Facility *facility.Facility
	Policy   *access.Policy
	Movement movement.Service
	Tracing  tracing.Service
	Routing  routing.Service
}

// Validate ensures all required dependencies are provided
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Facility == nil {
		vb.RequiredField("Facility")
	}
	if c.Policy == nil {
		vb.RequiredField("Policy")
	}
	if c.Movement == nil {
		vb.RequiredField("Movement")
	}
	if c.Tracing == nil {
		vb.RequiredField("Tracing")
	}
	if c.Routing == nil {
		vb.RequiredField("Routing")
	}

	return vb.Build()
}

// Handler serves the v1 facility API
type Handler struct {
	facility *facility.Facility
	policy   *access.Policy
	movement movement.Service
	tracing  tracing.Service
	routing  routing.Service
}

// NewHandler creates an API handler with the provided dependencies
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		facility: cfg.Facility,
		policy:   cfg.Policy,
		movement: cfg.Movement,
		tracing:  cfg.Tracing,
		routing:  cfg.Routing,
	}, nil
}

// RegisterRoutes attaches the API routes to a gin engine
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", h.health)

	v1 := r.Group("/v1")
	v1.GET("/rooms/:id", h.getRoom)
	v1.GET("/rooms/:id/accessible", h.accessibleRooms)
	v1.GET("/rooms/:id/exits", h.nearestExits)
	v1.GET("/rooms/:id/contacts", h.roomContacts)
	v1.GET("/people/:id", h.getPerson)
	v1.GET("/people/:id/contacts", h.personContacts)
	v1.POST("/moves", h.createMove)
}

// Response shapes

type roomResponse struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	Type              string   `json:"type"`
	Capacity          int      `json:"capacity"`
	CurrentOccupation int      `json:"currentOccupation"`
	Occupied          bool     `json:"occupied"`
	Access            []string `json:"access"`
	Occupants         []int    `json:"occupants"`
}

type personResponse struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Function      string `json:"function"`
	CurrentRoomID int    `json:"currentRoomId"`
}

type contactResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Function string `json:"function"`
}

type exitRouteResponse struct {
	ExitID    int      `json:"exitId"`
	ExitName  string   `json:"exitName"`
	Reachable bool     `json:"reachable"`
	Weight    *float64 `json:"weight,omitempty"`
	Path      []int    `json:"path"`
}

type moveRequest struct {
	PersonID int `json:"personId"`
	ToRoomID int `json:"toRoomId"`
}

func toRoomResponse(room *entities.Room) roomResponse {
	accessList := make([]string, 0, len(room.Access()))
	for _, role := range room.Access() {
		accessList = append(accessList, string(role))
	}
	occupants := make([]int, 0, len(room.Occupants()))
	for _, p := range room.Occupants() {
		occupants = append(occupants, p.ID)
	}
	return roomResponse{
		ID:                room.ID,
		Name:              room.Name,
		Type:              string(room.Type),
		Capacity:          room.Capacity,
		CurrentOccupation: room.CurrentOccupation,
		Occupied:          room.Occupied,
		Access:            accessList,
		Occupants:         occupants,
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) getRoom(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	room, err := h.facility.RoomByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRoomResponse(room))
}

func (h *Handler) getPerson(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	person, err := h.facility.PersonByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	location, err := h.facility.CurrentLocation(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, personResponse{
		ID:            person.ID,
		Name:          person.Name,
		Age:           person.Age,
		Function:      string(person.Role),
		CurrentRoomID: location.ID,
	})
}

func (h *Handler) accessibleRooms(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	role, err := entities.ParseRole(c.Query("role"))
	if err != nil {
		respondError(c, err)
		return
	}

	neighbors, err := h.policy.AccessibleNeighbors(id, role)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]roomResponse, 0, len(neighbors))
	for _, room := range neighbors {
		out = append(out, toRoomResponse(room))
	}
	c.JSON(http.StatusOK, gin.H{"rooms": out})
}

func (h *Handler) nearestExits(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	routes, err := h.routing.RouteToExits(c.Request.Context(), &routing.RouteToExitsInput{StartRoomID: id})
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]exitRouteResponse, 0, len(routes.Routes))
	for _, route := range routes.Routes {
		resp := exitRouteResponse{
			ExitID:   route.Exit.ID,
			ExitName: route.Exit.Name,
			Path:     make([]int, 0, len(route.Path)),
		}
		for _, room := range route.Path {
			resp.Path = append(resp.Path, room.ID)
		}
		// Infinity does not survive JSON; unreachable exits report
		// reachable=false with no weight.
		if !math.IsInf(route.Weight, 1) {
			weight := route.Weight
			resp.Reachable = true
			resp.Weight = &weight
		}
		out = append(out, resp)
	}
	c.JSON(http.StatusOK, gin.H{"exits": out})
}

func (h *Handler) personContacts(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	from, to, ok := windowParams(c)
	if !ok {
		return
	}

	contacts, err := h.tracing.ContactsOfPerson(c.Request.Context(), &tracing.ContactsOfPersonInput{
		PersonID: id,
		From:     from,
		To:       to,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": contactIDs(contacts.Contacts)})
}

func (h *Handler) roomContacts(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	from, to, ok := windowParams(c)
	if !ok {
		return
	}

	contacts, err := h.tracing.ContactsOfRoom(c.Request.Context(), &tracing.ContactsOfRoomInput{
		RoomID: id,
		From:   from,
		To:     to,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": contactIDs(contacts.Contacts)})
}

func (h *Handler) createMove(c *gin.Context) {
	var req moveRequest
	if err := c.BindJSON(&req); err != nil {
		slog.Error("failed to parse move request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	out, err := h.movement.Move(c.Request.Context(), &movement.MoveInput{
		PersonID: req.PersonID,
		ToRoomID: req.ToRoomID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"eventId":    out.Event.ID,
		"personId":   out.Event.PersonID,
		"fromRoomId": out.Event.FromRoomID,
		"toRoomId":   out.Event.ToRoomID,
		"time":       out.Event.Timestamp.Format(entities.TimestampLayout),
	})
}

// Helpers

func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return 0, false
	}
	return id, true
}

func windowParams(c *gin.Context) (from, to time.Time, ok bool) {
	from, err := time.Parse(entities.TimestampLayout, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be a timestamp like 2006-01-02T15:04:05"})
		return time.Time{}, time.Time{}, false
	}
	to, err = time.Parse(entities.TimestampLayout, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must be a timestamp like 2006-01-02T15:04:05"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func contactIDs(contacts []*entities.Person) []contactResponse {
	out := make([]contactResponse, 0, len(contacts))
	for _, p := range contacts {
		out = append(out, contactResponse{
			ID:       p.ID,
			Name:     p.Name,
			Age:      p.Age,
			Function: string(p.Role),
		})
	}
	return out
}

func respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	if code == errors.CodeInternal || code == errors.CodeUnavailable {
		slog.Error("request failed", "error", err, "path", c.FullPath())
	}
	c.JSON(code.HTTPStatus(), gin.H{
		"code":  code.String(),
		"error": errors.GetMessage(err),
	})
}
