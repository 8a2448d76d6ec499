// Package http exposes the point-of-sale use cases over HTTP with echo.
// Routes follow api/openapi.yml.
package http

import (
	"context"
	"net/http"

	"pointofsale/internal/core/application/usecases/commands"
	"pointofsale/internal/core/application/usecases/queries"
	"pointofsale/internal/core/domain/model/kernel"
	"pointofsale/internal/core/domain/model/menu"
	"pointofsale/internal/core/domain/services"
	"pointofsale/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ ServerInterface = (*Server)(nil)

// Use case handlers the server depends on.
type (
	StartCobblerHandler interface {
		Handle(ctx context.Context, cmd commands.StartCobblerCommand) (kernel.UUID, error)
	}

	ChooseFruitFillingHandler interface {
		Handle(ctx context.Context, cmd commands.ChooseFruitFillingCommand) ([]string, error)
	}

	ServeWithIceCreamHandler interface {
		Handle(ctx context.Context, cmd commands.ServeWithIceCreamCommand) ([]string, error)
	}

	GetCobblerHandler interface {
		Handle(ctx context.Context, query queries.GetCobblerQuery) (queries.GetCobblerQueryResponse, error)
	}

	GetAllCobblersHandler interface {
		Handle(ctx context.Context, query queries.GetAllCobblersQuery) ([]queries.GetCobblerQueryResponse, error)
	}
)

// Server implements ServerInterface on top of the command and query handlers.
type Server struct {
	// Command handlers
	startCobblerHandler       StartCobblerHandler
	chooseFruitFillingHandler ChooseFruitFillingHandler
	serveWithIceCreamHandler  ServeWithIceCreamHandler

	// Query handlers
	getCobblerHandler     GetCobblerHandler
	getAllCobblersHandler GetAllCobblersHandler

	ticketPrinter services.TicketPrinter
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	startCobblerHandler StartCobblerHandler,
	chooseFruitFillingHandler ChooseFruitFillingHandler,
	serveWithIceCreamHandler ServeWithIceCreamHandler,
	getCobblerHandler GetCobblerHandler,
	getAllCobblersHandler GetAllCobblersHandler,
) *Server {
	return &Server{
		startCobblerHandler:       startCobblerHandler,
		chooseFruitFillingHandler: chooseFruitFillingHandler,
		serveWithIceCreamHandler:  serveWithIceCreamHandler,
		getCobblerHandler:         getCobblerHandler,
		getAllCobblersHandler:     getAllCobblersHandler,
		ticketPrinter:             services.NewTicketPrinter(),
	}
}

// GetCobblers handles GET /api/v1/cobblers.
func (s *Server) GetCobblers(ctx echo.Context) error {
	cobblers, err := s.getAllCobblersHandler.Handle(ctx.Request().Context(), queries.NewGetAllCobblersQuery())
	if err != nil {
		return err
	}

	response := make([]Cobbler, len(cobblers))
	for i, cobbler := range cobblers {
		response[i] = toCobbler(cobbler)
	}

	return ctx.JSON(http.StatusOK, response)
}

// StartCobbler handles POST /api/v1/cobblers.
func (s *Server) StartCobbler(ctx echo.Context) error {
	id, err := s.startCobblerHandler.Handle(ctx.Request().Context(), commands.NewStartCobblerCommand())
	if err != nil {
		return err
	}

	cobbler, err := s.getCobbler(ctx, id)
	if err != nil {
		return err
	}

	ctx.Response().Header().Set(echo.HeaderLocation, "/api/v1/cobblers/"+id.String())
	return ctx.JSON(http.StatusCreated, toCobbler(cobbler))
}

// GetCobbler handles GET /api/v1/cobblers/{cobblerId}.
func (s *Server) GetCobbler(ctx echo.Context, cobblerId openapi_types.UUID) error {
	id, err := kernel.UUIDFromRaw(cobblerId)
	if err != nil {
		return err
	}

	cobbler, err := s.getCobbler(ctx, id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toCobbler(cobbler))
}

// ChooseFruitFilling handles PUT /api/v1/cobblers/{cobblerId}/fruit.
func (s *Server) ChooseFruitFilling(ctx echo.Context, cobblerId openapi_types.UUID) error {
	var body ChooseFruitFilling
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	return s.chooseFruitFilling(ctx, cobblerId, body.Fruit)
}

// SelectFruitFilling handles POST /api/v1/cobblers/{cobblerId}/fruit/{fruit},
// the storefront's one-click fruit buttons.
func (s *Server) SelectFruitFilling(ctx echo.Context, cobblerId openapi_types.UUID, fruit string) error {
	return s.chooseFruitFilling(ctx, cobblerId, fruit)
}

// ServeWithIceCream handles PUT /api/v1/cobblers/{cobblerId}/ice-cream.
func (s *Server) ServeWithIceCream(ctx echo.Context, cobblerId openapi_types.UUID) error {
	var body ServeWithIceCream
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if body.WithIceCream == nil {
		return errs.NewValueIsRequiredError("withIceCream")
	}

	id, err := kernel.UUIDFromRaw(cobblerId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewServeWithIceCreamCommand(id, *body.WithIceCream)
	if err != nil {
		return err
	}

	changed, err := s.serveWithIceCreamHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, PropertyChanges{Changed: changed})
}

// GetCobblerTicket handles GET /api/v1/cobblers/{cobblerId}/ticket.
func (s *Server) GetCobblerTicket(ctx echo.Context, cobblerId openapi_types.UUID) error {
	id, err := kernel.UUIDFromRaw(cobblerId)
	if err != nil {
		return err
	}

	response, err := s.getCobbler(ctx, id)
	if err != nil {
		return err
	}

	ticket, err := s.ticketPrinter.Print(response.Fruit.String()+" Cobbler", response)
	if err != nil {
		return err
	}

	return ctx.String(http.StatusOK, ticket)
}

func (s *Server) chooseFruitFilling(ctx echo.Context, cobblerId openapi_types.UUID, name string) error {
	fruit, err := menu.ParseFruitFilling(name)
	if err != nil {
		return err
	}

	id, err := kernel.UUIDFromRaw(cobblerId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChooseFruitFillingCommand(id, fruit)
	if err != nil {
		return err
	}

	changed, err := s.chooseFruitFillingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, PropertyChanges{Changed: changed})
}

func (s *Server) getCobbler(ctx echo.Context, id kernel.UUID) (queries.GetCobblerQueryResponse, error) {
	query, err := queries.NewGetCobblerQuery(id)
	if err != nil {
		return queries.GetCobblerQueryResponse{}, err
	}

	return s.getCobblerHandler.Handle(ctx.Request().Context(), query)
}

func toCobbler(cobbler queries.GetCobblerQueryResponse) Cobbler {
	return Cobbler{
		Id:                  cobbler.ID.Raw(),
		Fruit:               cobbler.Fruit.String(),
		WithIceCream:        cobbler.WithIceCream,
		Price:               cobbler.Price(),
		SpecialInstructions: cobbler.SpecialInstructions(),
	}
}

// Health handles GET /health.
func Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}
