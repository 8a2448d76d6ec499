package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface lists the operations of api/openapi.yml.
type ServerInterface interface {
	// GET /api/v1/cobblers
	GetCobblers(ctx echo.Context) error
	// POST /api/v1/cobblers
	StartCobbler(ctx echo.Context) error
	// GET /api/v1/cobblers/{cobblerId}
	GetCobbler(ctx echo.Context, cobblerId openapi_types.UUID) error
	// PUT /api/v1/cobblers/{cobblerId}/fruit
	ChooseFruitFilling(ctx echo.Context, cobblerId openapi_types.UUID) error
	// POST /api/v1/cobblers/{cobblerId}/fruit/{fruit}
	SelectFruitFilling(ctx echo.Context, cobblerId openapi_types.UUID, fruit string) error
	// PUT /api/v1/cobblers/{cobblerId}/ice-cream
	ServeWithIceCream(ctx echo.Context, cobblerId openapi_types.UUID) error
	// GET /api/v1/cobblers/{cobblerId}/ticket
	GetCobblerTicket(ctx echo.Context, cobblerId openapi_types.UUID) error
}

// ServerInterfaceWrapper binds path parameters before calling the handler.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetCobblers(ctx echo.Context) error {
	return w.Handler.GetCobblers(ctx)
}

func (w *ServerInterfaceWrapper) StartCobbler(ctx echo.Context) error {
	return w.Handler.StartCobbler(ctx)
}

func (w *ServerInterfaceWrapper) GetCobbler(ctx echo.Context) error {
	cobblerId, err := bindCobblerID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetCobbler(ctx, cobblerId)
}

func (w *ServerInterfaceWrapper) ChooseFruitFilling(ctx echo.Context) error {
	cobblerId, err := bindCobblerID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ChooseFruitFilling(ctx, cobblerId)
}

func (w *ServerInterfaceWrapper) SelectFruitFilling(ctx echo.Context) error {
	cobblerId, err := bindCobblerID(ctx)
	if err != nil {
		return err
	}

	var fruit string
	err = runtime.BindStyledParameterWithOptions("simple", "fruit", ctx.Param("fruit"), &fruit,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter fruit: %s", err))
	}

	return w.Handler.SelectFruitFilling(ctx, cobblerId, fruit)
}

func (w *ServerInterfaceWrapper) ServeWithIceCream(ctx echo.Context) error {
	cobblerId, err := bindCobblerID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ServeWithIceCream(ctx, cobblerId)
}

func (w *ServerInterfaceWrapper) GetCobblerTicket(ctx echo.Context) error {
	cobblerId, err := bindCobblerID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetCobblerTicket(ctx, cobblerId)
}

func bindCobblerID(ctx echo.Context) (openapi_types.UUID, error) {
	var cobblerId openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "cobblerId", ctx.Param("cobblerId"), &cobblerId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return cobblerId, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter cobblerId: %s", err))
	}
	return cobblerId, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every API route to router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL adds every API route under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/cobblers", wrapper.GetCobblers)
	router.POST(baseURL+"/api/v1/cobblers", wrapper.StartCobbler)
	router.GET(baseURL+"/api/v1/cobblers/:cobblerId", wrapper.GetCobbler)
	router.PUT(baseURL+"/api/v1/cobblers/:cobblerId/fruit", wrapper.ChooseFruitFilling)
	router.POST(baseURL+"/api/v1/cobblers/:cobblerId/fruit/:fruit", wrapper.SelectFruitFilling)
	router.PUT(baseURL+"/api/v1/cobblers/:cobblerId/ice-cream", wrapper.ServeWithIceCream)
	router.GET(baseURL+"/api/v1/cobblers/:cobblerId/ticket", wrapper.GetCobblerTicket)
}
