package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pointofsale/api"
	httpadapter "pointofsale/internal/adapters/in/http"
	"pointofsale/internal/core/application/usecases/commands"
	"pointofsale/internal/core/application/usecases/queries"
	"pointofsale/internal/core/domain/model/kernel"
	"pointofsale/internal/core/domain/model/menu"
	"pointofsale/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStartCobblerHandler struct{ mock.Mock }

func (m *MockStartCobblerHandler) Handle(ctx context.Context, cmd commands.StartCobblerCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockChooseFruitFillingHandler struct{ mock.Mock }

func (m *MockChooseFruitFillingHandler) Handle(ctx context.Context, cmd commands.ChooseFruitFillingCommand) ([]string, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockServeWithIceCreamHandler struct{ mock.Mock }

func (m *MockServeWithIceCreamHandler) Handle(ctx context.Context, cmd commands.ServeWithIceCreamCommand) ([]string, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockGetCobblerHandler struct{ mock.Mock }

func (m *MockGetCobblerHandler) Handle(ctx context.Context, query queries.GetCobblerQuery) (queries.GetCobblerQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetCobblerQueryResponse), args.Error(1)
}

type MockGetAllCobblersHandler struct{ mock.Mock }

func (m *MockGetAllCobblersHandler) Handle(ctx context.Context, query queries.GetAllCobblersQuery) ([]queries.GetCobblerQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetCobblerQueryResponse), args.Error(1)
}

type fixture struct {
	e        *echo.Echo
	start    *MockStartCobblerHandler
	choose   *MockChooseFruitFillingHandler
	iceCream *MockServeWithIceCreamHandler
	getOne   *MockGetCobblerHandler
	getAll   *MockGetAllCobblersHandler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		start:    new(MockStartCobblerHandler),
		choose:   new(MockChooseFruitFillingHandler),
		iceCream: new(MockServeWithIceCreamHandler),
		getOne:   new(MockGetCobblerHandler),
		getAll:   new(MockGetAllCobblersHandler),
	}

	doc, err := api.Load()
	require.NoError(t, err)

	server := httpadapter.NewServer(f.start, f.choose, f.iceCream, f.getOne, f.getAll)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.e, err = httpadapter.NewEcho(server, doc, logger)
	require.NoError(t, err)

	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func response(id kernel.UUID, fruit menu.FruitFilling, withIceCream bool) queries.GetCobblerQueryResponse {
	c, _ := menu.RestoreCobbler(id, fruit, withIceCream)
	return queries.NewGetCobblerQueryResponse(c)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpadapter.Error {
	t.Helper()
	var body httpadapter.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestServer_Health(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestServer_OpenAPI(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/openapi.json", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/v1/cobblers/{cobblerId}/fruit/{fruit}")
}

func TestServer_StartCobbler(t *testing.T) {
	f := newFixture(t)
	id := kernel.NewUUID()
	f.start.On("Handle", mock.Anything, mock.Anything).Return(id, nil).Once()
	f.getOne.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetCobblerQuery) bool {
		return q.CobblerID().IsEqual(id)
	})).Return(response(id, menu.Cherry, true), nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/cobblers", "")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/v1/cobblers/"+id.String(), rec.Header().Get(echo.HeaderLocation))
	assert.JSONEq(t, `{
		"id": "`+id.String()+`",
		"fruit": "Cherry",
		"withIceCream": true,
		"price": 5.32,
		"specialInstructions": []
	}`, rec.Body.String())
	f.start.AssertExpectations(t)
	f.getOne.AssertExpectations(t)
}

func TestServer_GetCobblers(t *testing.T) {
	f := newFixture(t)
	id := kernel.NewUUID()
	f.getAll.On("Handle", mock.Anything, mock.Anything).
		Return([]queries.GetCobblerQueryResponse{response(id, menu.Peach, false)}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/cobblers", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{
		"id": "`+id.String()+`",
		"fruit": "Peach",
		"withIceCream": false,
		"price": 4.25,
		"specialInstructions": ["Hold Ice Cream"]
	}]`, rec.Body.String())
}

func TestServer_GetCobbler(t *testing.T) {
	t.Run("should return 404 for a missing line", func(t *testing.T) {
		f := newFixture(t)
		id := kernel.NewUUID()
		f.getOne.On("Handle", mock.Anything, mock.Anything).
			Return(queries.GetCobblerQueryResponse{}, errs.NewObjectNotFoundError("cobbler", id.String())).Once()

		rec := f.do(http.MethodGet, "/api/v1/cobblers/"+id.String(), "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, int32(http.StatusNotFound), body.Code)
		assert.Contains(t, body.Message, id.String())
	})

	t.Run("should return 400 for a malformed id", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/cobblers/not-a-uuid", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, int32(http.StatusBadRequest), decodeError(t, rec).Code)
		f.getOne.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should hide internal errors", func(t *testing.T) {
		f := newFixture(t)
		f.getOne.On("Handle", mock.Anything, mock.Anything).
			Return(queries.GetCobblerQueryResponse{}, errors.New("connection reset by peer")).Once()

		rec := f.do(http.MethodGet, "/api/v1/cobblers/"+kernel.NewUUID().String(), "")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})
}

func TestServer_ChooseFruitFilling(t *testing.T) {
	t.Run("should announce fruit and special instructions", func(t *testing.T) {
		f := newFixture(t)
		id := kernel.NewUUID()
		f.choose.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ChooseFruitFillingCommand) bool {
			return cmd.CobblerID().IsEqual(id) && cmd.Fruit() == menu.Peach
		})).Return([]string{menu.PropertyFruit, menu.PropertySpecialInstructions}, nil).Once()

		rec := f.do(http.MethodPut, "/api/v1/cobblers/"+id.String()+"/fruit", `{"fruit":"peach"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"changed":["Fruit","SpecialInstructions"]}`, rec.Body.String())
		f.choose.AssertExpectations(t)
	})

	t.Run("should reject an unknown fruit", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPut, "/api/v1/cobblers/"+kernel.NewUUID().String()+"/fruit", `{"fruit":"Apple"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, `"Apple" is not a fruit filling`)
		f.choose.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should reject a body that breaks the contract", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPut, "/api/v1/cobblers/"+kernel.NewUUID().String()+"/fruit", `{}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		f.choose.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestServer_SelectFruitFilling(t *testing.T) {
	for _, fruit := range menu.FruitFillings() {
		t.Run(fruit.String(), func(t *testing.T) {
			f := newFixture(t)
			id := kernel.NewUUID()
			f.choose.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ChooseFruitFillingCommand) bool {
				return cmd.Fruit() == fruit
			})).Return([]string{menu.PropertyFruit, menu.PropertySpecialInstructions}, nil).Once()

			rec := f.do(http.MethodPost, "/api/v1/cobblers/"+id.String()+"/fruit/"+fruit.String(), "")

			require.Equal(t, http.StatusOK, rec.Code)
			f.choose.AssertExpectations(t)
		})
	}
}

func TestServer_ServeWithIceCream(t *testing.T) {
	t.Run("should hold ice cream", func(t *testing.T) {
		f := newFixture(t)
		id := kernel.NewUUID()
		f.iceCream.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ServeWithIceCreamCommand) bool {
			return cmd.CobblerID().IsEqual(id) && !cmd.WithIceCream()
		})).Return([]string{menu.PropertyWithIceCream, menu.PropertySpecialInstructions}, nil).Once()

		rec := f.do(http.MethodPut, "/api/v1/cobblers/"+id.String()+"/ice-cream", `{"withIceCream":false}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"changed":["WithIceCream","SpecialInstructions"]}`, rec.Body.String())
		f.iceCream.AssertExpectations(t)
	})

	t.Run("should require the flag", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPut, "/api/v1/cobblers/"+kernel.NewUUID().String()+"/ice-cream", `{"withIceCream":"no"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		f.iceCream.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestServer_GetCobblerTicket(t *testing.T) {
	f := newFixture(t)
	id := kernel.NewUUID()
	f.getOne.On("Handle", mock.Anything, mock.Anything).Return(response(id, menu.Blueberry, false), nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/cobblers/"+id.String()+"/ticket", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Blueberry Cobbler $4.25\n  - Hold Ice Cream", rec.Body.String())
}
