package queries_test

import (
	"testing"

	"pointofsale/internal/core/application/usecases/queries"
	"pointofsale/internal/core/domain/model/kernel"
	"pointofsale/internal/core/domain/model/menu"
	"pointofsale/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllCobblersQuery_Valid(t *testing.T) {
	query := queries.NewGetAllCobblersQuery()
	require.NoError(t, query.Validate())
}

func TestGetAllCobblersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllCobblersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllCobblersQueryIsNotConstructed)
}

func TestNewGetCobblerQuery(t *testing.T) {
	t.Run("should keep the id", func(t *testing.T) {
		id := kernel.NewUUID()

		query, err := queries.NewGetCobblerQuery(id)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.CobblerID().IsEqual(id))
	})

	t.Run("should reject the zero id", func(t *testing.T) {
		query, err := queries.NewGetCobblerQuery(kernel.UUID{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, query.Validate(), queries.ErrGetCobblerQueryIsNotConstructed)
	})
}

func TestGetCobblerQueryResponse_OrderItem(t *testing.T) {
	t.Run("should report what the cobbler computed", func(t *testing.T) {
		cobbler, err := menu.RestoreCobbler(kernel.NewUUID(), menu.Blueberry, false)
		require.NoError(t, err)

		var item menu.OrderItem = queries.NewGetCobblerQueryResponse(cobbler)

		assert.Equal(t, cobbler.Price(), item.Price())
		assert.Equal(t, cobbler.SpecialInstructions(), item.SpecialInstructions())
	})

	t.Run("should print as a ticket", func(t *testing.T) {
		cobbler, err := menu.RestoreCobbler(kernel.NewUUID(), menu.Peach, false)
		require.NoError(t, err)
		response := queries.NewGetCobblerQueryResponse(cobbler)

		ticket, err := services.NewTicketPrinter().Print(response.Fruit.String()+" Cobbler", response)

		require.NoError(t, err)
		assert.Equal(t, "Peach Cobbler $4.25\n  - Hold Ice Cream", ticket)
	})

	t.Run("should return a copy of the special instructions", func(t *testing.T) {
		cobbler, err := menu.RestoreCobbler(kernel.NewUUID(), menu.Cherry, false)
		require.NoError(t, err)
		response := queries.NewGetCobblerQueryResponse(cobbler)

		instructions := response.SpecialInstructions()
		instructions[0] = "Extra Ice Cream"

		assert.Equal(t, []string{menu.InstructionHoldIceCream}, response.SpecialInstructions())
	})

	t.Run("should never return nil instructions", func(t *testing.T) {
		cobbler, err := menu.RestoreCobbler(kernel.NewUUID(), menu.Cherry, true)
		require.NoError(t, err)
		response := queries.NewGetCobblerQueryResponse(cobbler)

		assert.NotNil(t, response.SpecialInstructions())
		assert.Empty(t, response.SpecialInstructions())
	})
}
