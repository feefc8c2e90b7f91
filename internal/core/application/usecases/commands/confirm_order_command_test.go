package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfirmOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewConfirmOrderCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
}

func TestNewConfirmOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewConfirmOrderCommand(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestConfirmOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.ConfirmOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrConfirmOrderCommandIsNotConstructed)
}
