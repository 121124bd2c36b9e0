package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, OrderStatusCompleted.Terminal())
	assert.True(t, OrderStatusCancelled.Terminal())

	assert.False(t, OrderStatusPending.Terminal())
	assert.False(t, OrderStatusInstalled.Terminal())
	assert.False(t, OrderStatusContractConfirmed.Terminal())
}

func TestOrder_LegacyPhaseImage(t *testing.T) {
	producing := "producing-key"
	installed := "installed-key"

	order := Order{
		ID:             1,
		Status:         OrderStatusInstalled,
		ProducingImage: &producing,
		InstalledImage: &installed,
	}

	assert.Equal(t, &producing, order.LegacyPhaseImage(ProgressStatusProducing))
	assert.Equal(t, &installed, order.LegacyPhaseImage(ProgressStatusInstalled))
	assert.Nil(t, order.LegacyPhaseImage(ProgressStatusDelivering))
	assert.Nil(t, order.LegacyPhaseImage(ProgressStatusProductionCompleted))
}

func TestOrder_LegacyPhaseImage_UnknownPhase(t *testing.T) {
	key := "key"
	order := Order{ProducingImage: &key}

	assert.Nil(t, order.LegacyPhaseImage(ProgressStatus("SOMETHING_ELSE")))
}

func TestProductionPhases_Order(t *testing.T) {
	phases := ProductionPhases()

	assert.Equal(t, []ProgressStatus{
		ProgressStatusProducing,
		ProgressStatusProductionCompleted,
		ProgressStatusDelivering,
		ProgressStatusInstalled,
	}, phases)
}
