package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTerminal(t *testing.T) {
	assert.False(t, OrderPendingPayment.Terminal())
	assert.False(t, OrderInReview.Terminal())
	assert.True(t, OrderApproved.Terminal())
	assert.True(t, OrderRejected.Terminal())
	assert.True(t, OrderCancelled.Terminal())
}

func TestOrderTransitionGuards(t *testing.T) {
	pending := &Order{Status: OrderPendingPayment}
	assert.True(t, pending.CanUploadProof())
	assert.True(t, pending.CanCancel())
	assert.False(t, pending.CanReview())

	inReview := &Order{Status: OrderInReview}
	assert.False(t, inReview.CanUploadProof())
	assert.False(t, inReview.CanCancel())
	assert.True(t, inReview.CanReview())

	for _, st := range []OrderStatus{OrderApproved, OrderRejected, OrderCancelled} {
		o := &Order{Status: st}
		assert.False(t, o.CanUploadProof(), st)
		assert.False(t, o.CanReview(), st)
		assert.False(t, o.CanCancel(), st)
	}
}

func TestOrderStatusDescription(t *testing.T) {
	assert.Equal(t, "Pendiente de pago", OrderPendingPayment.Description())
	assert.Equal(t, "En revisión", OrderInReview.Description())
	assert.Equal(t, "desconocido", OrderStatus("desconocido").Description())
}
