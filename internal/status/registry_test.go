package status

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"signflow/internal/domain"
)

func TestRegistry_Describe_KnownStatuses(t *testing.T) {
	registry := NewRegistry()

	d := registry.Describe(KindOrder, string(domain.OrderStatusNeedDepositDesign))
	assert.Equal(t, "Design deposit required", d.Label)
	assert.Equal(t, SeverityWarning, d.Severity)

	d = registry.Describe(KindContract, string(domain.ContractStatusConfirmed))
	assert.Equal(t, "Confirmed", d.Label)
	assert.Equal(t, SeveritySuccess, d.Severity)
}

func TestRegistry_Describe_FailsClosed(t *testing.T) {
	registry := NewRegistry()

	d := registry.Describe(KindOrder, "SOME_FUTURE_STATUS")
	assert.Equal(t, "SOME_FUTURE_STATUS", d.Label)
	assert.Equal(t, SeverityNeutral, d.Severity)

	d = registry.Describe(Kind("unknownKind"), "WHATEVER")
	assert.Equal(t, "WHATEVER", d.Label)
	assert.Equal(t, SeverityNeutral, d.Severity)
}

// Every declared status value of every kind must have a non-empty label.
func TestRegistry_Describe_AlwaysReturnsLabel(t *testing.T) {
	registry := NewRegistry()

	for kind, byValue := range registry.entries {
		for value := range byValue {
			d := registry.Describe(kind, value)
			assert.NotEmpty(t, d.Label, "kind %s value %s", kind, value)
			assert.NotEmpty(t, d.Severity, "kind %s value %s", kind, value)
		}
	}
}

func TestRegistry_CoversAllProductionPhases(t *testing.T) {
	registry := NewRegistry()

	for _, phase := range domain.ProductionPhases() {
		d := registry.Describe(KindProgressLog, string(phase))
		assert.NotEqual(t, string(phase), d.Label, "phase %s should have a display label", phase)
	}
}
