package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_ContainsFireEcosystem(t *testing.T) {
	reg := New()

	assert.Equal(t, 7, reg.Len())
	assert.Equal(t, []string{
		"firebet", "firebranding", "firecontractor", "firecrm",
		"firecrypto", "firefleet", "roomlens",
	}, reg.Names())

	svc := reg.Services()["firecontractor"]
	assert.Equal(t, StatusPlanned, svc.Status)
	assert.NotEmpty(t, svc.URL)
	assert.NotEmpty(t, svc.Description)
}

func TestTally(t *testing.T) {
	tally := New().Tally()

	assert.Equal(t, 7, tally.Total)
	assert.Equal(t, 0, tally.Live)
	assert.Equal(t, 7, tally.Planned)
}

func TestServices_ReturnsCopy(t *testing.T) {
	reg := New()

	services := reg.Services()
	services["firebet"] = Service{Status: StatusLive}
	delete(services, "roomlens")

	// The registry itself must be unaffected.
	assert.Equal(t, 7, reg.Len())
	assert.Equal(t, StatusPlanned, reg.Services()["firebet"].Status)
}

func TestStatuses(t *testing.T) {
	statuses := New().Statuses()

	assert.Len(t, statuses, 7)
	for name, status := range statuses {
		assert.Equal(t, StatusPlanned, status, "service: %s", name)
	}
}
