package registry

import "sort"

// Service statuses.
const (
	StatusLive    = "live"
	StatusPlanned = "planned"
)

// Service is one peer of the hub.
type Service struct {
	URL         string `json:"url"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// Registry is the fixed set of ecosystem services. Built once at startup and
// injected into the handlers; accessors hand out copies so callers cannot
// mutate the shared value.
type Registry struct {
	services map[string]Service
}

// Tally counts services per status.
type Tally struct {
	Total   int `json:"total_services"`
	Live    int `json:"operational_services"`
	Planned int `json:"planned_services"`
}

// New returns the default Fire ecosystem registry.
func New() *Registry {
	return &Registry{services: map[string]Service{
		"firebet": {
			URL:         "https://firebet-production.railway.app",
			Status:      StatusPlanned,
			Description: "Sports betting intelligence and predictions",
		},
		"firecrypto": {
			URL:         "https://firecrypto-production.railway.app",
			Status:      StatusPlanned,
			Description: "Cryptocurrency market intelligence and predictions",
		},
		"firecrm": {
			URL:         "https://firecrm-production.railway.app",
			Status:      StatusPlanned,
			Description: "Customer relationship management and lead intelligence",
		},
		"firebranding": {
			URL:         "https://firebranding-production.railway.app",
			Status:      StatusPlanned,
			Description: "Digital presence analysis and branding intelligence",
		},
		"firecontractor": {
			URL:         "https://firecontractor-production.railway.app",
			Status:      StatusPlanned,
			Description: "Construction project management and optimization",
		},
		"firefleet": {
			URL:         "https://firefleet-production.railway.app",
			Status:      StatusPlanned,
			Description: "Fleet logistics and route optimization",
		},
		"roomlens": {
			URL:         "https://roomlens-production.railway.app",
			Status:      StatusPlanned,
			Description: "Property analytics and real estate intelligence",
		},
	}}
}

// Services returns a copy of the full service map.
func (r *Registry) Services() map[string]Service {
	out := make(map[string]Service, len(r.services))
	for name, svc := range r.services {
		out[name] = svc
	}
	return out
}

// Names returns the service names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.services))
	for name := range r.services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Statuses returns name -> status.
func (r *Registry) Statuses() map[string]string {
	out := make(map[string]string, len(r.services))
	for name, svc := range r.services {
		out[name] = svc.Status
	}
	return out
}

func (r *Registry) Tally() Tally {
	t := Tally{Total: len(r.services)}
	for _, svc := range r.services {
		switch svc.Status {
		case StatusLive:
			t.Live++
		case StatusPlanned:
			t.Planned++
		}
	}
	return t
}

func (r *Registry) Len() int { return len(r.services) }
