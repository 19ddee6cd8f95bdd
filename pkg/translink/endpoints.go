package translink

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed endpoints.yaml
var endpointsYaml []byte

// Endpoints describes the agency's API surface. Definitions ship embedded in
// the binary so a deployment never depends on a working directory layout.
type Endpoints struct {
	GTFS struct {
		BaseURL         string `yaml:"base_url"`
		PositionsPath   string `yaml:"positions_path"`
		TripUpdatesPath string `yaml:"trip_updates_path"`
	} `yaml:"gtfs"`

	RTTI struct {
		BaseURL    string `yaml:"base_url"`
		RoutesPath string `yaml:"routes_path"`
	} `yaml:"rtti"`
}

func loadEndpoints() (Endpoints, error) {
	var endpoints Endpoints

	if err := yaml.Unmarshal(endpointsYaml, &endpoints); err != nil {
		return Endpoints{}, err
	}

	return endpoints, nil
}
