// Package agents holds the catalog of voice agents that the frontend lists
// and places calls with.
package agents

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// ErrInvalidCatalog is returned when a catalog cannot be parsed or fails validation.
var ErrInvalidCatalog = errors.New("invalid agent catalog")

// Agent status values.
const (
	StatusOperational = "Operativo"
	StatusWarning     = "Advertencia"
	StatusCritical    = "Crítico"
)

// TransferTarget is a destination a live call can be handed off to.
type TransferTarget struct {
	Name   string `yaml:"name"   json:"name"   validate:"required"`
	Number string `yaml:"number" json:"number" validate:"required"`
}

// Metrics summarizes an agent's call activity. AvgHandleTime is in seconds.
type Metrics struct {
	OutboundCalls int `yaml:"outboundCalls" json:"outboundCalls"`
	Transfers     int `yaml:"transfers"     json:"transfers"`
	AvgHandleTime int `yaml:"avgHandleTime" json:"avgHandleTime"`
}

// Jira summarizes the issue tracker state for an agent.
type Jira struct {
	OpenIssues int `yaml:"openIssues" json:"openIssues"`
	Backlog    int `yaml:"backlog"    json:"backlog"`
}

// Agent is a configured voice agent.
type Agent struct {
	ID              string           `yaml:"id"              json:"id"     validate:"required"`
	Name            string           `yaml:"name"            json:"name"   validate:"required"`
	Team            string           `yaml:"team"            json:"team"`
	Status          string           `yaml:"status"          json:"status" validate:"omitempty,oneof=Operativo Advertencia Crítico"`
	Metrics         Metrics          `yaml:"metrics"         json:"metrics"`
	Jira            Jira             `yaml:"jira"            json:"jira"`
	TransferTargets []TransferTarget `yaml:"transferTargets" json:"transferTargets" validate:"dive"`
}

// Catalog is an immutable, ordered set of agents.
type Catalog struct {
	agents []Agent
	byID   map[string]int
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog from path. An empty path returns the embedded catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read agent catalog: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var list []Agent
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	validate := validator.New()
	c := &Catalog{
		agents: make([]Agent, 0, len(list)),
		byID:   make(map[string]int, len(list)),
	}

	for i, agent := range list {
		if err := validate.Struct(agent); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidCatalog, i, err)
		}
		if _, dup := c.byID[agent.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate agent id %q", ErrInvalidCatalog, agent.ID)
		}
		if agent.TransferTargets == nil {
			agent.TransferTargets = []TransferTarget{}
		}
		c.byID[agent.ID] = len(c.agents)
		c.agents = append(c.agents, agent)
	}

	return c, nil
}

// List returns all agents in catalog order.
func (c *Catalog) List() []Agent {
	out := make([]Agent, len(c.agents))
	copy(out, c.agents)
	return out
}

// Get returns the agent with the given id.
func (c *Catalog) Get(id string) (Agent, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Agent{}, false
	}
	return c.agents[i], true
}
