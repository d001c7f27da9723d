package agents

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"property_brochure_backend/internal/domain"
	"property_brochure_backend/platform/apperr"
	"property_brochure_backend/platform/phone"

	"gopkg.in/yaml.v3"
)

//go:embed agents.yaml
var defaultAgentsYAML []byte

type agentsFile struct {
	Agents []domain.Agent `yaml:"agents"`
}

// Directory is the read-only list of agents a brochure can be issued by.
type Directory struct {
	agents []domain.Agent
	byID   map[string]domain.Agent
}

// LoadDirectory reads agents from path, or the embedded list when path is empty.
func LoadDirectory(path string) (*Directory, error) {
	data := defaultAgentsYAML
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read agents file: %w", err)
		}
		data = raw
	}
	return ParseDirectory(data)
}

// ParseDirectory decodes a YAML agent list. Ids must be unique and every
// agent needs a name and email.
func ParseDirectory(data []byte) (*Directory, error) {
	var file agentsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode agents: %w", err)
	}

	d := &Directory{byID: make(map[string]domain.Agent, len(file.Agents))}
	for _, agent := range file.Agents {
		agent.ID = strings.TrimSpace(agent.ID)
		if agent.ID == "" || agent.Name == "" || agent.Email == "" {
			return nil, fmt.Errorf("agent %q: id, name and email are required", agent.ID)
		}
		if _, dup := d.byID[agent.ID]; dup {
			return nil, fmt.Errorf("agent %q: duplicate id", agent.ID)
		}
		agent.Phone = phone.FormatInternational(agent.Phone)
		d.byID[agent.ID] = agent
		d.agents = append(d.agents, agent)
	}
	return d, nil
}

// List returns every agent in file order.
func (d *Directory) List() []domain.Agent {
	out := make([]domain.Agent, len(d.agents))
	copy(out, d.agents)
	return out
}

// Get returns the agent with id.
func (d *Directory) Get(id string) (domain.Agent, error) {
	agent, ok := d.byID[id]
	if !ok {
		return domain.Agent{}, apperr.NotFound("Agent not found")
	}
	return agent, nil
}
