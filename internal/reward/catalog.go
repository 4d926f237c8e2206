// Package reward lists what coins can be spent on.
package reward

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	dErrors "socialboot/pkg/domain-errors"
)

// Reward is a claimable item.
type Reward struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Cost        int    `json:"cost" yaml:"cost"`
}

// Catalog is an immutable, ordered set of rewards.
type Catalog struct {
	rewards []Reward
}

// Defaults returns the built-in catalog.
func Defaults() *Catalog {
	return &Catalog{rewards: []Reward{
		{ID: "1", Title: "Premium Badge", Description: "Get a special badge next to your name", Cost: 500},
		{ID: "2", Title: "Profile Boost", Description: "Increase your profile visibility for 24 hours", Cost: 300},
		{ID: "3", Title: "Custom Theme", Description: "Unlock exclusive profile themes", Cost: 800},
	}}
}

type catalogFile struct {
	Rewards []Reward `yaml:"rewards"`
}

// LoadFile reads a YAML catalog of the form:
//
//	rewards:
//	  - id: "1"
//	    title: Premium Badge
//	    cost: 500
//
// An empty path returns Defaults.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Defaults(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rewards catalog: %w", err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse rewards catalog %s: %w", path, err)
	}
	return New(file.Rewards)
}

// New validates rewards and builds a catalog from them.
func New(rewards []Reward) (*Catalog, error) {
	if len(rewards) == 0 {
		return nil, fmt.Errorf("rewards catalog is empty")
	}
	seen := make(map[string]struct{}, len(rewards))
	for _, r := range rewards {
		if r.ID == "" || r.Title == "" {
			return nil, fmt.Errorf("reward %q: id and title are required", r.ID)
		}
		if r.Cost < 0 {
			return nil, fmt.Errorf("reward %s: cost must not be negative", r.ID)
		}
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("reward %s: duplicate id", r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	return &Catalog{rewards: append([]Reward{}, rewards...)}, nil
}

func (c *Catalog) List() []Reward {
	return append([]Reward{}, c.rewards...)
}

func (c *Catalog) Get(id string) (Reward, error) {
	for _, r := range c.rewards {
		if r.ID == id {
			return r, nil
		}
	}
	return Reward{}, dErrors.New(dErrors.CodeNotFound, "reward not found")
}
