package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	kindRoot        = "root"
	kindModule      = "module"
	kindElement     = "element"
	kindEnvironment = "environment"
	kindNode        = "node"
)

// Tree is the YAML description of an injector tree plus the lookups to run.
type Tree struct {
	Version string       `yaml:"version"`
	Scopes  []ScopeSpec  `yaml:"scopes"`
	Lookups []LookupSpec `yaml:"lookups"`
}

// ScopeSpec declares one injector.
type ScopeSpec struct {
	Name   string `yaml:"name"`
	Kind   string `yaml:"kind"`
	Parent string `yaml:"parent"`

	// Environment names the scope an environment injector probes first.
	Environment string `yaml:"environment"`

	Providers     map[string]any `yaml:"providers"`
	ViewProviders map[string]any `yaml:"viewProviders"`
}

// LookupSpec is a single lookup against a named scope.
type LookupSpec struct {
	Scope    string `yaml:"scope"`
	Token    string `yaml:"token"`
	Self     bool   `yaml:"self"`
	SkipSelf bool   `yaml:"skipSelf"`
	Host     bool   `yaml:"host"`
	Optional bool   `yaml:"optional"`
	HostOnly bool   `yaml:"hostOnly"`
}

// LoadTree reads, defaults and validates a tree file.
func LoadTree(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree file %s: %w", path, err)
	}
	return ParseTree(data)
}

// ParseTree parses YAML data into a validated Tree.
func ParseTree(data []byte) (*Tree, error) {
	var t Tree
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse tree YAML: %w", err)
	}

	applyTreeDefaults(&t)
	if err := validateTree(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

func applyTreeDefaults(t *Tree) {
	if t == nil {
		return
	}
	if t.Version == "" {
		t.Version = "1"
	}
	for i := range t.Scopes {
		s := &t.Scopes[i]
		s.Name = strings.TrimSpace(s.Name)
		if s.Kind == "" {
			s.Kind = kindNode
		}
	}
}

func validateTree(t *Tree) error {
	if t.Version != "1" {
		return fmt.Errorf("unsupported tree version %q", t.Version)
	}
	if len(t.Scopes) == 0 {
		return errors.New("tree must declare at least one scope")
	}

	// Parents and environments must be declared earlier, which keeps every
	// chain acyclic.
	seen := make(map[string]bool, len(t.Scopes))
	for i, s := range t.Scopes {
		if s.Name == "" {
			return fmt.Errorf("scope %d: missing name", i)
		}
		if seen[s.Name] {
			return fmt.Errorf("scope %q: duplicate name", s.Name)
		}

		switch s.Kind {
		case kindRoot:
			if s.Parent != "" {
				return fmt.Errorf("scope %q: root scopes cannot have a parent", s.Name)
			}
		case kindModule, kindElement, kindEnvironment, kindNode:
		default:
			return fmt.Errorf("scope %q: unknown kind %q", s.Name, s.Kind)
		}

		if s.Parent != "" && !seen[s.Parent] {
			return fmt.Errorf("scope %q: parent %q must be declared before it", s.Name, s.Parent)
		}
		if s.Environment != "" {
			if s.Kind != kindEnvironment {
				return fmt.Errorf("scope %q: environment is only valid for kind %q", s.Name, kindEnvironment)
			}
			if !seen[s.Environment] {
				return fmt.Errorf("scope %q: environment %q must be declared before it", s.Name, s.Environment)
			}
		}
		for _, bindings := range []map[string]any{s.Providers, s.ViewProviders} {
			for token := range bindings {
				if strings.TrimSpace(token) == "" {
					return fmt.Errorf("scope %q: empty provider token", s.Name)
				}
			}
		}
		seen[s.Name] = true
	}

	for i, l := range t.Lookups {
		switch {
		case l.Scope == "":
			return fmt.Errorf("lookup %d: missing scope", i)
		case !seen[l.Scope]:
			return fmt.Errorf("lookup %d: unknown scope %q", i, l.Scope)
		case strings.TrimSpace(l.Token) == "":
			return fmt.Errorf("lookup %d: missing token", i)
		case l.Self && l.SkipSelf:
			return fmt.Errorf("lookup %d: self and skipSelf are mutually exclusive", i)
		}
	}
	return nil
}
