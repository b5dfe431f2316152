package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/renbou/pathrouter"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by [Read] for files with an extension not corresponding to any supported format.
var ErrUnknownFormat = errors.New("unknown config file format")

type hclConfig struct {
	Routes []hclRouteConfig `hcl:"route,block"`
}

type hclRouteConfig struct {
	Name    string `hcl:"name,label"`
	Pattern string `hcl:"pattern"`
}

type yamlConfig struct {
	Routes []yamlRouteConfig `yaml:"routes"`
}

type yamlRouteConfig struct {
	Name string `yaml:"name"`
	// nil when missing, an empty pattern is the root
	Pattern *string `yaml:"pattern"`
}

// Read reads the route table from a file, choosing the format by its extension.
// HCL (.hcl) and its JSON syntax (.json) use route blocks labeled by the route name:
//
//	route "user" {
//	  pattern = "/user/:id"
//	}
//
// YAML (.yaml, .yml) uses a list of routes:
//
//	routes:
//	  - name: user
//	    pattern: /user/:id
//
// The order of the routes is preserved.
func Read(filename string) (*pathrouter.Config, error) {
	switch ext := filepath.Ext(filename); ext {
	case ".hcl", ".json":
		return ReadHCL(filename)
	case ".yaml", ".yml":
		return ReadYAML(filename)
	default:
		return nil, fmt.Errorf("reading %q: %w %q", filename, ErrUnknownFormat, ext)
	}
}

// ReadHCL reads the route table from an HCL file or a JSON file following the HCL JSON syntax.
func ReadHCL(filename string) (*pathrouter.Config, error) {
	var rawCfg hclConfig

	if err := hclsimple.DecodeFile(filename, nil, &rawCfg); err != nil {
		return nil, fmt.Errorf("decoding HCL config file: %w", err)
	}

	cfg := &pathrouter.Config{
		Routes: make([]pathrouter.RouteConfig, len(rawCfg.Routes)),
	}

	for i := range rawCfg.Routes {
		cfg.Routes[i] = pathrouter.RouteConfig{
			Name:    rawCfg.Routes[i].Name,
			Pattern: rawCfg.Routes[i].Pattern,
		}
	}

	return cfg, nil
}

// ReadYAML reads the route table from a YAML file.
func ReadYAML(filename string) (*pathrouter.Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading YAML config file: %w", err)
	}

	var rawCfg yamlConfig

	if err := yaml.Unmarshal(data, &rawCfg); err != nil {
		return nil, fmt.Errorf("decoding YAML config file: %w", err)
	}

	cfg := &pathrouter.Config{
		Routes: make([]pathrouter.RouteConfig, len(rawCfg.Routes)),
	}

	for i := range rawCfg.Routes {
		if rawCfg.Routes[i].Name == "" {
			return nil, fmt.Errorf("decoding YAML config file: route %d has no name", i)
		} else if rawCfg.Routes[i].Pattern == nil {
			return nil, fmt.Errorf("decoding YAML config file: route %q has no pattern", rawCfg.Routes[i].Name)
		}

		cfg.Routes[i] = pathrouter.RouteConfig{
			Name:    rawCfg.Routes[i].Name,
			Pattern: *rawCfg.Routes[i].Pattern,
		}
	}

	return cfg, nil
}
