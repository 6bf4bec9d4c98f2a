// Package compose parses docker-compose files. umbrel-dev bundles a compose
// override for the main repository; this parser validates it and reports the
// service names it configures.
package compose

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ComposeFile represents a docker-compose.yaml file
type ComposeFile struct {
	Version  string                     `yaml:"version"`
	Services map[string]*ComposeService `yaml:"services"`
}

// ComposeService represents a service in docker-compose.yaml
type ComposeService struct {
	Name        string        // Service name from compose
	Image       string        `yaml:"image"`
	Build       *BuildConfig  `yaml:"build"`
	Command     StringOrSlice `yaml:"command"`
	WorkingDir  string        `yaml:"working_dir"`
	Environment Environment   `yaml:"environment"`
	Volumes     []string      `yaml:"volumes"`
	Ports       []string      `yaml:"ports"`
	DependsOn   StringOrSlice `yaml:"depends_on"`
	Restart     string        `yaml:"restart"`
}

// BuildConfig represents build configuration
type BuildConfig struct {
	Context    string            `yaml:"context"`
	Dockerfile string            `yaml:"dockerfile"`
	Args       map[string]string `yaml:"args"`
}

// StringOrSlice can be either a string or a slice of strings
type StringOrSlice []string

func (s *StringOrSlice) UnmarshalYAML(value *yaml.Node) error {
	var multi []string
	err := value.Decode(&multi)
	if err != nil {
		var single string
		err := value.Decode(&single)
		if err != nil {
			return err
		}
		*s = []string{single}
	} else {
		*s = multi
	}
	return nil
}

// Environment can be either a map or a slice of KEY=VALUE strings
type Environment map[string]string

func (e *Environment) UnmarshalYAML(value *yaml.Node) error {
	*e = make(map[string]string)

	// Try to decode as a map first
	var envMap map[string]string
	if err := value.Decode(&envMap); err == nil {
		for k, v := range envMap {
			(*e)[k] = v
		}
		return nil
	}

	// Try to decode as a slice
	var envSlice []string
	if err := value.Decode(&envSlice); err == nil {
		for _, env := range envSlice {
			parts := strings.SplitN(env, "=", 2)
			if len(parts) == 2 {
				(*e)[parts[0]] = parts[1]
			} else if len(parts) == 1 {
				// Environment variable without value
				(*e)[parts[0]] = ""
			}
		}
		return nil
	}

	return fmt.Errorf("environment must be a map or slice of strings")
}

// ParseComposeFile reads and parses a docker-compose.yaml file
func ParseComposeFile(path string) (*ComposeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading compose file: %w", err)
	}
	return Parse(data)
}

// Parse parses docker-compose YAML content
func Parse(data []byte) (*ComposeFile, error) {
	var compose ComposeFile
	if err := yaml.Unmarshal(data, &compose); err != nil {
		return nil, fmt.Errorf("parsing compose file: %w", err)
	}

	// Set service names
	for name, service := range compose.Services {
		if service != nil {
			service.Name = name
		}
	}

	return &compose, nil
}

// GetServiceNames returns all service names in the compose file, sorted
func (c *ComposeFile) GetServiceNames() []string {
	names := make([]string, 0, len(c.Services))
	for name := range c.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasService reports whether the compose file configures the named service
func (c *ComposeFile) HasService(name string) bool {
	_, ok := c.Services[name]
	return ok
}
