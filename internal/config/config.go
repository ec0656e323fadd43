package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrMissingKey reports a query against a config document that lacks the
// requested top-level key.
var ErrMissingKey = errors.New("missing config key")

type Config struct {
	Tasks       []Task       `yaml:"tasks"`
	Metaprompts []Metaprompt `yaml:"metaprompts"`
	Results     Results      `yaml:"results"`
	Report      Report       `yaml:"report"`
}

type Task struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type Metaprompt struct {
	Name   string `yaml:"name"`
	Prompt string `yaml:"prompt"`
}

type Results struct {
	Dir string `yaml:"dir"`
}

type Report struct {
	Path string `yaml:"path"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	for i, t := range cfg.Tasks {
		if t.Name == "" {
			return fmt.Errorf("task %d: name is required", i)
		}
	}
	for i, m := range cfg.Metaprompts {
		if m.Name == "" {
			return fmt.Errorf("metaprompt %d: name is required", i)
		}
		if m.Prompt == "" {
			return fmt.Errorf("metaprompt %q: prompt is required", m.Name)
		}
	}
	if cfg.Results.Dir == "" {
		cfg.Results.Dir = "results"
	}
	if cfg.Report.Path == "" {
		cfg.Report.Path = "evaluation_results.json"
	}
	return nil
}

// Query returns selected fields from a config document: the name of each
// task, or the prompt of each metaprompt. Unknown query names yield no
// values. A document without the queried key is a lookup error, not an
// empty result.
func Query(path, query string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	switch query {
	case "tasks":
		node, ok := doc["tasks"]
		if !ok {
			return nil, fmt.Errorf("%s: %w: tasks", path, ErrMissingKey)
		}
		var tasks []Task
		if err := node.Decode(&tasks); err != nil {
			return nil, fmt.Errorf("decoding tasks in %s: %w", path, err)
		}
		values := make([]string, 0, len(tasks))
		for _, t := range tasks {
			values = append(values, t.Name)
		}
		return values, nil
	case "metaprompts":
		node, ok := doc["metaprompts"]
		if !ok {
			return nil, fmt.Errorf("%s: %w: metaprompts", path, ErrMissingKey)
		}
		var prompts []Metaprompt
		if err := node.Decode(&prompts); err != nil {
			return nil, fmt.Errorf("decoding metaprompts in %s: %w", path, err)
		}
		values := make([]string, 0, len(prompts))
		for _, m := range prompts {
			values = append(values, m.Prompt)
		}
		return values, nil
	}
	return nil, nil
}
