package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/farmtrip/internal/scheduler"
	"gopkg.in/yaml.v3"
)

// CatalogSchema is the top-level structure of a catalog import file.
// Region is the default for entries that leave theirs empty.
type CatalogSchema struct {
	Region      string             `json:"region,omitempty" yaml:"region,omitempty"`
	Farms       []FarmImport       `json:"farms" yaml:"farms"`
	Attractions []AttractionImport `json:"attractions" yaml:"attractions"`
}

// FarmImport defines a farm in the import file.
type FarmImport struct {
	ID        string      `json:"id,omitempty" yaml:"id,omitempty"`
	Name      string      `json:"name" yaml:"name"`
	Address   string      `json:"address" yaml:"address"`
	Region    string      `json:"region,omitempty" yaml:"region,omitempty"`
	Tags      KeywordList `json:"tags,omitempty" yaml:"tags,omitempty"`
	WorkStart string      `json:"work_start,omitempty" yaml:"work_start,omitempty"`
	WorkEnd   string      `json:"work_end,omitempty" yaml:"work_end,omitempty"`
}

// AttractionImport defines a tourist attraction in the import file.
type AttractionImport struct {
	ID                string      `json:"id,omitempty" yaml:"id,omitempty"`
	Name              string      `json:"name" yaml:"name"`
	Address           string      `json:"address" yaml:"address"`
	Region            string      `json:"region,omitempty" yaml:"region,omitempty"`
	LandscapeKeywords KeywordList `json:"landscape_keywords,omitempty" yaml:"landscape_keywords,omitempty"`
	StyleKeywords     KeywordList `json:"style_keywords,omitempty" yaml:"style_keywords,omitempty"`
	RawScore          *float64    `json:"raw_score,omitempty" yaml:"raw_score,omitempty"`
}

// KeywordList accepts either a list or one ';'-separated string, the form
// catalog exports use.
type KeywordList []string

func (k *KeywordList) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*k = scheduler.SplitKeywords(raw)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("keywords must be a string or a list: %w", err)
	}
	*k = list
	return nil
}

func (k *KeywordList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*k = scheduler.SplitKeywords(node.Value)
		return nil
	}
	var list []string
	if err := node.Decode(&list); err != nil {
		return fmt.Errorf("keywords must be a string or a list: %w", err)
	}
	*k = list
	return nil
}

// LoadCatalogSchema reads a catalog file. .yaml and .yml files are parsed as
// YAML, everything else as JSON.
func LoadCatalogSchema(path string) (*CatalogSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseCatalogYAML(data)
	default:
		return ParseCatalogJSON(data)
	}
}

func ParseCatalogJSON(data []byte) (*CatalogSchema, error) {
	var schema CatalogSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	return &schema, nil
}

func ParseCatalogYAML(data []byte) (*CatalogSchema, error) {
	var schema CatalogSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	return &schema, nil
}
