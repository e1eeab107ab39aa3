package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pagequery/internal/sqlparam"
)

// QueryFile is the YAML form of a paginated query.
//
//	query: SELECT id, name FROM players WHERE points > ? ORDER BY points DESC
//	args: [500]
//	offset: 0
//	size: 5
//	strategy: single-pass
type QueryFile struct {
	Query    string `yaml:"query"`
	Args     []any  `yaml:"args"`
	Offset   *int   `yaml:"offset"`
	Size     *int   `yaml:"size"`
	Strategy string `yaml:"strategy"`
	Driver   string `yaml:"driver"`
	DSN      string `yaml:"dsn"`
}

// loadQueryFile reads and decodes path.
func loadQueryFile(path string) (QueryFile, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is supplied by the operator
	if err != nil {
		return QueryFile{}, fmt.Errorf("read query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return QueryFile{}, fmt.Errorf("decode query file %s: %w", path, err)
	}
	if qf.Query == "" {
		return QueryFile{}, fmt.Errorf("query file %s: query is required", path)
	}
	return qf, nil
}

// Params converts the YAML arguments into a parameter list.
func (qf QueryFile) Params() (sqlparam.List, error) {
	return sqlparam.FromArgs(qf.Args...)
}
