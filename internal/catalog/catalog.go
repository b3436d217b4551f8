// Package catalog provides schema catalogs for verifying extracted SQL
// references against real database objects. A catalog can be loaded from
// a YAML schema file or introspected from a live database, and answers
// the one question the checker needs: does this table or column exist?
package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/sqlrefs/pkg/extract"
)

// Catalog maps known table names to their column sets. Name matching is
// case-insensitive, mirroring how most engines resolve unquoted
// identifiers.
type Catalog struct {
	tables map[string]map[string]struct{}
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{tables: make(map[string]map[string]struct{})}
}

// AddTable registers a table and its columns. Adding the same table
// twice merges the column sets.
func (c *Catalog) AddTable(name string, columns ...string) {
	key := strings.ToLower(name)
	cols, ok := c.tables[key]
	if !ok {
		cols = make(map[string]struct{})
		c.tables[key] = cols
	}
	for _, col := range columns {
		cols[strings.ToLower(col)] = struct{}{}
	}
}

// HasTable reports whether the catalog contains a table by this name.
func (c *Catalog) HasTable(name string) bool {
	_, ok := c.tables[strings.ToLower(name)]
	return ok
}

// HasColumn reports whether any table in the catalog has a column by
// this name. The extractor does not resolve column scoping, so a column
// is considered known if it exists anywhere in the schema.
func (c *Catalog) HasColumn(name string) bool {
	key := strings.ToLower(name)
	for _, cols := range c.tables {
		if _, ok := cols[key]; ok {
			return true
		}
	}
	return false
}

// Tables returns the known table names, sorted.
func (c *Catalog) Tables() []string {
	names := make([]string, 0, len(c.tables))
	for name := range c.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of tables in the catalog.
func (c *Catalog) Len() int {
	return len(c.tables)
}

// Report lists the references in one extraction result that the catalog
// does not know about.
type Report struct {
	UnknownTables  []string `json:"unknown_tables"`
	UnknownColumns []string `json:"unknown_columns"`
}

// Clean reports whether every reference resolved.
func (r Report) Clean() bool {
	return len(r.UnknownTables) == 0 && len(r.UnknownColumns) == 0
}

// Verify checks every reference in res against the catalog. The literal
// wildcard projection is always considered known: it names no specific
// column.
func (c *Catalog) Verify(res extract.Result) Report {
	var report Report
	for _, t := range res.TableList() {
		if !c.HasTable(t) {
			report.UnknownTables = append(report.UnknownTables, t)
		}
	}
	for _, col := range res.ColumnList() {
		if col == "*" {
			continue
		}
		if !c.HasColumn(col) {
			report.UnknownColumns = append(report.UnknownColumns, col)
		}
	}
	return report
}

// schemaFile is the YAML document shape for file-based catalogs:
//
//	tables:
//	  users: [id, name, email]
//	  orders: [order_id, customer_id]
type schemaFile struct {
	Tables map[string][]string `yaml:"tables"`
}

// LoadFile reads a YAML schema file into a catalog.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	var doc schemaFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema file %s: %w", path, err)
	}

	c := New()
	for name, cols := range doc.Tables {
		c.AddTable(name, cols...)
	}
	return c, nil
}
