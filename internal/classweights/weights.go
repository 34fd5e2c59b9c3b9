// Package classweights holds the weighted class distribution used by
// breeding, gacha queue generation and gacha reward class selection. The
// table is process-wide shared state with explicit load/validate/swap
// semantics: an invalid reload leaves the previous valid table in effect.
package classweights

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/hieuluvjingliu/GardenBredN/internal/domain"
)

// Sentinel errors for weight table loading
var (
	ErrNoPositiveWeight = errors.New("class weight table needs at least one positive entry")
	ErrNegativeWeight   = errors.New("class weights must not be negative")
)

// Table is an immutable snapshot of the class weight distribution. Draw is
// safe for concurrent use; swapping in a new snapshot never mutates an old one.
type Table struct {
	classes []string
	weights []float64
	total   float64
}

// NewTable builds a table from a class->weight map. Classes are kept in
// sorted order so a given (table, roll) pair always selects the same class.
func NewTable(weights map[string]float64) (*Table, error) {
	t := &Table{}
	classes := make([]string, 0, len(weights))
	for class := range weights {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	for _, class := range classes {
		w := weights[class]
		if w < 0 {
			return nil, fmt.Errorf("%w: %s = %v", ErrNegativeWeight, class, w)
		}
		if w == 0 {
			continue
		}
		t.classes = append(t.classes, class)
		t.weights = append(t.weights, w)
		t.total += w
	}
	if t.total <= 0 {
		return nil, ErrNoPositiveWeight
	}
	return t, nil
}

// Default returns the equal-weight four-element fallback table.
func Default() *Table {
	weights := make(map[string]float64, len(domain.BaseClasses))
	for _, class := range domain.BaseClasses {
		weights[class] = 1
	}
	t, _ := NewTable(weights)
	return t
}

// Classes returns the positive-weight classes in draw order.
func (t *Table) Classes() []string {
	out := make([]string, len(t.classes))
	copy(out, t.classes)
	return out
}

// Draw picks a class using a uniform random value in [0,1).
func (t *Table) Draw(roll float64) string {
	target := roll * t.total
	for i, w := range t.weights {
		target -= w
		if target < 0 {
			return t.classes[i]
		}
	}
	// roll == 1.0 should not happen with rand.Float64, but floating point
	// accumulation can land exactly on the total
	return t.classes[len(t.classes)-1]
}

// Provider owns the current table and the swap lock.
type Provider struct {
	mu    sync.RWMutex
	path  string
	table *Table
}

// NewProvider loads the table from path, falling back to the default table
// when the file is unreadable or invalid.
func NewProvider(path string) (*Provider, error) {
	p := &Provider{path: path, table: Default()}
	if err := p.Reload(); err != nil {
		// fallback stays in effect; the caller decides whether to log
		return p, err
	}
	return p, nil
}

// Table returns the current snapshot.
func (p *Provider) Table() *Table {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.table
}

// Reload re-reads the file and swaps in the new table if it validates.
// On any failure the previous table stays in effect and the error is returned.
func (p *Provider) Reload() error {
	table, err := loadFile(p.path)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.table = table
	p.mu.Unlock()
	return nil
}

func loadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read class weights: %w", err)
	}
	var weights map[string]float64
	if err := json.Unmarshal(data, &weights); err != nil {
		return nil, fmt.Errorf("failed to parse class weights: %w", err)
	}
	table, err := NewTable(weights)
	if err != nil {
		return nil, fmt.Errorf("invalid class weights in %s: %w", path, err)
	}
	return table, nil
}
