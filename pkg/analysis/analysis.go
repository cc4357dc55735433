package analysis

import (
	"fmt"
)

// Result vector names.
const (
	ALPHA_MRAD    = "ALPHA_MRAD"
	D_BRIGHTNESS  = "D_BRIGHTNESS"
	D_DIFFRACTION = "D_DIFFRACTION"
	D_CHROMATIC   = "D_CHROMATIC"
	D_SPHERICAL   = "D_SPHERICAL"
	D_TOTAL       = "D_TOTAL"
	OPTIMUM       = "OPTIMUM" // [angle mrad, diameter m]
	OPTIMUM_FIT   = "OPTIMUM_FIT"
)

type Analysis interface {
	Execute() error
	GetResults() map[string][]float64
	Names() []string
}

type BaseAnalysis struct {
	results map[string][]float64 // key: vector name, value: values by angle
	names   []string             // insertion order of results
}

func NewBaseAnalysis() *BaseAnalysis {
	return &BaseAnalysis{results: make(map[string][]float64)}
}

func (a *BaseAnalysis) StoreResult(name string, values []float64) {
	if _, exists := a.results[name]; !exists {
		a.names = append(a.names, name)
	}
	stored := make([]float64, len(values))
	copy(stored, values)
	a.results[name] = stored
}

func (a *BaseAnalysis) GetResults() map[string][]float64 {
	return a.results
}

// Names returns result names in the order they were stored.
func (a *BaseAnalysis) Names() []string {
	return a.names
}

func termResultName(prefix string, label string) string {
	return fmt.Sprintf("%s(%s)", prefix, label)
}
