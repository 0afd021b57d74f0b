// Package grammar defines the closed taxonomy of grammar contrast points
// that exercise generation targets. The table is hand-authored and
// immutable; lookups are safe for concurrent use.
package grammar

import "github.com/convolab/lessonsmith/internal/lang"

// Category groups related contrast points.
type Category string

const (
	CategoryParticles     Category = "particles"
	CategoryExistence     Category = "existence"
	CategoryAspect        Category = "aspect"
	CategoryConnectives   Category = "connectives"
	CategoryBenefactives  Category = "benefactives"
	CategoryConditionals  Category = "conditionals"
	CategoryEvidentiality Category = "evidentiality"
	CategoryVoice         Category = "voice"
	CategoryTemporal      Category = "temporal"
)

// Point is one grammar contrast point in the taxonomy.
type Point struct {
	ID          string
	Name        string
	Level       lang.Level
	Category    Category
	Description string
}

// registry is the package-level point registry, keyed by ID.
var registry map[string]*Point

// byLevel indexes points by proficiency level.
var byLevel map[lang.Level][]*Point

func init() {
	registry = make(map[string]*Point, len(seedPoints))
	byLevel = make(map[lang.Level][]*Point)
	for i := range seedPoints {
		p := &seedPoints[i]
		registry[p.ID] = p
		byLevel[p.Level] = append(byLevel[p.Level], p)
	}
}

// GetPoint returns a grammar point by ID, or nil if not found.
func GetPoint(id string) *Point {
	return registry[id]
}

// PointsByLevel returns all points taught at a given level, in seed order.
func PointsByLevel(level lang.Level) []*Point {
	return byLevel[level]
}

// AllPoints returns every point in the taxonomy, in seed order.
func AllPoints() []*Point {
	result := make([]*Point, 0, len(seedPoints))
	for i := range seedPoints {
		result = append(result, &seedPoints[i])
	}
	return result
}

// ValidForLevel reports whether the point exists and is taught at the
// given level.
func ValidForLevel(id string, level lang.Level) bool {
	p := registry[id]
	return p != nil && p.Level == level
}
