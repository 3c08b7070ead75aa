// Package conceptgraph holds the static concept taxonomy: a leveled
// category hierarchy plus explicit prerequisite→dependent edges
// between concepts. The skill-gap analyzer reads it to decide which
// weak concepts block the most progress.
package conceptgraph

// MaxLevel is the deepest hierarchy level in the taxonomy.
const MaxLevel = 8

// Category groups related concepts at one hierarchy level.
type Category struct {
	Name          string
	Level         int
	Description   string
	Concepts      []string
	Prerequisites []string // names of prerequisite categories
}

// Dependency is a directed concept→concept edge: the dependent concept
// builds on the prerequisite with the given strength in (0,1].
type Dependency struct {
	Prerequisite string
	Dependent    string
	Strength     float64
}
