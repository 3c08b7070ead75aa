package conceptgraph

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// graph holds the taxonomy with precomputed indices.
type graph struct {
	categories []Category
	byName     map[string]*Category
	categoryOf map[string]string // concept → category name
	levelOf    map[string]int
	dependents map[string][]Dependency // prerequisite concept → outgoing edges
	prereqsOf  map[string][]Dependency // dependent concept → incoming edges
	concepts   []string                // all concepts, level then name order
}

// g is the package-level graph singleton, set by init() in seed.go.
var g *graph

// buildGraph constructs the indexed graph after validating the inputs.
func buildGraph(categories []Category, deps []Dependency) (*graph, error) {
	if err := validate(categories, deps); err != nil {
		return nil, err
	}

	gr := &graph{
		categories: categories,
		byName:     make(map[string]*Category, len(categories)),
		categoryOf: make(map[string]string),
		levelOf:    make(map[string]int),
		dependents: make(map[string][]Dependency),
		prereqsOf:  make(map[string][]Dependency),
	}

	for i := range gr.categories {
		c := &gr.categories[i]
		gr.byName[c.Name] = c
		for _, concept := range c.Concepts {
			gr.categoryOf[concept] = c.Name
			gr.levelOf[concept] = c.Level
			gr.concepts = append(gr.concepts, concept)
		}
	}

	sort.Slice(gr.concepts, func(i, j int) bool {
		li, lj := gr.levelOf[gr.concepts[i]], gr.levelOf[gr.concepts[j]]
		if li != lj {
			return li < lj
		}
		return gr.concepts[i] < gr.concepts[j]
	})

	for _, d := range deps {
		gr.dependents[d.Prerequisite] = append(gr.dependents[d.Prerequisite], d)
		gr.prereqsOf[d.Dependent] = append(gr.prereqsOf[d.Dependent], d)
	}

	return gr, nil
}

// validate performs structural checks: duplicate concepts, dangling
// category prerequisites, dangling dependency endpoints, and cycles in
// the category prerequisite relation (Kahn's algorithm).
func validate(categories []Category, deps []Dependency) error {
	var errs []string

	nameSet := make(map[string]bool, len(categories))
	conceptSet := make(map[string]bool)
	for _, c := range categories {
		if nameSet[c.Name] {
			errs = append(errs, fmt.Sprintf("duplicate category: %q", c.Name))
		}
		nameSet[c.Name] = true
		for _, concept := range c.Concepts {
			if conceptSet[concept] {
				errs = append(errs, fmt.Sprintf("concept %q appears in more than one category", concept))
			}
			conceptSet[concept] = true
		}
	}

	for _, c := range categories {
		for _, p := range c.Prerequisites {
			if !nameSet[p] {
				errs = append(errs, fmt.Sprintf("category %q references nonexistent prerequisite %q", c.Name, p))
			}
		}
	}

	for _, d := range deps {
		if !conceptSet[d.Prerequisite] {
			errs = append(errs, fmt.Sprintf("dependency references unknown prerequisite concept %q", d.Prerequisite))
		}
		if !conceptSet[d.Dependent] {
			errs = append(errs, fmt.Sprintf("dependency references unknown dependent concept %q", d.Dependent))
		}
		if d.Strength <= 0 || d.Strength > 1 {
			errs = append(errs, fmt.Sprintf("dependency %q→%q has strength %f outside (0,1]", d.Prerequisite, d.Dependent, d.Strength))
		}
	}

	// Cycle check over category prerequisites.
	inDegree := make(map[string]int, len(categories))
	adj := make(map[string][]string)
	for _, c := range categories {
		inDegree[c.Name] = len(c.Prerequisites)
		for _, p := range c.Prerequisites {
			adj[p] = append(adj[p], c.Name)
		}
	}
	var queue []string
	for _, c := range categories {
		if inDegree[c.Name] == 0 {
			queue = append(queue, c.Name)
		}
	}
	visited := 0
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		visited++
		for _, next := range adj[name] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}
	if visited < len(categories) {
		var cycleNodes []string
		for _, c := range categories {
			if inDegree[c.Name] > 0 {
				cycleNodes = append(cycleNodes, c.Name)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving categories: %s", strings.Join(cycleNodes, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("concept graph validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// AllConcepts returns every concept, ordered by level then name.
func AllConcepts() []string {
	return slices.Clone(g.concepts)
}

// Known reports whether the concept exists in the taxonomy.
func Known(concept string) bool {
	_, ok := g.categoryOf[concept]
	return ok
}

// LevelOf returns the hierarchy level of a concept. Unknown concepts
// are treated as level 1 (foundational).
func LevelOf(concept string) int {
	if lvl, ok := g.levelOf[concept]; ok {
		return lvl
	}
	return 1
}

// CategoryOf returns the category containing a concept.
func CategoryOf(concept string) (Category, bool) {
	name, ok := g.categoryOf[concept]
	if !ok {
		return Category{}, false
	}
	return *g.byName[name], true
}

// Categories returns all categories in level order.
func Categories() []Category {
	out := slices.Clone(g.categories)
	sort.Slice(out, func(i, j int) bool { return out[i].Level < out[j].Level })
	return out
}

// Dependents returns the edges from a concept to the concepts that
// build on it.
func Dependents(concept string) []Dependency {
	return slices.Clone(g.dependents[concept])
}

// PrerequisitesOf returns the edges into a concept from the concepts
// it builds on.
func PrerequisitesOf(concept string) []Dependency {
	return slices.Clone(g.prereqsOf[concept])
}

// PrerequisiteConcepts returns every concept belonging to the
// prerequisite categories of the concept's own category, in level
// order. It returns nil for concepts outside the taxonomy.
func PrerequisiteConcepts(concept string) []string {
	catName, ok := g.categoryOf[concept]
	if !ok {
		return nil
	}
	var out []string
	for _, prereqName := range g.byName[catName].Prerequisites {
		out = append(out, g.byName[prereqName].Concepts...)
	}
	return out
}
