package conceptgraph

import "testing"

func TestSeedGraphValid(t *testing.T) {
	// init() panics on an invalid seed; reaching here means it built.
	if len(AllConcepts()) == 0 {
		t.Fatal("seed graph has no concepts")
	}
}

func TestLevelOf(t *testing.T) {
	cases := map[string]int{
		"variables":           1,
		"loops":               2,
		"arrays":              4,
		"recursion":           5,
		"dynamic_programming": 7,
		"system_design":       8,
		"not_a_concept":       1, // unknown → foundational
	}
	for concept, want := range cases {
		if got := LevelOf(concept); got != want {
			t.Errorf("LevelOf(%q) = %d, want %d", concept, got, want)
		}
	}
}

func TestDependents(t *testing.T) {
	deps := Dependents("recursion")
	found := map[string]bool{}
	for _, d := range deps {
		if d.Prerequisite != "recursion" {
			t.Errorf("edge %v has wrong prerequisite", d)
		}
		found[d.Dependent] = true
	}
	if !found["trees"] || !found["dynamic_programming"] {
		t.Errorf("recursion dependents = %v, want trees and dynamic_programming", found)
	}
}

func TestPrerequisiteConcepts(t *testing.T) {
	prereqs := PrerequisiteConcepts("loops")
	if len(prereqs) == 0 {
		t.Fatal("loops should inherit the basics concepts as prerequisites")
	}
	found := map[string]bool{}
	for _, c := range prereqs {
		found[c] = true
	}
	if !found["variables"] {
		t.Errorf("prerequisites of loops = %v, want to include variables", prereqs)
	}

	if got := PrerequisiteConcepts("unknown"); got != nil {
		t.Errorf("unknown concept should have nil prerequisites, got %v", got)
	}
}

func TestCategoryOf(t *testing.T) {
	cat, ok := CategoryOf("sorting")
	if !ok {
		t.Fatal("sorting should belong to a category")
	}
	if cat.Name != "algorithms" || cat.Level != 5 {
		t.Errorf("CategoryOf(sorting) = %s level %d, want algorithms level 5", cat.Name, cat.Level)
	}
}

func TestValidateRejectsCycle(t *testing.T) {
	categories := []Category{
		{Name: "a", Level: 1, Concepts: []string{"x"}, Prerequisites: []string{"b"}},
		{Name: "b", Level: 2, Concepts: []string{"y"}, Prerequisites: []string{"a"}},
	}
	if _, err := buildGraph(categories, nil); err == nil {
		t.Error("expected cycle detection error")
	}
}

func TestValidateRejectsDanglingDependency(t *testing.T) {
	categories := []Category{
		{Name: "a", Level: 1, Concepts: []string{"x"}},
	}
	deps := []Dependency{{Prerequisite: "x", Dependent: "ghost", Strength: 0.5}}
	if _, err := buildGraph(categories, deps); err == nil {
		t.Error("expected dangling dependency error")
	}
}
