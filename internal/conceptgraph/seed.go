package conceptgraph

func init() {
	gr, err := buildGraph(seedCategories(), seedDependencies())
	if err != nil {
		panic(err)
	}
	g = gr
}

// seedCategories defines the leveled programming-concept taxonomy.
func seedCategories() []Category {
	return []Category{
		{
			Name:        "basics",
			Level:       1,
			Description: "Fundamental programming concepts",
			Concepts:    []string{"variables", "data_types", "operators", "input_output"},
		},
		{
			Name:          "control_flow",
			Level:         2,
			Description:   "Program flow control structures",
			Concepts:      []string{"conditionals", "loops", "boolean_logic"},
			Prerequisites: []string{"basics"},
		},
		{
			Name:          "functions",
			Level:         3,
			Description:   "Function concepts and modularity",
			Concepts:      []string{"function_definition", "parameters", "return_values", "scope"},
			Prerequisites: []string{"basics", "control_flow"},
		},
		{
			Name:          "data_structures",
			Level:         4,
			Description:   "Data organization and manipulation",
			Concepts:      []string{"arrays", "lists", "strings", "dictionaries", "sets"},
			Prerequisites: []string{"functions"},
		},
		{
			Name:          "algorithms",
			Level:         5,
			Description:   "Algorithmic thinking and analysis",
			Concepts:      []string{"sorting", "searching", "recursion", "complexity_analysis"},
			Prerequisites: []string{"data_structures"},
		},
		{
			Name:          "advanced_structures",
			Level:         6,
			Description:   "Advanced data structures",
			Concepts:      []string{"trees", "graphs", "heaps", "hash_tables"},
			Prerequisites: []string{"algorithms"},
		},
		{
			Name:          "advanced_algorithms",
			Level:         7,
			Description:   "Advanced algorithmic techniques",
			Concepts:      []string{"dynamic_programming", "graph_algorithms", "greedy_algorithms"},
			Prerequisites: []string{"advanced_structures"},
		},
		{
			Name:          "specialized",
			Level:         8,
			Description:   "Specialized application areas",
			Concepts:      []string{"machine_learning", "databases", "web_development", "system_design"},
			Prerequisites: []string{"advanced_algorithms"},
		},
	}
}

// seedDependencies defines the explicit concept→concept edges.
func seedDependencies() []Dependency {
	return []Dependency{
		{"variables", "arrays", 0.9},
		{"variables", "function_definition", 0.8},
		{"arrays", "strings", 0.7},
		{"function_definition", "recursion", 0.9},
		{"arrays", "sorting", 0.8},
		{"recursion", "trees", 0.9},
		{"trees", "graphs", 0.7},
		{"arrays", "dynamic_programming", 0.6},
		{"recursion", "dynamic_programming", 0.8},
		{"loops", "sorting", 0.7},
		{"conditionals", "searching", 0.6},
		{"dictionaries", "system_design", 0.8},
	}
}
