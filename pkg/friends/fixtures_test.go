package friends

func sampleRecords() []Record {
	return []Record{
		{Name: "Sam", Friends: []string{"Mat", "Sharon"}, Gender: Male, Best: true},
		{Name: "Sally", Friends: []string{"Brad", "Emily"}, Gender: Female, Best: true},
		{Name: "Mat", Friends: []string{"Sam", "Sharon"}, Gender: Male},
		{Name: "Sharon", Friends: []string{"Sam", "Itan", "Mat"}, Gender: Female},
		{Name: "Brad", Friends: []string{"Sally", "Emily", "Julia"}, Gender: Male},
		{Name: "Emily", Friends: []string{"Sally", "Brad"}, Gender: Female},
		{Name: "Itan", Friends: []string{"Sharon", "Julia"}, Gender: Male},
		{Name: "Julia", Friends: []string{"Brad", "Itan"}, Gender: Female},
	}
}

// diamond is A -> {B, C} -> D.
func diamond() *Directory {
	return NewDirectory([]Record{
		{Name: "A", Gender: Male, Best: true, Friends: []string{"B", "C"}},
		{Name: "B", Gender: Female, Friends: []string{"D"}},
		{Name: "C", Gender: Male, Friends: []string{"D"}},
		{Name: "D", Gender: Female},
	})
}

func names(records []Record) []string {
	var out []string
	for _, rec := range records {
		out = append(out, rec.Name)
	}
	return out
}
