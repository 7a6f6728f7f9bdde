package lessons

var level4 = []Lesson{
	{Title: "Introduction", Unit: fromFile("level4/01-introduction.md")},
	{Title: "Aggregation and bucketing", Unit: fromFile("level4/02-aggregation.md")},
	{Title: "Advanced maths", Unit: fromFile("level4/03-advanced-maths.md")},
	{Title: "Discover events and attributes", Unit: fromFile("level4/04-discover.md")},
	{Title: "Filter with regex", Unit: fromFile("level4/05-regex.md")},
	{Title: "Nested aggregation", Unit: fromFile("level4/06-nested.md")},
}
