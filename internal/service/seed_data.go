package service

import "github.com/alexanderramin/swimadmin/internal/domain"

const (
	demoLogo  = "/uploads/swimsafe-logo.png"
	demoCover = "/uploads/water-confidence-cover.png"
)

var demoPrograms = []domain.Program{
	{ID: "p1", Name: "SwimSafe", Logo: demoLogo, Instructors: []string{"Ben Geiler", "Maria Collins"}, StudentCount: 12},
	{ID: "p2", Name: "Advanced Swimming", Logo: demoLogo, Instructors: []string{"Maria Collins"}, StudentCount: 8},
}

var demoLevels = []domain.Level{
	{ID: "l1", ProgramID: "p1", Name: "Water Confidence", Description: "Introduction to water and basic floating techniques", Cover: demoCover, Order: 1},
	{ID: "l2", ProgramID: "p1", Name: "Floating & Kicking", Description: "Learn to float and kick effectively", Cover: demoCover, Order: 2},
	{ID: "l3", ProgramID: "p1", Name: "Basic Strokes", Description: "Introduction to freestyle and backstroke", Cover: demoCover, Order: 3},
}

var demoSkills = []domain.Skill{
	{
		ID: "s1", LevelID: "l1", Name: "Water Entry", Order: 1,
		Description:           "Safely entering the water with assistance",
		InstructorDescription: "Guide students to enter water while holding the wall",
	},
	{
		ID: "s2", LevelID: "l1", Name: "Bubble Blowing", Order: 2,
		Description:           "Submerging face and blowing bubbles",
		InstructorDescription: "Demonstrate proper breathing technique",
	},
	{
		ID: "s3", LevelID: "l1", Name: "Front Float", Order: 3,
		Description:           "Floating on stomach with assistance",
		InstructorDescription: "Support students under chest/shoulders",
	},
}

var demoProgress = []domain.Progress{
	{
		ID: "pr1", SkillID: "s1", Name: "Enters water with instructor help", PointValue: 5, Order: 1,
		Description: "Student willingly enters water with instructor assistance",
		Criteria:    "Student must enter water without crying or resistance",
	},
	{
		ID: "pr2", SkillID: "s1", Name: "Enters water independently", PointValue: 10, Order: 2,
		Description: "Student enters water independently using steps or sitting on edge",
		Criteria:    "Student enters water without any assistance",
	},
	{
		ID: "pr3", SkillID: "s2", Name: "Blows small bubbles", PointValue: 5, Order: 1,
		Description: "Student can submerge mouth and blow bubbles",
		Criteria:    "Student blows visible bubbles for at least 3 seconds",
	},
}

// demoMaps holds the stored maps keyed by level. Levels not listed fall back
// to the default layout.
var demoMaps = map[string]domain.LevelMap{
	"l1": {
		Nodes: []domain.MapNode{
			{ID: "mi1", SkillID: "s1", Rect: domain.Rect{X: 50, Y: 50, Width: 150, Height: 80}},
			{ID: "mi2", SkillID: "s2", Rect: domain.Rect{X: 250, Y: 150, Width: 150, Height: 80}},
			{ID: "mi3", SkillID: "s3", Rect: domain.Rect{X: 450, Y: 50, Width: 150, Height: 80}},
		},
		Connections: []domain.Connection{
			{ID: "c1", SourceID: "mi1", TargetID: "mi2"},
			{ID: "c2", SourceID: "mi2", TargetID: "mi3"},
		},
	},
}
