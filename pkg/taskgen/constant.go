package taskgen

// DefaultCount is used when the caller does not specify how many titles to
// generate.
const DefaultCount = 5

// defaultTopic keys the fallback template list for unknown topics.
const defaultTopic = "default"

// taskTemplates is the static generation table. Titles are returned in order,
// truncated to the requested count.
var taskTemplates = map[string][]string{
	"Learn Python": {
		"Set up Python development environment",
		"Complete Python basics tutorial on variables and data types",
		"Practice writing functions and control structures",
		"Build a simple calculator project",
		"Learn about Python libraries like NumPy and Pandas",
	},
	"Fitness": {
		"Create a weekly workout schedule",
		"Track daily water intake and nutrition",
		"Complete 30-minute cardio session",
		"Learn proper form for basic exercises",
		"Set measurable fitness goals for the month",
	},
	"JavaScript": {
		"Master JavaScript fundamentals and ES6+ features",
		"Build interactive web components with DOM manipulation",
		"Learn asynchronous programming with Promises and async/await",
		"Create a full-stack application with Node.js",
		"Practice algorithmic problem solving with JavaScript",
	},
	defaultTopic: {
		"Research and gather information about the topic",
		"Create a structured learning plan",
		"Practice daily for consistent progress",
		"Join communities or find mentors in the field",
		"Apply knowledge through practical projects",
	},
}
