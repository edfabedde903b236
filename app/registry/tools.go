package registry

// The pattern and question tables are declared once and never mutated.
// Overlapping label phrases across fields (e.g. "target" vs "target state")
// are intentionally left as-is: every matching rule fires independently.

var toolOrder = []string{
	"a3",
	"finy",
	"sipoc",
	"fishbone",
	"checksheet",
	"histogram",
	"scatter-plot",
	"implementation-plan",
	"project-planning",
	"standard-work",
	"sustainment-plan",
	"voc",
}

var fieldLabels = map[string]string{
	"projectTitle":            "project title",
	"problemOwner":            "problem owner",
	"teamMembers":             "team members",
	"background":              "background",
	"problemStatement":        "problem statement",
	"businessImpact":          "business impact",
	"currentStateDescription": "current state",
	"goalStatement":           "goal",
	"targetStateDescription":  "target state",
	"results":                 "results",
	"lessonsLearned":          "lessons learned",
	"nextSteps":               "next steps",
}

var tools = map[string]ToolConfig{
	"a3": {
		ID:    "a3",
		Title: "A3 Problem Solving",
		Patterns: map[string]Rule{
			"projectTitle":            NewRule("project title", "title", "project name"),
			"problemOwner":            NewRule("problem owner", "owner", "responsible"),
			"teamMembers":             NewRule("team members?", "team", "members?"),
			"background":              NewRule("background", "context", "situation"),
			"problemStatement":        NewRule("problem statement", "problem", "issue"),
			"businessImpact":          NewRule("business impact", "impact", "effect"),
			"currentStateDescription": NewRule("current state", "current situation", "as-is"),
			"goalStatement":           NewRule("goal", "target", "objective"),
			"targetStateDescription":  NewRule("target state", "future state", "to-be"),
			"results":                 NewRule("results?", "outcomes?", "achievements?"),
			"lessonsLearned":          NewRule("lessons? learned", "learnings?", "takeaways?"),
			"nextSteps":               NewRule("next steps?", "future actions?", "follow.?up"),
		},
		Questions: []Question{
			{"projectTitle", "Let's start with your project title - what problem are you working on?"},
			{"problemOwner", "Great! Now, who is the problem owner or person responsible for this issue?"},
			{"teamMembers", "Perfect! Who are the team members involved in solving this problem?"},
			{"background", "Excellent! Can you provide some background context about why this problem is important to solve now?"},
			{"problemStatement", "Thanks! Now, can you clearly state the problem without including any solutions?"},
			{"businessImpact", "Good! What's the business impact of this problem?"},
			{"currentStateDescription", "Now let's analyze the current state. Can you describe the current situation with facts and data?"},
			{"goalStatement", "What's your goal or target state for this problem?"},
			{"targetStateDescription", "Can you describe what the target state will look like in detail?"},
			{"results", "What results have you achieved so far?"},
			{"lessonsLearned", "What lessons have you learned during this process?"},
			{"nextSteps", "Finally, what are the next steps or future actions?"},
		},
		Welcome: "Hi! I'm Kii, your A3 Problem Solving assistant. I can help you fill out your A3 form by asking you questions and automatically populating the fields. Let's start with your project title - what problem are you working on?",
		Help:    "I can help you fill out your A3 form step by step. Just tell me about your project title, problem owner, team members, background, problem statement, business impact, current state, goals, target state, results, lessons learned, and next steps. I'll automatically populate the form fields as we talk!",
		Example: "Here's how you can provide information: 'My project title is Reduce Customer Wait Time. The problem owner is Sarah Johnson from Customer Service. Our team includes Mike from Operations and Lisa from Quality. The background is that customer complaints about wait times have increased 25% this quarter...' I'll extract and fill in all these details automatically!",
	},

	"finy": {
		ID:    "finy",
		Title: "FinY Financial Analysis",
		Patterns: map[string]Rule{
			"projectTitle": NewRule("project title", "title", "project name"),
			"baseline":     NewRule("baseline", "current performance", "starting point"),
			"target":       NewRule("target", "goal", "improvement target"),
			"timeframe":    NewRule("timeframe", "timeline", "duration"),
			"cost":         NewRule("cost", "investment", "budget"),
			"savings":      NewRule("savings", "benefit", "roi"),
		},
		Questions: []Question{
			{"projectTitle", "What project are you analyzing for financial impact?"},
			{"baseline", "Great! What's your current baseline performance or starting point?"},
			{"target", "Perfect! What's your target improvement or goal?"},
			{"timeframe", "Excellent! What's the timeframe for this improvement?"},
			{"cost", "What's the estimated cost or investment required?"},
			{"savings", "What savings or benefits do you expect to achieve?"},
		},
		Welcome: "Hello! I'm Kii, your FinY assistant. I can help you calculate financial benefits and fill out your analysis. What project are you analyzing for financial impact?",
		Help:    "I can help you complete your FinY analysis by gathering information about your project title, baseline performance, targets, timeframe, costs, and expected savings. Just describe your project and I'll fill in the details!",
		Example: "Here's an example: 'My project is Process Automation Implementation. Our baseline is 60 minutes per transaction. We want to target 45 minutes. The timeframe is 6 months. Investment cost is $50,000. Expected annual savings is $200,000.' I'll populate all the financial fields from this information!",
	},

	"sipoc": {
		ID:      "sipoc",
		Title:   "SIPOC Diagram",
		Welcome: "Hi! I'm Kii, here to help you create your SIPOC diagram. I can guide you through each section and fill in the details. What process are you mapping?",
		Topics: []Topic{
			{"suppliers", "Great question about suppliers! Think about who provides the inputs to your process. These can be internal departments, external vendors, or even automated systems. For each supplier, consider: What do they provide? What are your requirements from them? How do you communicate with them?"},
			{"inputs", "Inputs are everything that goes into your process - materials, information, resources, or triggers. Ask yourself: What does your process need to start? What information is required? What materials or resources are consumed? Don't forget about less obvious inputs like approvals or environmental conditions."},
			{"process", "Your process steps should be high-level (5-7 steps typically). Focus on the main activities, not detailed sub-tasks. For each step, think about: What is the main activity? Who is responsible? How long does it typically take? What could go wrong here?"},
			{"outputs", "Outputs are what your process produces - products, services, information, or decisions. Consider: What does your process deliver? Who receives each output? What are the quality requirements? How do you measure success for each output?"},
			{"customers", "Customers are anyone who receives your outputs. They can be internal (other departments) or external (end customers). For each customer, think about: What do they expect? How do they use your output? What would make them satisfied? How do you get their feedback?"},
			{"scope", "Process scope defines the boundaries - where your process starts and ends. Be specific about: What triggers the process to begin? What signals the process is complete? What's included vs. excluded? This helps prevent scope creep and ensures everyone understands the boundaries."},
		},
	},

	"fishbone": {
		ID:    "fishbone",
		Title: "Fishbone Diagram",
		Topics: []Topic{
			{"problem", "Start with a clear problem statement. Be specific about what's happening, when it occurs, and its impact. For example: 'Customer complaints increased by 30% in Q3' rather than just 'customer complaints'."},
			{"man", "The 'Man' category covers people-related causes. Consider: training gaps, skill levels, communication issues, workload, motivation, or human error. Think about both individual and team factors."},
			{"machine", "Machine/Equipment causes include: equipment failures, maintenance issues, capacity limitations, age of equipment, calibration problems, or technology gaps. Consider both hardware and software."},
			{"material", "Material causes involve: quality issues, supplier problems, specifications, availability, storage conditions, or compatibility. Think about all inputs to your process."},
			{"method", "Method/Process causes include: unclear procedures, missing steps, inefficient workflows, lack of standards, or process variations. Consider how work gets done."},
			{"measurement", "Measurement causes involve: data accuracy, measurement tools, metrics definition, reporting frequency, or analysis methods. Consider how you track and measure performance."},
			{"environment", "Environment causes include: physical conditions, workplace layout, organizational culture, regulations, market conditions, or external factors affecting your process."},
		},
	},

	"checksheet": {
		ID:    "checksheet",
		Title: "Checksheet",
	},

	"histogram": {
		ID:    "histogram",
		Title: "Histogram",
		Topics: []Topic{
			{"statistic", "Paste your data points into the data panel (one value per line) and I'll compute the descriptive statistics: count, mean, median, standard deviation, range and quartiles."},
			{"bins", "A good starting point is the square root of your sample size, rounded to a convenient number. Too few bins hide the shape of the distribution; too many turn it into noise."},
		},
	},

	"scatter-plot": {
		ID:    "scatter-plot",
		Title: "Scatter Plot",
		Topics: []Topic{
			{"correlation", "Correlation strength interpretation: |r| < 0.3 = weak, 0.3-0.7 = moderate, > 0.7 = strong. Consider both statistical significance (p-value) and practical significance for business decisions."},
			{"regression", "Regression analysis helps predict Y from X. R² shows how much variance is explained. Check residuals for linearity assumptions. A good model has high R², low standard error, and normally distributed residuals."},
			{"outlier", "Common outlier detection methods: Z-score (>3 or <-3), IQR method (beyond Q1-1.5*IQR or Q3+1.5*IQR), or visual inspection. Always investigate outliers - they may reveal important insights or data errors."},
			{"pattern", "Look for: Linear/non-linear relationships, clusters of points, outliers, heteroscedasticity (changing variance), and influential points. Consider transformations if relationships aren't linear."},
			{"significance", "Statistical significance (p-value) tells if a relationship exists. Practical significance considers if the effect size matters for business decisions. Large samples can show statistical significance for trivial effects."},
		},
	},

	"implementation-plan": {
		ID:    "implementation-plan",
		Title: "Implementation Plan",
	},

	"project-planning": {
		ID:    "project-planning",
		Title: "Project Planning",
	},

	"standard-work": {
		ID:    "standard-work",
		Title: "Standard Work",
	},

	"sustainment-plan": {
		ID:    "sustainment-plan",
		Title: "Sustainment Plan",
	},

	"voc": {
		ID:    "voc",
		Title: "Voice of Customer",
	},
}
