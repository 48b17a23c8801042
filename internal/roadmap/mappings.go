package roadmap

import "roadmap-backend/internal/personas"

// Priority is the importance tier of a skill within a role category.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

type categorySkills struct {
	high   []string
	medium []string
	low    []string
}

// skillTaxonomy is the fixed role-category skill table behind the
// legacy match scoring path. It is independent of persona documents.
var skillTaxonomy = map[string]categorySkills{
	"Backend Engineering": {
		high: []string{
			"Python", "Java", "Node.js", "Data Structures & Algorithms",
			"System Design", "SQL & Databases", "REST APIs", "Git",
		},
		medium: []string{
			"NoSQL (MongoDB/Redis)", "GraphQL", "Microservices Architecture",
			"Docker", "Kubernetes", "Message Queues (Kafka/RabbitMQ)",
			"Caching Strategies", "API Design & Documentation",
		},
		low: []string{
			"AWS/Cloud Platforms", "CI/CD Pipelines", "Authentication & Security",
			"Performance Optimization", "Monitoring & Logging", "Serverless",
		},
	},
	"Frontend Engineering": {
		high: []string{
			"JavaScript", "TypeScript", "React", "HTML", "CSS",
			"State Management (Redux/Context)", "Responsive Design", "Git",
		},
		medium: []string{
			"Next.js", "Vue.js", "Angular", "Webpack/Vite",
			"Testing (Jest/React Testing Library)", "REST APIs", "GraphQL",
			"CSS Frameworks (Tailwind/Bootstrap)",
		},
		low: []string{
			"Progressive Web Apps", "Accessibility (WCAG)", "Performance Optimization",
			"Browser DevTools", "npm/yarn", "Svelte",
		},
	},
	"Software Engineering": {
		high: []string{
			"JavaScript", "Python", "Data Structures & Algorithms", "System Design",
			"Git", "SQL & Databases", "REST APIs", "Problem Solving",
		},
		medium: []string{
			"React", "Node.js", "TypeScript", "NoSQL (MongoDB/Redis)", "Docker",
			"Testing (Unit/Integration)", "API Design", "Microservices",
		},
		low: []string{
			"Kubernetes", "AWS/Cloud", "GraphQL", "CI/CD", "Message Queues",
			"Monitoring", "Performance Optimization",
		},
	},
	"Machine Learning": {
		high: []string{
			"Python", "Mathematics (Linear Algebra/Calculus)", "Statistics & Probability",
			"Pandas", "NumPy", "Scikit-learn", "Machine Learning Algorithms",
			"Data Preprocessing",
		},
		medium: []string{
			"Deep Learning", "TensorFlow", "PyTorch", "Neural Networks",
			"Feature Engineering", "Model Evaluation", "Data Visualization",
			"SQL", "Git",
		},
		low: []string{
			"MLOps", "Model Deployment", "Computer Vision", "NLP",
			"Hyperparameter Tuning", "Cloud Platforms", "Docker",
		},
	},
	"Data Science": {
		high: []string{
			"Python", "SQL", "Statistics", "Probability", "Pandas", "NumPy",
			"Data Visualization", "Jupyter Notebooks",
		},
		medium: []string{
			"Machine Learning", "Scikit-learn", "Matplotlib", "Seaborn",
			"Feature Engineering", "Model Evaluation", "A/B Testing", "R",
		},
		low: []string{
			"Deep Learning", "TensorFlow", "PyTorch", "NLP", "Computer Vision",
			"Big Data (Spark/Hadoop)", "ETL",
		},
	},
	"Data Analytics": {
		high: []string{
			"SQL", "Excel", "Data Visualization", "Business Intelligence",
			"Statistics", "Dashboard Creation", "Data Modeling",
		},
		medium: []string{
			"Power BI", "Tableau", "Looker", "Python", "Pandas",
			"Google Analytics", "A/B Testing", "ETL Processes",
		},
		low: []string{
			"R", "NumPy", "Data Warehousing", "Big Data Tools",
			"Machine Learning Basics", "Advanced Statistics",
		},
	},
	"DevOps & Cloud Computing": {
		high: []string{
			"Linux/Unix", "Bash Scripting", "Git", "Docker", "CI/CD",
			"AWS/Azure/GCP", "Networking Basics", "Monitoring & Logging",
		},
		medium: []string{
			"Kubernetes", "Terraform", "Ansible", "Python", "Jenkins/GitLab CI",
			"Infrastructure as Code", "Load Balancing", "Security Fundamentals",
		},
		low: []string{
			"Service Mesh", "Serverless", "Cloud Architecture",
			"Container Orchestration", "Advanced Networking", "Cost Optimization",
		},
	},
}

// roleCategories connects resolved persona roles to taxonomy
// categories for the legacy scoring path.
var roleCategories = map[personas.Role]string{
	personas.RoleBackend:   "Backend Engineering",
	personas.RoleFrontend:  "Frontend Engineering",
	personas.RoleFullstack: "Software Engineering",
	personas.RoleDevOps:    "DevOps & Cloud Computing",
	personas.RoleData:      "Data Science",
}

// CategoryForRole returns the taxonomy category to score a role
// against.
func CategoryForRole(role personas.Role) string {
	if cat, ok := roleCategories[role]; ok {
		return cat
	}
	return "Software Engineering"
}

// SkillsWithPriorities flattens a category into a skill-to-priority
// map. Unknown categories return an empty map.
func SkillsWithPriorities(category string) map[string]Priority {
	cat, ok := skillTaxonomy[category]
	if !ok {
		return map[string]Priority{}
	}
	out := make(map[string]Priority, len(cat.high)+len(cat.medium)+len(cat.low))
	for _, s := range cat.high {
		out[s] = PriorityHigh
	}
	for _, s := range cat.medium {
		out[s] = PriorityMedium
	}
	for _, s := range cat.low {
		out[s] = PriorityLow
	}
	return out
}

// AllSkillsForCategory returns the category's skills, high priority
// first.
func AllSkillsForCategory(category string) []string {
	cat, ok := skillTaxonomy[category]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(cat.high)+len(cat.medium)+len(cat.low))
	out = append(out, cat.high...)
	out = append(out, cat.medium...)
	out = append(out, cat.low...)
	return out
}
