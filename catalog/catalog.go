// Package catalog holds the static trigger-phrase tables driving every
// classifier. The catalog is built once at startup and passed around by
// read-only reference, never mutated.
package catalog

// Category pairs a category name with the lowercase phrases that vote for it.
type Category struct {
	Name    string
	Phrases []string
}

// Taxonomy is an ordered list of mutually exclusive categories. Order
// matters: when two categories tie on phrase hits, the one declared first
// wins, so classification output is reproducible across platforms.
type Taxonomy []Category

/*
Catalog is the full pattern configuration.

JobTypes, Seniorities, Domains, WorkModes: the four single-label taxonomies
TechStack: multi-label, Name is the canonical technology name
JobPositive, JobNegative: phrase lists scored against title+body by the job gate
TitlePositive, TitleNegative: small subsets scored against the title alone,
	each worth a fixed boost since titles carry stronger signal than bodies
Urgency: phrases counted for the urgency density score

Subreddits, PostsPerSubreddit: scrape targets consumed by the acquisition side
*/
type Catalog struct {
	JobTypes    Taxonomy
	Seniorities Taxonomy
	Domains     Taxonomy
	WorkModes   Taxonomy
	TechStack   Taxonomy

	JobPositive   []string
	JobNegative   []string
	TitlePositive []string
	TitleNegative []string
	Urgency       []string

	Subreddits        []string
	PostsPerSubreddit int
}

// Default returns the curated production catalog. All phrases are lowercase;
// matching lowercases the input text, never the catalog.
func Default() *Catalog {
	return &Catalog{
		JobTypes: Taxonomy{
			{Name: "Full-time", Phrases: []string{"full-time", "full time", "ft", "permanent", "salaried"}},
			{Name: "Contract", Phrases: []string{"contract", "contractor", "c2c", "w2", "corp-to-corp"}},
			{Name: "Freelance", Phrases: []string{"freelance", "freelancer", "gig", "project-based", "per project"}},
			{Name: "Internship", Phrases: []string{"intern", "internship", "co-op", "coop", "trainee"}},
			{Name: "Part-time", Phrases: []string{"part-time", "part time", "pt"}},
		},
		Seniorities: Taxonomy{
			{Name: "Junior", Phrases: []string{"junior", "jr", "entry level", "entry-level", "associate", "graduate", "new grad"}},
			{Name: "Mid", Phrases: []string{"mid-level", "mid level", "intermediate", "2-5 years", "3+ years"}},
			{Name: "Senior", Phrases: []string{"senior", "sr", "experienced", "5+ years", "7+ years", "lead developer"}},
			{Name: "Lead", Phrases: []string{"lead", "principal", "staff", "architect", "head of", "director", "vp", "manager"}},
		},
		Domains: Taxonomy{
			{Name: "Data", Phrases: []string{"data engineer", "data scientist", "data analyst", "machine learning", "ml", "ai",
				"analytics", "bi ", "business intelligence", "etl", "data pipeline"}},
			{Name: "Software", Phrases: []string{"software engineer", "software developer", "backend", "frontend", "full stack",
				"fullstack", "web developer", "mobile developer", "swe", "sde"}},
			{Name: "DevOps", Phrases: []string{"devops", "sre", "site reliability", "infrastructure", "platform engineer",
				"cloud engineer"}},
			{Name: "Design", Phrases: []string{"designer", "ux", "ui", "product design", "graphic design", "figma"}},
			{Name: "Marketing", Phrases: []string{"marketing", "seo", "content", "growth", "social media", "digital marketing"}},
			{Name: "Product", Phrases: []string{"product manager", "product owner", "pm", "program manager"}},
			{Name: "Security", Phrases: []string{"security", "cybersecurity", "infosec", "penetration", "soc analyst"}},
			{Name: "QA", Phrases: []string{"qa", "quality assurance", "test engineer", "testing", "automation test"}},
		},
		WorkModes: Taxonomy{
			{Name: "Remote", Phrases: []string{"remote", "work from home", "wfh", "anywhere", "distributed", "telecommute"}},
			{Name: "Hybrid", Phrases: []string{"hybrid", "flex", "partially remote", "2 days", "3 days in office"}},
			{Name: "On-site", Phrases: []string{"on-site", "onsite", "in-office", "in office", "on site", "relocate"}},
		},
		TechStack: Taxonomy{
			{Name: "Python", Phrases: []string{"python"}},
			{Name: "JavaScript", Phrases: []string{"javascript", "js"}},
			{Name: "TypeScript", Phrases: []string{"typescript", "ts"}},
			{Name: "Java", Phrases: []string{"java"}},
			{Name: "C++", Phrases: []string{"c++", "cpp"}},
			{Name: "C#", Phrases: []string{"c#", "csharp", ".net"}},
			{Name: "Go", Phrases: []string{"golang"}},
			{Name: "Rust", Phrases: []string{"rust"}},
			{Name: "Ruby", Phrases: []string{"ruby", "rails", "ruby on rails"}},
			{Name: "PHP", Phrases: []string{"php"}},
			{Name: "Swift", Phrases: []string{"swift"}},
			{Name: "Kotlin", Phrases: []string{"kotlin"}},
			{Name: "Scala", Phrases: []string{"scala"}},
			{Name: "R", Phrases: []string{"rstudio", "r programming", "r language"}},
			{Name: "SQL", Phrases: []string{"sql", "mysql", "postgresql", "postgres", "sqlite"}},
			{Name: "NoSQL", Phrases: []string{"nosql", "mongodb", "dynamodb", "cassandra", "couchdb"}},
			{Name: "React", Phrases: []string{"react", "reactjs", "react.js"}},
			{Name: "Angular", Phrases: []string{"angular"}},
			{Name: "Vue.js", Phrases: []string{"vue", "vuejs", "vue.js"}},
			{Name: "Node.js", Phrases: []string{"node", "nodejs", "node.js"}},
			{Name: "Django", Phrases: []string{"django"}},
			{Name: "Flask", Phrases: []string{"flask"}},
			{Name: "FastAPI", Phrases: []string{"fastapi"}},
			{Name: "Spring", Phrases: []string{"spring", "spring boot"}},
			{Name: "Docker", Phrases: []string{"docker"}},
			{Name: "Kubernetes", Phrases: []string{"kubernetes", "k8s"}},
			{Name: "AWS", Phrases: []string{"aws", "amazon web services", "ec2", "s3", "lambda"}},
			{Name: "Azure", Phrases: []string{"azure"}},
			{Name: "GCP", Phrases: []string{"gcp", "google cloud"}},
			{Name: "Terraform", Phrases: []string{"terraform"}},
			{Name: "Jenkins", Phrases: []string{"jenkins"}},
			{Name: "Git", Phrases: []string{"git", "github", "gitlab"}},
			{Name: "Linux", Phrases: []string{"linux", "ubuntu", "centos"}},
			{Name: "TensorFlow", Phrases: []string{"tensorflow"}},
			{Name: "PyTorch", Phrases: []string{"pytorch"}},
			{Name: "Pandas", Phrases: []string{"pandas"}},
			{Name: "Spark", Phrases: []string{"spark", "pyspark"}},
			{Name: "Airflow", Phrases: []string{"airflow"}},
			{Name: "Kafka", Phrases: []string{"kafka"}},
			{Name: "Redis", Phrases: []string{"redis"}},
			{Name: "Elasticsearch", Phrases: []string{"elasticsearch", "elastic"}},
			{Name: "GraphQL", Phrases: []string{"graphql"}},
			{Name: "REST", Phrases: []string{"rest api", "restful"}},
			{Name: "CI/CD", Phrases: []string{"ci/cd", "cicd", "continuous integration"}},
			{Name: "Tableau", Phrases: []string{"tableau"}},
			{Name: "Power BI", Phrases: []string{"power bi", "powerbi"}},
			{Name: "Figma", Phrases: []string{"figma"}},
			{Name: "Jira", Phrases: []string{"jira"}},
			{Name: "Agile", Phrases: []string{"agile", "scrum"}},
		},
		JobPositive: []string{
			"hiring", "job opening", "we're looking", "we are looking", "job opportunity",
			"apply", "application", "position", "role", "vacancy", "seeking",
			"wanted", "join our team", "open position", "job posting",
			"[hiring]", "[for hire]", "looking to hire", "need a developer",
			"salary", "compensation", "benefits", "equity",
		},
		JobNegative: []string{
			"looking for work", "need a job", "hire me", "for hire",
			"resume review", "career advice", "interview tips",
			"should i", "is it worth", "what should", "how do i",
			"rant", "vent", "frustrated", "quit my job",
			"meme", "joke", "funny",
		},
		TitlePositive: []string{"[hiring]", "hiring", "job opening", "position"},
		TitleNegative: []string{"[for hire]", "hire me", "looking for work"},
		Urgency: []string{
			"asap", "immediately", "urgent", "start now", "right away",
			"start date", "start tomorrow", "this week", "today",
			"need someone", "quickly", "fast", "rush",
			"deadline", "time-sensitive", "limited time",
		},
		Subreddits: []string{
			"forhire",
			"jobs",
			"remotework",
			"remotejobs",
			"datajobs",
			"cscareerquestions",
			"techjobs",
			"jobbit",
			"workonline",
			"freelance",
		},
		PostsPerSubreddit: 100,
	}
}
