package models

// Hero holds the headline fields of the public landing section.
type Hero struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	Manifesto string `json:"manifesto"`
	Location  string `json:"location"`
	Status    string `json:"status"`
}

// About holds the narrative section of the public site.
type About struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	EnglishLevel      string `json:"englishLevel"`
	CurrentlyLearning string `json:"currentlyLearning"`
	ProfileImage      string `json:"profileImage"`
}

// TechCategory is one bucket of the public tech-stack display: a fixed title
// plus an ordered list of skill labels.
type TechCategory struct {
	Title  string   `json:"title"`
	Skills []string `json:"skills"`
}

// MindsetItem is a work-culture card on the public site.
type MindsetItem struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}
