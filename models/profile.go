package models

// Profile is the singleton owner record (conceptually id=1). Updates are
// always full-record replacement, never a partial patch.
type Profile struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Role              string `json:"role"`
	Manifesto         string `json:"manifesto"`
	Location          string `json:"location"`
	Status            string `json:"status"`
	AboutTitle        string `json:"aboutTitle"`
	AboutDescription  string `json:"aboutDescription"`
	EnglishLevel      string `json:"englishLevel"`
	CurrentlyLearning string `json:"currentlyLearning"`
	ProfileImage      string `json:"profileImage"`
}
