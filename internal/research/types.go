package research

// a paper returned by the newsfeed endpoint
type Paper struct {
	PMCID           string `json:"pmcid"`
	Title           string `json:"title"`
	PublicationDate string `json:"publication_date"`
	LastUpdated     string `json:"last_updated"`
	Content         string `json:"content"`
	FullTextURL     string `json:"full_text_url"`
}

type newsfeedRequest struct {
	Niche  string `json:"niche"`
	Months int    `json:"months"`
}

type newsfeedResponse struct {
	Papers []Paper `json:"papers"`
}

// the clinical case submitted for analysis
type CaseRequest struct {
	PatientHistory     string   `json:"patient_history"`
	CurrentSymptoms    string   `json:"current_symptoms"`
	PatientPerspective string   `json:"patient_perspective"`
	DoctorOpinion      string   `json:"doctor_opinion"`
	Specialties        []string `json:"specialties"`
}

type CaseAnalysis struct {
	Analysis string   `json:"analysis"`
	Sources  []string `json:"sources"`
}

type queryRequest struct {
	Query string `json:"query"`
}

// answer to a free-text research question
type QueryResult struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources"`
}

// a source citation ready for display; URL is empty for plain-text sources
type SourceLink struct {
	Text     string `json:"text"`
	URL      string `json:"url,omitempty"`
	External bool   `json:"is_external"`
}
