package assistant

import "codeberg.org/medlit/server/internal/research"

type NewsfeedResponse struct {
	Niche  string           `json:"niche"`
	Papers []research.Paper `json:"papers"`
}

type CaseAnalysisRequest struct {
	PatientHistory     string   `json:"patient_history" binding:"required,max=10000"`
	CurrentSymptoms    string   `json:"current_symptoms" binding:"required,max=10000"`
	PatientPerspective string   `json:"patient_perspective" binding:"max=10000"`
	DoctorOpinion      string   `json:"doctor_opinion" binding:"required,max=10000"`
	Specialties        []string `json:"specialties" binding:"max=8"`
}

type CaseAnalysisResponse struct {
	Analysis string   `json:"analysis"`
	Sources  []string `json:"sources"`
}

type ResearchRequest struct {
	Query string `json:"query" binding:"required,max=2000"`
}

type ResearchResponse struct {
	Answer  string                `json:"answer"`
	Sources []research.SourceLink `json:"sources"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
