package main

import (
	"context"
	"fmt"

	"codeberg.org/medlit/server/internal/research"
	"codeberg.org/medlit/server/internal/tui"
	"codeberg.org/medlit/server/medlit/assistant"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var caseInput assistant.CaseInput

// analyzeCmd submits a clinical case for analysis
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a clinical case against the literature",
	Long: `Submit a clinical case to the research API.

History, symptoms and the doctor's opinion are required. Specialties are normalized the same
way the web form does: unknown values are dropped and "general" is used
when none remain.`,
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVar(&caseInput.PatientHistory, "history", "", "patient history (required)")
	f.StringVar(&caseInput.CurrentSymptoms, "symptoms", "", "current symptoms (required)")
	f.StringVar(&caseInput.PatientPerspective, "perspective", "", "the patient's own account")
	f.StringVar(&caseInput.DoctorOpinion, "opinion", "", "the treating doctor's opinion (required)")
	f.StringSliceVar(&caseInput.Specialties, "specialty", nil, "specialties to consult, repeatable")

	_ = analyzeCmd.MarkFlagRequired("history")  //nolint:errcheck
	_ = analyzeCmd.MarkFlagRequired("symptoms") //nolint:errcheck
	_ = analyzeCmd.MarkFlagRequired("opinion")  //nolint:errcheck
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	result, err := newClient().AnalyzeCase(ctx, research.CaseRequest{
		PatientHistory:     caseInput.PatientHistory,
		CurrentSymptoms:    caseInput.CurrentSymptoms,
		PatientPerspective: caseInput.PatientPerspective,
		DoctorOpinion:      caseInput.DoctorOpinion,
		Specialties:        assistant.NormalizeSpecialties(caseInput.Specialties),
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	out, err := glamour.Render(tui.AnswerMarkdown(result.Analysis, research.FormatSources(result.Sources)), "dark")
	if err != nil {
		return fmt.Errorf("failed to render analysis: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
