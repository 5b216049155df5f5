package services

import (
	"PALS/narrative"
	"PALS/repositories"
	"PALS/utils"
	"context"
	"fmt"
	"log"
	"strings"
)

// Emergency categories with static recommendations. Unknown categories
// fall back to the general entry.
const (
	CategoryCardiac   = "cardiac"
	CategoryStroke    = "stroke"
	CategoryTrauma    = "trauma"
	CategoryAllergy   = "allergy"
	CategoryBreathing = "breathing"
	CategoryPoisoning = "poisoning"
	CategoryBurn      = "burn"
	CategoryGeneral   = "general"
)

// staticRecommendations is the lookup table used when no narrative
// service is configured or its answer cannot be used.
var staticRecommendations = map[string]string{
	CategoryCardiac:   "Call emergency services. Keep the patient seated and calm, loosen tight clothing. If the patient is unresponsive and not breathing, start CPR. Do not give food or drink.",
	CategoryStroke:    "Call emergency services immediately. Note the time symptoms started. Keep the patient lying with head slightly raised; do not give food, drink or medication.",
	CategoryTrauma:    "Call emergency services. Do not move the patient unless in immediate danger. Apply firm pressure to visible bleeding with a clean cloth.",
	CategoryAllergy:   "Check the allergy list before giving any medication. If an epinephrine auto-injector is available and prescribed, use it. Call emergency services for any breathing difficulty.",
	CategoryBreathing: "Sit the patient upright. Check medications for an inhaler and assist them in using it. Call emergency services if breathing does not improve within minutes.",
	CategoryPoisoning: "Call poison control. Do not induce vomiting. Keep any packaging of the suspected substance. Check current medications for interactions.",
	CategoryBurn:      "Cool the burn under running water for 20 minutes. Do not apply ice or creams. Cover loosely with a sterile dressing; seek care for large or facial burns.",
	CategoryGeneral:   "Call emergency services. Check the listed allergies and current medications before any treatment, and use the emergency contact to reach next of kin.",
}

// EmergencyData is the critical subset surfaced to first responders. It
// bypasses visibility settings: emergency access discloses the patient's
// profile-level data, never the gated prescription fields.
type EmergencyData struct {
	Code             string `json:"code"`
	Name             string `json:"name"`
	Age              int    `json:"age"`
	BloodGroup       string `json:"bloodGroup"`
	Allergies        string `json:"allergies"`
	Conditions       string `json:"conditions"`
	Medications      string `json:"medications"`
	EmergencyContact string `json:"emergencyContact"`
	Category         string `json:"category"`
	Recommendation   string `json:"recommendation"`
	Source           string `json:"source"`
}

type EmergencyService struct {
	patientRepo repositories.PatientRepository
	narrator    narrative.Client
}

// NewEmergencyService builds the emergency-access service. narrator may
// be nil; recommendations then come from the static table only.
func NewEmergencyService(patientRepo repositories.PatientRepository, narrator narrative.Client) *EmergencyService {
	return &EmergencyService{patientRepo: patientRepo, narrator: narrator}
}

// Access returns the patient's critical data plus a recommendation for
// category. Narrative-service failures degrade to the static table and
// never abort the fetch.
func (s *EmergencyService) Access(ctx context.Context, code, category string) (*EmergencyData, error) {
	patient, err := s.patientRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch patient: %w", err)
	}
	if patient == nil {
		return nil, fmt.Errorf("patient %s: %w", code, utils.ErrNotFound)
	}

	category = normalizeCategory(category)

	data := &EmergencyData{
		Code:             patient.Code,
		Name:             patient.Name,
		Age:              patient.Age,
		BloodGroup:       patient.BloodGroup,
		Allergies:        patient.Allergies,
		Conditions:       patient.Conditions,
		Medications:      patient.Medications,
		EmergencyContact: patient.EmergencyContact,
		Category:         category,
		Recommendation:   staticRecommendations[category],
		Source:           "static",
	}

	if s.narrator != nil {
		text, err := s.narrator.Recommend(ctx, narrative.Request{
			Category:    category,
			BloodGroup:  patient.BloodGroup,
			Allergies:   patient.Allergies,
			Conditions:  patient.Conditions,
			Medications: patient.Medications,
		})
		if err != nil {
			log.Printf("Narrative service failed for %s/%s, using static recommendation: %v", code, category, err)
		} else {
			data.Recommendation = text
			data.Source = "narrative"
		}
	}

	return data, nil
}

func normalizeCategory(category string) string {
	category = strings.ToLower(strings.TrimSpace(category))
	if _, ok := staticRecommendations[category]; !ok {
		return CategoryGeneral
	}
	return category
}
