package services

import (
	"PALS/models"
	"PALS/repositories"
	"PALS/utils"
	"context"
	"fmt"
	"log"
)

// DisclosureResult is the doctor-visible view of a patient: identity
// summary plus the policy-filtered fields of the latest record.
type DisclosureResult struct {
	PatientInfo *models.Patient   `json:"patientInfo"`
	PublicData  map[string]string `json:"publicData"`
}

// DisclosureService computes policy-filtered views of patient records and
// appends a visit-history event for every doctor-attributed view.
type DisclosureService struct {
	patientRepo    repositories.PatientRepository
	doctorRepo     repositories.DoctorRepository
	recordRepo     repositories.RecordRepository
	visibilityRepo repositories.VisibilityRepository
	visitRepo      repositories.VisitHistoryRepository
}

func NewDisclosureService(
	patientRepo repositories.PatientRepository,
	doctorRepo repositories.DoctorRepository,
	recordRepo repositories.RecordRepository,
	visibilityRepo repositories.VisibilityRepository,
	visitRepo repositories.VisitHistoryRepository,
) *DisclosureService {
	return &DisclosureService{
		patientRepo:    patientRepo,
		doctorRepo:     doctorRepo,
		recordRepo:     recordRepo,
		visibilityRepo: visibilityRepo,
		visitRepo:      visitRepo,
	}
}

// Disclose produces the filtered view for code. A missing patient aborts
// with ErrNotFound; a missing latest record or policy row does not, the
// view is simply empty. When doctorID resolves to a known doctor, exactly
// one visit event is recorded with the doctor's name and specialization as
// of now; an absent or unresolvable doctorID records nothing. Failures
// past the patient lookup never abort the disclosure.
func (s *DisclosureService) Disclose(ctx context.Context, code, doctorID string) (*DisclosureResult, error) {
	patient, err := s.patientRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch patient: %w", err)
	}
	if patient == nil {
		return nil, fmt.Errorf("patient %s: %w", code, utils.ErrNotFound)
	}

	result := &DisclosureResult{
		PatientInfo: patient,
		PublicData:  map[string]string{},
	}

	record, err := s.recordRepo.Latest(ctx, code)
	if err != nil {
		log.Printf("Failed to fetch latest record for %s: %v", code, err)
		record = nil
	}

	// Fetched on every disclosure, record or not, so the default policy
	// rows exist from the first view on.
	policy, err := s.visibilityRepo.GetPolicy(ctx, code)
	if err != nil {
		// Without the policy nothing is disclosed.
		log.Printf("Failed to fetch visibility policy for %s: %v", code, err)
		policy = nil
	}

	if record != nil && policy != nil {
		result.PublicData = FilterRecord(record, policy)
	}

	if doctorID != "" {
		s.logVisit(ctx, code, doctorID)
	}

	return result, nil
}

// FilterRecord returns the clinical fields of record whose policy level is
// exactly "public". Values pass through unchanged, empty strings included.
func FilterRecord(record *models.MedicalRecord, policy *models.VisibilityPolicy) map[string]string {
	public := make(map[string]string)
	for name, value := range record.ClinicalFields() {
		if policy.IsPublic(name) {
			public[name] = value
		}
	}
	return public
}

// logVisit appends one visit-history event if doctorID resolves. Errors
// are logged and swallowed: audit problems never fail a disclosure.
func (s *DisclosureService) logVisit(ctx context.Context, code, doctorID string) {
	doctor, err := s.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		log.Printf("Failed to resolve doctor %s for visit log: %v", doctorID, err)
		return
	}
	if doctor == nil {
		return
	}

	event := &models.VisitHistory{
		PatientCode:    code,
		DoctorID:       doctorID,
		DoctorName:     doctor.Name,
		Specialization: doctor.Specialization,
		Photo:          doctor.Photo,
	}
	if err := s.visitRepo.Record(ctx, event); err != nil {
		log.Printf("Failed to record visit for patient %s by doctor %s: %v", code, doctorID, err)
	}
}
