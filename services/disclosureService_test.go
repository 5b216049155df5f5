package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"PALS/models"
	"PALS/utils"
)

func disclosureFixtures() (*MockPatientRepository, *MockDoctorRepository, *MockRecordRepository, *MockVisibilityRepository, *MockVisitHistoryRepository) {
	patientRepo := &MockPatientRepository{
		FindByCodeFunc: func(ctx context.Context, code string) (*models.Patient, error) {
			if code == "4821" {
				return &models.Patient{Code: "4821", Name: "Asha Rao", BloodGroup: "O+"}, nil
			}
			return nil, nil
		},
	}
	doctorRepo := &MockDoctorRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*models.Doctor, error) {
			if id == "doc-1" {
				return &models.Doctor{ID: "doc-1", Name: "Dr. Mehta", Specialization: "Cardiology", Photo: "mehta.png"}, nil
			}
			return nil, nil
		},
	}
	recordRepo := &MockRecordRepository{
		LatestFunc: func(ctx context.Context, code string) (*models.MedicalRecord, error) {
			return &models.MedicalRecord{
				ID:         "rec-1",
				Code:       code,
				Sugar:      "180 mg/dL",
				Medication: "Metformin 500mg",
				Doctor:     "Dr. Mehta",
			}, nil
		},
	}
	visibilityRepo := &MockVisibilityRepository{
		GetPolicyFunc: func(ctx context.Context, code string) (*models.VisibilityPolicy, error) {
			policy := models.DefaultPolicy(code)
			policy.Fields[models.FieldSugar] = models.VisibilityPrivate
			return policy, nil
		},
	}
	visitRepo := &MockVisitHistoryRepository{}
	return patientRepo, doctorRepo, recordRepo, visibilityRepo, visitRepo
}

func TestDiscloseFiltersPrivateFields(t *testing.T) {
	patientRepo, doctorRepo, recordRepo, visibilityRepo, visitRepo := disclosureFixtures()
	service := NewDisclosureService(patientRepo, doctorRepo, recordRepo, visibilityRepo, visitRepo)

	result, err := service.Disclose(context.Background(), "4821", "doc-1")

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "Asha Rao", result.PatientInfo.Name)

	_, hasSugar := result.PublicData[models.FieldSugar]
	assert.False(t, hasSugar, "private field must be absent, not blanked")
	assert.Equal(t, "Metformin 500mg", result.PublicData[models.FieldMedication])
	assert.Equal(t, "Dr. Mehta", result.PublicData[models.FieldDoctor])
}

func TestDiscloseRecordsExactlyOneVisit(t *testing.T) {
	patientRepo, doctorRepo, recordRepo, visibilityRepo, visitRepo := disclosureFixtures()
	service := NewDisclosureService(patientRepo, doctorRepo, recordRepo, visibilityRepo, visitRepo)

	_, err := service.Disclose(context.Background(), "4821", "doc-1")

	assert.NoError(t, err)
	assert.Len(t, visitRepo.Recorded, 1)
	event := visitRepo.Recorded[0]
	assert.Equal(t, "4821", event.PatientCode)
	assert.Equal(t, "doc-1", event.DoctorID)
	assert.Equal(t, "Dr. Mehta", event.DoctorName)
	assert.Equal(t, "Cardiology", event.Specialization)
}

func TestDiscloseUnknownDoctorSkipsVisitLog(t *testing.T) {
	patientRepo, doctorRepo, recordRepo, visibilityRepo, visitRepo := disclosureFixtures()
	service := NewDisclosureService(patientRepo, doctorRepo, recordRepo, visibilityRepo, visitRepo)

	result, err := service.Disclose(context.Background(), "4821", "no-such-doctor")

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, visitRepo.Recorded)
}

func TestDiscloseEmptyDoctorIDSkipsVisitLog(t *testing.T) {
	patientRepo, doctorRepo, recordRepo, visibilityRepo, visitRepo := disclosureFixtures()
	service := NewDisclosureService(patientRepo, doctorRepo, recordRepo, visibilityRepo, visitRepo)

	_, err := service.Disclose(context.Background(), "4821", "")

	assert.NoError(t, err)
	assert.Empty(t, visitRepo.Recorded)
}

func TestDiscloseUnknownPatient(t *testing.T) {
	patientRepo, doctorRepo, recordRepo, visibilityRepo, visitRepo := disclosureFixtures()
	service := NewDisclosureService(patientRepo, doctorRepo, recordRepo, visibilityRepo, visitRepo)

	result, err := service.Disclose(context.Background(), "0000", "doc-1")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, utils.ErrNotFound)
	assert.Empty(t, visitRepo.Recorded)
}

func TestDiscloseNoRecordsYieldsEmptyView(t *testing.T) {
	patientRepo, doctorRepo, _, _, visitRepo := disclosureFixtures()
	recordRepo := &MockRecordRepository{
		LatestFunc: func(ctx context.Context, code string) (*models.MedicalRecord, error) {
			return nil, nil
		},
	}
	policyCalls := 0
	visibilityRepo := &MockVisibilityRepository{
		GetPolicyFunc: func(ctx context.Context, code string) (*models.VisibilityPolicy, error) {
			policyCalls++
			return models.DefaultPolicy(code), nil
		},
	}
	service := NewDisclosureService(patientRepo, doctorRepo, recordRepo, visibilityRepo, visitRepo)

	result, err := service.Disclose(context.Background(), "4821", "doc-1")

	assert.NoError(t, err)
	assert.NotNil(t, result.PatientInfo)
	assert.Empty(t, result.PublicData)
	assert.Equal(t, 1, policyCalls, "policy defaults are created even before any record exists")
	assert.Len(t, visitRepo.Recorded, 1, "visit is logged even without records")
}

func TestDisclosePolicyErrorDisclosesNothing(t *testing.T) {
	patientRepo, doctorRepo, recordRepo, _, visitRepo := disclosureFixtures()
	visibilityRepo := &MockVisibilityRepository{
		GetPolicyFunc: func(ctx context.Context, code string) (*models.VisibilityPolicy, error) {
			return nil, errors.New("connection refused")
		},
	}
	service := NewDisclosureService(patientRepo, doctorRepo, recordRepo, visibilityRepo, visitRepo)

	result, err := service.Disclose(context.Background(), "4821", "doc-1")

	assert.NoError(t, err)
	assert.Empty(t, result.PublicData)
}

func TestDiscloseAuditFailureDoesNotAbort(t *testing.T) {
	patientRepo, doctorRepo, recordRepo, visibilityRepo, _ := disclosureFixtures()
	visitRepo := &MockVisitHistoryRepository{
		RecordFunc: func(ctx context.Context, event *models.VisitHistory) error {
			return errors.New("insert failed")
		},
	}
	service := NewDisclosureService(patientRepo, doctorRepo, recordRepo, visibilityRepo, visitRepo)

	result, err := service.Disclose(context.Background(), "4821", "doc-1")

	assert.NoError(t, err)
	assert.Equal(t, "Metformin 500mg", result.PublicData[models.FieldMedication])
}

func TestFilterRecordAllPublic(t *testing.T) {
	record := &models.MedicalRecord{
		Hospital:   "City General",
		Diagnosis:  "Type 2 diabetes",
		Medication: "Metformin 500mg",
	}

	public := FilterRecord(record, models.DefaultPolicy("4821"))

	assert.Len(t, public, len(models.RecordFields))
	assert.Equal(t, "City General", public[models.FieldHospital])
	assert.Equal(t, "", public[models.FieldNotes], "empty values pass through unchanged")
}

func TestFilterRecordLevelMatchIsExact(t *testing.T) {
	record := &models.MedicalRecord{Sugar: "180 mg/dL", Medication: "Metformin 500mg"}
	policy := models.DefaultPolicy("4821")
	policy.Fields[models.FieldSugar] = "Public"
	policy.Fields[models.FieldMedication] = "hidden"

	public := FilterRecord(record, policy)

	_, hasSugar := public[models.FieldSugar]
	_, hasMedication := public[models.FieldMedication]
	assert.False(t, hasSugar, `"Public" is not "public"`)
	assert.False(t, hasMedication, "any non-public level hides the field")
}
