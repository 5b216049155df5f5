package services

import (
	"context"
	"errors"
	"sync/atomic"

	"PALS/models"
	"PALS/narrative"
	"PALS/repositories"
)

// --- MockPatientRepository ---
var _ repositories.PatientRepository = (*MockPatientRepository)(nil)

type MockPatientRepository struct {
	CreateFunc         func(ctx context.Context, patient *models.Patient) error
	FindByCodeFunc     func(ctx context.Context, code string) (*models.Patient, error)
	FindByEmailFunc    func(ctx context.Context, email string) (*models.Patient, error)
	EmailExistsFunc    func(ctx context.Context, email string) (bool, error)
	CodeExistsFunc     func(ctx context.Context, code string) (bool, error)
	UpdatePasswordFunc func(ctx context.Context, email, hashedPassword string) error

	CreateCallCount int32
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, patient)
	}
	return nil
}

func (m *MockPatientRepository) FindByCode(ctx context.Context, code string) (*models.Patient, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, code)
	}
	return nil, errors.New("FindByCodeFunc not implemented in mock")
}

func (m *MockPatientRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, errors.New("FindByEmailFunc not implemented in mock")
}

func (m *MockPatientRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.EmailExistsFunc != nil {
		return m.EmailExistsFunc(ctx, email)
	}
	return false, nil
}

func (m *MockPatientRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	if m.CodeExistsFunc != nil {
		return m.CodeExistsFunc(ctx, code)
	}
	return false, nil
}

func (m *MockPatientRepository) UpdatePassword(ctx context.Context, email, hashedPassword string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, email, hashedPassword)
	}
	return nil
}

// --- MockDoctorRepository ---
var _ repositories.DoctorRepository = (*MockDoctorRepository)(nil)

type MockDoctorRepository struct {
	CreateFunc      func(ctx context.Context, doctor *models.Doctor) error
	FindByIDFunc    func(ctx context.Context, id string) (*models.Doctor, error)
	FindByEmailFunc func(ctx context.Context, email string) (*models.Doctor, error)
	EmailExistsFunc func(ctx context.Context, email string) (bool, error)
}

func (m *MockDoctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, doctor)
	}
	return nil
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, id string) (*models.Doctor, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockDoctorRepository) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockDoctorRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.EmailExistsFunc != nil {
		return m.EmailExistsFunc(ctx, email)
	}
	return false, nil
}

// --- MockRecordRepository ---
var _ repositories.RecordRepository = (*MockRecordRepository)(nil)

type MockRecordRepository struct {
	AppendFunc  func(ctx context.Context, record *models.MedicalRecord) error
	ReplaceFunc func(ctx context.Context, recordID string, fields map[string]string) (*models.MedicalRecord, error)
	LatestFunc  func(ctx context.Context, code string) (*models.MedicalRecord, error)
	HistoryFunc func(ctx context.Context, code string) ([]models.MedicalRecord, error)
}

func (m *MockRecordRepository) Append(ctx context.Context, record *models.MedicalRecord) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, record)
	}
	return nil
}

func (m *MockRecordRepository) Replace(ctx context.Context, recordID string, fields map[string]string) (*models.MedicalRecord, error) {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, recordID, fields)
	}
	return nil, nil
}

func (m *MockRecordRepository) Latest(ctx context.Context, code string) (*models.MedicalRecord, error) {
	if m.LatestFunc != nil {
		return m.LatestFunc(ctx, code)
	}
	return nil, nil
}

func (m *MockRecordRepository) History(ctx context.Context, code string) ([]models.MedicalRecord, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx, code)
	}
	return nil, nil
}

// --- MockVisibilityRepository ---
var _ repositories.VisibilityRepository = (*MockVisibilityRepository)(nil)

type MockVisibilityRepository struct {
	GetPolicyFunc func(ctx context.Context, code string) (*models.VisibilityPolicy, error)
	SetFieldFunc  func(ctx context.Context, code, field, level string) (*models.VisibilityPolicy, error)
}

func (m *MockVisibilityRepository) GetPolicy(ctx context.Context, code string) (*models.VisibilityPolicy, error) {
	if m.GetPolicyFunc != nil {
		return m.GetPolicyFunc(ctx, code)
	}
	return models.DefaultPolicy(code), nil
}

func (m *MockVisibilityRepository) SetField(ctx context.Context, code, field, level string) (*models.VisibilityPolicy, error) {
	if m.SetFieldFunc != nil {
		return m.SetFieldFunc(ctx, code, field, level)
	}
	return models.DefaultPolicy(code), nil
}

// --- MockVisitHistoryRepository ---
var _ repositories.VisitHistoryRepository = (*MockVisitHistoryRepository)(nil)

type MockVisitHistoryRepository struct {
	RecordFunc     func(ctx context.Context, event *models.VisitHistory) error
	HistoryForFunc func(ctx context.Context, code string) ([]models.VisitHistory, error)

	Recorded []models.VisitHistory
}

func (m *MockVisitHistoryRepository) Record(ctx context.Context, event *models.VisitHistory) error {
	if m.RecordFunc != nil {
		if err := m.RecordFunc(ctx, event); err != nil {
			return err
		}
	}
	m.Recorded = append(m.Recorded, *event)
	return nil
}

func (m *MockVisitHistoryRepository) HistoryFor(ctx context.Context, code string) ([]models.VisitHistory, error) {
	if m.HistoryForFunc != nil {
		return m.HistoryForFunc(ctx, code)
	}
	return m.Recorded, nil
}

// --- MockNarrativeClient ---
var _ narrative.Client = (*MockNarrativeClient)(nil)

type MockNarrativeClient struct {
	RecommendFunc func(ctx context.Context, req narrative.Request) (string, error)
}

func (m *MockNarrativeClient) Recommend(ctx context.Context, req narrative.Request) (string, error) {
	if m.RecommendFunc != nil {
		return m.RecommendFunc(ctx, req)
	}
	return "", errors.New("RecommendFunc not implemented in mock")
}
