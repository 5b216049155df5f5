package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"PALS/models"
	"PALS/narrative"
	"PALS/utils"
)

func emergencyPatientRepo() *MockPatientRepository {
	return &MockPatientRepository{
		FindByCodeFunc: func(ctx context.Context, code string) (*models.Patient, error) {
			if code != "4821" {
				return nil, nil
			}
			return &models.Patient{
				Code:             "4821",
				Name:             "Asha Rao",
				Age:              34,
				BloodGroup:       "O+",
				Allergies:        "penicillin",
				Conditions:       "asthma",
				Medications:      "salbutamol inhaler",
				EmergencyContact: "+91 98765 43210",
			}, nil
		},
	}
}

func TestEmergencyAccessStaticWithoutNarrator(t *testing.T) {
	service := NewEmergencyService(emergencyPatientRepo(), nil)

	data, err := service.Access(context.Background(), "4821", CategoryCardiac)

	assert.NoError(t, err)
	assert.Equal(t, "static", data.Source)
	assert.Equal(t, CategoryCardiac, data.Category)
	assert.Equal(t, staticRecommendations[CategoryCardiac], data.Recommendation)
	assert.Equal(t, "O+", data.BloodGroup)
	assert.Equal(t, "penicillin", data.Allergies)
}

func TestEmergencyAccessNarrativeOverride(t *testing.T) {
	var gotReq narrative.Request
	narrator := &MockNarrativeClient{
		RecommendFunc: func(ctx context.Context, req narrative.Request) (string, error) {
			gotReq = req
			return "Patient carries an inhaler; assist use and call for help.", nil
		},
	}
	service := NewEmergencyService(emergencyPatientRepo(), narrator)

	data, err := service.Access(context.Background(), "4821", CategoryBreathing)

	assert.NoError(t, err)
	assert.Equal(t, "narrative", data.Source)
	assert.Equal(t, "Patient carries an inhaler; assist use and call for help.", data.Recommendation)
	assert.Equal(t, CategoryBreathing, gotReq.Category)
	assert.Equal(t, "salbutamol inhaler", gotReq.Medications)
}

func TestEmergencyAccessFallsBackOnNarratorError(t *testing.T) {
	narrator := &MockNarrativeClient{
		RecommendFunc: func(ctx context.Context, req narrative.Request) (string, error) {
			return "", errors.New("timeout")
		},
	}
	service := NewEmergencyService(emergencyPatientRepo(), narrator)

	data, err := service.Access(context.Background(), "4821", CategoryStroke)

	assert.NoError(t, err)
	assert.Equal(t, "static", data.Source)
	assert.Equal(t, staticRecommendations[CategoryStroke], data.Recommendation)
}

func TestEmergencyAccessUnknownCategory(t *testing.T) {
	service := NewEmergencyService(emergencyPatientRepo(), nil)

	data, err := service.Access(context.Background(), "4821", "  Zombie Bite ")

	assert.NoError(t, err)
	assert.Equal(t, CategoryGeneral, data.Category)
	assert.Equal(t, staticRecommendations[CategoryGeneral], data.Recommendation)
}

func TestEmergencyAccessUnknownPatient(t *testing.T) {
	service := NewEmergencyService(emergencyPatientRepo(), nil)

	_, err := service.Access(context.Background(), "0000", CategoryCardiac)

	assert.ErrorIs(t, err, utils.ErrNotFound)
}
