package models

import (
	"time"
)

// Visibility levels for clinical fields. Anything other than
// VisibilityPublic hides the field from doctors; "private" is the
// conventional value the UI sends.
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// Record schema versions. Version 1 carried free-text vitals and a single
// diagnosis field; version 2 split vitals into bp/pulse/temperature and
// added history and diseases.
const (
	RecordSchemaV1 = 1
	RecordSchemaV2 = 2
)

// Clinical field names. These are the canonical JSON keys shared by
// MedicalRecord and the visibility settings; the wire format must preserve
// them for compatibility.
const (
	FieldDate        = "date"
	FieldHospital    = "hospital"
	FieldReportNo    = "reportNo"
	FieldVitals      = "vitals"
	FieldBP          = "bp"
	FieldPulse       = "pulse"
	FieldTemperature = "temperature"
	FieldSugar       = "sugar"
	FieldCholesterol = "cholesterol"
	FieldDiagnosis   = "diagnosis"
	FieldHistory     = "history"
	FieldDiseases    = "diseases"
	FieldMedication  = "medication"
	FieldNotes       = "notes"
	FieldDoctor      = "doctor"
	FieldPhoto       = "photo"
)

// RecordFields enumerates every clinical field gated by visibility. The
// set is configuration, not schema: visibility rows for fields added later
// simply don't exist yet and resolve to "public" at read time.
var RecordFields = []string{
	FieldDate,
	FieldHospital,
	FieldReportNo,
	FieldVitals,
	FieldBP,
	FieldPulse,
	FieldTemperature,
	FieldSugar,
	FieldCholesterol,
	FieldDiagnosis,
	FieldHistory,
	FieldDiseases,
	FieldMedication,
	FieldNotes,
	FieldDoctor,
	FieldPhoto,
}

// IsRecordField reports whether name is a recognized clinical field.
func IsRecordField(name string) bool {
	for _, f := range RecordFields {
		if f == name {
			return true
		}
	}
	return false
}

// MedicalRecord model ("prescription"). Records are append-only per
// patient code; CreatedAt fixes the position for latest-record resolution
// and never changes on amendment, unlike the human-entered Date which can
// be backdated.
type MedicalRecord struct {
	ID            string    `gorm:"primaryKey;column:id" json:"id"`
	Code          string    `gorm:"column:code;not null;index" json:"code"`
	SchemaVersion int       `gorm:"column:schema_version;not null;default:2" json:"schemaVersion"`
	Date          string    `gorm:"column:date" json:"date"`
	Hospital      string    `gorm:"column:hospital" json:"hospital"`
	ReportNo      string    `gorm:"column:report_no" json:"reportNo"`
	Vitals        string    `gorm:"column:vitals" json:"vitals"`
	BP            string    `gorm:"column:bp" json:"bp"`
	Pulse         string    `gorm:"column:pulse" json:"pulse"`
	Temperature   string    `gorm:"column:temperature" json:"temperature"`
	Sugar         string    `gorm:"column:sugar" json:"sugar"`
	Cholesterol   string    `gorm:"column:cholesterol" json:"cholesterol"`
	Diagnosis     string    `gorm:"column:diagnosis" json:"diagnosis"`
	History       string    `gorm:"column:history" json:"history"`
	Diseases      string    `gorm:"column:diseases" json:"diseases"`
	Medication    string    `gorm:"column:medication" json:"medication"`
	Notes         string    `gorm:"column:notes" json:"notes"`
	Doctor        string    `gorm:"column:doctor" json:"doctor"`
	Photo         string    `gorm:"column:photo" json:"photo"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime;index" json:"createdAt"`
}

func (MedicalRecord) TableName() string {
	return "medical_record"
}

// ClinicalFields maps every gated field name to its value on this record.
// The mapping is explicit so that drift between RecordFields and the
// struct shows up in tests instead of silently skipping fields.
func (r *MedicalRecord) ClinicalFields() map[string]string {
	return map[string]string{
		FieldDate:        r.Date,
		FieldHospital:    r.Hospital,
		FieldReportNo:    r.ReportNo,
		FieldVitals:      r.Vitals,
		FieldBP:          r.BP,
		FieldPulse:       r.Pulse,
		FieldTemperature: r.Temperature,
		FieldSugar:       r.Sugar,
		FieldCholesterol: r.Cholesterol,
		FieldDiagnosis:   r.Diagnosis,
		FieldHistory:     r.History,
		FieldDiseases:    r.Diseases,
		FieldMedication:  r.Medication,
		FieldNotes:       r.Notes,
		FieldDoctor:      r.Doctor,
		FieldPhoto:       r.Photo,
	}
}

// SetClinicalField assigns value to the named field. Unknown names are
// ignored; callers validate membership beforehand.
func (r *MedicalRecord) SetClinicalField(name, value string) {
	switch name {
	case FieldDate:
		r.Date = value
	case FieldHospital:
		r.Hospital = value
	case FieldReportNo:
		r.ReportNo = value
	case FieldVitals:
		r.Vitals = value
	case FieldBP:
		r.BP = value
	case FieldPulse:
		r.Pulse = value
	case FieldTemperature:
		r.Temperature = value
	case FieldSugar:
		r.Sugar = value
	case FieldCholesterol:
		r.Cholesterol = value
	case FieldDiagnosis:
		r.Diagnosis = value
	case FieldHistory:
		r.History = value
	case FieldDiseases:
		r.Diseases = value
	case FieldMedication:
		r.Medication = value
	case FieldNotes:
		r.Notes = value
	case FieldDoctor:
		r.Doctor = value
	case FieldPhoto:
		r.Photo = value
	}
}

// VisibilitySetting model. One row per (code, field); rows are created
// lazily with level "public" and are never deleted.
type VisibilitySetting struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;column:id" json:"-"`
	Code      string    `gorm:"column:code;not null;uniqueIndex:idx_visibility_code_field" json:"code"`
	Field     string    `gorm:"column:field;not null;uniqueIndex:idx_visibility_code_field" json:"field"`
	Level     string    `gorm:"column:level;not null;default:'public'" json:"level"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (VisibilitySetting) TableName() string {
	return "visibility_setting"
}

// VisibilityPolicy is the assembled per-patient policy handed to callers.
// It is a read model over VisibilitySetting rows, not a table.
type VisibilityPolicy struct {
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields"`
}

// DefaultPolicy returns an all-public policy for code covering every
// recognized field.
func DefaultPolicy(code string) *VisibilityPolicy {
	fields := make(map[string]string, len(RecordFields))
	for _, f := range RecordFields {
		fields[f] = VisibilityPublic
	}
	return &VisibilityPolicy{Code: code, Fields: fields}
}

// Level resolves the visibility level for a field, defaulting to "public"
// for fields with no stored row yet.
func (p *VisibilityPolicy) Level(field string) string {
	if level, ok := p.Fields[field]; ok {
		return level
	}
	return VisibilityPublic
}

// IsPublic reports whether field may be disclosed. The comparison is exact
// and case-sensitive.
func (p *VisibilityPolicy) IsPublic(field string) bool {
	return p.Level(field) == VisibilityPublic
}

// VisitHistory model. One immutable row per doctor-attributed disclosure;
// doctor name and specialization are snapshots taken at view time.
type VisitHistory struct {
	ID             uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientCode    string    `gorm:"column:patient_code;not null;index" json:"patientCode"`
	DoctorID       string    `gorm:"column:doctor_id;not null" json:"doctorId"`
	DoctorName     string    `gorm:"column:doctor_name;not null" json:"doctorName"`
	Specialization string    `gorm:"column:specialization" json:"specialization"`
	Photo          string    `gorm:"column:photo" json:"photo"`
	ViewedAt       time.Time `gorm:"column:viewed_at;autoCreateTime;index" json:"viewedAt"`
}

func (VisitHistory) TableName() string {
	return "visit_history"
}
