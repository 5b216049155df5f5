package models

import (
	"time"
)

// Patient model. The Code is the short share code patients hand to
// doctors; Password stays out of every JSON response.
type Patient struct {
	ID               uint      `gorm:"primaryKey;autoIncrement;column:id" json:"-"`
	Code             string    `gorm:"column:code;not null;uniqueIndex" json:"code"`
	Name             string    `gorm:"column:name;not null" json:"name"`
	Age              int       `gorm:"column:age" json:"age"`
	BloodGroup       string    `gorm:"column:blood_group" json:"bloodGroup"`
	Allergies        string    `gorm:"column:allergies" json:"allergies"`
	Conditions       string    `gorm:"column:conditions" json:"conditions"`
	Medications      string    `gorm:"column:medications" json:"medications"`
	EmergencyContact string    `gorm:"column:emergency_contact" json:"emergencyContact"`
	Email            string    `gorm:"column:email;not null;uniqueIndex" json:"email"`
	Password         string    `gorm:"column:password;not null" json:"-"`
	ProfilePhoto     string    `gorm:"column:profile_photo" json:"profilePhoto"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Patient) TableName() string {
	return "patient"
}

// Doctor model
type Doctor struct {
	ID             string    `gorm:"primaryKey;column:id" json:"id"`
	Name           string    `gorm:"column:name;not null" json:"name"`
	Specialization string    `gorm:"column:specialization;not null" json:"specialization"`
	Email          string    `gorm:"column:email;not null;uniqueIndex" json:"email"`
	Password       string    `gorm:"column:password;not null" json:"-"`
	Photo          string    `gorm:"column:photo" json:"photo"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Doctor) TableName() string {
	return "doctor"
}
