package models

import (
	"time"
)

// Appointment represents a booked slot in the ledger. patient_id always
// points at the user who created the record and never changes afterwards;
// there is no update operation.
type Appointment struct {
	BaseModel
	PatientID  string    `gorm:"size:36;index;not null" json:"patientId"`
	DoctorName string    `gorm:"size:120;not null" json:"doctorName"`
	DateTime   time.Time `json:"dateTime"`
	Notes      *string   `gorm:"type:text" json:"notes"`

	// Relations
	Patient User `gorm:"foreignKey:PatientID" json:"-"`
}

// AppointmentSanitized is the wire shape of an appointment, with both
// timestamps rendered as ISO-8601 strings and notes null when absent.
type AppointmentSanitized struct {
	ID         string  `json:"id"`
	PatientID  string  `json:"patient_id"`
	DoctorName string  `json:"doctor_name"`
	DateTime   string  `json:"date_time"`
	Notes      *string `json:"notes"`
	CreatedAt  string  `json:"created_at"`
}

// Sanitize creates an AppointmentSanitized struct from an Appointment model.
func (a *Appointment) Sanitize() AppointmentSanitized {
	return AppointmentSanitized{
		ID:         a.ID,
		PatientID:  a.PatientID,
		DoctorName: a.DoctorName,
		DateTime:   FormatDateTime(a.DateTime),
		Notes:      a.Notes,
		CreatedAt:  FormatDateTime(a.CreatedAt),
	}
}
