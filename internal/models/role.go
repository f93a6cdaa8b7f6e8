package models

// Role enum
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// Each operation below classifies every role explicitly. Roles that are not
// in the enum (a row edited by hand, a legacy value) fall through to the
// non-patient behavior: they read the full ledger and own nothing.

// SeesAllAppointments reports whether listing returns the full ledger
// rather than only the caller's own appointments.
func (r Role) SeesAllAppointments() bool {
	switch r {
	case RolePatient:
		return false
	case RoleDoctor, RoleAdmin:
		return true
	default:
		return true
	}
}

// CanDeleteAppointment decides delete access for an existing appointment.
// The owning patient may delete their own record; admins may delete any.
// Existence must be checked before calling this (404 wins over 403).
func (r Role) CanDeleteAppointment(callerID string, a *Appointment) bool {
	if a.PatientID == callerID {
		return true
	}
	return r == RoleAdmin
}
