package models

import "testing"

func TestSeesAllAppointments(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RolePatient, false},
		{RoleDoctor, true},
		{RoleAdmin, true},
		{Role("receptionist"), true}, // unclassified roles read like staff
		{Role(""), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := tt.role.SeesAllAppointments(); got != tt.want {
				t.Errorf("SeesAllAppointments(%q) = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}

func TestCanDeleteAppointment(t *testing.T) {
	appt := &Appointment{PatientID: "owner-id"}

	tests := []struct {
		name     string
		role     Role
		callerID string
		want     bool
	}{
		{"owning patient", RolePatient, "owner-id", true},
		{"other patient", RolePatient, "someone-else", false},
		{"doctor non-owner", RoleDoctor, "someone-else", false},
		{"doctor owner", RoleDoctor, "owner-id", true},
		{"admin non-owner", RoleAdmin, "someone-else", true},
		{"unknown role non-owner", Role("receptionist"), "someone-else", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.role.CanDeleteAppointment(tt.callerID, appt); got != tt.want {
				t.Errorf("CanDeleteAppointment(%q, owner-id) as %q = %v, want %v",
					tt.callerID, tt.role, got, tt.want)
			}
		})
	}
}
