package handler

import "testing"

func TestCurrentNavPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/dashboard", "/dashboard"},
		{"/lectures", "/lectures"},
		{"/lectures/abc123", "/lectures"},
		{"/lectures/abc123/edit", "/lectures"},
		{"/lectures/create", "/lectures/create"}, // exact beats the section root
		{"/students", "/students"},
		{"/students/s1/report", "/students"},
		{"/students/create", "/students/create"},
		{"/reports", "/reports"},
		{"/attendance/abc123", ""},
		{"/lecturesque", ""}, // prefix match requires a path boundary
	}

	for _, tt := range tests {
		if got := CurrentNavPath(tt.path, navItems); got != tt.want {
			t.Errorf("CurrentNavPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestNavForMarksSingleEntry(t *testing.T) {
	views := navFor("/lectures/abc123")

	var current []string
	for _, v := range views {
		if v.Current {
			current = append(current, v.Label)
		}
	}
	if len(current) != 1 || current[0] != "Lectures" {
		t.Errorf("current entries = %v, want [Lectures]", current)
	}
}
