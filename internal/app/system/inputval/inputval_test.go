package inputval

import "testing"

func TestIsValidMobile(t *testing.T) {
	tests := []struct {
		mobile string
		want   bool
	}{
		{"+1 (555) 123-4567", true},
		{"9876543210", true},
		{"+919876543210", true},
		{"555 123 4567", true},

		{"12345", false}, // too short
		{"", false},
		{"   ", false},
		{"123456789012345678", false}, // too long
		{"phone-number", false},
		{"++5551234567", false},
	}

	for _, tt := range tests {
		t.Run(tt.mobile, func(t *testing.T) {
			if got := IsValidMobile(tt.mobile); got != tt.want {
				t.Errorf("IsValidMobile(%q) = %v, want %v", tt.mobile, got, tt.want)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"user.name@example.co.uk", true},
		{"user+tag@example.com", true},

		{"", false},
		{"user", false},
		{"user@", false},
		{"@example.com", false},
		{"user@nodot", false},
		{"user name@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestIsValidEmpID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"EMP001", true},
		{"emp042", true},
		{"EMP1234", true},

		{"EMP01", false}, // needs at least three digits
		{"EMPLOYEE1", false},
		{"001", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := IsValidEmpID(tt.id); got != tt.want {
				t.Errorf("IsValidEmpID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestValidate_Messages(t *testing.T) {
	type input struct {
		Name       string `validate:"required,max=50" label:"First name"`
		Query      string `validate:"required,max=1000" label:"Query"`
		Experience int    `validate:"gte=0,lte=60" label:"Experience"`
	}

	res := Validate(input{Experience: 75})
	if !res.HasErrors() {
		t.Fatal("expected validation errors")
	}
	if len(res.Errors) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(res.Errors), res.Errors)
	}
	if res.First() != "First name is required" {
		t.Errorf("First() = %q, want %q", res.First(), "First name is required")
	}

	ok := Validate(input{Name: "Asha", Query: "Need help with GST filing", Experience: 12})
	if ok.HasErrors() {
		t.Errorf("unexpected errors: %v", ok.Errors)
	}
}
