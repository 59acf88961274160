package normalize

import "testing"

func TestEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"User@Example.COM", "user@example.com"},
		{"  spaced@example.com  ", "spaced@example.com"},
		{"already@example.com", "already@example.com"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Email(tt.in); got != tt.want {
			t.Errorf("Email(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestField(t *testing.T) {
	if got := Field("  hello  "); got != "hello" {
		t.Errorf("Field() = %q, want 'hello'", got)
	}
}

func TestStatus_PreservesCase(t *testing.T) {
	// Status values are stored title-cased; only whitespace goes.
	if got := Status(" Published "); got != "Published" {
		t.Errorf("Status() = %q, want 'Published'", got)
	}
	if got := Status("draft"); got != "draft" {
		t.Errorf("Status() = %q, want 'draft' (case untouched)", got)
	}
}
