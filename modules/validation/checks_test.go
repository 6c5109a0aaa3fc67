package validation

import "testing"

func TestPredicates_IsEmpty(t *testing.T) {
	p := Predicates{}
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"a", false},
		{" a ", false},
	}
	for _, tt := range tests {
		if got := p.IsEmpty(tt.in); got != tt.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPredicates_Length(t *testing.T) {
	p := Predicates{}
	if !p.MinLength(" a", 2) {
		t.Error("MinLength should count untrimmed characters")
	}
	if p.MinLength("a", 2) {
		t.Error("MinLength(\"a\", 2) = true, want false")
	}
	if !p.MaxLength("abc", 3) {
		t.Error("MaxLength(\"abc\", 3) = false, want true")
	}
	if p.MaxLength("abc ", 3) {
		t.Error("MaxLength should count untrimmed characters")
	}
	if !p.MinLength("Jürgen", 6) || !p.MaxLength("Jürgen", 6) {
		t.Error("length should be counted in characters, not bytes")
	}
}

func TestPredicates_CharacterClasses(t *testing.T) {
	p := Predicates{}
	tests := []struct {
		name string
		fn   func(string) bool
		in   string
		want bool
	}{
		{"alpha letters", p.IsAlpha, "Felix", true},
		{"alpha space", p.IsAlpha, "Anna Lena", false},
		{"alpha digit", p.IsAlpha, "R2D2", false},
		{"alpha empty", p.IsAlpha, "", false},
		{"alpha spaces words", p.IsAlphaWithSpaces, "Write the spec", true},
		{"alpha spaces trimmed", p.IsAlphaWithSpaces, "  Draft  ", true},
		{"alpha spaces digit", p.IsAlphaWithSpaces, "Sprint 3", false},
		{"alpha spaces punctuation", p.IsAlphaWithSpaces, "Done!", false},
		{"upper", p.ContainsUpper, "abC", true},
		{"no upper", p.ContainsUpper, "abc", false},
		{"lower", p.ContainsLower, "ABc", true},
		{"no lower", p.ContainsLower, "ABC", false},
		{"digit", p.ContainsDigit, "abc1", true},
		{"no digit", p.ContainsDigit, "abc", false},
		{"special", p.ContainsSpecialChar, "abc(", true},
		{"special not in set", p.ContainsSpecialChar, "abc-_.", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("got %v, want %v for %q", got, tt.want, tt.in)
			}
		})
	}
}

func TestPredicates_IsEmail(t *testing.T) {
	p := Predicates{}
	tests := []struct {
		in   string
		want bool
	}{
		{"max.mustermann@example.com", true},
		{"max_m@web.de", true},
		{"mm@example.info", false},
		{"max@@example.com", false},
		{"max@example", false},
		{"Max@example.com", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := p.IsEmail(tt.in); got != tt.want {
			t.Errorf("IsEmail(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPredicates_IsDate(t *testing.T) {
	p := Predicates{}
	tests := []struct {
		in   string
		want bool
	}{
		{"2024-12-31", true},
		{"2024-02-30", false},
		{"31.12.2024", false},
		{"2024-1-5", false},
		{"", false},
		{"2024-12-31T10:00:00", false},
	}
	for _, tt := range tests {
		if got := p.IsDate(tt.in); got != tt.want {
			t.Errorf("IsDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPredicates_OneOf(t *testing.T) {
	p := Predicates{}
	statuses := []string{"todo", "inprogress", "finished"}
	tests := []struct {
		in      string
		allowed []string
		want    bool
	}{
		{"todo", statuses, true},
		{"finished", statuses, true},
		{"done", statuses, false},
		{"Todo", statuses, false},
		{"", statuses, false},
		{"todo ", statuses, false},
		{"start-to-today", []string{"start-to-end", "start-to-today", "today-to-end"}, true},
		{"in progress", []string{"todo", "in progress"}, true},
		{"todo", nil, false},
	}
	for _, tt := range tests {
		if got := p.OneOf(tt.in, tt.allowed...); got != tt.want {
			t.Errorf("OneOf(%q, %v) = %v, want %v", tt.in, tt.allowed, got, tt.want)
		}
	}
}

func TestPasswordRegulationsViolated(t *testing.T) {
	tests := []struct {
		name   string
		policy PasswordPolicy
		pwd    string
		want   bool
	}{
		{"literal admin", PolicyBannedLiteral, "adminpass", true},
		{"literal admin mixed case", PolicyBannedLiteral, "MyAdMin!1", true},
		{"literal clean", PolicyBannedLiteral, "Str0ng!Pass", false},
		{"literal ignores identity", PolicyBannedLiteral, "Felix!2024", false},
		{"identity firstname", PolicyIdentity, "Felix!2024", true},
		{"identity email local part", PolicyIdentity, "xFkapfer1!", true},
		{"identity ignores literal", PolicyIdentity, "adminpass", false},
		{"identity clean", PolicyIdentity, "Str0ng!Pass", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PasswordRegulationsViolated(tt.policy, tt.pwd, "Felix", "Kapfer", "fkapfer@example.com")
			if got != tt.want {
				t.Errorf("PasswordRegulationsViolated(%s, %q) = %v, want %v", tt.policy, tt.pwd, got, tt.want)
			}
		})
	}
}
