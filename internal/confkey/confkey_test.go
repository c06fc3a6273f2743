package confkey

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		name, raw, want string
	}{
		{"nested", `{"background": {"image": "a.jpg"}}`, "a.jpg"},
		{"duplicate outer key", `{"background": {"image": "a.jpg"}, "background": {"image": "b.jpg"}}`, "b.jpg"},
		{"duplicate inner key", `{"background": {"image": "a.jpg", "image": "b.jpg"}}`, "b.jpg"},
		{"last duplicate lacks the key", `{"background": {"image": "a.jpg"}, "background": {}}`, "def"},
		{"missing", `{"title": "x"}`, "def"},
		{"not an object", `{"background": "a.jpg"}`, "def"},
		{"array root", `[{"background": {"image": "a.jpg"}}]`, "def"},
		{"number", `{"background": {"image": 3}}`, "def"},
		{"empty string", `{"background": {"image": ""}}`, "def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String([]byte(tt.raw), "def", "background", "image"); got != tt.want {
				t.Errorf("String = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLastMissingStepDoesNotExist(t *testing.T) {
	if v := Last([]byte(`{"a": {"b": 1}}`), "a", "c", "d"); v.Exists() {
		t.Errorf("Last = %v, want a missing result", v.Raw)
	}
}
