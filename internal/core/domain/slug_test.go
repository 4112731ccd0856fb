package domain

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"My First Post", "my-first-post"},
		{"Hello, World!!", "hello-world"},
		{"hello world", "hello-world"},
		{"  Drones & Agriculture  ", "drones-agriculture"},
		{"UPPER-case---runs", "upper-case-runs"},
		{"2024 Year in Review", "2024-year-in-review"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := Slugify(tc.title); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	titles := []string{"My First Post", "Hello, World!!", "Aerial Mapping 101"}
	for _, title := range titles {
		once := Slugify(title)
		if twice := Slugify(once); twice != once {
			t.Errorf("Slugify not idempotent for %q: %q -> %q", title, once, twice)
		}
	}
}
