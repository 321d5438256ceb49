package platform

import "testing"

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"watch with tracking",
			"https://www.youtube.com/watch?v=abc123&si=tracker&feature=share",
			"https://www.youtube.com/watch?v=abc123",
		},
		{
			"watch keeps playlist",
			"https://www.youtube.com/watch?v=abc123&list=PL99&index=4",
			"https://www.youtube.com/watch?list=PL99&v=abc123",
		},
		{
			"short link drops query",
			"https://youtu.be/abc123?si=tracker",
			"https://youtu.be/abc123",
		},
		{
			"other site untouched",
			"https://vimeo.com/12345?foo=bar",
			"https://vimeo.com/12345?foo=bar",
		},
		{
			"watch without known params untouched",
			"https://www.youtube.com/watch?si=tracker",
			"https://www.youtube.com/watch?si=tracker",
		},
		{
			"non-watch youtube path untouched",
			"https://www.youtube.com/playlist?list=PL99",
			"https://www.youtube.com/playlist?list=PL99",
		},
		{
			"not a url",
			"definitely not a url",
			"definitely not a url",
		},
	}

	for _, test := range tests {
		if got := SanitizeURL(test.input); got != test.expected {
			t.Errorf("%s: SanitizeURL(%q) = %q, expected %q", test.name, test.input, got, test.expected)
		}
	}
}

func TestSanitizeURL_Idempotent(t *testing.T) {
	inputs := []string{
		"https://www.youtube.com/watch?v=abc123&si=tracker",
		"https://youtu.be/abc123?si=tracker",
		"https://vimeo.com/12345",
	}

	for _, input := range inputs {
		once := SanitizeURL(input)
		twice := SanitizeURL(once)
		if once != twice {
			t.Errorf("not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}
