package sanitize

import "testing"

func TestStripHTML(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"plain text", "plain text"},
		{"<b>bold</b> move", "bold move"},
		{"<script>alert(1)</script>hello", "alert(1)hello"},
		{"&lt;img src=x&gt;", ""},
		{"  padded  ", "padded"},
	}

	for _, tc := range cases {
		if got := StripHTML(tc.input); got != tc.want {
			t.Errorf("StripHTML(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
