package bundle

import "testing"

func TestChooseMainEntry(t *testing.T) {
	tests := []struct {
		name      string
		entries   []string
		receiptNo string
		want      string
		wantOK    bool
	}{
		{
			name:      "receipt prefix with extension tie-break",
			entries:   []string{"A123.xml", "A123.html", "other.pdf"},
			receiptNo: "A123",
			want:      "A123.html",
			wantOK:    true,
		},
		{
			name:      "receipt prefix is case-insensitive",
			entries:   []string{"a123_body.HTM"},
			receiptNo: "A123",
			want:      "a123_body.HTM",
			wantOK:    true,
		},
		{
			name:      "marker tier when no receipt match",
			entries:   []string{"foo_사업보고서.htm", "bar.xml"},
			receiptNo: "20240101000001",
			want:      "foo_사업보고서.htm",
			wantOK:    true,
		},
		{
			name:      "body-text marker",
			entries:   []string{"readme.txt", "첨부_본문.xml"},
			receiptNo: "20240101000001",
			want:      "첨부_본문.xml",
			wantOK:    true,
		},
		{
			name:      "any markup as last tier",
			entries:   []string{"cover.pdf", "stuff.xml"},
			receiptNo: "20240101000001",
			want:      "stuff.xml",
			wantOK:    true,
		},
		{
			name:      "no markup entries at all",
			entries:   []string{"readme.txt"},
			receiptNo: "A123",
			wantOK:    false,
		},
		{
			name:      "marker without markup extension is ignored",
			entries:   []string{"사업보고서.pdf", "misc.htm"},
			receiptNo: "20240101000001",
			want:      "misc.htm",
			wantOK:    true,
		},
		{
			name:    "empty archive",
			entries: nil,
			wantOK:  false,
		},
	}

	for _, tc := range tests {
		got, ok := ChooseMainEntry(tc.entries, tc.receiptNo)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("%s: ChooseMainEntry = (%q, %v), want (%q, %v)",
				tc.name, got, ok, tc.want, tc.wantOK)
		}
	}
}

// Equal extensions keep their archive order: the ranking sort is stable.
func TestChooseMainEntryStableOrder(t *testing.T) {
	entries := []string{"A123_part2.html", "A123_part1.html", "A123.xml"}

	got, ok := ChooseMainEntry(entries, "A123")
	if !ok || got != "A123_part2.html" {
		t.Errorf("ChooseMainEntry = (%q, %v), want first-listed html entry", got, ok)
	}
}

func TestExtRank(t *testing.T) {
	tests := []struct {
		entry string
		want  int
	}{
		{"a.html", 0},
		{"a.HTML", 0},
		{"a.htm", 1},
		{"a.xml", 2},
		{"a.pdf", 3},
		{"noext", 3},
	}

	for _, tc := range tests {
		if got := extRank(tc.entry); got != tc.want {
			t.Errorf("extRank(%q) = %d, want %d", tc.entry, got, tc.want)
		}
	}
}
