package checklist

import "testing"

func TestParse(t *testing.T) {
	content := "Revise chapter 3\n- [x] read notes\n  - [ ] past paper\n* [X] flashcards\n```\n- [ ] not a task\n```\nuse `- [ ] inline` too"

	items := Parse(content)
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3: %+v", len(items), items)
	}

	want := []Item{
		{Text: "read notes", Checked: true, Depth: 0},
		{Text: "past paper", Checked: false, Depth: 2},
		{Text: "flashcards", Checked: true, Depth: 0},
	}
	for i, w := range want {
		if items[i] != w {
			t.Errorf("item %d = %+v, want %+v", i, items[i], w)
		}
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Stats
		done    bool
	}{
		{name: "plain description", content: "Submit essay", want: Stats{}},
		{name: "partial", content: "- [x] a\n- [ ] b\n- [ ] c", want: Stats{Total: 3, Completed: 1, Progress: 33}},
		{name: "all checked", content: "- [x] a\n- [x] b", want: Stats{Total: 2, Completed: 2, Progress: 100}, done: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.content); got != tt.want {
				t.Errorf("Progress() = %+v, want %+v", got, tt.want)
			}
			if got := Done(tt.content); got != tt.done {
				t.Errorf("Done() = %v, want %v", got, tt.done)
			}
		})
	}
}
