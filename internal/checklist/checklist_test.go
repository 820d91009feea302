package checklist

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		want     Stats
		complete bool
	}{
		{"plain text", "Buy milk", Stats{}, false},
		{"empty", "", Stats{}, false},
		{"mixed", "- [x] eggs\n- [ ] milk\n- [X] bread", Stats{Total: 3, Done: 2}, false},
		{"all done", "* [x] one\n  - [x] nested", Stats{Total: 2, Done: 2}, true},
		{"no text", "- [ ] \n- [x]", Stats{}, false},
		{"not at line start", "see - [ ] here", Stats{}, false},
		{"code block", "- [ ] real\n```\n- [x] fake\n```", Stats{Total: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.content)
			if got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
			if got.Complete() != tt.complete {
				t.Errorf("Complete() = %v, want %v", got.Complete(), tt.complete)
			}
		})
	}
}

func TestStatsString(t *testing.T) {
	if s := (Stats{Total: 5, Done: 2}).String(); s != "2/5" {
		t.Errorf("String() = %q", s)
	}
	if !(Stats{}).Empty() {
		t.Errorf("zero Stats should be empty")
	}
}
