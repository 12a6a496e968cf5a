package keyword

import (
	"reflect"
	"testing"
)

func TestKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "drops stop words and short tokens",
			text: "The project deadline is next week for the project launch",
			want: []string{"project", "deadline", "next", "week", "launch"},
		},
		{
			name: "ranks by frequency",
			text: "migration migration migration rollback rollback timeline",
			want: []string{"migration", "rollback", "timeline"},
		},
		{
			name: "empty text yields no keywords",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Keywords(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Keywords(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestPeopleFromAttendeesLine(t *testing.T) {
	text := "Attendees: Alice, Bob & Carol; Dave\nLet's get started."
	got := People(text)
	want := []string{"Alice", "Bob", "Carol", "Dave"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("People() = %v, want %v", got, want)
	}
}

func TestPeopleFromSpeakerLines(t *testing.T) {
	text := "alice: let's get started\nbob: sounds good\nalice: thanks"
	got := People(text)
	want := []string{"alice", "bob"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("People() = %v, want %v", got, want)
	}
}

func TestPeopleDiscardsOutOfRangeNames(t *testing.T) {
	text := "Attendees: A, Supercalifragilisticexpialidocious, Bob"
	got := People(text)
	want := []string{"Bob"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("People() = %v, want %v", got, want)
	}
}
