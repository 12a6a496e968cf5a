package insight

import (
	"testing"

	"github.com/google/uuid"
	"github.com/meetingscribe/api/internal/entity"
)

func newMeeting(title, rawNotes string, extracted entity.ExtractionRecord) *entity.Meeting {
	return &entity.Meeting{
		Id:        uuid.New(),
		Title:     title,
		RawNotes:  rawNotes,
		Extracted: extracted,
	}
}

func cardOfType(cards []Card, t CardType) *Card {
	for i := range cards {
		if cards[i].Type == t {
			return &cards[i]
		}
	}
	return nil
}

func TestBuildCardsRecurringTopics(t *testing.T) {
	prior := newMeeting("Sprint Planning", "We discussed the authentication migration timeline and rollback plan.", entity.ExtractionRecord{})
	current := newMeeting("Sprint Review", "Following up on the authentication migration and the rollback plan status.", entity.ExtractionRecord{})

	cards := BuildCards(current, []*entity.Meeting{prior}, nil)

	card := cardOfType(cards, CardRecurringTopics)
	if card == nil {
		t.Fatalf("expected a recurring topics card, got none in %+v", cards)
	}
	entries, ok := card.Data.([]RecurringTopicEntry)
	if !ok || len(entries) != 1 {
		t.Fatalf("expected 1 recurring topic entry, got %#v", card.Data)
	}
	if entries[0].MeetingTitle != "Sprint Planning" {
		t.Errorf("MeetingTitle = %q, want %q", entries[0].MeetingTitle, "Sprint Planning")
	}
}

func TestBuildCardsNoRecurrenceBelowSharedTokenGate(t *testing.T) {
	prior := newMeeting("Standup", "Talked about lunch plans.", entity.ExtractionRecord{})
	current := newMeeting("Standup 2", "Discussed the migration timeline only.", entity.ExtractionRecord{})

	cards := BuildCards(current, []*entity.Meeting{prior}, nil)
	if card := cardOfType(cards, CardRecurringTopics); card != nil {
		t.Errorf("expected no recurring topics card, got %+v", card)
	}
}

func TestBuildCardsUnresolvedItems(t *testing.T) {
	prior := newMeeting("Kickoff", "Initial planning.", entity.ExtractionRecord{
		ActionItems: []entity.ActionItem{{Task: "Finish the migration script", Owner: "Alice", Deadline: "Friday"}},
	})
	current := newMeeting("Check-in", "We still need to finish the migration script before launch.", entity.ExtractionRecord{})

	cards := BuildCards(current, []*entity.Meeting{prior}, nil)
	card := cardOfType(cards, CardUnresolvedItems)
	if card == nil {
		t.Fatalf("expected an unresolved items card, got none in %+v", cards)
	}
	entries := card.Data.([]UnresolvedItemEntry)
	if len(entries) != 1 || entries[0].Task != "Finish the migration script" {
		t.Errorf("unexpected entries: %#v", entries)
	}
}

func TestBuildCardsFollowUpSignals(t *testing.T) {
	current := newMeeting("Check-in", "As discussed last time, we agreed to revisit the budget.", entity.ExtractionRecord{})
	cards := BuildCards(current, nil, nil)

	card := cardOfType(cards, CardFollowUpSignals)
	if card == nil {
		t.Fatalf("expected a follow-up signals card, got none in %+v", cards)
	}
	phrases := card.Data.([]string)
	if len(phrases) == 0 {
		t.Errorf("expected at least one matched phrase, got none")
	}
}

func TestBuildCardsNewTopics(t *testing.T) {
	prior := newMeeting("Kickoff", "We discussed the roadmap and timeline.", entity.ExtractionRecord{})
	current := newMeeting("Follow-up", "The roadmap holds, but today we covered a brand new onboarding workflow proposal.", entity.ExtractionRecord{})

	cards := BuildCards(current, []*entity.Meeting{prior}, nil)
	card := cardOfType(cards, CardNewTopics)
	if card == nil {
		t.Fatalf("expected a new topics card, got none in %+v", cards)
	}
	fresh := card.Data.([]string)
	for _, kw := range fresh {
		if kw == "roadmap" || kw == "timeline" {
			t.Errorf("new topics should exclude prior keyword %q", kw)
		}
	}
	found := false
	for _, kw := range fresh {
		if kw == "onboarding" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %q among fresh topics, got %v", "onboarding", fresh)
	}
}

func TestBuildCardsRecurringSolutions(t *testing.T) {
	prior := newMeeting("Kickoff", "", entity.ExtractionRecord{
		ProposedSolutions: []string{"Switch to async background queue processing"},
	})
	current := newMeeting("Follow-up", "", entity.ExtractionRecord{
		ProposedSolutions: []string{"Revisit async background queue processing again"},
	})

	cards := BuildCards(current, []*entity.Meeting{prior}, nil)
	card := cardOfType(cards, CardRecurringSolutions)
	if card == nil {
		t.Fatalf("expected a recurring solutions card, got none in %+v", cards)
	}
	entries := card.Data.([]RecurringSolutionEntry)
	if len(entries) != 1 {
		t.Fatalf("expected 1 recurring solution entry, got %d", len(entries))
	}
}

func TestBuildCardsEmptyInputsProduceNoCards(t *testing.T) {
	current := newMeeting("Empty", "", entity.ExtractionRecord{})
	cards := BuildCards(current, nil, nil)
	if len(cards) != 0 {
		t.Errorf("expected no cards from empty input, got %+v", cards)
	}
}
