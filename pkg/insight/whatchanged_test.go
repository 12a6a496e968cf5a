package insight

import (
	"reflect"
	"testing"

	"github.com/meetingscribe/api/internal/entity"
)

func TestBuildWhatChangedNoPrior(t *testing.T) {
	current := newMeeting("Kickoff", "", entity.ExtractionRecord{})
	got := BuildWhatChanged(current, nil)
	if got.HasPrior {
		t.Errorf("HasPrior = true, want false when no prior meeting exists")
	}
	if got.NewActionItems != nil || got.NewTopics != nil {
		t.Errorf("expected every diff field empty with no prior, got %+v", got)
	}
}

func TestBuildWhatChangedDiffsTasksSolutionsQuestionsAndTopics(t *testing.T) {
	prior := newMeeting("Kickoff", "We covered the roadmap and budget planning.", entity.ExtractionRecord{
		ActionItems:       []entity.ActionItem{{Task: "Draft the proposal"}, {Task: "Schedule the review"}},
		ProposedSolutions: []string{"Use a shared calendar"},
		OpenQuestions:     []string{"Who owns the budget?"},
	})
	current := newMeeting("Follow-up", "We covered the roadmap and a brand new hiring plan.", entity.ExtractionRecord{
		ActionItems:       []entity.ActionItem{{Task: "Schedule the review"}, {Task: "Finalize the budget"}},
		ProposedSolutions: []string{"Use an async standup doc"},
		OpenQuestions:     []string{},
	})

	got := BuildWhatChanged(current, prior)

	if !got.HasPrior {
		t.Fatalf("HasPrior = false, want true")
	}
	if !reflect.DeepEqual(got.NewActionItems, []string{"finalize the budget"}) {
		t.Errorf("NewActionItems = %v, want [finalize the budget]", got.NewActionItems)
	}
	if !reflect.DeepEqual(got.ResolvedSinceLast, []string{"draft the proposal"}) {
		t.Errorf("ResolvedSinceLast = %v, want [draft the proposal]", got.ResolvedSinceLast)
	}
	if !reflect.DeepEqual(got.NewSolutions, []string{"use an async standup doc"}) {
		t.Errorf("NewSolutions = %v, want [use an async standup doc]", got.NewSolutions)
	}
	if !reflect.DeepEqual(got.DroppedSolutions, []string{"use a shared calendar"}) {
		t.Errorf("DroppedSolutions = %v, want [use a shared calendar]", got.DroppedSolutions)
	}
	if !reflect.DeepEqual(got.ResolvedOpenQuestions, []string{"who owns the budget?"}) {
		t.Errorf("ResolvedOpenQuestions = %v, want [who owns the budget?]", got.ResolvedOpenQuestions)
	}
	if got.NewOpenQuestions != nil {
		t.Errorf("NewOpenQuestions = %v, want nil", got.NewOpenQuestions)
	}
	if !reflect.DeepEqual(got.NewTopics, []string{"brand", "hiring", "plan"}) {
		t.Errorf("NewTopics = %v, want [brand hiring plan]", got.NewTopics)
	}
	if !reflect.DeepEqual(got.DroppedTopics, []string{"budget", "planning"}) {
		t.Errorf("DroppedTopics = %v, want [budget planning]", got.DroppedTopics)
	}
}
