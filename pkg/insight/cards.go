// Package insight computes cross-meeting intelligence: recurring-topic,
// unresolved-item, follow-up-reference, recurring-participant, new-topic,
// and recurring-solution cards, plus a what-changed diff against the most
// recent prior meeting. Every computation here is pure and deterministic
// given its inputs.
package insight

import (
	"sort"
	"strings"

	"github.com/meetingscribe/api/internal/entity"
	"github.com/meetingscribe/api/pkg/keyword"
)

type CardType string

const (
	CardRecurringTopics       CardType = "recurring_topics"
	CardUnresolvedItems       CardType = "unresolved_items"
	CardFollowUpSignals       CardType = "follow_up_signals"
	CardRecurringParticipants CardType = "recurring_participants"
	CardNewTopics             CardType = "new_topics"
	CardRecurringSolutions    CardType = "recurring_solutions"
)

type Card struct {
	Type  CardType    `json:"type"`
	Title string      `json:"title"`
	Data  interface{} `json:"data"`
}

type RecurringTopicEntry struct {
	MeetingId    string   `json:"meeting_id"`
	MeetingTitle string   `json:"meeting_title"`
	SharedTopics []string `json:"shared_topics"`
}

type UnresolvedItemEntry struct {
	Task               string `json:"task"`
	Owner              string `json:"owner"`
	Deadline           string `json:"deadline"`
	SourceMeetingId    string `json:"source_meeting_id"`
	SourceMeetingTitle string `json:"source_meeting_title"`
}

type RecurringParticipantEntry struct {
	Name         string `json:"name"`
	MeetingCount int    `json:"meeting_count"`
}

type RecurringSolutionEntry struct {
	CurrentSolution   string `json:"current_solution"`
	PriorSolution     string `json:"prior_solution"`
	PriorMeetingId    string `json:"prior_meeting_id"`
	PriorMeetingTitle string `json:"prior_meeting_title"`
}

var followUpPhrases = []string{
	"follow up", "following up", "last time", "previously", "as discussed",
	"we agreed", "circling back", "checking in on", "update on",
}

// BuildCards produces up to six insight cards for meeting against prior.
// embeddingCandidates supplements prior for the Recurring Topics card only
// (SPEC_FULL's EmbeddingAugmenter); it never overrides the >=2-shared-
// token gate, it only widens which meetings are checked against it.
func BuildCards(meeting *entity.Meeting, prior []*entity.Meeting, embeddingCandidates []*entity.Meeting) []Card {
	var cards []Card

	meetingKeywords := keyword.Keywords(meeting.RawNotes)
	meetingPeople := keyword.People(meeting.RawNotes)

	recurringCandidates := mergeMeetings(prior, embeddingCandidates)

	if card := recurringTopicsCard(meetingKeywords, recurringCandidates); card != nil {
		cards = append(cards, *card)
	}
	if card := unresolvedItemsCard(meeting, prior); card != nil {
		cards = append(cards, *card)
	}
	if card := followUpSignalsCard(meeting.RawNotes); card != nil {
		cards = append(cards, *card)
	}
	if card := recurringParticipantsCard(meetingPeople, prior); card != nil {
		cards = append(cards, *card)
	}
	if card := newTopicsCard(meetingKeywords, prior); card != nil {
		cards = append(cards, *card)
	}
	if card := recurringSolutionsCard(meeting, prior); card != nil {
		cards = append(cards, *card)
	}

	if len(cards) > 6 {
		cards = cards[:6]
	}
	return cards
}

func mergeMeetings(a, b []*entity.Meeting) []*entity.Meeting {
	seen := make(map[string]bool)
	out := make([]*entity.Meeting, 0, len(a)+len(b))
	for _, m := range a {
		if m == nil || seen[m.Id.String()] {
			continue
		}
		seen[m.Id.String()] = true
		out = append(out, m)
	}
	for _, m := range b {
		if m == nil || seen[m.Id.String()] {
			continue
		}
		seen[m.Id.String()] = true
		out = append(out, m)
	}
	return out
}

// sharedTokens returns the elements of a that also appear in b, preserving
// a's order.
func sharedTokens(a, b []string) []string {
	bSet := make(map[string]bool, len(b))
	for _, t := range b {
		bSet[t] = true
	}
	var shared []string
	for _, t := range a {
		if bSet[t] {
			shared = append(shared, t)
		}
	}
	return shared
}

func recurringTopicsCard(meetingKeywords []string, candidates []*entity.Meeting) *Card {
	var entries []RecurringTopicEntry
	for _, m := range candidates {
		shared := sharedTokens(meetingKeywords, keyword.Keywords(m.RawNotes))
		if len(shared) < 2 {
			continue
		}
		if len(shared) > 6 {
			shared = shared[:6]
		}
		entries = append(entries, RecurringTopicEntry{
			MeetingId:    m.Id.String(),
			MeetingTitle: m.Title,
			SharedTopics: shared,
		})
		if len(entries) >= 5 {
			break
		}
	}
	if len(entries) == 0 {
		return nil
	}
	return &Card{Type: CardRecurringTopics, Title: "Recurring Topics", Data: entries}
}

func unresolvedItemsCard(meeting *entity.Meeting, prior []*entity.Meeting) *Card {
	loweredText := strings.ToLower(meeting.RawNotes)
	seen := make(map[string]bool)
	var entries []UnresolvedItemEntry

	for _, m := range prior {
		for _, item := range m.Extracted.ActionItems {
			taskKeywords := keyword.Keywords(item.Task)
			matched := false
			for _, kw := range taskKeywords {
				if strings.Contains(loweredText, kw) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
			normalized := strings.ToLower(strings.TrimSpace(item.Task))
			if seen[normalized] {
				continue
			}
			seen[normalized] = true
			entries = append(entries, UnresolvedItemEntry{
				Task:               item.Task,
				Owner:              item.Owner,
				Deadline:           item.Deadline,
				SourceMeetingId:    m.Id.String(),
				SourceMeetingTitle: m.Title,
			})
			if len(entries) >= 5 {
				break
			}
		}
		if len(entries) >= 5 {
			break
		}
	}

	if len(entries) == 0 {
		return nil
	}
	return &Card{Type: CardUnresolvedItems, Title: "Possibly Unresolved Items", Data: entries}
}

func followUpSignalsCard(rawNotes string) *Card {
	lowered := strings.ToLower(rawNotes)
	var found []string
	for _, phrase := range followUpPhrases {
		if strings.Contains(lowered, phrase) {
			found = append(found, phrase)
		}
	}
	if len(found) == 0 {
		return nil
	}
	return &Card{Type: CardFollowUpSignals, Title: "Follow-up References", Data: found}
}

func recurringParticipantsCard(meetingPeople []string, prior []*entity.Meeting) *Card {
	counts := make(map[string]int)
	var order []string
	mSet := make(map[string]bool, len(meetingPeople))
	for _, p := range meetingPeople {
		mSet[strings.ToLower(p)] = true
	}

	for _, m := range prior {
		priorPeople := keyword.People(m.RawNotes)
		seenInThisMeeting := make(map[string]bool)
		for _, p := range priorPeople {
			key := strings.ToLower(p)
			if !mSet[key] || seenInThisMeeting[key] {
				continue
			}
			seenInThisMeeting[key] = true
			if _, ok := counts[key]; !ok {
				order = append(order, key)
			}
			counts[key]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > 5 {
		order = order[:5]
	}

	if len(order) == 0 {
		return nil
	}

	entries := make([]RecurringParticipantEntry, 0, len(order))
	for _, key := range order {
		entries = append(entries, RecurringParticipantEntry{
			Name:         titlecase(key),
			MeetingCount: counts[key] + 1,
		})
	}
	return &Card{Type: CardRecurringParticipants, Title: "Recurring Participants", Data: entries}
}

func newTopicsCard(meetingKeywords []string, prior []*entity.Meeting) *Card {
	priorSet := make(map[string]bool)
	for _, m := range prior {
		for _, kw := range keyword.Keywords(m.RawNotes) {
			priorSet[kw] = true
		}
	}

	var fresh []string
	for _, kw := range meetingKeywords {
		if !priorSet[kw] {
			fresh = append(fresh, kw)
		}
		if len(fresh) >= 8 {
			break
		}
	}
	if len(fresh) == 0 {
		return nil
	}
	return &Card{Type: CardNewTopics, Title: "New Topics", Data: fresh}
}

func recurringSolutionsCard(meeting *entity.Meeting, prior []*entity.Meeting) *Card {
	seen := make(map[string]bool)
	var entries []RecurringSolutionEntry

	for _, current := range meeting.Extracted.ProposedSolutions {
		currentKeywords := keyword.Keywords(current)
		for _, m := range prior {
			for _, priorSolution := range m.Extracted.ProposedSolutions {
				shared := sharedTokens(currentKeywords, keyword.Keywords(priorSolution))
				if len(shared) < 2 {
					continue
				}
				normalized := strings.ToLower(strings.TrimSpace(current))
				if seen[normalized] {
					continue
				}
				seen[normalized] = true
				entries = append(entries, RecurringSolutionEntry{
					CurrentSolution:   current,
					PriorSolution:     priorSolution,
					PriorMeetingId:    m.Id.String(),
					PriorMeetingTitle: m.Title,
				})
				break
			}
			if len(entries) >= 5 {
				break
			}
		}
		if len(entries) >= 5 {
			break
		}
	}

	if len(entries) == 0 {
		return nil
	}
	return &Card{Type: CardRecurringSolutions, Title: "Recurring Solutions", Data: entries}
}

func titlecase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
