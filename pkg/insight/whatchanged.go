package insight

import (
	"strings"

	"github.com/meetingscribe/api/internal/entity"
	"github.com/meetingscribe/api/pkg/keyword"
)

// WhatChanged is the diff between a meeting and its single most recent
// prior meeting. HasPrior is false, with every other field left zero,
// when no prior meeting exists.
type WhatChanged struct {
	HasPrior            bool     `json:"has_prior"`
	NewActionItems      []string `json:"new_action_items,omitempty"`
	ResolvedSinceLast   []string `json:"resolved_since_last,omitempty"`
	NewSolutions        []string `json:"new_solutions,omitempty"`
	DroppedSolutions    []string `json:"dropped_solutions,omitempty"`
	NewOpenQuestions    []string `json:"new_open_questions,omitempty"`
	ResolvedOpenQuestions []string `json:"resolved_open_questions,omitempty"`
	NewTopics           []string `json:"new_topics,omitempty"`
	DroppedTopics       []string `json:"dropped_topics,omitempty"`
}

// BuildWhatChanged diffs meeting against mostRecentPrior. mostRecentPrior
// being nil means no prior meeting exists.
func BuildWhatChanged(meeting *entity.Meeting, mostRecentPrior *entity.Meeting) WhatChanged {
	if mostRecentPrior == nil {
		return WhatChanged{HasPrior: false}
	}

	currentTasks := normalizedTasks(meeting.Extracted.ActionItems)
	priorTasks := normalizedTasks(mostRecentPrior.Extracted.ActionItems)
	newTasks, resolvedTasks := setDiff(currentTasks, priorTasks)

	currentSolutions := normalizedStrings(meeting.Extracted.ProposedSolutions)
	priorSolutions := normalizedStrings(mostRecentPrior.Extracted.ProposedSolutions)
	newSolutions, droppedSolutions := setDiff(currentSolutions, priorSolutions)

	currentQuestions := normalizedStrings(meeting.Extracted.OpenQuestions)
	priorQuestions := normalizedStrings(mostRecentPrior.Extracted.OpenQuestions)
	newQuestions, resolvedQuestions := setDiff(currentQuestions, priorQuestions)

	currentTopics := keyword.Keywords(meeting.RawNotes)
	priorTopics := keyword.Keywords(mostRecentPrior.RawNotes)
	newTopics, droppedTopics := setDiff(currentTopics, priorTopics)

	return WhatChanged{
		HasPrior:              true,
		NewActionItems:        newTasks,
		ResolvedSinceLast:     resolvedTasks,
		NewSolutions:          newSolutions,
		DroppedSolutions:      droppedSolutions,
		NewOpenQuestions:      newQuestions,
		ResolvedOpenQuestions: resolvedQuestions,
		NewTopics:             newTopics,
		DroppedTopics:         droppedTopics,
	}
}

func normalizedTasks(items []entity.ActionItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, strings.ToLower(strings.TrimSpace(item.Task)))
	}
	return out
}

func normalizedStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		out = append(out, strings.ToLower(strings.TrimSpace(s)))
	}
	return out
}

// setDiff returns (elements only in current, elements only in prior), each
// deduplicated and in first-seen order.
func setDiff(current, prior []string) ([]string, []string) {
	currentSet := make(map[string]bool, len(current))
	for _, c := range current {
		currentSet[c] = true
	}
	priorSet := make(map[string]bool, len(prior))
	for _, p := range prior {
		priorSet[p] = true
	}

	var onlyInCurrent, onlyInPrior []string
	seenCurrent := make(map[string]bool)
	for _, c := range current {
		if !priorSet[c] && !seenCurrent[c] {
			seenCurrent[c] = true
			onlyInCurrent = append(onlyInCurrent, c)
		}
	}
	seenPrior := make(map[string]bool)
	for _, p := range prior {
		if !currentSet[p] && !seenPrior[p] {
			seenPrior[p] = true
			onlyInPrior = append(onlyInPrior, p)
		}
	}
	return onlyInCurrent, onlyInPrior
}
