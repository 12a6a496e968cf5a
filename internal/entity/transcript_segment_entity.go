package entity

import "github.com/google/uuid"

// SpeakerPlaceholder is the only speaker label in v1; diarisation is out
// of scope.
const SpeakerPlaceholder = "Speaker"

// TranscriptSegment is one transcribed chunk. Invariant T: for a given
// session, SegmentIndex is unique and strictly increasing with no gaps.
type TranscriptSegment struct {
	Id           uuid.UUID
	SessionId    uuid.UUID
	SegmentIndex int
	Text         string
	TimestampMs  int64
	Speaker      string
	IsFinal      bool
}
