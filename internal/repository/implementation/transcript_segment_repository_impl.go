package implementation

import (
	"context"

	"github.com/google/uuid"
	"github.com/meetingscribe/api/internal/entity"
	"github.com/meetingscribe/api/internal/mapper"
	"github.com/meetingscribe/api/internal/model"
	"github.com/meetingscribe/api/internal/repository/contract"
	"gorm.io/gorm"
)

type TranscriptSegmentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TranscriptSegmentMapper
}

func NewTranscriptSegmentRepository(db *gorm.DB) contract.TranscriptSegmentRepository {
	return &TranscriptSegmentRepositoryImpl{
		db:     db,
		mapper: mapper.NewTranscriptSegmentMapper(),
	}
}

// Insert reads the current max segment_index for the session and inserts
// at max+1 (0 if none exist), inside the caller's transaction. The caller
// is expected to be a single-writer-serialised transaction per session so
// that Invariant T (dense, strictly increasing index) holds under
// concurrent chunk uploads.
func (r *TranscriptSegmentRepositoryImpl) Insert(ctx context.Context, segment *entity.TranscriptSegment) (int, error) {
	var maxIndex *int
	if err := r.db.WithContext(ctx).Model(&model.TranscriptSegment{}).
		Where("session_id = ?", segment.SessionId).
		Select("MAX(segment_index)").
		Scan(&maxIndex).Error; err != nil {
		return 0, err
	}
	nextIndex := 0
	if maxIndex != nil {
		nextIndex = *maxIndex + 1
	}
	segment.SegmentIndex = nextIndex
	m := r.mapper.ToModel(segment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return 0, err
	}
	*segment = *r.mapper.ToEntity(m)
	return nextIndex, nil
}

func (r *TranscriptSegmentRepositoryImpl) ListOrdered(ctx context.Context, sessionId uuid.UUID) ([]*entity.TranscriptSegment, error) {
	var models []*model.TranscriptSegment
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionId).
		Order("segment_index ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
