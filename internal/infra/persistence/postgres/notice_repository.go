// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"noticetrack/internal/domain/entity"
	domainerrors "noticetrack/internal/domain/errors"
	"noticetrack/internal/domain/repository"
	"noticetrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// noticeRepository implements the repository.NoticeRepository interface.
type noticeRepository struct {
	db *gorm.DB
}

// NewNoticeRepository is the constructor for noticeRepository.
func NewNoticeRepository(db *gorm.DB) repository.NoticeRepository {
	return &noticeRepository{
		db: db,
	}
}

// CreateNotice persists a newly served notice record.
func (repo *noticeRepository) CreateNotice(ctx context.Context, notice *entity.Notice) error {
	noticeM := fromNoticeDomain(notice)
	if noticeM.Status == "" {
		noticeM.Status = entity.NoticeStatusServed
	}

	if err := repo.db.WithContext(ctx).Create(noticeM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrNoticeAlreadyExists.WrapMessage("duplicate notice token id")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrNoticeCreationFailed.WrapMessage("missing required notice information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notice")
	}

	notice.Status = noticeM.Status

	return nil
}

// FindByNoticeID retrieves a notice by its chain token id.
func (repo *noticeRepository) FindByNoticeID(ctx context.Context, noticeID uint64) (*entity.Notice, error) {
	var noticeM model.NoticeModel

	if err := repo.db.WithContext(ctx).
		Where("notice_id = ?", noticeID).
		First(&noticeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoticeNotFound
		}

		return nil, errors.Wrap(err, "failed to find notice by token id")
	}

	return toNoticeDomain(&noticeM), nil
}

// FindByRecipient retrieves all notices served to a wallet address.
func (repo *noticeRepository) FindByRecipient(ctx context.Context, recipientAddress string) ([]*entity.Notice, error) {
	var noticeModels []*model.NoticeModel

	if err := repo.db.WithContext(ctx).
		Where("recipient_address = ?", recipientAddress).
		Order("served_at DESC").
		Find(&noticeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notices by recipient")
	}

	notices := make([]*entity.Notice, 0, len(noticeModels))
	for _, noticeM := range noticeModels {
		notices = append(notices, toNoticeDomain(noticeM))
	}

	return notices, nil
}

// FindByCaseNumber retrieves all notices recorded for a case.
func (repo *noticeRepository) FindByCaseNumber(ctx context.Context, caseNumber string) ([]*entity.Notice, error) {
	var noticeModels []*model.NoticeModel

	if err := repo.db.WithContext(ctx).
		Where("case_number = ?", caseNumber).
		Order("served_at ASC").
		Find(&noticeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notices by case number")
	}

	if len(noticeModels) == 0 {
		return nil, repository.ErrCaseNotFound
	}

	notices := make([]*entity.Notice, 0, len(noticeModels))
	for _, noticeM := range noticeModels {
		notices = append(notices, toNoticeDomain(noticeM))
	}

	return notices, nil
}

// MarkViewed moves a notice to the viewed status. A notice whose case has
// reached the terminal signed status is left untouched; the view still lands
// in the audit trail through the activity repository.
func (repo *noticeRepository) MarkViewed(ctx context.Context, noticeID uint64, viewedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NoticeModel{}).
		Where("notice_id = ? AND status <> ?", noticeID, entity.NoticeStatusSigned).
		Updates(map[string]any{
			"status":     entity.NoticeStatusViewed,
			"updated_at": viewedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notice viewed")
	}

	if result.RowsAffected == 0 {
		// Either the notice does not exist or it is already signed.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.NoticeModel{}).
			Where("notice_id = ?", noticeID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check notice existence")
		}
		if count == 0 {
			return repository.ErrNoticeNotFound
		}
	}

	return nil
}

// MarkCaseSigned transitions every notice of a case to the terminal signed
// status and stamps the acknowledgment time. Re-signing an already signed
// case is a no-op, keeping the operation idempotent.
func (repo *noticeRepository) MarkCaseSigned(ctx context.Context, caseNumber string, signedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NoticeModel{}).
		Where("case_number = ? AND status <> ?", caseNumber, entity.NoticeStatusSigned).
		Updates(map[string]any{
			"status":          entity.NoticeStatusSigned,
			"acknowledged":    true,
			"acknowledged_at": signedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark case signed")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.NoticeModel{}).
			Where("case_number = ?", caseNumber).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check case existence")
		}
		if count == 0 {
			return repository.ErrCaseNotFound
		}
	}

	return nil
}

// --- Mapper Functions ---

// toNoticeDomain converts a GORM NoticeModel to a domain Notice entity.
func toNoticeDomain(data *model.NoticeModel) *entity.Notice {
	if data == nil {
		return nil
	}

	return &entity.Notice{
		NoticeID:         data.NoticeID,
		AlertID:          data.AlertID,
		DocumentID:       data.DocumentID,
		CaseNumber:       data.CaseNumber,
		Sender:           data.Sender,
		RecipientAddress: data.RecipientAddress,
		IssuingAgency:    data.IssuingAgency,
		NoticeType:       data.NoticeType,
		ServedAt:         data.ServedAt,
		ResponseDeadline: data.ResponseDeadline,
		Acknowledged:     data.Acknowledged,
		AcknowledgedAt:   data.AcknowledgedAt,
		Status:           data.Status,
	}
}

// fromNoticeDomain converts a domain Notice entity to a GORM NoticeModel.
func fromNoticeDomain(data *entity.Notice) *model.NoticeModel {
	if data == nil {
		return nil
	}

	return &model.NoticeModel{
		NoticeID:         data.NoticeID,
		AlertID:          data.AlertID,
		DocumentID:       data.DocumentID,
		CaseNumber:       data.CaseNumber,
		Sender:           data.Sender,
		RecipientAddress: data.RecipientAddress,
		IssuingAgency:    data.IssuingAgency,
		NoticeType:       data.NoticeType,
		ServedAt:         data.ServedAt,
		ResponseDeadline: data.ResponseDeadline,
		Acknowledged:     data.Acknowledged,
		AcknowledgedAt:   data.AcknowledgedAt,
		Status:           data.Status,
	}
}
