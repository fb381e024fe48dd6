package postgres

import (
	"context"

	"noticetrack/internal/domain/entity"
	domainerrors "noticetrack/internal/domain/errors"
	"noticetrack/internal/domain/repository"
	"noticetrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// activityRepository implements the repository.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

// CreateEvent appends an activity event to the audit trail.
func (repo *activityRepository) CreateEvent(ctx context.Context, event *entity.RecipientActivityEvent) error {
	eventM := fromActivityDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrActivityLogFailed.WrapMessage("missing required event information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity event")
	}

	event.ID = eventM.ID

	return nil
}

// UpsertAcknowledgment records an acknowledgment event. The unique index on
// (case_number, wallet_address) for acknowledgment rows makes the second
// signing of the same case update the existing row instead of duplicating it.
func (repo *activityRepository) UpsertAcknowledgment(ctx context.Context, event *entity.RecipientActivityEvent) error {
	eventM := fromActivityDomain(event)
	eventM.EventType = string(entity.ActivityAcknowledgment)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "case_number"}, {Name: "wallet_address"}},
			TargetWhere: clause.Where{Exprs: []clause.Expression{
				clause.Eq{Column: clause.Column{Name: "event_type"}, Value: string(entity.ActivityAcknowledgment)},
			}},
			DoUpdates: clause.AssignmentColumns([]string{
				"occurred_at", "signature", "transaction_hash", "ip_address", "user_agent",
			}),
		}).
		Create(eventM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert acknowledgment")
	}

	event.ID = eventM.ID

	return nil
}

// FindByCase retrieves the audit trail for a case in occurrence order.
func (repo *activityRepository) FindByCase(ctx context.Context, caseNumber string) ([]*entity.RecipientActivityEvent, error) {
	var eventModels []*model.ActivityEventModel

	if err := repo.db.WithContext(ctx).
		Where("case_number = ?", caseNumber).
		Order("occurred_at ASC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find activity events by case")
	}

	events := make([]*entity.RecipientActivityEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toActivityDomain(eventM))
	}

	return events, nil
}

// FindByWallet retrieves a wallet's events, newest first, with pagination.
func (repo *activityRepository) FindByWallet(ctx context.Context, walletAddress string, limit, offset int) ([]*entity.RecipientActivityEvent, error) {
	var eventModels []*model.ActivityEventModel

	query := repo.db.WithContext(ctx).
		Where("wallet_address = ?", walletAddress).
		Order("occurred_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find activity events by wallet")
	}

	events := make([]*entity.RecipientActivityEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toActivityDomain(eventM))
	}

	return events, nil
}

// --- Mapper Functions ---

// toActivityDomain converts a GORM ActivityEventModel to a domain entity.
func toActivityDomain(data *model.ActivityEventModel) *entity.RecipientActivityEvent {
	if data == nil {
		return nil
	}

	event := &entity.RecipientActivityEvent{
		ID:              data.ID,
		CaseNumber:      data.CaseNumber,
		NoticeID:        data.NoticeID,
		WalletAddress:   data.WalletAddress,
		EventType:       entity.ActivityEventType(data.EventType),
		OccurredAt:      data.OccurredAt,
		IPAddress:       data.IPAddress,
		UserAgent:       data.UserAgent,
		Signature:       data.Signature,
		TransactionHash: data.TransactionHash,
	}

	if data.GeoCountry != "" || data.GeoRegion != "" || data.GeoCity != "" {
		event.Location = &entity.GeoLocation{
			Country: data.GeoCountry,
			Region:  data.GeoRegion,
			City:    data.GeoCity,
		}
	}

	return event
}

// fromActivityDomain converts a domain entity to a GORM ActivityEventModel.
func fromActivityDomain(data *entity.RecipientActivityEvent) *model.ActivityEventModel {
	if data == nil {
		return nil
	}

	eventM := &model.ActivityEventModel{
		ID:              data.ID,
		CaseNumber:      data.CaseNumber,
		NoticeID:        data.NoticeID,
		WalletAddress:   data.WalletAddress,
		EventType:       string(data.EventType),
		OccurredAt:      data.OccurredAt,
		IPAddress:       data.IPAddress,
		UserAgent:       data.UserAgent,
		Signature:       data.Signature,
		TransactionHash: data.TransactionHash,
	}

	if data.Location != nil {
		eventM.GeoCountry = data.Location.Country
		eventM.GeoRegion = data.Location.Region
		eventM.GeoCity = data.Location.City
	}

	return eventM
}
