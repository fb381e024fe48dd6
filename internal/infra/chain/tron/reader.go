package tron

import (
	"context"
	"log/slog"
	"time"

	"noticetrack/config"
	"noticetrack/internal/domain/entity"
	domainerrors "noticetrack/internal/domain/errors"
	"noticetrack/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Contract getters exposed by the notice contract.
const (
	selectorBalanceOf           = "balanceOf(address)"
	selectorRecipientAlerts     = "recipientAlerts(address,uint256)"
	selectorTokenOfOwnerByIndex = "tokenOfOwnerByIndex(address,uint256)"
	selectorGetNotice           = "getNotice(uint256)"
	selectorAlertToDocument     = "alertToDocument(uint256)"
)

const (
	// defaultMaxEnumeratedTokens caps the owned-token fallback; tokens may
	// belong to unrelated notices, so the walk is latency-bounded rather
	// than exhaustive.
	defaultMaxEnumeratedTokens = 20

	// defaultMaxIndexedNotices bounds the per-recipient index walk against
	// a contract that never returns the zero sentinel.
	defaultMaxIndexedNotices = 200
)

// reader implements service.ChainReader on top of Client.
type reader struct {
	client        *Client
	contract      string
	maxEnumerated int
	maxIndexed    int
	logger        *slog.Logger
}

// ReaderParams holds dependencies for the chain reader.
type ReaderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewChainReader creates the TRON-backed chain reader.
func NewChainReader(params ReaderParams) (service.ChainReader, error) {
	cfg := params.Config.Tron
	if cfg == nil || cfg.Endpoint == "" {
		return nil, errors.New("tron endpoint is not configured")
	}
	if err := ValidateAddress(cfg.ContractAddress); err != nil {
		return nil, errors.Wrap(err, "invalid notice contract address")
	}

	maxEnumerated := cfg.MaxEnumeratedTokens
	if maxEnumerated <= 0 {
		maxEnumerated = defaultMaxEnumeratedTokens
	}
	maxIndexed := cfg.MaxIndexedNotices
	if maxIndexed <= 0 {
		maxIndexed = defaultMaxIndexedNotices
	}

	return &reader{
		client:        NewClient(cfg, params.Logger),
		contract:      cfg.ContractAddress,
		maxEnumerated: maxEnumerated,
		maxIndexed:    maxIndexed,
		logger:        params.Logger,
	}, nil
}

// BalanceOf returns the number of notice tokens held by the address.
func (r *reader) BalanceOf(ctx context.Context, address string) (int64, error) {
	param, err := r.validateAddressParam(address)
	if err != nil {
		return 0, err
	}

	words, err := r.call(ctx, selectorBalanceOf, param, 1)
	if err != nil {
		return 0, domainerrors.ErrChainUnavailable.WrapMessage(err.Error())
	}

	balance, err := wordInt64(words[0])
	if err != nil {
		return 0, domainerrors.ErrChainUnavailable.WrapMessage(err.Error())
	}

	return balance, nil
}

// GetNotice resolves a single notice by token id.
func (r *reader) GetNotice(ctx context.Context, noticeID uint64) (*entity.Notice, error) {
	words, err := r.call(ctx, selectorGetNotice, uintParam(noticeID), 5)
	if err != nil {
		return nil, domainerrors.ErrChainUnavailable.WrapMessage(err.Error())
	}

	notice, err := r.noticeFromWords(noticeID, words)
	if err != nil {
		return nil, domainerrors.ErrChainUnavailable.WrapMessage(err.Error())
	}

	r.resolveCompanion(ctx, notice)

	return notice, nil
}

// ListNoticesForRecipient resolves all notices served to the address. The
// per-recipient index mapping is the primary strategy; bounded owned-token
// enumeration is the fallback when the index yields nothing.
func (r *reader) ListNoticesForRecipient(ctx context.Context, address string) (*service.RecipientNotices, error) {
	param, err := r.validateAddressParam(address)
	if err != nil {
		return nil, err
	}

	ids, err := r.walkRecipientIndex(ctx, param)
	if err != nil {
		return nil, err
	}

	filterRecipient := false
	if len(ids) == 0 {
		ids, err = r.enumerateOwnedTokens(ctx, param)
		if err != nil {
			return nil, err
		}
		// Enumerated tokens may belong to unrelated notices.
		filterRecipient = true
	}

	result := &service.RecipientNotices{}
	for _, id := range ids {
		words, callErr := r.call(ctx, selectorGetNotice, uintParam(id), 5)
		if callErr != nil {
			r.logger.Warn("[Tron] Skipping unresolvable notice",
				slog.Uint64("notice_id", id),
				slog.Any("error", callErr),
			)
			result.Skipped++

			continue
		}

		notice, parseErr := r.noticeFromWords(id, words)
		if parseErr != nil {
			r.logger.Warn("[Tron] Skipping malformed notice",
				slog.Uint64("notice_id", id),
				slog.Any("error", parseErr),
			)
			result.Skipped++

			continue
		}

		if filterRecipient && notice.RecipientAddress != address {
			continue
		}

		r.resolveCompanion(ctx, notice)
		result.Notices = append(result.Notices, notice)
	}

	return result, nil
}

// walkRecipientIndex iterates recipientAlerts(address, i) until the zero
// sentinel. A failure on the first slot means the chain is unreachable; a
// mid-walk failure ends the walk with what was gathered.
func (r *reader) walkRecipientIndex(ctx context.Context, addressParam string) ([]uint64, error) {
	var ids []uint64

	for i := 0; i < r.maxIndexed; i++ {
		words, err := r.call(ctx, selectorRecipientAlerts, addressParam+uintParam(uint64(i)), 1)
		if err != nil {
			if i == 0 {
				return nil, domainerrors.ErrChainUnavailable.WrapMessage(err.Error())
			}
			r.logger.Warn("[Tron] Recipient index walk interrupted",
				slog.Int("index", i),
				slog.Any("error", err),
			)

			break
		}

		id, err := wordUint64(words[0])
		if err != nil {
			r.logger.Warn("[Tron] Recipient index entry out of range",
				slog.Int("index", i),
				slog.Any("error", err),
			)

			break
		}
		if id == 0 {
			// Sentinel: end of the index.
			break
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// enumerateOwnedTokens walks tokenOfOwnerByIndex up to the configured cap.
func (r *reader) enumerateOwnedTokens(ctx context.Context, addressParam string) ([]uint64, error) {
	words, err := r.call(ctx, selectorBalanceOf, addressParam, 1)
	if err != nil {
		return nil, domainerrors.ErrChainUnavailable.WrapMessage(err.Error())
	}

	balance, err := wordInt64(words[0])
	if err != nil {
		return nil, domainerrors.ErrChainUnavailable.WrapMessage(err.Error())
	}

	count := int(balance)
	if count > r.maxEnumerated {
		r.logger.Debug("[Tron] Capping owned-token enumeration",
			slog.Int64("balance", balance),
			slog.Int("cap", r.maxEnumerated),
		)
		count = r.maxEnumerated
	}

	var ids []uint64
	for i := 0; i < count; i++ {
		tokenWords, err := r.call(ctx, selectorTokenOfOwnerByIndex, addressParam+uintParam(uint64(i)), 1)
		if err != nil {
			r.logger.Warn("[Tron] Skipping owned token slot",
				slog.Int("index", i),
				slog.Any("error", err),
			)

			continue
		}

		id, err := wordUint64(tokenWords[0])
		if err != nil || id == 0 {
			continue
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// resolveCompanion fills in the paired document id. Failure to resolve the
// companion never fails the notice; the field is simply left empty.
func (r *reader) resolveCompanion(ctx context.Context, notice *entity.Notice) {
	words, err := r.call(ctx, selectorAlertToDocument, uintParam(notice.AlertID), 1)
	if err != nil {
		r.logger.Debug("[Tron] Companion document unresolved",
			slog.Uint64("alert_id", notice.AlertID),
			slog.Any("error", err),
		)

		return
	}

	documentID, err := wordUint64(words[0])
	if err != nil {
		return
	}

	notice.DocumentID = documentID
}

// noticeFromWords decodes the getNotice(uint256) result:
// (recipient, sender, servedAt, acknowledged, responseDeadline).
func (r *reader) noticeFromWords(noticeID uint64, words [][]byte) (*entity.Notice, error) {
	servedAt, err := wordInt64(words[2])
	if err != nil {
		return nil, errors.Wrap(err, "served-at timestamp")
	}

	notice := &entity.Notice{
		NoticeID:         noticeID,
		AlertID:          noticeID,
		RecipientAddress: wordAddress(words[0]),
		Sender:           wordAddress(words[1]),
		ServedAt:         time.Unix(servedAt, 0).UTC(),
		Acknowledged:     wordBool(words[3]),
		VerifiedOnChain:  true,
	}

	if deadline, err := wordInt64(words[4]); err == nil && deadline > 0 {
		t := time.Unix(deadline, 0).UTC()
		notice.ResponseDeadline = &t
	}

	return notice, nil
}

func (r *reader) validateAddressParam(address string) (string, error) {
	param, err := addressParam(address)
	if err != nil {
		return "", domainerrors.ErrInvalidAddress.WrapMessage(err.Error())
	}

	return param, nil
}

// call executes a constant call and enforces the expected word count.
func (r *reader) call(ctx context.Context, selector, parameter string, wantWords int) ([][]byte, error) {
	results, err := r.client.TriggerConstant(ctx, r.contract, selector, parameter)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, errors.Errorf("constant call %s returned no result", selector)
	}

	words, err := resultWords(results[0])
	if err != nil {
		return nil, err
	}
	if len(words) < wantWords {
		return nil, errors.Errorf("constant call %s returned %d words, want %d", selector, len(words), wantWords)
	}

	return words, nil
}
