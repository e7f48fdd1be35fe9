package services

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shahhub/resumehub/internal/access"
	"github.com/shahhub/resumehub/internal/cache"
	"github.com/shahhub/resumehub/internal/providers/llm"
	"github.com/shahhub/resumehub/internal/utils"
)

// KeywordPersister stores the latest keyword set on the account row.
type KeywordPersister interface {
	SetKeywords(ctx context.Context, accountID string, keywords []string) error
}

const keywordCacheTTL = 10 * time.Minute

// KeywordService suggests role keywords from the resume summary. Results are
// cached per document so repeated layout refreshes do not burn model calls,
// and the latest set is persisted on the account for later sessions.
type KeywordService interface {
	Suggest(ctx context.Context, accountID string, tier access.Tier, docID, summary string) ([]string, error)
}

type keywordService struct {
	provider llm.Provider
	cache    cache.Cache
	accounts KeywordPersister
	log      *logrus.Logger
}

func NewKeywordService(provider llm.Provider, c cache.Cache, accounts KeywordPersister, log *logrus.Logger) KeywordService {
	return &keywordService{provider: provider, cache: c, accounts: accounts, log: log}
}

func (s *keywordService) Suggest(ctx context.Context, accountID string, tier access.Tier, docID, summary string) ([]string, error) {
	const op = "KeywordService.Suggest"

	if err := requirePro(op, tier); err != nil {
		return nil, err
	}
	if strings.TrimSpace(summary) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "summary is empty", nil)
	}

	key := "keywords:" + docID
	var cached []string
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	keywords, err := s.provider.SuggestKeywords(ctx, summary)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "keyword provider failed", err)
	}

	if err := s.cache.SetJSON(ctx, key, keywords, keywordCacheTTL); err != nil {
		s.log.WithError(err).Warn("keyword cache write failed")
	}
	if err := s.accounts.SetKeywords(ctx, accountID, keywords); err != nil {
		s.log.WithError(err).WithField("account_id", accountID).Warn("keyword persist failed")
	}

	return keywords, nil
}
