package service

import (
	"context"
	"errors"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"comment-threads/internal/domain"
	"comment-threads/internal/logger"
	"comment-threads/internal/metrics"
	"comment-threads/internal/moderation"
	"comment-threads/internal/repository"
	"comment-threads/internal/session"
	"comment-threads/internal/thread"
	"comment-threads/internal/validator"
)

const (
	// DefaultStoreTimeout bounds each storage round trip.
	DefaultStoreTimeout = 5 * time.Second

	maxSanitizePasses = 8

	operationPost   = "post"
	operationDelete = "delete"
)

// Options tunes a CommentService. Zero values select the defaults.
type Options struct {
	MaxNestingDepth  int
	MaxCommentLength int
	StoreTimeout     time.Duration
}

// ThreadsView is the rendered comment forest for one content item.
type ThreadsView struct {
	ContentItem domain.ContentItem `json:"content_item"`
	MaxDepth    int                `json:"max_depth"`
	Total       int                `json:"total"`
	Dropped     int                `json:"dropped"`
	Expanded    []int64            `json:"expanded"`
	Threads     []*thread.ViewNode `json:"threads"`
}

// PostResult is returned after a successful post. View is nil when the
// comment was stored but the threads could not be reloaded.
type PostResult struct {
	Comment domain.CommentRecord `json:"comment"`
	View    *ThreadsView         `json:"view,omitempty"`
}

// ToggleResult reports the state a continuation was left in. Thread is set
// only when the continuation is now expanded.
type ToggleResult struct {
	BoundaryID int64              `json:"boundary_id"`
	Expanded   bool               `json:"expanded"`
	Thread     *thread.ThreadView `json:"thread,omitempty"`
}

// CommentService assembles threads from storage and applies the moderation
// policy to mutations.
type CommentService struct {
	repo         repository.CommentRepository
	expansions   session.ExpansionStore
	renderer     *thread.Renderer
	validator    *validator.Validator
	sanitizer    *bluemonday.Policy
	storeTimeout time.Duration
}

// NewCommentService creates a new CommentService. expansions may be nil, in
// which case toggles are rejected and sessions have no stored state.
func NewCommentService(repo repository.CommentRepository, expansions session.ExpansionStore, opts Options) *CommentService {
	maxDepth := opts.MaxNestingDepth
	if maxDepth <= 0 {
		maxDepth = thread.DefaultMaxNestingDepth
	}
	storeTimeout := opts.StoreTimeout
	if storeTimeout <= 0 {
		storeTimeout = DefaultStoreTimeout
	}

	return &CommentService{
		repo:         repo,
		expansions:   expansions,
		renderer:     thread.NewRenderer(maxDepth),
		validator:    validator.NewValidator(opts.MaxCommentLength),
		sanitizer:    bluemonday.StrictPolicy(),
		storeTimeout: storeTimeout,
	}
}

// GetThreads fetches every comment on item and renders the forest.
func (s *CommentService) GetThreads(ctx context.Context, item domain.ContentItem, expanded thread.ExpansionSet) (*ThreadsView, error) {
	forest, dropped, err := s.loadForest(ctx, item)
	if err != nil {
		return nil, err
	}

	if expanded == nil {
		expanded = thread.NewExpansionSet()
	}

	return &ThreadsView{
		ContentItem: item,
		MaxDepth:    s.renderer.MaxDepth(),
		Total:       forest.Len(),
		Dropped:     dropped,
		Expanded:    expanded.IDs(),
		Threads:     s.renderer.Render(forest, expanded),
	}, nil
}

// SessionExpansion loads the stored expansion set for a session. Expansion
// state is presentation only, so a failing store yields an empty set.
func (s *CommentService) SessionExpansion(ctx context.Context, sessionID string, item domain.ContentItem) thread.ExpansionSet {
	if s.expansions == nil || sessionID == "" {
		return thread.NewExpansionSet()
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	set, err := s.expansions.Load(ctx, sessionID, item)
	if err != nil {
		logger.WithContentItem(string(item.Kind), item.ID).Warn("Failed to load expansion state",
			slog.String("error", err.Error()))
		return thread.NewExpansionSet()
	}
	return set
}

// PostComment authorizes the caller, cleans and validates the body, stores
// the comment, and re-renders the item's threads.
func (s *CommentService) PostComment(ctx context.Context, caller domain.Caller, item domain.ContentItem, parentID *int64, body string) (*PostResult, error) {
	log := logger.WithContentItem(string(item.Kind), item.ID)

	action := moderation.ActionFor(parentID)
	if err := moderation.Authorize(caller, action); err != nil {
		s.observeDenial(action, err)
		metrics.ObserveMutation(operationPost, metrics.ResultDenied)
		return nil, err
	}

	if parentID != nil && *parentID < 1 {
		metrics.ObserveMutation(operationPost, metrics.ResultInvalid)
		return nil, &domain.MalformedInputError{
			Index:  -1,
			Field:  "parent_id",
			Reason: "parent_id must be a positive integer",
		}
	}

	clean := s.sanitize(body)
	if err := s.validator.ValidateBody(clean); err != nil {
		metrics.ObserveMutation(operationPost, metrics.ResultInvalid)
		return nil, validator.ConvertValidationErrors(-1, 0, err)[0]
	}

	// Accepted writes are not abandoned when the client goes away.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.storeTimeout)
	defer cancel()

	record, err := s.repo.Create(writeCtx, domain.NewComment{
		ParentID:    parentID,
		ContentItem: item,
		AuthorID:    caller.UserID,
		AuthorRole:  caller.Role(),
		Author:      caller.Profile,
		Body:        clean,
	})
	if errors.Is(err, domain.ErrParentNotFound) {
		metrics.ObserveMutation(operationPost, metrics.ResultNotFound)
		return nil, err
	}
	if err != nil {
		metrics.ObserveMutation(operationPost, metrics.ResultError)
		log.Error("Failed to store comment", slog.String("error", err.Error()))
		return nil, &domain.StorageUnavailableError{Op: "create comment", Err: err}
	}

	metrics.ObserveMutation(operationPost, metrics.ResultSuccess)
	log.Info("Comment posted",
		slog.Int64("comment_id", record.ID),
		slog.String("author_id", record.AuthorID),
		slog.Bool("reply", parentID != nil))

	result := &PostResult{Comment: *record}

	view, err := s.GetThreads(ctx, item, thread.NewExpansionSet())
	if err != nil {
		log.Warn("Comment stored but threads could not be reloaded",
			slog.Int64("comment_id", record.ID),
			slog.String("error", err.Error()))
		return result, nil
	}
	result.View = view

	return result, nil
}

// DeleteComment removes one comment. Replies are kept and surface as
// orphan roots on the next read.
func (s *CommentService) DeleteComment(ctx context.Context, caller domain.Caller, commentID int64) error {
	if err := moderation.Authorize(caller, moderation.ActionDelete); err != nil {
		s.observeDenial(moderation.ActionDelete, err)
		metrics.ObserveMutation(operationDelete, metrics.ResultDenied)
		return err
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.storeTimeout)
	defer cancel()

	deleted, err := s.repo.Delete(writeCtx, commentID)
	if err != nil {
		metrics.ObserveMutation(operationDelete, metrics.ResultError)
		logger.Error("Failed to delete comment",
			slog.Int64("comment_id", commentID),
			slog.String("error", err.Error()))
		return &domain.StorageUnavailableError{Op: "delete comment", Err: err}
	}
	if !deleted {
		metrics.ObserveMutation(operationDelete, metrics.ResultNotFound)
		return domain.ErrCommentNotFound
	}

	metrics.ObserveMutation(operationDelete, metrics.ResultSuccess)
	logger.Info("Comment deleted",
		slog.Int64("comment_id", commentID),
		slog.String("admin_id", caller.UserID))

	return nil
}

// ToggleExpansion flips the continuation rooted at boundaryID for a session.
func (s *CommentService) ToggleExpansion(ctx context.Context, sessionID string, item domain.ContentItem, boundaryID int64) (*ToggleResult, error) {
	if s.expansions == nil {
		return nil, &domain.StorageUnavailableError{Op: "toggle expansion", Err: errors.New("expansion store not configured")}
	}
	if sessionID == "" {
		return nil, &domain.MalformedInputError{Index: -1, Field: "session", Reason: "a session id is required to toggle threads"}
	}

	forest, _, err := s.loadForest(ctx, item)
	if err != nil {
		return nil, err
	}

	// Checks the boundary and flattens its thread before any stored state changes.
	view, _, err := thread.ToggleThreadExpansion(forest, s.renderer, boundaryID, thread.NewExpansionSet())
	if errors.Is(err, thread.ErrNodeNotFound) {
		return nil, domain.ErrCommentNotFound
	}
	if err != nil {
		return nil, err
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	expanded, err := s.expansions.Toggle(storeCtx, sessionID, item, boundaryID)
	if err != nil {
		return nil, &domain.StorageUnavailableError{Op: "toggle expansion state", Err: err}
	}
	if !expanded {
		view = nil
	}
	metrics.ObserveToggle(expanded)

	return &ToggleResult{
		BoundaryID: boundaryID,
		Expanded:   expanded,
		Thread:     view,
	}, nil
}

// loadForest fetches and assembles the forest for item, recording build
// metrics. It returns the number of rows dropped as malformed.
func (s *CommentService) loadForest(ctx context.Context, item domain.ContentItem) (*thread.Forest, int, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	rows, err := s.repo.FetchByContentItem(fetchCtx, item)
	if err != nil {
		logger.WithContentItem(string(item.Kind), item.ID).Error("Failed to fetch comments",
			slog.String("error", err.Error()))
		return nil, 0, &domain.StorageUnavailableError{Op: "fetch comments", Err: err}
	}

	timer := metrics.NewTimer()
	forest, malformed := thread.BuildThreadForest(rows)

	metrics.ObserveForestBuild(string(item.Kind), timer.Seconds(), metrics.ForestStats{
		Comments:  forest.Len(),
		Malformed: len(malformed),
		Orphans:   forest.Orphans(),
		Cycles:    forest.BrokenCycles(),
	})

	return forest, len(malformed), nil
}

// sanitize strips all markup from body and returns plain text. Entities are
// decoded so "a & b" is stored as typed, and the policy is reapplied until the
// decoded text is stable, so entity-encoded tags cannot come back as markup.
// Input that does not settle is kept in the policy's escaped form.
func (s *CommentService) sanitize(body string) string {
	clean := body
	for pass := 0; pass < maxSanitizePasses; pass++ {
		next := html.UnescapeString(s.sanitizer.Sanitize(clean))
		if next == clean {
			return strings.TrimSpace(clean)
		}
		clean = next
	}
	return strings.TrimSpace(s.sanitizer.Sanitize(clean))
}

func (s *CommentService) observeDenial(action moderation.Action, err error) {
	reason := "authorization"
	if errors.Is(err, domain.ErrAuthenticationRequired) {
		reason = "authentication"
	}
	metrics.ObserveDenial(string(action), reason)
}
