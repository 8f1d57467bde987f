package publisherimpl

import (
	"context"

	"github.com/orgball2608/forum-tweet-bot/internal/delivery"
	"github.com/orgball2608/forum-tweet-bot/internal/domain"
	"github.com/orgball2608/forum-tweet-bot/internal/publisher"
	"github.com/orgball2608/forum-tweet-bot/internal/repositories/post"
	"github.com/orgball2608/forum-tweet-bot/pkg/errors"
)

// PublishReply renders the reply and posts it into the thread of the parent
// post as a reply to the target message.
func (p *PublisherImpl) PublishReply(ctx context.Context, req publisher.ReplyRequest) (*publisher.ReplyResult, error) {
	parent, err := p.getPost(ctx, req.PostID)
	if err != nil {
		return nil, err
	}
	if parent.ThreadID == "" {
		return nil, errors.Wrap(errors.ErrNotFound, "Cannot find the target thread.")
	}

	replyToHandle := req.ReplyToHandle
	if replyToHandle == "" {
		replyToHandle = parent.Handle
	}
	replyToMessageID := req.ReplyToMessageID
	if replyToMessageID == "" {
		replyToMessageID = parent.MessageID
	}

	renderReq := req.Identity.RenderRequest(req.Body, "")
	renderReq.ReplyToHandle = replyToHandle
	png, err := p.renderer.Render(ctx, renderReq)
	if err != nil {
		p.logger.Error("Failed to render reply", "post_id", parent.ID, "error", err)
		return nil, err
	}

	messageID, err := p.poster.PostReply(ctx, parent.ThreadID, replyToMessageID, png, replyFileName)
	if err != nil {
		p.logger.Error("Failed to post reply", "post_id", parent.ID, "thread_id", parent.ThreadID, "error", err)
		return nil, errors.WrapWithCode(err, errors.CodeDelivery, "Failed to post comment.")
	}

	nextHandle := req.Identity.Handle
	if nextHandle == "" {
		nextHandle = replyToHandle
	}
	controls := delivery.Controls{
		PostID:        parent.ID,
		ReplyToHandle: nextHandle,
	}
	if err := p.poster.AttachControls(ctx, parent.ThreadID, messageID, controls); err != nil {
		p.logger.Warn("Failed to attach reply controls", "post_id", parent.ID, "message_id", messageID, "error", err)
	}

	updated, err := p.postRepo.IncrementReplies(ctx, parent.ID)
	if err != nil {
		p.logger.Error("Failed to count reply", "post_id", parent.ID, "error", err)
		updated = parent
	}

	return &publisher.ReplyResult{
		Post:      updated,
		MessageID: messageID,
		ThreadID:  parent.ThreadID,
	}, nil
}

// Like adds one like and returns the updated post.
func (p *PublisherImpl) Like(ctx context.Context, postID string) (*domain.Post, error) {
	updated, err := p.postRepo.IncrementLikes(ctx, postID)
	if err != nil {
		if errors.Is(err, post.ErrNotFound) {
			return nil, errors.Wrap(errors.ErrNotFound, "Post not found.")
		}
		return nil, errors.WrapWithCode(err, errors.CodeStore, "Failed to like post.")
	}
	return updated, nil
}

func (p *PublisherImpl) Post(ctx context.Context, postID string) (*domain.Post, error) {
	return p.getPost(ctx, postID)
}

func (p *PublisherImpl) getPost(ctx context.Context, id string) (*domain.Post, error) {
	record, err := p.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, post.ErrNotFound) {
			return nil, errors.Wrap(errors.ErrNotFound, "Post not found.")
		}
		return nil, errors.WrapWithCode(err, errors.CodeStore, "Failed to load post.")
	}
	return record, nil
}
