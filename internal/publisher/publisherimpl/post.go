package publisherimpl

import (
	"context"
	"fmt"

	"github.com/orgball2608/forum-tweet-bot/internal/delivery"
	"github.com/orgball2608/forum-tweet-bot/internal/domain"
	"github.com/orgball2608/forum-tweet-bot/internal/publisher"
	"github.com/orgball2608/forum-tweet-bot/internal/threads"
	"github.com/orgball2608/forum-tweet-bot/pkg/errors"
	"github.com/orgball2608/forum-tweet-bot/pkg/retry"
)

// Publish renders the post, delivers it as a new forum thread and attaches
// the like and reply controls. A post whose thread cannot be resolved is
// still published; its ThreadID stays empty.
func (p *PublisherImpl) Publish(ctx context.Context, req publisher.PostRequest) (*publisher.Result, error) {
	handle := req.Identity.Handle
	title := publisher.Title(handle, req.Body)

	png, err := p.renderer.Render(ctx, req.Identity.RenderRequest(req.Body, req.MediaURL))
	if err != nil {
		p.logger.Error("Failed to render post", "handle", handle, "error", err)
		return nil, err
	}

	record, err := p.postRepo.Create(ctx, domain.Post{
		GuildID:      req.GuildID,
		AuthorUserID: req.AuthorUserID,
		Handle:       handle,
		Username:     req.Identity.DisplayName,
		Content:      req.Body,
		ImageURL:     req.MediaURL,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeStore, "Failed to save post.")
	}

	target := delivery.Target{GuildID: req.GuildID, ForumChannelID: req.ForumChannelID}
	msg := delivery.Message{
		Image:     png,
		FileName:  postFileName,
		Title:     title,
		Username:  req.WebhookUsername,
		AvatarURL: req.WebhookAvatarURL,
	}

	// the listener has to exist before the send, the thread can be created
	// before the send call returns
	watch := p.resolver.Watch(threads.Target{
		GuildID:  req.GuildID,
		ParentID: req.ForumChannelID,
		Title:    title,
	})
	defer watch.Close()

	channel, resp, err := p.deliver(ctx, target, msg)
	if err != nil {
		p.logger.Error("Failed to deliver post", "post_id", record.ID, "forum", req.ForumChannelID, "error", err)
		p.telegram.SendImageToUser(ctx, fmt.Sprintf("Publication of post %s by @%s failed: %v", record.ID, handle, err), png)
		return nil, errors.WrapWithCode(err, errors.CodeDelivery, "Failed to send post via webhook.")
	}

	resolution := p.resolver.Resolve(ctx, watch, resp)
	p.logger.Info("Post delivered",
		"post_id", record.ID,
		"message_id", resp.MessageID,
		"thread_id", resolution.ThreadID,
		"tier", resolution.Tier.String(),
	)

	delivered := domain.PostDelivery{
		MessageID: resp.MessageID,
		ThreadID:  resolution.ThreadID,
		WebhookID: channel.ID(),
	}
	if err := p.postRepo.MarkDelivered(ctx, record.ID, delivered); err != nil {
		p.logger.Error("Failed to record delivery", "post_id", record.ID, "error", err)
	}
	record.MessageID = delivered.MessageID
	record.ThreadID = delivered.ThreadID
	record.WebhookID = delivered.WebhookID

	controls := delivery.Controls{
		PostID:   record.ID,
		ShowLike: true,
	}
	p.attachPostControls(ctx, channel, record, controls)

	return &publisher.Result{
		Post:       record,
		ThreadID:   resolution.ThreadID,
		Resolution: resolution.Tier,
	}, nil
}

// deliver sends msg at most twice, the second time through a freshly created channel.
func (p *PublisherImpl) deliver(ctx context.Context, target delivery.Target, msg delivery.Message) (delivery.Channel, delivery.Response, error) {
	var (
		channel delivery.Channel
		resp    delivery.Response
	)
	err := retry.Do(ctx, p.logger, "deliver post", func(attempt int) error {
		ch, err := p.provider.Acquire(ctx, target, attempt > 1)
		if err != nil {
			return err
		}
		r, err := ch.Send(ctx, msg)
		if err != nil {
			return err
		}
		channel, resp = ch, r
		return nil
	}, p.retry)
	if err != nil {
		return nil, delivery.Response{}, err
	}
	return channel, resp, nil
}

func (p *PublisherImpl) attachPostControls(ctx context.Context, channel delivery.Channel, record *domain.Post, controls delivery.Controls) {
	err := channel.EditControls(ctx, record.MessageID, record.ThreadID, controls)
	if err == nil {
		return
	}
	p.logger.Warn("Failed to attach controls to post", "post_id", record.ID, "error", err)

	if record.ThreadID == "" {
		return
	}
	if _, err := p.poster.SendControls(ctx, record.ThreadID, controls); err != nil {
		p.logger.Warn("Failed to post controls into thread", "post_id", record.ID, "thread_id", record.ThreadID, "error", err)
	}
}
