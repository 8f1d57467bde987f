package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/orgball2608/forum-tweet-bot/internal/delivery"
	"github.com/orgball2608/forum-tweet-bot/pkg/formatter"
)

// CustomIDLimit is the longest custom id Discord accepts on a component or modal.
const CustomIDLimit = 100

// Custom id prefixes of the post controls.
const (
	LikePrefix        = "post:like:"
	ReplyPrefix       = "post:reply:"
	ReplyModalPrefix  = "post:reply:modal:"
	ReplyTargetPrefix = "post:reply:target:"
)

func LikeLabel(likes int) string {
	return "Likes: " + formatter.FormatNumber(likes)
}

func LikeID(postID string) string {
	return LikePrefix + postID
}

// ReplyID encodes the post and the handle of the reply carrying the button.
// Buttons under the post itself have no handle.
func ReplyID(postID, handle string) string {
	if handle == "" {
		return ReplyPrefix + postID
	}
	return ReplyPrefix + postID + ":" + handle
}

// ReplyModalID and ReplyTargetID only name the post. The rest of the target
// lives in the reply session.
func ReplyModalID(postID string) string {
	return ReplyModalPrefix + postID
}

func ReplyTargetID(postID string) string {
	return ReplyTargetPrefix + postID
}

// ControlsRow builds the action row shown under a post or reply.
func ControlsRow(c delivery.Controls) []discordgo.MessageComponent {
	var buttons []discordgo.MessageComponent
	if c.ShowLike {
		buttons = append(buttons, discordgo.Button{
			Label:    LikeLabel(c.LikesCount),
			Style:    discordgo.SecondaryButton,
			CustomID: LikeID(c.PostID),
		})
	}
	buttons = append(buttons, discordgo.Button{
		Label:    "Reply",
		Style:    discordgo.SecondaryButton,
		CustomID: ReplyID(c.PostID, c.ReplyToHandle),
	})
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
	}
}

// ReplyTarget is what a reply button points at.
type ReplyTarget struct {
	PostID string
	Handle string
}

// ParseLikeID returns the post id of a like button.
func ParseLikeID(customID string) (string, bool) {
	postID, ok := strings.CutPrefix(customID, LikePrefix)
	if !ok || postID == "" || strings.Contains(postID, ":") {
		return "", false
	}
	return postID, true
}

// ParseReplyID reads a reply button id. Handle is empty on buttons under the post.
func ParseReplyID(customID string) (ReplyTarget, bool) {
	rest, ok := strings.CutPrefix(customID, ReplyPrefix)
	if !ok || strings.HasPrefix(customID, ReplyModalPrefix) || strings.HasPrefix(customID, ReplyTargetPrefix) {
		return ReplyTarget{}, false
	}
	postID, handle, _ := strings.Cut(rest, ":")
	if postID == "" || strings.Contains(handle, ":") {
		return ReplyTarget{}, false
	}
	return ReplyTarget{PostID: postID, Handle: handle}, true
}

func ParseReplyModalID(customID string) (string, bool) {
	return parsePostID(customID, ReplyModalPrefix)
}

func ParseReplyTargetID(customID string) (string, bool) {
	return parsePostID(customID, ReplyTargetPrefix)
}

func parsePostID(customID, prefix string) (string, bool) {
	postID, ok := strings.CutPrefix(customID, prefix)
	if !ok || postID == "" || strings.Contains(postID, ":") {
		return "", false
	}
	return postID, true
}
