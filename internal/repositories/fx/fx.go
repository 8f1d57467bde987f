package fx

import (
	"github.com/orgball2608/forum-tweet-bot/internal/repositories/guildconfig"
	"github.com/orgball2608/forum-tweet-bot/internal/repositories/organization"
	"github.com/orgball2608/forum-tweet-bot/internal/repositories/post"
	"github.com/orgball2608/forum-tweet-bot/internal/repositories/profile"
	"go.uber.org/fx"
)

var Module = fx.Options(
	post.Module,
	profile.Module,
	organization.Module,
	guildconfig.Module,
)
