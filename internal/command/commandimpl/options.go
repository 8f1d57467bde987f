package commandimpl

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

type options map[string]*discordgo.ApplicationCommandInteractionDataOption

func optionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) options {
	m := make(options, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

// subcommand returns the name and options of the invoked subcommand.
func subcommand(data discordgo.ApplicationCommandInteractionData) (string, options) {
	for _, o := range data.Options {
		if o.Type == discordgo.ApplicationCommandOptionSubCommand {
			return o.Name, optionMap(o.Options)
		}
	}
	return "", options{}
}

func (o options) String(name string) string {
	if opt, ok := o[name]; ok {
		if s, ok := opt.Value.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func (o options) Int(name string) int64 {
	if opt, ok := o[name]; ok {
		if v, ok := opt.Value.(float64); ok {
			return int64(v)
		}
	}
	return 0
}

// focused returns the option being autocompleted.
func (o options) focused() *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range o {
		if opt.Focused {
			return opt
		}
	}
	return nil
}

// attachment resolves an attachment option to its uploaded file.
func attachment(data discordgo.ApplicationCommandInteractionData, o options, name string) *discordgo.MessageAttachment {
	id := o.String(name)
	if id == "" || data.Resolved == nil {
		return nil
	}
	return data.Resolved.Attachments[id]
}

func resolvedChannel(data discordgo.ApplicationCommandInteractionData, o options, name string) *discordgo.Channel {
	id := o.String(name)
	if id == "" || data.Resolved == nil {
		return nil
	}
	return data.Resolved.Channels[id]
}

// textInputValue finds a text input of a submitted modal.
func textInputValue(components []discordgo.MessageComponent, customID string) string {
	for _, c := range components {
		row, ok := c.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			if input, ok := inner.(*discordgo.TextInput); ok && input.CustomID == customID {
				return strings.TrimSpace(input.Value)
			}
		}
	}
	return ""
}
