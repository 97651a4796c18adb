// Package discord bridges a Discord session to the ChatBot dispatcher. It is
// a thin transport: it forwards message bodies and sender identifiers, sends
// whatever reply the dispatcher produces, and stays quiet otherwise.
package discord

import (
	"context"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/Nateu/dotty/internal/bot"
)

// Bot owns the Discord session. The mutex serializes ProcessMessage: the
// dispatcher and its registries have no internal locking, and discordgo
// delivers events concurrently.
type Bot struct {
	dg      *discordgo.Session
	chat    *bot.ChatBot
	limiter *rate.Limiter
	log     zerolog.Logger
	mu      sync.Mutex
}

// StartBot connects to Discord and blocks until the context is cancelled.
func StartBot(ctx context.Context, token string, chat *bot.ChatBot, log zerolog.Logger) error {
	b := &Bot{
		chat: chat,
		// stay well under Discord's message rate limit
		limiter: rate.NewLimiter(rate.Limit(1), 5),
		log:     log,
	}
	return b.run(ctx, token)
}

func (b *Bot) run(ctx context.Context, token string) error {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	b.dg = dg

	dg.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	b.log.Info().Msg("shutdown signal received, closing Discord session")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.log.Info().Str("username", r.User.Username).Msgf("%s is running", b.chat.Name())
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID {
		return
	}

	b.mu.Lock()
	reply, ok, err := b.chat.ProcessMessage(bot.Message{
		Body:   m.Content,
		SentBy: m.Author.ID,
		SentIn: m.ChannelID,
	})
	b.mu.Unlock()

	if err != nil {
		b.log.Error().Err(err).Str("sent_by", m.Author.ID).Msg("failed to process message")
		return
	}
	if !ok {
		return
	}

	if err := b.limiter.Wait(context.Background()); err != nil {
		return
	}
	if _, err := s.ChannelMessageSend(m.ChannelID, reply); err != nil {
		b.log.Error().Err(err).Str("channel", m.ChannelID).Msg("failed to send reply")
	}
}
