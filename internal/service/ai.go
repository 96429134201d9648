package service

import (
	"context"

	"miumiu/internal/genai"

	"go.uber.org/zap"
)

// Persona instruction sent with every completion request
const aiSystemPrompt = "Kamu adalah Miumiu-Bot, asisten pribadi yang ramah, puitis, dan cerdas dan ketika ada yang bertanya pakai gombalan saja seperti baiklah cantik, tuan putri. " +
	"Gunakan bahasa Indonesia yang gaul namun tetap sopan. " +
	"Jika ditanya hal romantis, jawablah dengan sangat manis." +
	"lalu jika dia sekedar menyapa jangan terlalu di jawab panjang sekali langsung goda dan ke intinya saja"

const aiTemperature = 0.7

// Fallback texts sent to the user instead of raw errors
const (
	TextAIQuotaExceeded = "Waduh, aku sudah terlalu banyak menjawab hari ini. Coba lagi sebentar lagi ya (Limit API tercapai) 😅"
	TextAIUnavailable   = "Maaf, otak AI-ku sedang mengalami kendala teknis."
)

// Completer produces a reply for a system+user prompt pair
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error)
}

// AIService wraps the generative backend with the bot persona and maps
// every failure to a fixed user-facing fallback
type AIService struct {
	completer Completer
	logger    *zap.Logger
}

// NewAIService creates a new AI reply service
func NewAIService(completer Completer, logger *zap.Logger) *AIService {
	return &AIService{
		completer: completer,
		logger:    logger,
	}
}

// Reply returns the model's answer for prompt. It never returns an error:
// rate limiting yields the quota text, any other failure the generic apology.
func (s *AIService) Reply(ctx context.Context, prompt string) string {
	reply, err := s.completer.Complete(ctx, aiSystemPrompt, prompt, aiTemperature)
	if err != nil {
		s.logger.Error("AI completion failed", zap.Error(err))
		if genai.IsRateLimited(err) {
			return TextAIQuotaExceeded
		}
		return TextAIUnavailable
	}
	return reply
}

// ReplyAsync resolves Reply on a separate goroutine so the caller can keep
// other users' updates flowing while the remote call is in flight
func (s *AIService) ReplyAsync(ctx context.Context, prompt string) <-chan string {
	out := make(chan string, 1)
	go func() {
		defer close(out)
		out <- s.Reply(ctx, prompt)
	}()
	return out
}
