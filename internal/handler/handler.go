package handler

import (
	"miumiu/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Fixed texts owned by the handler layer
const (
	textWelcome = "Halo 👋 Aku Miumiu-Bot!\nAda yang bisa kubantu? Kamu bisa pilih menu di bawah atau langsung ketik pertanyaanmu."

	textPhotoNotFound   = "Maaf, fotonya tidak ditemukan di server bot."
	textPhotoSendFailed = "Gagal mengirim foto karena kendala teknis."
	textInternalError   = "Maaf, ada kendala teknis. Coba lagi sebentar ya."
)

// Handler manages all bot interactions
type Handler struct {
	bot    *tele.Bot
	games  *service.GameService
	ai     *service.AIService
	photos *service.PhotoService
	logger *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	games *service.GameService,
	ai *service.AIService,
	photos *service.PhotoService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:    bot,
		games:  games,
		ai:     ai,
		photos: photos,
		logger: logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnStartGame, h.handleStartGame)
	h.bot.Handle(&btnSendPhoto, h.handleSendPhoto)

	// Generic callback handler for anything not bound above
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Inline keyboard buttons
var (
	btnStartGame = tele.Btn{
		Unique: "start_game",
		Text:   "🎮 Mulai Game Tebak Angka",
	}
	btnSendPhoto = tele.Btn{
		Unique: "send_special_photo",
		Text:   "🖼️ Kirim Foto Spesial",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnStartGame),
		menu.Row(btnSendPhoto),
	)
	return menu
}
