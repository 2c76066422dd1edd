package chatHandler

import (
	"botforge/internal/api/chat"
	contextPkg "botforge/pkg/context"
	"botforge/pkg/handlerUtil"
	"botforge/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"golang.org/x/net/context"
)

func (h *ChatHandler) SendMessage(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing chat message")

	var req chat.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	reply, err := h.chatService.Simulate(c, req.Message)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "send_message")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, reply)
	}
}

// handleChatSocket runs the interactive simulation loop: each inbound text
// frame is matched and answered with a JSON reply frame.
func (h *ChatHandler) handleChatSocket(conn *websocket.Conn) {
	defer conn.Close()

	for {
		messageType, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}

		if messageType != websocket.TextMessage {
			continue
		}

		message := string(payload)

		c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		reply, err := h.chatService.Simulate(c, message)
		cancel()

		if err != nil {
			reply = chat.Reply{Matched: false, Reply: err.Error()}
		}

		if err := conn.WriteJSON(reply); err != nil {
			h.log.WithFields(log.Fields{
				"error": err.Error(),
			}).Warn("Failed to write chat socket reply")
			return
		}
	}
}
