package usecase

import (
	"github.com/tumpangan/tumpangan/internal/pkg/constants"
	"github.com/tumpangan/tumpangan/internal/pkg/logger"
	"github.com/tumpangan/tumpangan/internal/pkg/models"
)

// JoinRoom registers the connection as a member of the room
func (uc *ChatUC) JoinRoom(connID, roomID string) {
	uc.registry.Join(connID, roomID)
	logger.Debug("Connection joined room",
		logger.String("conn_id", connID),
		logger.String("room_id", roomID))
}

// LeaveAll removes the connection from every room it joined. Used for both
// explicit leave and disconnect.
func (uc *ChatUC) LeaveAll(connID string) {
	uc.registry.LeaveAll(connID)
	logger.Debug("Connection left all rooms",
		logger.String("conn_id", connID))
}

// RelayMessage fans a chat message out to every member of the room except
// the sending connection. A message to an empty or unknown room is dropped
// silently. Returns the number of members the message was sent to.
func (uc *ChatUC) RelayMessage(connID, senderID, roomID, content string) int {
	msg := models.ChatMessage{
		RoomID:   roomID,
		SenderID: senderID,
		Content:  content,
		SentAt:   uc.clock.Now(),
	}

	// One snapshot per message so every recipient sees the same membership
	members := uc.registry.Members(roomID)

	delivered := 0
	for _, member := range members {
		if member == connID {
			continue
		}
		if err := uc.sender.SendToConn(member, constants.EventChatMessage, msg); err != nil {
			logger.Warn("Failed to relay chat message",
				logger.String("room_id", roomID),
				logger.String("conn_id", member),
				logger.Err(err))
			continue
		}
		delivered++
	}

	logger.Debug("Relayed chat message",
		logger.String("room_id", roomID),
		logger.String("sender_id", senderID),
		logger.Int("delivered", delivered))
	return delivered
}
