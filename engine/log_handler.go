package engine

import (
	"go.uber.org/zap"
)

// LogHandler writes round lifecycle events to a zap logger
// Block and bounce events go to debug level; they fire every few ticks
type LogHandler struct {
	logger *zap.Logger
}

// NewLogHandler creates a handler logging through logger
func NewLogHandler(logger *zap.Logger) *LogHandler {
	return &LogHandler{logger: logger.Named("game")}
}

func (h *LogHandler) EventTypes() []EventType {
	return []EventType{
		EventRoundStarted,
		EventBlockDestroyed,
		EventRoundLost,
		EventWallCleared,
		EventPaddleBounce,
	}
}

func (h *LogHandler) HandleEvent(ev GameEvent) {
	fields := []zap.Field{
		zap.String("event", ev.Type.String()),
		zap.Uint64("frame", ev.Frame),
		zap.Int("score", ev.Score),
		zap.Int("lives", ev.Lives),
	}

	switch ev.Type {
	case EventRoundStarted:
		h.logger.Info("round started", fields...)
	case EventRoundLost:
		if ev.Lives <= 0 {
			fields = append(fields, zap.Bool("game_over", true))
		}
		h.logger.Info("round lost", fields...)
	case EventWallCleared:
		h.logger.Info("wall cleared", fields...)
	case EventBlockDestroyed:
		if ev.Block != nil {
			fields = append(fields, zap.Int("row", ev.Block.Row), zap.Int("col", ev.Block.Col))
		}
		h.logger.Debug("block destroyed", fields...)
	default:
		h.logger.Debug("bounce", fields...)
	}
}
