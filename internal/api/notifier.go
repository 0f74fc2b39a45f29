package api

import (
	"encoding/json"

	"go.uber.org/zap"

	v1 "github.com/restodesk/backoffice/internal/api/handler/v1"
	"github.com/restodesk/backoffice/internal/domain"
	"github.com/restodesk/backoffice/internal/realtime"
)

// hubNotifier pushes snapshot changes to every websocket watching the
// restaurant.
type hubNotifier struct {
	hub *realtime.Hub
}

func newHubNotifier(hub *realtime.Hub) *hubNotifier {
	return &hubNotifier{hub: hub}
}

func (n *hubNotifier) SnapshotUpdated(snapshot domain.OnboardingSnapshot) {
	n.send(snapshot.RestaurantID, v1.SnapshotMessage(snapshot))
}

func (n *hubNotifier) SnapshotRemoved(restaurantID uint, reason string) {
	n.send(restaurantID, v1.RemovedMessage(reason))
}

func (n *hubNotifier) send(restaurantID uint, msg interface{}) {
	payload, err := json.Marshal(msg)
	if err != nil {
		zap.L().Error("failed to encode onboarding message", zap.Uint("restaurant_id", restaurantID), zap.Error(err))
		return
	}
	n.hub.Broadcast(restaurantID, payload)
}
