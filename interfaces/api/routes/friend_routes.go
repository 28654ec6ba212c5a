package routes

import (
	"github.com/gofiber/fiber/v2"
	"timeguard/interfaces/api/handlers"
)

func SetupFriendRoutes(api fiber.Router, h *handlers.Handlers, protected fiber.Handler) {
	friends := api.Group("/friends", protected)
	friends.Get("/", h.FriendshipHandler.ListFriends)
	friends.Post("/request", h.FriendshipHandler.SendRequest)
	friends.Post("/respond", h.FriendshipHandler.Respond)
	friends.Delete("/remove", h.FriendshipHandler.RemoveFriend)
	friends.Get("/requests", h.FriendshipHandler.ListIncomingRequests)
	friends.Get("/sent-requests", h.FriendshipHandler.ListSentRequests)
	friends.Delete("/cancel-request/:id", h.FriendshipHandler.CancelRequest)
}
