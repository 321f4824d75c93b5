package main

import (
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/cors"
	"github.com/xh-polaris/sahayak-core-api/biz/adaptor/controller/core_api"
	"github.com/xh-polaris/sahayak-core-api/provider"
)

func main() {
	provider.Init()
	h := server.Default(server.WithHostPorts(provider.Get().Config.ListenOn))
	h.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))
	register(h)
	h.Spin()
}

func register(h *server.Hertz) {
	h.POST("/ask/:conversation_id", core_api.Ask)
	h.DELETE("/conversation/:conversation_id", core_api.DeleteConversation)

	m := h.Group("/message")
	m.GET("/:message_id", core_api.GetMessageStatus)
	m.POST("/:message_id/like", core_api.Like)
	m.POST("/:message_id/dislike", core_api.Dislike)
}
