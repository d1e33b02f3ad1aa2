package chat

import "github.com/gin-gonic/gin"

func ChatRoutes(router *gin.RouterGroup, hub *Hub) {
	router.GET("/ws", hub.HandleWS)
}
