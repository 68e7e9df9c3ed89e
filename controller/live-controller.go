package controller

import (
	"net/http"
	"strconv"

	"friidrett/client"
	"friidrett/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type LiveController struct {
	meetService *service.MeetService
	hub         *client.LiveHub
}

func NewLiveController(db *gorm.DB, hub *client.LiveHub) *LiveController {
	return &LiveController{
		meetService: service.NewMeetService(db),
		hub:         hub,
	}
}

func setupLiveController(db *gorm.DB, hub *client.LiveHub) []RouteInfo {
	e := NewLiveController(db, hub)
	return []RouteInfo{
		{Method: "GET", Path: "/meets/:meet_id/live", HandlerFunc: e.liveResultsHandler()},
	}
}

// @ID liveResults
// @Summary Live results feed
// @Description Websocket stream of results as they are ingested for a meet.
// @Tags Meet
// @Param meet_id path int true "Meet ID"
// @Success 101
// @Router /meets/{meet_id}/live [get]
func (c *LiveController) liveResultsHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		meetId, err := strconv.Atoi(ctx.Param("meet_id"))
		if err != nil {
			ctx.JSON(400, gin.H{"error": "Invalid meet id"})
			return
		}
		if _, err := c.meetService.GetMeetById(meetId); err != nil {
			ctx.JSON(404, gin.H{"error": "Meet not found"})
			return
		}
		conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
		if err != nil {
			return
		}
		c.hub.Subscribe(meetId, conn)
		defer c.hub.Unsubscribe(meetId, conn)
		for {
			// Readers only listen; the read pump exists to detect closes.
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
