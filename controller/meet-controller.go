package controller

import (
	"strconv"

	"friidrett/app_error"
	"friidrett/service"
	"friidrett/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MeetController struct {
	meetService *service.MeetService
}

func NewMeetController(db *gorm.DB) *MeetController {
	return &MeetController{
		meetService: service.NewMeetService(db),
	}
}

func setupMeetController(db *gorm.DB) []RouteInfo {
	e := NewMeetController(db)
	baseUrl := "/meets"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getMeetsHandler()},
		{Method: "GET", Path: "/:meet_id", HandlerFunc: e.getMeetHandler()},
		{Method: "GET", Path: "/:meet_id/results", HandlerFunc: e.getMeetResultsHandler()},
	}
	for i, route := range routes {
		routes[i].Path = baseUrl + route.Path
	}
	return routes
}

// @ID getMeets
// @Summary Get meets
// @Description List meets, optionally restricted to one year.
// @Tags Meet
// @Produce json
// @Param year query int false "Season year"
// @Success 200 {array} Meet
// @Router /meets [get]
func (c *MeetController) getMeetsHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if yearParam := ctx.Query("year"); yearParam != "" {
			year, err := strconv.Atoi(yearParam)
			if err != nil {
				ctx.JSON(400, gin.H{"error": "Invalid year"})
				return
			}
			found, err := c.meetService.FindMeetsByYear(year)
			if err != nil {
				ctx.JSON(500, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(200, utils.Map(found, toMeet))
			return
		}
		found, err := c.meetService.FindAllMeets()
		if err != nil {
			ctx.JSON(500, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(200, utils.Map(found, toMeet))
	}
}

// @ID getMeet
// @Summary Get meet
// @Description Get one meet.
// @Tags Meet
// @Produce json
// @Param meet_id path int true "Meet ID"
// @Success 200 {object} Meet
// @Router /meets/{meet_id} [get]
func (c *MeetController) getMeetHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		meetId, err := strconv.Atoi(ctx.Param("meet_id"))
		if err != nil {
			ctx.JSON(400, gin.H{"error": "Invalid meet id"})
			return
		}
		meet, err := c.meetService.GetMeetById(meetId)
		if err != nil {
			app_error.WithHTTPStatus(ctx, err, 404)
			return
		}
		ctx.JSON(200, toMeet(meet))
	}
}

// @ID getMeetResults
// @Summary Get meet results
// @Description List the results of a meet grouped by event code.
// @Tags Meet
// @Produce json
// @Param meet_id path int true "Meet ID"
// @Success 200 {array} Result
// @Router /meets/{meet_id}/results [get]
func (c *MeetController) getMeetResultsHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		meetId, err := strconv.Atoi(ctx.Param("meet_id"))
		if err != nil {
			ctx.JSON(400, gin.H{"error": "Invalid meet id"})
			return
		}
		results, err := c.meetService.GetResultsForMeet(meetId)
		if err != nil {
			ctx.JSON(500, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(200, utils.Map(results, toResult))
	}
}
