package controller

import (
	"strconv"

	"friidrett/app_error"
	"friidrett/service"
	"friidrett/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AthleteController struct {
	athleteService *service.AthleteService
}

func NewAthleteController(db *gorm.DB) *AthleteController {
	return &AthleteController{
		athleteService: service.NewAthleteService(db),
	}
}

func setupAthleteController(db *gorm.DB) []RouteInfo {
	e := NewAthleteController(db)
	baseUrl := "/athletes"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.searchAthletesHandler()},
		{Method: "GET", Path: "/:athlete_id", HandlerFunc: e.getAthleteHandler()},
		{Method: "GET", Path: "/:athlete_id/results", HandlerFunc: e.getAthleteResultsHandler()},
	}
	for i, route := range routes {
		routes[i].Path = baseUrl + route.Path
	}
	return routes
}

// @ID searchAthletes
// @Summary Search athletes
// @Description Search athletes by name.
// @Tags Athlete
// @Produce json
// @Param name query string true "Name fragment"
// @Success 200 {array} Athlete
// @Router /athletes [get]
func (c *AthleteController) searchAthletesHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		name := ctx.Query("name")
		if name == "" {
			ctx.JSON(400, gin.H{"error": "name query parameter is required"})
			return
		}
		athletes, err := c.athleteService.SearchByName(name, 50)
		if err != nil {
			ctx.JSON(500, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(200, utils.Map(athletes, toAthlete))
	}
}

// @ID getAthlete
// @Summary Get athlete
// @Description Get one athlete profile.
// @Tags Athlete
// @Produce json
// @Param athlete_id path int true "Athlete ID"
// @Success 200 {object} Athlete
// @Router /athletes/{athlete_id} [get]
func (c *AthleteController) getAthleteHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		athleteId, err := strconv.Atoi(ctx.Param("athlete_id"))
		if err != nil {
			ctx.JSON(400, gin.H{"error": "Invalid athlete id"})
			return
		}
		athlete, err := c.athleteService.GetAthleteById(athleteId)
		if err != nil {
			app_error.WithHTTPStatus(ctx, err, 404)
			return
		}
		ctx.JSON(200, toAthlete(athlete))
	}
}

// @ID getAthleteResults
// @Summary Get athlete results
// @Description Get all results for an athlete, newest first.
// @Tags Athlete
// @Produce json
// @Param athlete_id path int true "Athlete ID"
// @Success 200 {array} Result
// @Router /athletes/{athlete_id}/results [get]
func (c *AthleteController) getAthleteResultsHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		athleteId, err := strconv.Atoi(ctx.Param("athlete_id"))
		if err != nil {
			ctx.JSON(400, gin.H{"error": "Invalid athlete id"})
			return
		}
		results, err := c.athleteService.GetResultsForAthlete(athleteId)
		if err != nil {
			ctx.JSON(500, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(200, utils.Map(results, toResult))
	}
}
