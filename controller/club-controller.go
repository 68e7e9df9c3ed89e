package controller

import (
	"strconv"

	"friidrett/app_error"
	"friidrett/service"
	"friidrett/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ClubController struct {
	clubService *service.ClubService
}

func NewClubController(db *gorm.DB) *ClubController {
	return &ClubController{
		clubService: service.NewClubService(db),
	}
}

func setupClubController(db *gorm.DB) []RouteInfo {
	e := NewClubController(db)
	baseUrl := "/clubs"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getClubsHandler()},
		{Method: "GET", Path: "/:club_id", HandlerFunc: e.getClubHandler()},
		{Method: "GET", Path: "/:club_id/athletes", HandlerFunc: e.getClubAthletesHandler()},
		{Method: "GET", Path: "/:club_id/results", HandlerFunc: e.getClubResultsHandler()},
	}
	for i, route := range routes {
		routes[i].Path = baseUrl + route.Path
	}
	return routes
}

// @ID getClubs
// @Summary Get clubs
// @Description List all clubs.
// @Tags Club
// @Produce json
// @Success 200 {array} Club
// @Router /clubs [get]
func (c *ClubController) getClubsHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		clubs, err := c.clubService.FindAllClubs()
		if err != nil {
			ctx.JSON(500, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(200, utils.Map(clubs, toClub))
	}
}

// @ID getClub
// @Summary Get club
// @Description Get one club.
// @Tags Club
// @Produce json
// @Param club_id path int true "Club ID"
// @Success 200 {object} Club
// @Router /clubs/{club_id} [get]
func (c *ClubController) getClubHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		clubId, err := strconv.Atoi(ctx.Param("club_id"))
		if err != nil {
			ctx.JSON(400, gin.H{"error": "Invalid club id"})
			return
		}
		club, err := c.clubService.GetClubById(clubId)
		if err != nil {
			app_error.WithHTTPStatus(ctx, err, 404)
			return
		}
		ctx.JSON(200, toClub(club))
	}
}

// @ID getClubAthletes
// @Summary Get club athletes
// @Description List the athletes registered for a club.
// @Tags Club
// @Produce json
// @Param club_id path int true "Club ID"
// @Success 200 {array} Athlete
// @Router /clubs/{club_id}/athletes [get]
func (c *ClubController) getClubAthletesHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		clubId, err := strconv.Atoi(ctx.Param("club_id"))
		if err != nil {
			ctx.JSON(400, gin.H{"error": "Invalid club id"})
			return
		}
		athletes, err := c.clubService.GetAthletesForClub(clubId)
		if err != nil {
			ctx.JSON(500, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(200, utils.Map(athletes, toAthlete))
	}
}

// @ID getClubResults
// @Summary Get club results
// @Description List results for a club, optionally restricted to one year.
// @Tags Club
// @Produce json
// @Param club_id path int true "Club ID"
// @Param year query int false "Season year"
// @Success 200 {array} Result
// @Router /clubs/{club_id}/results [get]
func (c *ClubController) getClubResultsHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		clubId, err := strconv.Atoi(ctx.Param("club_id"))
		if err != nil {
			ctx.JSON(400, gin.H{"error": "Invalid club id"})
			return
		}
		year := 0
		if yearParam := ctx.Query("year"); yearParam != "" {
			year, err = strconv.Atoi(yearParam)
			if err != nil {
				ctx.JSON(400, gin.H{"error": "Invalid year"})
				return
			}
		}
		results, err := c.clubService.GetResultsForClub(clubId, year)
		if err != nil {
			ctx.JSON(500, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(200, utils.Map(results, toResult))
	}
}
