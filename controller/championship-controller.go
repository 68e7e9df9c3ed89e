package controller

import (
	"strconv"
	"time"

	"friidrett/championship"
	"friidrett/repository"
	"friidrett/service"
	"friidrett/utils"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ChampionshipController struct {
	qualificationService *service.QualificationService
}

func NewChampionshipController(db *gorm.DB) *ChampionshipController {
	return &ChampionshipController{
		qualificationService: service.NewQualificationService(db),
	}
}

func setupChampionshipController(db *gorm.DB, cacheStore persistence.CacheStore) []RouteInfo {
	e := NewChampionshipController(db)
	baseUrl := "/championships"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getChampionshipsHandler()},
		{Method: "GET", Path: "/:championship_id", HandlerFunc: e.getChampionshipHandler()},
		{Method: "GET", Path: "/:championship_id/qualified", HandlerFunc: cache.CachePage(cacheStore, time.Minute, e.getQualifiedHandler())},
		{Method: "GET", Path: "/:championship_id/counts", HandlerFunc: cache.CachePage(cacheStore, time.Minute, e.getQualifiedCountsHandler())},
	}
	for i, route := range routes {
		routes[i].Path = baseUrl + route.Path
	}
	return routes
}

func getChampionship(ctx *gin.Context) *championship.Championship {
	c, ok := championship.ById(ctx.Param("championship_id"))
	if !ok {
		ctx.JSON(404, gin.H{"error": "Championship not found"})
		return nil
	}
	return c
}

func getGender(ctx *gin.Context) (repository.Gender, bool) {
	gender := repository.Gender(ctx.Query("gender"))
	if gender != repository.GenderMale && gender != repository.GenderFemale {
		ctx.JSON(400, gin.H{"error": "gender must be M or F"})
		return "", false
	}
	return gender, true
}

// @ID getChampionships
// @Summary Get championships
// @Description List the configured championships with their standards.
// @Tags Championship
// @Produce json
// @Param type query string false "Restrict to one championship type (senior or junior)"
// @Success 200 {array} ChampionshipResponse
// @Router /championships [get]
func (c *ChampionshipController) getChampionshipsHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		championships := championship.All
		if typeParam := ctx.Query("type"); typeParam != "" {
			championships = utils.Filter(championships, func(c *championship.Championship) bool {
				return string(c.Type) == typeParam
			})
		}
		ctx.JSON(200, utils.Map(championships, toChampionship))
	}
}

// @ID getChampionship
// @Summary Get championship
// @Description Get one championship with its standards and age classes.
// @Tags Championship
// @Produce json
// @Param championship_id path string true "Championship ID"
// @Success 200 {object} ChampionshipResponse
// @Router /championships/{championship_id} [get]
func (c *ChampionshipController) getChampionshipHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		champ := getChampionship(ctx)
		if champ == nil {
			return
		}
		ctx.JSON(200, toChampionship(champ))
	}
}

// @ID getQualified
// @Summary Get qualification list
// @Description Ranked list of athletes meeting the qualifying standard for one event, at most one entry per athlete.
// @Tags Championship
// @Produce json
// @Param championship_id path string true "Championship ID"
// @Param event query string true "Event name, e.g. 100m"
// @Param gender query string true "M or F"
// @Param age_class query string false "Age class id, e.g. U20"
// @Param club_id query int false "Restrict to one club"
// @Success 200 {array} QualifiedEntry
// @Router /championships/{championship_id}/qualified [get]
func (c *ChampionshipController) getQualifiedHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		champ := getChampionship(ctx)
		if champ == nil {
			return
		}
		gender, ok := getGender(ctx)
		if !ok {
			return
		}
		standard, ok := champ.StandardForEvent(ctx.Query("event"))
		if !ok {
			ctx.JSON(404, gin.H{"error": "Event not found in championship"})
			return
		}
		ageClassId := ctx.Query("age_class")
		if ageClassId != "" {
			if _, ok := champ.AgeClassById(ageClassId); !ok {
				ctx.JSON(400, gin.H{"error": "Unknown age class"})
				return
			}
		}
		var clubId *int
		if clubParam := ctx.Query("club_id"); clubParam != "" {
			id, err := strconv.Atoi(clubParam)
			if err != nil {
				ctx.JSON(400, gin.H{"error": "Invalid club id"})
				return
			}
			clubId = &id
		}

		entries, err := c.qualificationService.GetQualifiedEntries(champ, standard, gender, ageClassId, clubId)
		if err != nil {
			ctx.JSON(500, gin.H{"error": err.Error()})
			return
		}
		response := make([]QualifiedEntry, 0, len(entries))
		for i, entry := range entries {
			response = append(response, toQualifiedEntry(i+1, entry))
		}
		ctx.JSON(200, response)
	}
}

// @ID getQualifiedCounts
// @Summary Get qualified counts
// @Description Number of qualified athletes per event, fetched concurrently per standard.
// @Tags Championship
// @Produce json
// @Param championship_id path string true "Championship ID"
// @Param gender query string true "M or F"
// @Param age_class query string false "Age class id"
// @Success 200 {object} map[string]int
// @Router /championships/{championship_id}/counts [get]
func (c *ChampionshipController) getQualifiedCountsHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		champ := getChampionship(ctx)
		if champ == nil {
			return
		}
		gender, ok := getGender(ctx)
		if !ok {
			return
		}
		counts := c.qualificationService.CountQualified(champ, gender, ctx.Query("age_class"))
		ctx.JSON(200, counts)
	}
}

type AgeClassResponse struct {
	Id           string `json:"id"`
	Label        string `json:"label"`
	MinBirthYear int    `json:"min_birth_year"`
}

type StandardResponse struct {
	Event        string         `json:"event"`
	Category     string         `json:"category"`
	ResultType   string         `json:"result_type"`
	Thresholds   map[string]int `json:"thresholds"`
	IndoorCounts bool           `json:"indoor_counts"`
}

type ChampionshipResponse struct {
	Id                 string             `json:"id"`
	Name               string             `json:"name"`
	Type               string             `json:"type"`
	QualificationStart time.Time          `json:"qualification_start"`
	QualificationEnd   time.Time          `json:"qualification_end"`
	Indoor             bool               `json:"indoor"`
	AgeClasses         []AgeClassResponse `json:"age_classes,omitempty"`
	Standards          []StandardResponse `json:"standards"`
}

type QualifiedEntry struct {
	Rank   int     `json:"rank"`
	Result *Result `json:"result"`
}

func toChampionship(c *championship.Championship) ChampionshipResponse {
	return ChampionshipResponse{
		Id:                 c.Id,
		Name:               c.Name,
		Type:               string(c.Type),
		QualificationStart: c.QualificationStart,
		QualificationEnd:   c.QualificationEnd,
		Indoor:             c.Indoor,
		AgeClasses: utils.Map(c.AgeClasses, func(a championship.AgeClass) AgeClassResponse {
			return AgeClassResponse{Id: a.Id, Label: a.Label, MinBirthYear: a.MinBirthYear}
		}),
		Standards: utils.Map(c.Standards, func(s *championship.QualificationStandard) StandardResponse {
			return StandardResponse{
				Event:        s.Event,
				Category:     s.Category,
				ResultType:   string(s.ResultType),
				Thresholds:   s.Thresholds,
				IndoorCounts: s.IndoorCounts,
			}
		}),
	}
}

func toQualifiedEntry(rank int, result *repository.Result) QualifiedEntry {
	return QualifiedEntry{Rank: rank, Result: toResult(result)}
}
