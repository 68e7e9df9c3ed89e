package controller

import (
	"context"
	"encoding/json"
	"time"

	"friidrett/auth"
	"friidrett/config"
	"friidrett/metrics"
	"friidrett/repository"
	"friidrett/service"
	"friidrett/utils"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/kafka-go"
	"gorm.io/gorm"
)

type AdminController struct {
	meetService *service.MeetService
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{
		meetService: service.NewMeetService(db),
	}
}

func setupAdminController(db *gorm.DB) []RouteInfo {
	e := NewAdminController(db)
	baseUrl := "/admin"
	routes := []RouteInfo{
		{Method: "POST", Path: "/results", HandlerFunc: e.importResultsHandler(), Authenticated: true, RoleRequired: []string{auth.PermissionAdmin}},
	}
	for i, route := range routes {
		routes[i].Path = baseUrl + route.Path
	}
	return routes
}

type ResultImport struct {
	AthleteId   int      `json:"athlete_id" binding:"required"`
	ClubId      *int     `json:"club_id"`
	MeetId      int      `json:"meet_id" binding:"required"`
	EventCode   string   `json:"event_code" binding:"required"`
	Date        string   `json:"date" binding:"required"`
	Performance string   `json:"performance" binding:"required"`
	ResultType  string   `json:"result_type" binding:"required"`
	Status      string   `json:"status" binding:"required"`
	Wind        *float64 `json:"wind"`
	ManualTime  bool     `json:"manual_time"`
}

func (i ResultImport) toResult() (*repository.Result, error) {
	date, err := time.Parse("2006-01-02", i.Date)
	if err != nil {
		return nil, err
	}
	return &repository.Result{
		AthleteId:   i.AthleteId,
		ClubId:      i.ClubId,
		MeetId:      i.MeetId,
		EventCode:   i.EventCode,
		Date:        date,
		Performance: i.Performance,
		ResultType:  repository.ResultType(i.ResultType),
		Status:      repository.ResultStatus(i.Status),
		Wind:        i.Wind,
		WindLegal:   i.Wind == nil || *i.Wind <= 2.0,
		ManualTime:  i.ManualTime,
	}, nil
}

// @ID importResults
// @Summary Import results
// @Description Accept a reviewed batch of result records and hand it to the ingestion stream.
// @Security BearerAuth
// @Tags Admin
// @Accept json
// @Produce json
// @Param results body []ResultImport true "Result batch"
// @Success 202
// @Router /admin/results [post]
func (c *AdminController) importResultsHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var imports []ResultImport
		if err := ctx.ShouldBindJSON(&imports); err != nil {
			ctx.JSON(400, gin.H{"error": "Invalid request body"})
			return
		}
		if len(imports) == 0 {
			ctx.JSON(400, gin.H{"error": "Empty batch"})
			return
		}
		results := make([]*repository.Result, 0, len(imports))
		meetIds := make(map[int]bool)
		for _, imported := range imports {
			result, err := imported.toResult()
			if err != nil {
				ctx.JSON(400, gin.H{"error": err.Error()})
				return
			}
			meetIds[result.MeetId] = true
			results = append(results, result)
		}
		for _, meetId := range utils.Keys(meetIds) {
			if _, err := c.meetService.GetMeetById(meetId); err != nil {
				ctx.JSON(400, gin.H{"error": "Unknown meet"})
				return
			}
		}

		message, err := json.Marshal(results)
		if err != nil {
			ctx.JSON(500, gin.H{"error": err.Error()})
			return
		}
		writer, err := config.GetImportWriter()
		if err != nil {
			ctx.JSON(500, gin.H{"error": err.Error()})
			return
		}
		defer utils.Closer(writer)()
		err = writer.WriteMessages(context.Background(), kafka.Message{Value: message})
		if err != nil {
			ctx.JSON(500, gin.H{"error": "Failed to enqueue batch"})
			return
		}
		metrics.ImportBatchCounter.Inc()
		ctx.JSON(202, gin.H{"queued": len(results)})
	}
}
