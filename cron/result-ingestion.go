package cron

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"friidrett/client"
	"friidrett/config"
	"friidrett/metrics"
	"friidrett/repository"
	"friidrett/service"

	"gorm.io/gorm"
)

type IngestionService struct {
	ctx           context.Context
	resultService *service.ResultService
	hub           *client.LiveHub
}

var (
	ingestionService *IngestionService
	once             sync.Once
)

func NewIngestionService(ctx context.Context, db *gorm.DB, hub *client.LiveHub) *IngestionService {
	once.Do(func() {
		ingestionService = &IngestionService{
			ctx:           ctx,
			resultService: service.NewResultService(db),
			hub:           hub,
		}
	})
	return ingestionService
}

// ConsumeImports reads result batches from the import topic, persists them
// and feeds the live hub. Poison messages are logged and skipped; transient
// store errors back off and retry the same batch via the next poll.
func (s *IngestionService) ConsumeImports() {
	reader, err := config.GetImportReader(1)
	if err != nil {
		log.Printf("failed to create import reader: %v", err)
		return
	}
	defer reader.Close()

	consecutiveErrors := 0
	for {
		select {
		case <-s.ctx.Done():
			return
		default:
			message, err := reader.ReadMessage(s.ctx)
			if err != nil {
				if s.ctx.Err() != nil {
					return
				}
				consecutiveErrors++
				if consecutiveErrors > 5 {
					log.Print("Too many consecutive read errors, exiting")
					return
				}
				<-time.After(10 * time.Second)
				continue
			}
			consecutiveErrors = 0

			var results []*repository.Result
			if err := json.Unmarshal(message.Value, &results); err != nil {
				log.Printf("dropping malformed import message: %v", err)
				metrics.IngestionErrorCounter.Inc()
				continue
			}
			if err := s.resultService.SaveResults(results); err != nil {
				log.Printf("failed to persist import batch: %v", err)
				metrics.IngestionErrorCounter.Inc()
				continue
			}
			metrics.ResultsIngestedCounter.Add(float64(len(results)))
			s.hub.Broadcast(results)
		}
	}
}
