package health_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/health"
)

type stubDBGateway struct {
	status model.HealthStatus
}

func (s *stubDBGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: s.status}
}

type stubQueueGateway struct {
	status model.HealthStatus
}

func (s *stubQueueGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: s.status}
}

func (s *stubQueueGateway) RecordPublish(bool) {}

func TestCheckHealthAllUp(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	useCase := health.NewHealthUseCase(&stubDBGateway{status: model.StatusUp}, &stubQueueGateway{status: model.StatusUp})

	response := useCase.CheckHealth()
	assert.Equal(model.StatusUp, response.Status)
}

func TestCheckHealthDatabaseDown(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	useCase := health.NewHealthUseCase(&stubDBGateway{status: model.StatusDown}, &stubQueueGateway{status: model.StatusUp})

	response := useCase.CheckHealth()
	assert.Equal(model.StatusDown, response.Status)
	assert.Equal(model.StatusDown, response.Database.Status)
}

func TestCheckHealthUnknownQueueDoesNotDegrade(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	useCase := health.NewHealthUseCase(&stubDBGateway{status: model.StatusUp}, &stubQueueGateway{status: model.StatusUnknown})

	response := useCase.CheckHealth()
	assert.Equal(model.StatusUp, response.Status)
	assert.Equal(model.StatusUnknown, response.Queue.Status)
}
