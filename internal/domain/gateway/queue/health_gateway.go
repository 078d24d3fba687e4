package queue

import (
	"strconv"
	"sync"

	"todo-api/internal/domain/model"
)

type HealthGateway interface {
	Health() model.ComponentHealthStatus
	RecordPublish(ok bool)
}

// PublisherHealthGateway reports queue health from the outcome of recent
// publishes. With no sender configured it reports UNKNOWN; otherwise it is
// DOWN only while the most recent publish failed.
type PublisherHealthGateway struct {
	configured bool
	queueName  string

	mutex     sync.RWMutex
	published int64
	failed    int64
	lastOK    bool
}

var _ HealthGateway = (*PublisherHealthGateway)(nil)

func NewPublisherHealthGateway(configured bool, queueName string) *PublisherHealthGateway {
	return &PublisherHealthGateway{configured: configured, queueName: queueName, lastOK: true}
}

// RecordPublish tracks the outcome of a publish attempt.
func (gateway *PublisherHealthGateway) RecordPublish(ok bool) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()

	gateway.published++
	if !ok {
		gateway.failed++
	}
	gateway.lastOK = ok
}

func (gateway *PublisherHealthGateway) Health() model.ComponentHealthStatus {
	if !gateway.configured {
		return model.ComponentHealthStatus{
			Status: model.StatusUnknown,
			Details: map[string]string{
				"message": "no queue sender configured",
			},
		}
	}

	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()

	status := model.StatusUp
	if !gateway.lastOK {
		status = model.StatusDown
	}

	return model.ComponentHealthStatus{
		Status: status,
		Details: map[string]string{
			"queue":     gateway.queueName,
			"published": strconv.FormatInt(gateway.published, 10),
			"failed":    strconv.FormatInt(gateway.failed, 10),
		},
	}
}
