package events

import "github.com/stretchr/testify/mock"

// MockPublisher adalah mock untuk interface Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(exchange, routingKey string, body []byte) error {
	args := m.Called(exchange, routingKey, body)
	return args.Error(0)
}
