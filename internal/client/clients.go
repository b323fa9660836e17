package client

import (
	"github.com/rslist/backend/internal/dto"
	"github.com/sirupsen/logrus"
)

type Clients interface {
	RabbitMQClient() RabbitClient
}

type clients struct {
	rabbitClient RabbitClient
}

func (c clients) RabbitMQClient() RabbitClient {
	return c.rabbitClient
}

func NewClients(cfg dto.Config) Clients {
	rabbitClient, err := NewRabbitMQClient(cfg)
	if err != nil {
		logrus.Panic(err)
	}

	return &clients{
		rabbitClient: rabbitClient,
	}
}
