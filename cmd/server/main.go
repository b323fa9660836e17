package main

import (
	"github.com/labstack/echo/v4"
	"github.com/rslist/backend/internal/client"
	"github.com/rslist/backend/internal/controller"
	"github.com/rslist/backend/internal/dto"
	"github.com/rslist/backend/internal/repository"
	"github.com/rslist/backend/internal/service"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	config := dto.NewConfig()

	db, err := gorm.Open(postgres.Open(config.DatabaseURL), &gorm.Config{})
	if err != nil {
		logrus.Panic(err)
	}

	repositories := repository.NewRepositories(db)
	clients := client.NewClients(config)
	defer clients.RabbitMQClient().Close()

	services := service.NewServices(repositories, clients)
	controllers := controller.NewControllers(services)

	e := echo.New()
	e.HideBanner = true
	controllers.Route(e)

	logrus.Infof("Listening on :%s", config.Port)
	logrus.Fatal(e.Start(":" + config.Port))
}
