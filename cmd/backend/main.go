// @title           Book Office API
// @version         1.0
// @description     Каталог услуг книжного производства и проекты изданий заказчиков.
// @BasePath        /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization

package main

import (
	"book-office/internal/api"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.Info("App start")
	api.StartServer()
	logrus.Info("App terminated")
}
