package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	echoapi "github.com/edurecords/portal/apps/api/echo"
	"github.com/edurecords/portal/core"
	"github.com/edurecords/portal/core/auth"
	"github.com/edurecords/portal/core/student"
	logsvc "github.com/edurecords/portal/services/logger"
	"github.com/edurecords/portal/storage/database"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	var logger core.Logger
	if core.Conf.GetBool("debug") {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, core.Conf)
	}

	// set up DB
	db, err := database.Open(core.Conf)
	if err != nil {
		logger.Fatal("opening database", err)
	}
	defer func() { _ = db.Close() }()
	if err = database.Ping(db); err != nil {
		logger.Fatal("pinging database", err)
	}
	if err = database.Migrate(db); err != nil {
		logger.Fatal("migrating database", err)
	}

	// set up services
	stdSvc := student.NewService(database.NewStudentRepository(db))

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Addr:          ":8000",
			Logger:        logger,
			Authenticator: auth.NewConfigAuthenticator(core.Conf),
			StudentSvc:    stdSvc,
		},
	)
	go app.Start()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Stop(ctx); err != nil {
		logger.Error("stopping server", err)
	}
}
