package main

import (
	"log"

	internalApp "electroworld/internal/app"
	"electroworld/pkg/app"

	_ "electroworld/migrations"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/plugins/migratecmd"
)

func main() {
	pb := pocketbase.New()

	// 1. Migrations
	migratecmd.MustRegister(pb, pb.RootCmd, migratecmd.Config{
		Automigrate: true,
	})

	// 2. Dependency Container
	container, err := internalApp.NewContainer(pb)
	if err != nil {
		log.Fatal("Error initializing container:", err)
	}

	// 3. Routes
	app.RegisterRoutes(pb, container)

	if err := pb.Start(); err != nil {
		log.Fatal(err)
	}
}
