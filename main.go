package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/vinom-maze/api"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	"github.com/beka-birhanu/vinom-maze/config"
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
)

// Global variables for dependencies
var (
	appLogger      *logger.Logger
	mazeGenerator  i.MazeGenerator
	mazeController api_i.Controller
	router         *api.Router
)

func initMazeGenerator() {
	// Generator diagnostics go to stderr so a printed maze stays clean on stdout.
	mazeLogger, err := logger.New("MAZE", config.ColorCyan, os.Stderr)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze logger: %v", err))
		os.Exit(1)
	}

	mazeGenerator, err = service.NewMazeGenerator(config.Envs.MazeMaxDimension, mazeLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze generator: %v", err))
		os.Exit(1)
	}

	appLogger.Info("Maze generator initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeGenerator)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	routerLogger, err := logger.New("ROUTER", config.ColorBlue, os.Stderr)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating router logger: %v", err))
		os.Exit(1)
	}

	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		GinMode:     config.Envs.GinMode,
		Controllers: []api_i.Controller{mazeController},
		Logger:      routerLogger,
	})
	appLogger.Info("Router initialized")
}

func printMaze() {
	generated, err := mazeGenerator.Generate(dmn.MazeRequest{
		Width:  config.Envs.MazeWidth,
		Height: config.Envs.MazeHeight,
		Seed:   config.Envs.MazeSeed,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Generating maze: %v", err))
		os.Exit(1)
	}
	fmt.Print(generated.Text)
}

func main() {
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stderr)

	initMazeGenerator()

	if !config.Envs.Serve {
		printMaze()
		return
	}

	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
