package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"staff-ui/config"
	"staff-ui/database"
	"staff-ui/logger"
	"staff-ui/web"
	"staff-ui/web/service"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	db, err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}

	server := web.NewServer(db)
	err = server.Start()
	if err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer(db)
			err = server.Start()
			if err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			if err := database.CloseDB(db); err != nil {
				logger.Warning("close database err:", err)
			}
			logger.CloseLogger()
			return
		}
	}
}

func showSetting(db *gorm.DB, show bool) {
	if !show {
		return
	}
	userService := service.NewUserService(db)
	userModel, err := userService.GetFirstUser()
	if err != nil {
		fmt.Println("get current user info failed, error info:", err)
		return
	}
	fmt.Println("current panel settings as follows:")
	fmt.Println("username:", userModel.Username)
	fmt.Println("port:", config.GetPort())
}

func updateSetting(db *gorm.DB, username string, password string) {
	if username == "" && password == "" {
		return
	}
	userService := service.NewUserService(db)
	err := userService.UpdateFirstUser(username, password)
	if err != nil {
		fmt.Println("set username and password failed:", err)
	} else {
		fmt.Println("set username and password success")
	}
}

func main() {
	_ = godotenv.Load()

	var rootCmd = &cobra.Command{
		Use: "staff-ui",
	}

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var (
		show     bool
		username string
		password string
	)
	var settingCmd = &cobra.Command{
		Use:   "setting",
		Short: "Show or update the operator credentials",
		Run: func(cmd *cobra.Command, args []string) {
			db, err := database.InitDB(config.GetDBPath())
			if err != nil {
				fmt.Println(err)
				return
			}
			defer database.CloseDB(db)
			updateSetting(db, username, password)
			showSetting(db, show)
		},
	}
	settingCmd.Flags().BoolVarP(&show, "show", "s", false, "show current settings")
	settingCmd.Flags().StringVarP(&username, "username", "u", "", "set login username")
	settingCmd.Flags().StringVarP(&password, "password", "p", "", "set login password")

	rootCmd.AddCommand(runCmd, settingCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
