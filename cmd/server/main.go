package main

import (
	goflag "flag"

	"github.com/jobsift/jobsift/config"
	"github.com/jobsift/jobsift/server"
	"github.com/jobsift/jobsift/storage"
	"github.com/jobsift/jobsift/utils/dotenv"
	. "github.com/jobsift/jobsift/utils/log"
)

func main() {
	goflag.Parse()
	InitLogger()

	if err := dotenv.LoadDotEnvs(); err != nil {
		Log.Fatal("fail to load env : ", err)
	}

	cfg, err := config.Load()
	if err != nil {
		Log.Fatal("fail to load config : ", err)
	}

	store, err := storage.NewStore(cfg.Backend, cfg.DSN)
	if err != nil {
		Log.Fatal("fail to connect database : ", err)
	}
	if err := store.Migrate(); err != nil {
		Log.Fatal("fail to migrate database : ", err)
	}

	router := server.NewRouter(store)

	Log.Info("api server starts up")
	router.Run(":" + cfg.ServerPort)
}
