package main

import (
	"flag"
	"log"
	"os"

	"github.com/DhavalSuthar-24/crickscore/config"
	"github.com/DhavalSuthar-24/crickscore/internal/tools/scorertoken"
)

func main() {
	appCfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg, err := scorertoken.ParseConfig(flag.CommandLine, os.Args[1:], appCfg.JWT.AccessTokenSecret, appCfg.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	if err := scorertoken.Run(cfg, os.Stdout); err != nil {
		log.Fatalf("mint token: %v", err)
	}
}
