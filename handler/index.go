package handler

import (
	"github.com/conchimbubam/Kamala-housekeeping-managerment/config"
	"github.com/conchimbubam/Kamala-housekeeping-managerment/helper"
	"github.com/redis/go-redis/v9"
)

var (
	cfg          config.App
	sheetsClient *helper.SheetsClient
	redisClient  *redis.Client
)

// Init nhận cấu hình runtime từ main, khởi tạo client Sheets và Redis
func Init(appCfg config.App) {
	cfg = appCfg
	sheetsClient = helper.NewSheetsClient(cfg.SheetsAPIKey, cfg.SpreadsheetID, cfg.RangeName)
	redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
}
