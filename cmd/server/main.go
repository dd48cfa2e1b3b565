package main

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/sadikkartall/cetereleceweb/internal/global"
	"github.com/sadikkartall/cetereleceweb/internal/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	app := InitFiberApp()

	address := global.ServerConfig.Address

	log := logger.GetAppLogger()
	log.WithFields(map[string]interface{}{
		"address":  address,
		"protocol": "HTTP",
	}).Info("Starting Fiber server...")

	if err := app.Listen(address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry
	InitRegistry()

	// Khởi tạo dữ liệu mặc định
	InitDefaultData()

	log := logger.GetAppLogger()

	// Khởi tạo và chạy Agent Orchestrator (background worker)
	if global.ServerConfig.Orchestrator_Enabled {
		orchestrator, err := BuildOrchestrator()
		if err != nil {
			log.WithError(err).Error("Failed to create agent orchestrator, continuing without it")
		} else {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			go func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("🗓️ [ORCHESTRATOR] Orchestrator goroutine panic")
					}
				}()

				orchestrator.Start(ctx)
				log.Warn("🗓️ [ORCHESTRATOR] Orchestrator đã dừng (có thể do context cancelled)")
			}()

			log.Info("🗓️ [ORCHESTRATOR] Agent Orchestrator started successfully")
		}
	} else {
		log.Info("🗓️ [ORCHESTRATOR] Orchestrator disabled by config")
	}

	// Chạy Fiber server trên main thread
	main_thread()
}
