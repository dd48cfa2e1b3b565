package main

import (
	"context"

	agentsvc "github.com/sadikkartall/cetereleceweb/internal/api/agent/service"
	blogsvc "github.com/sadikkartall/cetereleceweb/internal/api/blog/service"
	"github.com/sadikkartall/cetereleceweb/internal/global"
	"github.com/sadikkartall/cetereleceweb/internal/logger"
)

// Số agent tạo sẵn khi chạy InitMode trên database trống
const initAgentCount = 3

// InitDefaultData khởi tạo dữ liệu mặc định: tạo sẵn một nhóm agent
// khi database chưa có agent nào (chỉ chạy khi INITMODE=true).
func InitDefaultData() {
	log := logger.GetAppLogger()

	if !global.ServerConfig.InitMode {
		log.Info("🔄 [INIT] InitMode tắt, bỏ qua khởi tạo dữ liệu mặc định")
		return
	}

	log.Info("🔄 [INIT] Starting InitDefaultData...")

	userService, err := blogsvc.NewUserService()
	if err != nil {
		log.Fatalf("Failed to create user service: %v", err)
	}
	agentService := agentsvc.NewAgentService(userService)

	ctx := context.Background()
	agents, err := agentService.ListAgents(ctx)
	if err != nil {
		log.Fatalf("Failed to list agents: %v", err)
	}
	if len(agents) > 0 {
		log.Infof("✅ [INIT] Đã có %d agents, bỏ qua tạo mới", len(agents))
		return
	}

	for i := 0; i < initAgentCount; i++ {
		if _, err := agentService.CreateAgent(ctx); err != nil {
			log.WithError(err).Error("❌ [INIT] Tạo agent khởi tạo thất bại")
		}
	}

	log.Infof("✅ [INIT] Đã tạo %d agents khởi tạo", initAgentCount)
}
