package main

import (
	"fmt"

	agentsvc "github.com/sadikkartall/cetereleceweb/internal/api/agent/service"
	aisvc "github.com/sadikkartall/cetereleceweb/internal/api/ai/service"
	blogsvc "github.com/sadikkartall/cetereleceweb/internal/api/blog/service"
	"github.com/sadikkartall/cetereleceweb/internal/global"
	"github.com/sadikkartall/cetereleceweb/internal/worker"
)

// BuildOrchestrator lắp ráp toàn bộ dependency graph của hệ thống agent:
// services domain blog, pipeline sinh nội dung và simulator tương tác.
func BuildOrchestrator() (*worker.AgentOrchestrator, error) {
	cfg := global.ServerConfig

	userService, err := blogsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("create user service: %w", err)
	}
	postService, err := blogsvc.NewPostService()
	if err != nil {
		return nil, fmt.Errorf("create post service: %w", err)
	}
	commentService, err := blogsvc.NewCommentService()
	if err != nil {
		return nil, fmt.Errorf("create comment service: %w", err)
	}

	agentService := agentsvc.NewAgentService(userService)

	textGen := aisvc.NewTextGenService(aisvc.TextGenConfig{
		BaseURL:            cfg.TextGen_BaseURL,
		APIKey:             cfg.TextGen_APIKey,
		Model:              cfg.TextGen_Model,
		TimeoutSec:         cfg.TextGen_TimeoutSec,
		HumanizeTimeoutSec: cfg.Humanize_TimeoutSec,
		MaxAttempts:        cfg.ApiClient_MaxAttempts,
		BaseDelayMs:        cfg.ApiClient_BaseDelayMs,
	})
	imageSearch := aisvc.NewImageSearchService(aisvc.ImageSearchConfig{
		BaseURL:     cfg.ImageSearch_BaseURL,
		AccessKey:   cfg.ImageSearch_AccessKey,
		TimeoutSec:  cfg.ImageSearch_TimeoutSec,
		MaxAttempts: cfg.ApiClient_MaxAttempts,
		BaseDelayMs: cfg.ApiClient_BaseDelayMs,
	})
	contentGenerator := aisvc.NewContentGenerator(textGen, imageSearch, postService)

	interactionStore := agentsvc.NewBlogInteractionStore(postService, commentService, userService)
	simulator := agentsvc.NewInteractionSimulator(interactionStore, agentsvc.DefaultInteractionWeights())

	return worker.NewAgentOrchestrator(cfg, agentService, contentGenerator, postService, simulator), nil
}
