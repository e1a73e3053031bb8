package main

import (
	"fmt"

	account "auction-house/internal/accountService"
	auction "auction-house/internal/auctionService"
	"auction-house/internal/config"
	"auction-house/internal/database"
	question "auction-house/internal/questionService"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	"auction-house/utils"
)

func main() {
	cfg := config.LoadConfig()

	db, err := database.Connect(cfg)
	if err != nil {
		utils.Fatal("failed to connect to database", map[string]any{"error": err.Error()})
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db.DB)
	itemRepo := repository.NewItemRepository(db.DB)
	bidRepo := repository.NewBidRepository(db.DB)
	questionRepo := repository.NewQuestionRepository(db.DB)

	accountSvc := account.NewAccountService(userRepo, itemRepo, bidRepo)
	auctionSvc := auction.NewAuctionService(itemRepo, bidRepo)
	questionSvc := question.NewQuestionService(questionRepo, itemRepo)

	router := server.SetupRouter(accountSvc, auctionSvc, questionSvc)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	utils.Info("starting auction server", map[string]any{"addr": addr})
	if err := router.Run(addr); err != nil {
		utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
	}
}
