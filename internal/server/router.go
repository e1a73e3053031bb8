package server

import (
	"github.com/gin-gonic/gin"

	account "auction-house/internal/accountService"
	auction "auction-house/internal/auctionService"
	question "auction-house/internal/questionService"
	handler "auction-house/services/auction/handler"
	"auction-house/services/auction/helpers"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(accountSvc *account.AccountService, auctionSvc *auction.AuctionService, questionSvc *question.QuestionService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	helpers.RegisterValidators()

	accountHandler := handler.NewAccountHandler(accountSvc)
	auctionHandler := handler.NewAuctionHandler(auctionSvc)
	questionHandler := handler.NewQuestionHandler(questionSvc)

	router.POST("/users", accountHandler.RegisterHandler)
	router.POST("/login", accountHandler.LoginHandler)
	router.POST("/logout", RequireAuth(accountSvc), accountHandler.LogoutHandler)
	router.GET("/users/:user_id", accountHandler.ProfileHandler)

	item := router.Group("/item")
	{
		item.POST("", RequireAuth(accountSvc), auctionHandler.CreateItemHandler)
		item.GET("/:item_id", auctionHandler.GetItemHandler)
		item.POST("/:item_id/bid", RequireAuth(accountSvc), auctionHandler.PlaceBidHandler)
		item.GET("/:item_id/bid", auctionHandler.GetBidHistoryHandler)
		item.GET("/:item_id/question", questionHandler.ListQuestionsHandler)
		item.POST("/:item_id/question", RequireAuth(accountSvc), questionHandler.AskQuestionHandler)
	}

	router.POST("/question/:question_id", RequireAuth(accountSvc), questionHandler.AnswerQuestionHandler)

	router.GET("/search", OptionalAuth(accountSvc), auctionHandler.SearchHandler)

	return router
}
